package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		context     string
		wantCode    string
		wantMessage string
	}{
		{
			name:        "Record not found for venue",
			err:         gorm.ErrRecordNotFound,
			context:     "venue fetch",
			wantCode:    VenueNotFound,
			wantMessage: "Venue not found",
		},
		{
			name:        "Record not found for artist",
			err:         gorm.ErrRecordNotFound,
			context:     "artist fetch",
			wantCode:    ArtistNotFound,
			wantMessage: "Artist not found",
		},
		{
			name:        "Record not found without known context",
			err:         gorm.ErrRecordNotFound,
			context:     "unknown",
			wantCode:    ResourceNotFound,
			wantMessage: "The requested record was not found",
		},
		{
			name:        "Duplicate key violation",
			err:         errors.New(`duplicate key value violates unique constraint "venues_pkey"`),
			context:     "venue create",
			wantCode:    ResourceAlreadyExists,
			wantMessage: "A record with the same identity already exists",
		},
		{
			name:        "Foreign key violation on insert",
			err:         errors.New(`insert or update on table "shows" violates foreign key constraint`),
			context:     "show create",
			wantCode:    ResourceNotFound,
			wantMessage: "A referenced record does not exist",
		},
		{
			name:        "Foreign key violation on delete",
			err:         errors.New(`update or delete on table "venues" violates foreign key constraint, key is still referenced from table "shows"`),
			context:     "venue delete",
			wantCode:    ResourceConflict,
			wantMessage: "The record is referenced by other data and cannot be removed",
		},
		{
			name:        "Not-null violation",
			err:         errors.New(`null value in column "name" violates not-null constraint`),
			context:     "venue create",
			wantCode:    ValidationRequired,
			wantMessage: "A required field is missing",
		},
		{
			name:        "Unknown error on create",
			err:         errors.New("connection refused"),
			context:     "venue create",
			wantCode:    InternalDatabaseError,
			wantMessage: "An error occurred while saving. Please try again later.",
		},
		{
			name:        "Unknown error on delete",
			err:         errors.New("connection refused"),
			context:     "venue delete",
			wantCode:    InternalDatabaseError,
			wantMessage: "An error occurred while deleting. Please try again later.",
		},
		{
			name:        "Nil error",
			err:         nil,
			context:     "venue fetch",
			wantCode:    InternalServerError,
			wantMessage: "An error occurred. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ParseError(tt.err, tt.context)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.Equal(t, tt.wantMessage, info.Message)
		})
	}
}
