package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo pairs an error code with a user-safe message
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts a persistence error into a code and a message that
// never leaks driver internals. context names the resource and operation,
// e.g. "venue create".
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "An error occurred. Please try again later.",
		}
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    notFoundCode(context),
			Message: notFoundMessage(context),
		}
	}

	// Postgres unique constraint violation (23505)
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "A record with the same identity already exists",
		}
	}

	// Postgres foreign key violation (23503)
	if strings.Contains(errStr, "foreign key constraint") {
		if strings.Contains(errStr, "still referenced") {
			return ErrorInfo{
				Code:    ResourceConflict,
				Message: "The record is referenced by other data and cannot be removed",
			}
		}
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: "A referenced record does not exist",
		}
	}

	// Postgres not-null violation (23502)
	if strings.Contains(errStr, "null value") && strings.Contains(errStr, "not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "A required field is missing",
		}
	}

	return ErrorInfo{
		Code:    InternalDatabaseError,
		Message: defaultMessage(context),
	}
}

func notFoundCode(context string) string {
	switch {
	case strings.Contains(context, "venue"):
		return VenueNotFound
	case strings.Contains(context, "artist"):
		return ArtistNotFound
	default:
		return ResourceNotFound
	}
}

func notFoundMessage(context string) string {
	switch {
	case strings.Contains(context, "venue"):
		return "Venue not found"
	case strings.Contains(context, "artist"):
		return "Artist not found"
	case strings.Contains(context, "show"):
		return "Show not found"
	default:
		return "The requested record was not found"
	}
}

func defaultMessage(context string) string {
	switch {
	case strings.Contains(context, "create"):
		return "An error occurred while saving. Please try again later."
	case strings.Contains(context, "update"):
		return "An error occurred while updating. Please try again later."
	case strings.Contains(context, "delete"):
		return "An error occurred while deleting. Please try again later."
	default:
		return "An error occurred. Please try again later."
	}
}
