package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyShows(t *testing.T) {
	now := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		shows        []Show
		wantPast     int
		wantUpcoming int
	}{
		{
			name:         "No shows",
			shows:        nil,
			wantPast:     0,
			wantUpcoming: 0,
		},
		{
			name: "Mixed past and upcoming",
			shows: []Show{
				{ID: 1, StartTime: now.Add(-48 * time.Hour)},
				{ID: 2, StartTime: now.Add(24 * time.Hour)},
				{ID: 3, StartTime: now.Add(-time.Minute)},
			},
			wantPast:     2,
			wantUpcoming: 1,
		},
		{
			name: "Start time equal to now counts as upcoming",
			shows: []Show{
				{ID: 1, StartTime: now},
			},
			wantPast:     0,
			wantUpcoming: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			past, upcoming := ClassifyShows(tt.shows, now)
			assert.Len(t, past, tt.wantPast)
			assert.Len(t, upcoming, tt.wantUpcoming)
		})
	}
}

func TestClassifyShows_ResultChangesWithClock(t *testing.T) {
	start := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)
	shows := []Show{{ID: 1, StartTime: start}}

	_, upcoming := ClassifyShows(shows, start.Add(-time.Hour))
	assert.Len(t, upcoming, 1)

	past, upcoming := ClassifyShows(shows, start.Add(time.Hour))
	assert.Len(t, upcoming, 0)
	assert.Len(t, past, 1)
}

func TestCountUpcoming(t *testing.T) {
	now := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)
	shows := []Show{
		{ID: 1, StartTime: now.Add(-time.Hour)},
		{ID: 2, StartTime: now.Add(time.Hour)},
		{ID: 3, StartTime: now.Add(48 * time.Hour)},
	}

	assert.Equal(t, 2, CountUpcoming(shows, now))
}
