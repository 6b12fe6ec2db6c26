package forms

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func venueValues() url.Values {
	return url.Values{
		"name":                {"The Fillmore"},
		"city":                {"San Francisco"},
		"state":               {"CA"},
		"address":             {"1805 Geary Blvd"},
		"phone":               {"415-000-1234"},
		"image_link":          {"https://example.com/fillmore.jpg"},
		"facebook_link":       {"https://facebook.com/thefillmore"},
		"website":             {"https://thefillmore.com"},
		"seeking_talent":      {"Yes"},
		"seeking_description": {"Always looking for new acts"},
		"genres":              {"Jazz", "Rock"},
	}
}

func TestParseVenueForm_Valid(t *testing.T) {
	form, errs := ParseVenueForm(venueValues())
	require.Nil(t, errs)
	require.NotNil(t, form)

	assert.Equal(t, "The Fillmore", form.Name)
	assert.Equal(t, "San Francisco", form.City)
	assert.Equal(t, "CA", form.State)
	assert.True(t, form.SeekingTalent)
	assert.Equal(t, []string{"Jazz", "Rock"}, form.Genres)
}

func TestParseVenueForm_MissingRequiredFields(t *testing.T) {
	values := venueValues()
	values.Del("name")
	values.Set("city", "   ")

	form, errs := ParseVenueForm(values)
	assert.Nil(t, form)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "city")
	assert.NotContains(t, errs, "state")
}

func TestParseVenueForm_SeekingTalentCoercion(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"Yes literal", "Yes", true},
		{"Lowercase yes", "yes", false},
		{"No", "No", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := venueValues()
			values.Set("seeking_talent", tt.value)

			form, errs := ParseVenueForm(values)
			require.Nil(t, errs)
			assert.Equal(t, tt.want, form.SeekingTalent)
		})
	}
}

func TestParseArtistForm_Valid(t *testing.T) {
	values := url.Values{
		"name":          {"Guns N Petals"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"seeking_venue": {"Yes"},
		"genres":        {"Rock n Roll"},
	}

	form, errs := ParseArtistForm(values)
	require.Nil(t, errs)
	assert.Equal(t, "Guns N Petals", form.Name)
	assert.True(t, form.SeekingVenue)
	assert.Equal(t, []string{"Rock n Roll"}, form.Genres)
}

func TestParseShowForm(t *testing.T) {
	tests := []struct {
		name      string
		values    url.Values
		wantErrs  []string
		wantStart time.Time
	}{
		{
			name: "Valid RFC3339",
			values: url.Values{
				"artist_id":  {"1"},
				"venue_id":   {"2"},
				"start_time": {"2099-01-01T20:00:00Z"},
			},
			wantStart: time.Date(2099, 1, 1, 20, 0, 0, 0, time.UTC),
		},
		{
			name: "Valid without zone",
			values: url.Values{
				"artist_id":  {"1"},
				"venue_id":   {"2"},
				"start_time": {"2099-01-01T20:00:00"},
			},
			wantStart: time.Date(2099, 1, 1, 20, 0, 0, 0, time.UTC),
		},
		{
			name: "Non-numeric ids",
			values: url.Values{
				"artist_id":  {"abc"},
				"venue_id":   {"-1"},
				"start_time": {"2099-01-01T20:00:00Z"},
			},
			wantErrs: []string{"artist_id", "venue_id"},
		},
		{
			name: "Bad timestamp",
			values: url.Values{
				"artist_id":  {"1"},
				"venue_id":   {"2"},
				"start_time": {"next tuesday"},
			},
			wantErrs: []string{"start_time"},
		},
		{
			name:     "All missing",
			values:   url.Values{},
			wantErrs: []string{"artist_id", "venue_id", "start_time"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, errs := ParseShowForm(tt.values)

			if len(tt.wantErrs) > 0 {
				assert.Nil(t, form)
				require.NotNil(t, errs)
				for _, f := range tt.wantErrs {
					assert.Contains(t, errs, f)
				}
				return
			}

			require.Nil(t, errs)
			require.NotNil(t, form)
			assert.Equal(t, uint(1), form.ArtistID)
			assert.Equal(t, uint(2), form.VenueID)
			assert.True(t, tt.wantStart.Equal(form.StartTime))
		})
	}
}
