// Package forms validates and normalizes the form-encoded submissions
// for venue, artist and show endpoints before they reach the services.
package forms

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Errors maps a field name to its validation messages.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Empty reports whether validation passed.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// startTimeLayouts are tried in order when parsing show start times.
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// VenueForm is the validated venue create/edit submission.
type VenueForm struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
	Genres             []string `json:"genres"`
}

// ArtistForm is the validated artist create/edit submission.
type ArtistForm struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
	Genres             []string `json:"genres"`
}

// ShowForm is the validated show creation submission.
type ShowForm struct {
	ArtistID  uint      `json:"artist_id"`
	VenueID   uint      `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}

// ParseVenueForm validates a raw venue submission. On failure the form is
// nil and the error map carries a message per offending field.
func ParseVenueForm(values url.Values) (*VenueForm, Errors) {
	errs := Errors{}

	form := &VenueForm{
		Name:               field(values, "name"),
		City:               field(values, "city"),
		State:              field(values, "state"),
		Address:            field(values, "address"),
		Phone:              field(values, "phone"),
		ImageLink:          field(values, "image_link"),
		FacebookLink:       field(values, "facebook_link"),
		Website:            field(values, "website"),
		SeekingTalent:      parseYes(values.Get("seeking_talent")),
		SeekingDescription: field(values, "seeking_description"),
		Genres:             genres(values),
	}

	requireFields(values, errs, "name", "city", "state")

	if !errs.Empty() {
		return nil, errs
	}
	return form, nil
}

// ParseArtistForm validates a raw artist submission.
func ParseArtistForm(values url.Values) (*ArtistForm, Errors) {
	errs := Errors{}

	form := &ArtistForm{
		Name:               field(values, "name"),
		City:               field(values, "city"),
		State:              field(values, "state"),
		Phone:              field(values, "phone"),
		ImageLink:          field(values, "image_link"),
		FacebookLink:       field(values, "facebook_link"),
		Website:            field(values, "website"),
		SeekingVenue:       parseYes(values.Get("seeking_venue")),
		SeekingDescription: field(values, "seeking_description"),
		Genres:             genres(values),
	}

	requireFields(values, errs, "name", "city", "state")

	if !errs.Empty() {
		return nil, errs
	}
	return form, nil
}

// ParseShowForm validates a raw show submission.
func ParseShowForm(values url.Values) (*ShowForm, Errors) {
	errs := Errors{}
	form := &ShowForm{}

	requireFields(values, errs, "artist_id", "venue_id", "start_time")

	if raw := field(values, "artist_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			errs.Add("artist_id", "must be a numeric id")
		} else {
			form.ArtistID = uint(id)
		}
	}

	if raw := field(values, "venue_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			errs.Add("venue_id", "must be a numeric id")
		} else {
			form.VenueID = uint(id)
		}
	}

	if raw := field(values, "start_time"); raw != "" {
		ts, err := parseStartTime(raw)
		if err != nil {
			errs.Add("start_time", "must be a valid timestamp")
		} else {
			form.StartTime = ts
		}
	}

	if !errs.Empty() {
		return nil, errs
	}
	return form, nil
}

func field(values url.Values, name string) string {
	return strings.TrimSpace(values.Get(name))
}

// genres keeps the repeated "genres" field in submission order.
func genres(values url.Values) []string {
	raw := values["genres"]
	result := make([]string, 0, len(raw))
	for _, g := range raw {
		if trimmed := strings.TrimSpace(g); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// parseYes coerces the checkbox convention: the literal "Yes" is true,
// anything else is false.
func parseYes(value string) bool {
	return value == "Yes"
}

func requireFields(values url.Values, errs Errors, names ...string) {
	for _, name := range names {
		if field(values, name) == "" {
			errs.Add(name, "This field is required.")
		}
	}
}

func parseStartTime(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range startTimeLayouts {
		ts, err := time.Parse(layout, raw)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
