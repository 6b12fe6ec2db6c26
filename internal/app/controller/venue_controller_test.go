package controller_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/showbill/showbill-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillmoreForm() url.Values {
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
		"seeking_description": {"Send demos"},
		"genres":              {"Jazz", "Rock"},
	}
}

func TestVenueController_CreateVenue_ThenDetail(t *testing.T) {
	engine, _ := setupTestServer(t)

	code, body := postForm(t, engine, "/venues/create", fillmoreForm())
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Venue The Fillmore listed successfully", body["message"])

	venueID := body["venue"].(map[string]interface{})["id"].(float64)

	code, detail := getJSON(t, engine, fmt.Sprintf("/venues/%.0f", venueID))
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "The Fillmore", detail["name"])
	assert.Equal(t, "San Francisco", detail["city"])
	assert.Equal(t, "CA", detail["state"])
	assert.Equal(t, "1805 Geary Blvd", detail["address"])
	assert.Equal(t, true, detail["seeking_talent"])
	assert.Equal(t, []interface{}{"Jazz", "Rock"}, detail["genres"])
	assert.Equal(t, float64(0), detail["upcoming_shows_count"])
	assert.Equal(t, float64(0), detail["past_shows_count"])
}

func TestVenueController_CreateVenue_ValidationError(t *testing.T) {
	engine, testDB := setupTestServer(t)

	values := fillmoreForm()
	values.Del("name")
	values.Del("state")

	code, body := postForm(t, engine, "/venues/create", values)
	assert.Equal(t, http.StatusBadRequest, code)

	fields := body["fields"].(map[string]interface{})
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "state")

	// no partial writes on a rejected form
	var count int64
	require.NoError(t, testDB.Model(&model.Venue{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestVenueController_ListVenues_GroupedByCityState(t *testing.T) {
	engine, _ := setupTestServer(t)

	sf := fillmoreForm()
	boston := fillmoreForm()
	boston.Set("name", "Paradise Rock Club")
	boston.Set("city", "Boston")
	boston.Set("state", "MA")

	for _, values := range []url.Values{sf, boston} {
		code, _ := postForm(t, engine, "/venues/create", values)
		require.Equal(t, http.StatusCreated, code)
	}

	code, body := getJSON(t, engine, "/venues")
	require.Equal(t, http.StatusOK, code)

	areas := body["areas"].([]interface{})
	require.Len(t, areas, 2)
	for _, raw := range areas {
		area := raw.(map[string]interface{})
		assert.Len(t, area["venues"].([]interface{}), 1)
	}
}

func TestVenueController_SearchVenues_CaseInsensitiveSubstring(t *testing.T) {
	engine, _ := setupTestServer(t)

	pink := fillmoreForm()
	pink.Set("name", "Pink")
	code, _ := postForm(t, engine, "/venues/create", pink)
	require.Equal(t, http.StatusCreated, code)

	code, body := postForm(t, engine, "/venues/search", url.Values{"search_term": {"ink"}})
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, float64(1), body["count"])
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Pink", data[0].(map[string]interface{})["name"])
}

func TestVenueController_GetVenue_NotFound(t *testing.T) {
	engine, _ := setupTestServer(t)

	code, body := getJSON(t, engine, "/venues/9999")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "VENUE_NOT_FOUND", body["error"])
}

func TestVenueController_EditVenue_PrefilledForm(t *testing.T) {
	engine, _ := setupTestServer(t)

	code, body := postForm(t, engine, "/venues/create", fillmoreForm())
	require.Equal(t, http.StatusCreated, code)
	venueID := body["venue"].(map[string]interface{})["id"].(float64)

	code, body = getJSON(t, engine, fmt.Sprintf("/venues/%.0f/edit", venueID))
	require.Equal(t, http.StatusOK, code)

	form := body["form"].(map[string]interface{})
	assert.Equal(t, "The Fillmore", form["name"])
	assert.Equal(t, "San Francisco", form["city"])
	assert.Equal(t, []interface{}{"Jazz", "Rock"}, form["genres"])
}

func TestVenueController_UpdateVenue_ReplacesGenres(t *testing.T) {
	engine, testDB := setupTestServer(t)

	code, body := postForm(t, engine, "/venues/create", fillmoreForm())
	require.Equal(t, http.StatusCreated, code)
	venueID := body["venue"].(map[string]interface{})["id"].(float64)

	edit := fillmoreForm()
	edit.Set("name", "The Fillmore West")
	edit["genres"] = []string{"Blues", "Soul", "Funk"}

	code, body = postForm(t, engine, fmt.Sprintf("/venues/%.0f/edit", venueID), edit)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Venue The Fillmore West updated successfully", body["message"])

	code, detail := getJSON(t, engine, fmt.Sprintf("/venues/%.0f", venueID))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []interface{}{"Blues", "Soul", "Funk"}, detail["genres"])

	// no residue from the prior genre set
	var count int64
	require.NoError(t, testDB.Model(&model.VenueGenre{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestVenueController_DeleteVenue(t *testing.T) {
	engine, testDB := setupTestServer(t)

	code, body := postForm(t, engine, "/venues/create", fillmoreForm())
	require.Equal(t, http.StatusCreated, code)
	venueID := body["venue"].(map[string]interface{})["id"].(float64)

	code, body = deleteJSON(t, engine, fmt.Sprintf("/venues/%.0f", venueID))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Venue was successfully deleted!", body["message"])

	code, _ = getJSON(t, engine, fmt.Sprintf("/venues/%.0f", venueID))
	assert.Equal(t, http.StatusNotFound, code)

	var count int64
	require.NoError(t, testDB.Model(&model.VenueGenre{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestVenueController_DeleteVenue_NotFound(t *testing.T) {
	engine, _ := setupTestServer(t)

	code, _ := deleteJSON(t, engine, "/venues/9999")
	assert.Equal(t, http.StatusNotFound, code)
}
