package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/showbill/showbill-backend/internal/app/forms"
	"github.com/showbill/showbill-backend/internal/app/model"
	"github.com/showbill/showbill-backend/internal/app/service"
	apperrors "github.com/showbill/showbill-backend/internal/errors"
	"github.com/showbill/showbill-backend/internal/middleware"
)

type VenueController struct {
	venueService service.VenueService
}

func NewVenueController(venueService service.VenueService) *VenueController {
	return &VenueController{venueService: venueService}
}

// VenueSummary is the listing/search row for a venue.
type VenueSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueAreaResponse is one (city, state) group in the venue listing.
type VenueAreaResponse struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// ArtistShowView is a show row on a venue detail page, denormalized
// with the performing artist.
type ArtistShowView struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ListVenues returns all venues grouped by (city, state) with upcoming
// show counts.
func (ctrl *VenueController) ListVenues(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	areas, err := ctrl.venueService.ListAreas()
	if err != nil {
		log.Error("Failed to list venues", err, nil)
		apperrors.InternalError(c, "Failed to fetch venues")
		return
	}

	now := time.Now()
	response := make([]VenueAreaResponse, 0, len(areas))
	for _, area := range areas {
		venues := make([]VenueSummary, 0, len(area.Venues))
		for _, venue := range area.Venues {
			venues = append(venues, VenueSummary{
				ID:               venue.ID,
				Name:             venue.Name,
				NumUpcomingShows: model.CountUpcoming(venue.Shows, now),
			})
		}
		response = append(response, VenueAreaResponse{
			City:   area.City,
			State:  area.State,
			Venues: venues,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"areas": response,
	})
}

// SearchVenues matches venue names case-insensitively on substring.
func (ctrl *VenueController) SearchVenues(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	term := c.PostForm("search_term")
	venues, err := ctrl.venueService.Search(term)
	if err != nil {
		log.Error("Failed to search venues", err, map[string]interface{}{
			"term": term,
		})
		apperrors.InternalError(c, "Failed to search venues")
		return
	}

	now := time.Now()
	data := make([]VenueSummary, 0, len(venues))
	for _, venue := range venues {
		data = append(data, VenueSummary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: model.CountUpcoming(venue.Shows, now),
		})
	}

	log.Info("Venues searched", map[string]interface{}{
		"term":  term,
		"count": len(data),
	})

	c.JSON(http.StatusOK, gin.H{
		"count":       len(data),
		"data":        data,
		"search_term": term,
	})
}

// GetVenue returns the venue detail view with its past and upcoming
// shows classified against the current time.
func (ctrl *VenueController) GetVenue(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c, "venue")
	if !ok {
		return
	}

	venue, err := ctrl.venueService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			apperrors.NotFound(c, apperrors.VenueNotFound, "Venue not found")
			return
		}
		log.Error("Failed to fetch venue", err, map[string]interface{}{
			"venue_id": id,
		})
		info := apperrors.ParseError(err, "venue fetch")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}

	past, upcoming := model.ClassifyShows(venue.Shows, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"id":                   venue.ID,
		"name":                 venue.Name,
		"genres":               venue.GenreNames(),
		"address":              venue.Address,
		"city":                 venue.City,
		"state":                venue.State,
		"phone":                venue.Phone,
		"website":              venue.Website,
		"facebook_link":        venue.FacebookLink,
		"seeking_talent":       venue.SeekingTalent,
		"seeking_description":  venue.SeekingDescription,
		"image_link":           venue.ImageLink,
		"past_shows":           artistShowViews(past),
		"upcoming_shows":       artistShowViews(upcoming),
		"past_shows_count":     len(past),
		"upcoming_shows_count": len(upcoming),
	})
}

// NewVenueForm returns a blank venue form structure.
func (ctrl *VenueController) NewVenueForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"form": forms.VenueForm{Genres: []string{}},
	})
}

// CreateVenue validates the form submission and persists the venue with
// its genre rows as one unit.
func (ctrl *VenueController) CreateVenue(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	form, ok := parseVenueSubmission(c)
	if !ok {
		return
	}

	venue, err := ctrl.venueService.Create(venueInput(form))
	if err != nil {
		log.Error("Failed to create venue", err, map[string]interface{}{
			"name": form.Name,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.VenueCreateFailed,
			fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Venue %s listed successfully", venue.Name),
		"venue": VenueSummary{
			ID:   venue.ID,
			Name: venue.Name,
		},
	})
}

// DeleteVenue removes the venue and its genre rows as one unit.
func (ctrl *VenueController) DeleteVenue(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c, "venue")
	if !ok {
		return
	}

	if err := ctrl.venueService.Delete(id); err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			apperrors.NotFound(c, apperrors.VenueNotFound, "Venue not found")
			return
		}
		log.Error("Failed to delete venue", err, map[string]interface{}{
			"venue_id": id,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.VenueDeleteFailed,
			"An error occurred while deleting the venue.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Venue was successfully deleted!",
	})
}

// EditVenueForm returns the venue's current values as a pre-filled form.
func (ctrl *VenueController) EditVenueForm(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c, "venue")
	if !ok {
		return
	}

	venue, err := ctrl.venueService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			apperrors.NotFound(c, apperrors.VenueNotFound, "Venue not found")
			return
		}
		log.Error("Failed to fetch venue for edit", err, map[string]interface{}{
			"venue_id": id,
		})
		apperrors.InternalError(c, "Failed to fetch venue")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"venue_id": venue.ID,
		"form": forms.VenueForm{
			Name:               venue.Name,
			City:               venue.City,
			State:              venue.State,
			Address:            venue.Address,
			Phone:              venue.Phone,
			ImageLink:          venue.ImageLink,
			FacebookLink:       venue.FacebookLink,
			Website:            venue.Website,
			SeekingTalent:      venue.SeekingTalent,
			SeekingDescription: venue.SeekingDescription,
			Genres:             venue.GenreNames(),
		},
	})
}

// UpdateVenue applies an edit submission: scalar fields are updated and
// the genre list is replaced wholesale.
func (ctrl *VenueController) UpdateVenue(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c, "venue")
	if !ok {
		return
	}

	form, ok := parseVenueSubmission(c)
	if !ok {
		return
	}

	venue, err := ctrl.venueService.Update(id, venueInput(form))
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			apperrors.NotFound(c, apperrors.VenueNotFound, "Venue not found")
			return
		}
		log.Error("Failed to update venue", err, map[string]interface{}{
			"venue_id": id,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.VenueUpdateFailed,
			fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Venue %s updated successfully", venue.Name),
		"venue": VenueSummary{
			ID:   venue.ID,
			Name: venue.Name,
		},
	})
}

// parseVenueSubmission parses and validates the form body, responding
// with the per-field error map on failure.
func parseVenueSubmission(c *gin.Context) (*forms.VenueForm, bool) {
	if err := c.Request.ParseForm(); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "The request body could not be parsed")
		return nil, false
	}

	form, errs := forms.ParseVenueForm(c.Request.PostForm)
	if errs != nil {
		apperrors.RespondWithValidationError(c, errs)
		return nil, false
	}
	return form, true
}

func venueInput(form *forms.VenueForm) service.VenueInput {
	return service.VenueInput{
		Name:               form.Name,
		City:               form.City,
		State:              form.State,
		Address:            form.Address,
		Phone:              form.Phone,
		ImageLink:          form.ImageLink,
		FacebookLink:       form.FacebookLink,
		Website:            form.Website,
		SeekingTalent:      form.SeekingTalent,
		SeekingDescription: form.SeekingDescription,
		Genres:             form.Genres,
	}
}

func artistShowViews(shows []model.Show) []ArtistShowView {
	views := make([]ArtistShowView, 0, len(shows))
	for _, show := range shows {
		views = append(views, ArtistShowView{
			ArtistID:        show.ArtistID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       show.StartTime.Format(time.RFC3339),
		})
	}
	return views
}

// parseID reads the :id path parameter, responding 400 on a malformed value.
func parseID(c *gin.Context, resource string) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID,
			fmt.Sprintf("Invalid %s ID", resource))
		return 0, false
	}
	return uint(id), true
}
