package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/showbill/showbill-backend/internal/app/forms"
	"github.com/showbill/showbill-backend/internal/app/model"
	"github.com/showbill/showbill-backend/internal/app/service"
	apperrors "github.com/showbill/showbill-backend/internal/errors"
	"github.com/showbill/showbill-backend/internal/middleware"
)

type ArtistController struct {
	artistService service.ArtistService
}

func NewArtistController(artistService service.ArtistService) *ArtistController {
	return &ArtistController{artistService: artistService}
}

// ArtistSummary is the search row for an artist.
type ArtistSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueShowView is a show row on an artist detail page, denormalized
// with the hosting venue.
type VenueShowView struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ListArtists returns the flat artist listing.
func (ctrl *ArtistController) ListArtists(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	artists, err := ctrl.artistService.List()
	if err != nil {
		log.Error("Failed to list artists", err, nil)
		apperrors.InternalError(c, "Failed to fetch artists")
		return
	}

	data := make([]gin.H, 0, len(artists))
	for _, artist := range artists {
		data = append(data, gin.H{
			"id":   artist.ID,
			"name": artist.Name,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"artists": data,
		"count":   len(data),
	})
}

// SearchArtists matches artist names case-insensitively on substring.
func (ctrl *ArtistController) SearchArtists(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	term := c.PostForm("search_term")
	artists, err := ctrl.artistService.Search(term)
	if err != nil {
		log.Error("Failed to search artists", err, map[string]interface{}{
			"term": term,
		})
		apperrors.InternalError(c, "Failed to search artists")
		return
	}

	now := time.Now()
	data := make([]ArtistSummary, 0, len(artists))
	for _, artist := range artists {
		data = append(data, ArtistSummary{
			ID:               artist.ID,
			Name:             artist.Name,
			NumUpcomingShows: model.CountUpcoming(artist.Shows, now),
		})
	}

	log.Info("Artists searched", map[string]interface{}{
		"term":  term,
		"count": len(data),
	})

	c.JSON(http.StatusOK, gin.H{
		"count":       len(data),
		"data":        data,
		"search_term": term,
	})
}

// GetArtist returns the artist detail view with past and upcoming shows
// classified against the current time.
func (ctrl *ArtistController) GetArtist(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c, "artist")
	if !ok {
		return
	}

	artist, err := ctrl.artistService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			apperrors.NotFound(c, apperrors.ArtistNotFound, "Artist not found")
			return
		}
		log.Error("Failed to fetch artist", err, map[string]interface{}{
			"artist_id": id,
		})
		info := apperrors.ParseError(err, "artist fetch")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}

	past, upcoming := model.ClassifyShows(artist.Shows, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"id":                   artist.ID,
		"name":                 artist.Name,
		"genres":               artist.GenreNames(),
		"city":                 artist.City,
		"state":                artist.State,
		"phone":                artist.Phone,
		"website":              artist.Website,
		"facebook_link":        artist.FacebookLink,
		"seeking_venue":        artist.SeekingVenue,
		"seeking_description":  artist.SeekingDescription,
		"image_link":           artist.ImageLink,
		"past_shows":           venueShowViews(past),
		"upcoming_shows":       venueShowViews(upcoming),
		"past_shows_count":     len(past),
		"upcoming_shows_count": len(upcoming),
	})
}

// NewArtistForm returns a blank artist form structure.
func (ctrl *ArtistController) NewArtistForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"form": forms.ArtistForm{Genres: []string{}},
	})
}

// CreateArtist validates the form submission and persists the artist
// with its genre rows as one unit.
func (ctrl *ArtistController) CreateArtist(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	form, ok := parseArtistSubmission(c)
	if !ok {
		return
	}

	artist, err := ctrl.artistService.Create(artistInput(form))
	if err != nil {
		log.Error("Failed to create artist", err, map[string]interface{}{
			"name": form.Name,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.ArtistCreateFailed,
			fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Artist %s listed successfully", artist.Name),
		"artist": ArtistSummary{
			ID:   artist.ID,
			Name: artist.Name,
		},
	})
}

// EditArtistForm returns the artist's current values as a pre-filled form.
func (ctrl *ArtistController) EditArtistForm(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c, "artist")
	if !ok {
		return
	}

	artist, err := ctrl.artistService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			apperrors.NotFound(c, apperrors.ArtistNotFound, "Artist not found")
			return
		}
		log.Error("Failed to fetch artist for edit", err, map[string]interface{}{
			"artist_id": id,
		})
		apperrors.InternalError(c, "Failed to fetch artist")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"artist_id": artist.ID,
		"form": forms.ArtistForm{
			Name:               artist.Name,
			City:               artist.City,
			State:              artist.State,
			Phone:              artist.Phone,
			ImageLink:          artist.ImageLink,
			FacebookLink:       artist.FacebookLink,
			Website:            artist.Website,
			SeekingVenue:       artist.SeekingVenue,
			SeekingDescription: artist.SeekingDescription,
			Genres:             artist.GenreNames(),
		},
	})
}

// UpdateArtist applies an edit submission: scalar fields are updated and
// the genre list is replaced wholesale.
func (ctrl *ArtistController) UpdateArtist(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c, "artist")
	if !ok {
		return
	}

	form, ok := parseArtistSubmission(c)
	if !ok {
		return
	}

	artist, err := ctrl.artistService.Update(id, artistInput(form))
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			apperrors.NotFound(c, apperrors.ArtistNotFound, "Artist not found")
			return
		}
		log.Error("Failed to update artist", err, map[string]interface{}{
			"artist_id": id,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.ArtistUpdateFailed,
			fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Artist %s updated successfully", artist.Name),
		"artist": ArtistSummary{
			ID:   artist.ID,
			Name: artist.Name,
		},
	})
}

func parseArtistSubmission(c *gin.Context) (*forms.ArtistForm, bool) {
	if err := c.Request.ParseForm(); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "The request body could not be parsed")
		return nil, false
	}

	form, errs := forms.ParseArtistForm(c.Request.PostForm)
	if errs != nil {
		apperrors.RespondWithValidationError(c, errs)
		return nil, false
	}
	return form, true
}

func artistInput(form *forms.ArtistForm) service.ArtistInput {
	return service.ArtistInput{
		Name:               form.Name,
		City:               form.City,
		State:              form.State,
		Phone:              form.Phone,
		ImageLink:          form.ImageLink,
		FacebookLink:       form.FacebookLink,
		Website:            form.Website,
		SeekingVenue:       form.SeekingVenue,
		SeekingDescription: form.SeekingDescription,
		Genres:             form.Genres,
	}
}

func venueShowViews(shows []model.Show) []VenueShowView {
	views := make([]VenueShowView, 0, len(shows))
	for _, show := range shows {
		views = append(views, VenueShowView{
			VenueID:        show.VenueID,
			VenueName:      show.Venue.Name,
			VenueImageLink: show.Venue.ImageLink,
			StartTime:      show.StartTime.Format(time.RFC3339),
		})
	}
	return views
}
