package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/showbill/showbill-backend/internal/app/forms"
	"github.com/showbill/showbill-backend/internal/app/service"
	apperrors "github.com/showbill/showbill-backend/internal/errors"
	"github.com/showbill/showbill-backend/internal/middleware"
)

type ShowController struct {
	showService service.ShowService
}

func NewShowController(showService service.ShowService) *ShowController {
	return &ShowController{showService: showService}
}

// ShowListRow is one row of the show listing, denormalized with venue
// and artist display fields.
type ShowListRow struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ListShows returns all shows with denormalized venue/artist fields.
func (ctrl *ShowController) ListShows(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	shows, err := ctrl.showService.List()
	if err != nil {
		log.Error("Failed to list shows", err, nil)
		info := apperrors.ParseError(err, "show list")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}

	rows := make([]ShowListRow, 0, len(shows))
	for _, show := range shows {
		rows = append(rows, ShowListRow{
			VenueID:         show.VenueID,
			VenueName:       show.Venue.Name,
			ArtistID:        show.ArtistID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       show.StartTime.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"shows": rows,
		"count": len(rows),
	})
}

// NewShowForm returns a blank show form structure.
func (ctrl *ShowController) NewShowForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"form": forms.ShowForm{},
	})
}

// CreateShow validates the submission, verifies both referenced records
// exist, and persists the show. A missing reference is reported without
// anything being written.
func (ctrl *ShowController) CreateShow(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	if err := c.Request.ParseForm(); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "The request body could not be parsed")
		return
	}

	form, errs := forms.ParseShowForm(c.Request.PostForm)
	if errs != nil {
		apperrors.RespondWithValidationError(c, errs)
		return
	}

	_, err := ctrl.showService.Create(service.ShowInput{
		ArtistID:  form.ArtistID,
		VenueID:   form.VenueID,
		StartTime: form.StartTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrShowVenueNotFound):
			apperrors.BadRequest(c, apperrors.ShowVenueMissing,
				fmt.Sprintf("The venue id %d does not exist", form.VenueID))
		case errors.Is(err, service.ErrShowArtistNotFound):
			apperrors.BadRequest(c, apperrors.ShowArtistMissing,
				fmt.Sprintf("The artist id %d does not exist", form.ArtistID))
		default:
			log.Error("Failed to create show", err, map[string]interface{}{
				"venue_id":  form.VenueID,
				"artist_id": form.ArtistID,
			})
			apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.ShowCreateFailed,
				"An error occurred. Show could not be listed")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Show listed successfully",
	})
}
