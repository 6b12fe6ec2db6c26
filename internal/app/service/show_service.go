package service

import (
	"errors"
	"time"

	"github.com/showbill/showbill-backend/internal/app/model"
	"github.com/showbill/showbill-backend/internal/app/repository"
	"github.com/showbill/showbill-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrShowVenueNotFound  = errors.New("the referenced venue does not exist")
	ErrShowArtistNotFound = errors.New("the referenced artist does not exist")
)

// ShowInput carries the validated references and start time for a new show.
type ShowInput struct {
	ArtistID  uint
	VenueID   uint
	StartTime time.Time
}

type ShowService interface {
	List() ([]model.Show, error)
	Create(input ShowInput) (*model.Show, error)
}

type showService struct {
	showRepo   repository.ShowRepository
	venueRepo  repository.VenueRepository
	artistRepo repository.ArtistRepository
}

func NewShowService(
	showRepo repository.ShowRepository,
	venueRepo repository.VenueRepository,
	artistRepo repository.ArtistRepository,
) ShowService {
	return &showService{
		showRepo:   showRepo,
		venueRepo:  venueRepo,
		artistRepo: artistRepo,
	}
}

func (s *showService) List() ([]model.Show, error) {
	shows, err := s.showRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list shows", err)
		return nil, err
	}

	logger.Info("Shows fetched", map[string]interface{}{
		"count": len(shows),
	})
	return shows, nil
}

// Create verifies that both referenced records exist before anything is
// persisted. A missing reference aborts with no write at all.
func (s *showService) Create(input ShowInput) (*model.Show, error) {
	if _, err := s.venueRepo.FindByID(input.VenueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Show references unknown venue", map[string]interface{}{
				"venue_id": input.VenueID,
			})
			return nil, ErrShowVenueNotFound
		}
		return nil, err
	}

	if _, err := s.artistRepo.FindByID(input.ArtistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Show references unknown artist", map[string]interface{}{
				"artist_id": input.ArtistID,
			})
			return nil, ErrShowArtistNotFound
		}
		return nil, err
	}

	show := &model.Show{
		VenueID:   input.VenueID,
		ArtistID:  input.ArtistID,
		StartTime: input.StartTime,
	}
	if err := s.showRepo.Create(show); err != nil {
		return nil, err
	}

	logger.Info("Show created", map[string]interface{}{
		"show_id":    show.ID,
		"venue_id":   show.VenueID,
		"artist_id":  show.ArtistID,
		"start_time": show.StartTime,
	})
	return show, nil
}
