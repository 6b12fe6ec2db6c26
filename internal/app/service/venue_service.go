package service

import (
	"errors"

	"github.com/showbill/showbill-backend/internal/app/model"
	"github.com/showbill/showbill-backend/internal/app/repository"
	"github.com/showbill/showbill-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrVenueNotFound = errors.New("venue not found")

// VenueInput carries the validated scalar fields and genre list for a
// venue create or full-replace edit.
type VenueInput struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingTalent      bool
	SeekingDescription string
	Genres             []string
}

// VenueArea groups the venues of one (city, state) pair.
type VenueArea struct {
	City   string
	State  string
	Venues []model.Venue
}

type VenueService interface {
	ListAreas() ([]VenueArea, error)
	Search(term string) ([]model.Venue, error)
	GetByID(id uint) (*model.Venue, error)
	Create(input VenueInput) (*model.Venue, error)
	Update(id uint, input VenueInput) (*model.Venue, error)
	Delete(id uint) error
}

type venueService struct {
	venueRepo repository.VenueRepository
}

func NewVenueService(venueRepo repository.VenueRepository) VenueService {
	return &venueService{venueRepo: venueRepo}
}

// ListAreas fetches all venues grouped by (city, state). Groups appear
// in first-seen order of the venue scan; ordering beyond that is not
// part of the contract.
func (s *venueService) ListAreas() ([]VenueArea, error) {
	venues, err := s.venueRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list venues", err)
		return nil, err
	}

	type locationKey struct {
		city, state string
	}

	var areas []VenueArea
	index := make(map[locationKey]int)
	for _, venue := range venues {
		key := locationKey{venue.City, venue.State}
		i, seen := index[key]
		if !seen {
			i = len(areas)
			index[key] = i
			areas = append(areas, VenueArea{City: venue.City, State: venue.State})
		}
		areas[i].Venues = append(areas[i].Venues, venue)
	}

	logger.Info("Venues fetched", map[string]interface{}{
		"count": len(venues),
		"areas": len(areas),
	})
	return areas, nil
}

func (s *venueService) Search(term string) ([]model.Venue, error) {
	venues, err := s.venueRepo.SearchByName(term)
	if err != nil {
		logger.Error("Failed to search venues", err, map[string]interface{}{
			"term": term,
		})
		return nil, err
	}
	return venues, nil
}

func (s *venueService) GetByID(id uint) (*model.Venue, error) {
	venue, err := s.venueRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Venue not found", map[string]interface{}{
				"venue_id": id,
			})
			return nil, ErrVenueNotFound
		}
		logger.Error("Failed to fetch venue", err, map[string]interface{}{
			"venue_id": id,
		})
		return nil, err
	}
	return venue, nil
}

func (s *venueService) Create(input VenueInput) (*model.Venue, error) {
	venue := &model.Venue{
		Name:               input.Name,
		City:               input.City,
		State:              input.State,
		Address:            input.Address,
		Phone:              input.Phone,
		ImageLink:          input.ImageLink,
		FacebookLink:       input.FacebookLink,
		Website:            input.Website,
		SeekingTalent:      input.SeekingTalent,
		SeekingDescription: input.SeekingDescription,
	}

	if err := s.venueRepo.Create(venue, input.Genres); err != nil {
		return nil, err
	}

	logger.Info("Venue created", map[string]interface{}{
		"venue_id": venue.ID,
		"name":     venue.Name,
	})
	return venue, nil
}

// Update replaces the venue's scalar fields and genre list with the
// submitted values.
func (s *venueService) Update(id uint, input VenueInput) (*model.Venue, error) {
	venue, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	venue.Name = input.Name
	venue.City = input.City
	venue.State = input.State
	venue.Address = input.Address
	venue.Phone = input.Phone
	venue.ImageLink = input.ImageLink
	venue.FacebookLink = input.FacebookLink
	venue.Website = input.Website
	venue.SeekingTalent = input.SeekingTalent
	venue.SeekingDescription = input.SeekingDescription

	if err := s.venueRepo.Update(venue, input.Genres); err != nil {
		return nil, err
	}

	logger.Info("Venue updated", map[string]interface{}{
		"venue_id": venue.ID,
		"name":     venue.Name,
	})
	return venue, nil
}

func (s *venueService) Delete(id uint) error {
	if err := s.venueRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVenueNotFound
		}
		return err
	}

	logger.Info("Venue deleted", map[string]interface{}{
		"venue_id": id,
	})
	return nil
}
