package service

import (
	"errors"

	"github.com/showbill/showbill-backend/internal/app/model"
	"github.com/showbill/showbill-backend/internal/app/repository"
	"github.com/showbill/showbill-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrArtistNotFound = errors.New("artist not found")

// ArtistInput carries the validated scalar fields and genre list for an
// artist create or full-replace edit.
type ArtistInput struct {
	Name               string
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingVenue       bool
	SeekingDescription string
	Genres             []string
}

type ArtistService interface {
	List() ([]model.Artist, error)
	Search(term string) ([]model.Artist, error)
	GetByID(id uint) (*model.Artist, error)
	Create(input ArtistInput) (*model.Artist, error)
	Update(id uint, input ArtistInput) (*model.Artist, error)
}

type artistService struct {
	artistRepo repository.ArtistRepository
}

func NewArtistService(artistRepo repository.ArtistRepository) ArtistService {
	return &artistService{artistRepo: artistRepo}
}

func (s *artistService) List() ([]model.Artist, error) {
	artists, err := s.artistRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list artists", err)
		return nil, err
	}

	logger.Info("Artists fetched", map[string]interface{}{
		"count": len(artists),
	})
	return artists, nil
}

func (s *artistService) Search(term string) ([]model.Artist, error) {
	artists, err := s.artistRepo.SearchByName(term)
	if err != nil {
		logger.Error("Failed to search artists", err, map[string]interface{}{
			"term": term,
		})
		return nil, err
	}
	return artists, nil
}

func (s *artistService) GetByID(id uint) (*model.Artist, error) {
	artist, err := s.artistRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Artist not found", map[string]interface{}{
				"artist_id": id,
			})
			return nil, ErrArtistNotFound
		}
		logger.Error("Failed to fetch artist", err, map[string]interface{}{
			"artist_id": id,
		})
		return nil, err
	}
	return artist, nil
}

func (s *artistService) Create(input ArtistInput) (*model.Artist, error) {
	artist := &model.Artist{
		Name:               input.Name,
		City:               input.City,
		State:              input.State,
		Phone:              input.Phone,
		ImageLink:          input.ImageLink,
		FacebookLink:       input.FacebookLink,
		Website:            input.Website,
		SeekingVenue:       input.SeekingVenue,
		SeekingDescription: input.SeekingDescription,
	}

	if err := s.artistRepo.Create(artist, input.Genres); err != nil {
		return nil, err
	}

	logger.Info("Artist created", map[string]interface{}{
		"artist_id": artist.ID,
		"name":      artist.Name,
	})
	return artist, nil
}

// Update replaces the artist's scalar fields and genre list with the
// submitted values.
func (s *artistService) Update(id uint, input ArtistInput) (*model.Artist, error) {
	artist, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	artist.Name = input.Name
	artist.City = input.City
	artist.State = input.State
	artist.Phone = input.Phone
	artist.ImageLink = input.ImageLink
	artist.FacebookLink = input.FacebookLink
	artist.Website = input.Website
	artist.SeekingVenue = input.SeekingVenue
	artist.SeekingDescription = input.SeekingDescription

	if err := s.artistRepo.Update(artist, input.Genres); err != nil {
		return nil, err
	}

	logger.Info("Artist updated", map[string]interface{}{
		"artist_id": artist.ID,
		"name":      artist.Name,
	})
	return artist, nil
}
