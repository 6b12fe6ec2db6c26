package repository

import (
	"strings"

	"github.com/showbill/showbill-backend/internal/app/model"
	"github.com/showbill/showbill-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VenueRepository interface {
	Create(venue *model.Venue, genres []string) error
	FindAll() ([]model.Venue, error)
	FindByID(id uint) (*model.Venue, error)
	SearchByName(term string) ([]model.Venue, error)
	Update(venue *model.Venue, genres []string) error
	Delete(id uint) error
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

// Create persists the venue and its genre rows as one transaction.
func (r *venueRepository) Create(venue *model.Venue, genres []string) error {
	logger.Debug("Creating venue in database", map[string]interface{}{
		"name":   venue.Name,
		"city":   venue.City,
		"state":  venue.State,
		"genres": len(genres),
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(venue).Error; err != nil {
			return err
		}
		return replaceVenueGenres(tx, venue, genres)
	})
	if err != nil {
		logger.Error("Failed to create venue in database", err, map[string]interface{}{
			"name": venue.Name,
		})
		return err
	}

	logger.Debug("Venue created in database", map[string]interface{}{
		"venue_id": venue.ID,
		"name":     venue.Name,
	})
	return nil
}

func (r *venueRepository) FindAll() ([]model.Venue, error) {
	var venues []model.Venue
	err := r.db.Model(&model.Venue{}).
		Preload("Genres").
		Preload("Shows").
		Find(&venues).Error
	if err != nil {
		logger.Error("Failed to find venues in database", err)
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) FindByID(id uint) (*model.Venue, error) {
	var venue model.Venue
	err := r.db.Model(&model.Venue{}).
		Preload("Genres").
		Preload("Shows").
		Preload("Shows.Artist").
		First(&venue, id).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

// SearchByName matches the name by case-insensitive substring.
func (r *venueRepository) SearchByName(term string) ([]model.Venue, error) {
	like := "%" + strings.ToLower(term) + "%"

	var venues []model.Venue
	err := r.db.Model(&model.Venue{}).
		Preload("Shows").
		Where("LOWER(name) LIKE ?", like).
		Find(&venues).Error
	if err != nil {
		logger.Error("Failed to search venues in database", err, map[string]interface{}{
			"term": term,
		})
		return nil, err
	}
	return venues, nil
}

// Update saves the venue's scalar fields and replaces its genre rows
// (delete all, reinsert submitted) in one transaction.
func (r *venueRepository) Update(venue *model.Venue, genres []string) error {
	logger.Debug("Updating venue in database", map[string]interface{}{
		"venue_id": venue.ID,
		"genres":   len(genres),
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(venue).Error; err != nil {
			return err
		}
		if err := tx.Where("venue_id = ?", venue.ID).Delete(&model.VenueGenre{}).Error; err != nil {
			return err
		}
		return replaceVenueGenres(tx, venue, genres)
	})
	if err != nil {
		logger.Error("Failed to update venue in database", err, map[string]interface{}{
			"venue_id": venue.ID,
		})
		return err
	}
	return nil
}

// Delete removes the venue together with its genre rows and shows.
// Everything is rolled back if any step fails.
func (r *venueRepository) Delete(id uint) error {
	logger.Debug("Deleting venue from database", map[string]interface{}{
		"venue_id": id,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", id).Delete(&model.VenueGenre{}).Error; err != nil {
			return err
		}
		if err := tx.Where("venue_id = ?", id).Delete(&model.Show{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Venue{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to delete venue from database", err, map[string]interface{}{
			"venue_id": id,
		})
		return err
	}

	logger.Debug("Venue deleted from database", map[string]interface{}{
		"venue_id": id,
	})
	return nil
}

// replaceVenueGenres inserts genre rows one by one so surrogate ids
// preserve submission order, and reloads them onto the venue.
func replaceVenueGenres(tx *gorm.DB, venue *model.Venue, genres []string) error {
	rows := make([]model.VenueGenre, 0, len(genres))
	for _, genre := range genres {
		row := model.VenueGenre{VenueID: venue.ID, Genre: genre}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		rows = append(rows, row)
	}
	venue.Genres = rows
	return nil
}
