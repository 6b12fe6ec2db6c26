package repository

import (
	"strings"

	"github.com/showbill/showbill-backend/internal/app/model"
	"github.com/showbill/showbill-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArtistRepository interface {
	Create(artist *model.Artist, genres []string) error
	FindAll() ([]model.Artist, error)
	FindByID(id uint) (*model.Artist, error)
	SearchByName(term string) ([]model.Artist, error)
	Update(artist *model.Artist, genres []string) error
	Delete(id uint) error
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

// Create persists the artist and its genre rows as one transaction.
func (r *artistRepository) Create(artist *model.Artist, genres []string) error {
	logger.Debug("Creating artist in database", map[string]interface{}{
		"name":   artist.Name,
		"city":   artist.City,
		"state":  artist.State,
		"genres": len(genres),
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(artist).Error; err != nil {
			return err
		}
		return replaceArtistGenres(tx, artist, genres)
	})
	if err != nil {
		logger.Error("Failed to create artist in database", err, map[string]interface{}{
			"name": artist.Name,
		})
		return err
	}

	logger.Debug("Artist created in database", map[string]interface{}{
		"artist_id": artist.ID,
		"name":      artist.Name,
	})
	return nil
}

func (r *artistRepository) FindAll() ([]model.Artist, error) {
	var artists []model.Artist
	err := r.db.Model(&model.Artist{}).
		Preload("Genres").
		Preload("Shows").
		Find(&artists).Error
	if err != nil {
		logger.Error("Failed to find artists in database", err)
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) FindByID(id uint) (*model.Artist, error) {
	var artist model.Artist
	err := r.db.Model(&model.Artist{}).
		Preload("Genres").
		Preload("Shows").
		Preload("Shows.Venue").
		First(&artist, id).Error
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

// SearchByName matches the name by case-insensitive substring.
func (r *artistRepository) SearchByName(term string) ([]model.Artist, error) {
	like := "%" + strings.ToLower(term) + "%"

	var artists []model.Artist
	err := r.db.Model(&model.Artist{}).
		Preload("Shows").
		Where("LOWER(name) LIKE ?", like).
		Find(&artists).Error
	if err != nil {
		logger.Error("Failed to search artists in database", err, map[string]interface{}{
			"term": term,
		})
		return nil, err
	}
	return artists, nil
}

// Update saves the artist's scalar fields and replaces its genre rows
// in one transaction.
func (r *artistRepository) Update(artist *model.Artist, genres []string) error {
	logger.Debug("Updating artist in database", map[string]interface{}{
		"artist_id": artist.ID,
		"genres":    len(genres),
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(artist).Error; err != nil {
			return err
		}
		if err := tx.Where("artist_id = ?", artist.ID).Delete(&model.ArtistGenre{}).Error; err != nil {
			return err
		}
		return replaceArtistGenres(tx, artist, genres)
	})
	if err != nil {
		logger.Error("Failed to update artist in database", err, map[string]interface{}{
			"artist_id": artist.ID,
		})
		return err
	}
	return nil
}

// Delete removes the artist together with its genre rows and shows.
func (r *artistRepository) Delete(id uint) error {
	logger.Debug("Deleting artist from database", map[string]interface{}{
		"artist_id": id,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artist_id = ?", id).Delete(&model.ArtistGenre{}).Error; err != nil {
			return err
		}
		if err := tx.Where("artist_id = ?", id).Delete(&model.Show{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Artist{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to delete artist from database", err, map[string]interface{}{
			"artist_id": id,
		})
		return err
	}
	return nil
}

func replaceArtistGenres(tx *gorm.DB, artist *model.Artist, genres []string) error {
	rows := make([]model.ArtistGenre, 0, len(genres))
	for _, genre := range genres {
		row := model.ArtistGenre{ArtistID: artist.ID, Genre: genre}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		rows = append(rows, row)
	}
	artist.Genres = rows
	return nil
}
