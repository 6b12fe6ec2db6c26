package repository

import (
	"github.com/showbill/showbill-backend/internal/app/model"
	"github.com/showbill/showbill-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShowRepository interface {
	Create(show *model.Show) error
	FindAll() ([]model.Show, error)
}

type showRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) Create(show *model.Show) error {
	logger.Debug("Creating show in database", map[string]interface{}{
		"venue_id":   show.VenueID,
		"artist_id":  show.ArtistID,
		"start_time": show.StartTime,
	})

	if err := r.db.Omit(clause.Associations).Create(show).Error; err != nil {
		logger.Error("Failed to create show in database", err, map[string]interface{}{
			"venue_id":  show.VenueID,
			"artist_id": show.ArtistID,
		})
		return err
	}

	logger.Debug("Show created in database", map[string]interface{}{
		"show_id": show.ID,
	})
	return nil
}

func (r *showRepository) FindAll() ([]model.Show, error) {
	var shows []model.Show
	err := r.db.Model(&model.Show{}).
		Preload("Venue").
		Preload("Artist").
		Find(&shows).Error
	if err != nil {
		logger.Error("Failed to find shows in database", err)
		return nil, err
	}
	return shows, nil
}
