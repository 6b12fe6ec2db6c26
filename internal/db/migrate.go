package db

import (
	"time"

	"github.com/showbill/showbill-backend/internal/app/model"
	"github.com/showbill/showbill-backend/pkg/logger"
	"gorm.io/gorm"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Venue{},
		&model.VenueGenre{},
		&model.Artist{},
		&model.ArtistGenre{},
		&model.Show{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds demo venues, artists and shows. Skips if venues already exist.
func Seed() error {
	return SeedDemoData(DB)
}

// SeedDemoData inserts the demo directory data into the given database.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Venue{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Venues already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding demo data...")

	venues := []struct {
		venue  model.Venue
		genres []string
	}{
		{
			venue: model.Venue{
				Name:               "The Musical Hop",
				City:               "San Francisco",
				State:              "CA",
				Address:            "1015 Folsom Street",
				Phone:              "123-123-1234",
				ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5",
				FacebookLink:       "https://www.facebook.com/TheMusicalHop",
				Website:            "https://www.themusicalhop.com",
				SeekingTalent:      true,
				SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
			},
			genres: []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
		},
		{
			venue: model.Venue{
				Name:         "The Dueling Pianos Bar",
				City:         "New York",
				State:        "NY",
				Address:      "335 Delancey Street",
				Phone:        "914-003-1132",
				ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae",
				FacebookLink: "https://www.facebook.com/theduelingpianos",
				Website:      "https://www.theduelingpianos.com",
			},
			genres: []string{"Classical", "R&B", "Hip-Hop"},
		},
		{
			venue: model.Venue{
				Name:         "Park Square Live Music & Coffee",
				City:         "San Francisco",
				State:        "CA",
				Address:      "34 Whiskey Moore Ave",
				Phone:        "415-000-1234",
				ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7",
				FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
				Website:      "https://www.parksquarelivemusicandcoffee.com",
			},
			genres: []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
		},
	}

	artists := []struct {
		artist model.Artist
		genres []string
	}{
		{
			artist: model.Artist{
				Name:               "Guns N Petals",
				City:               "San Francisco",
				State:              "CA",
				Phone:              "326-123-5000",
				ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f",
				FacebookLink:       "https://www.facebook.com/GunsNPetals",
				Website:            "https://www.gunsnpetalsband.com",
				SeekingVenue:       true,
				SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
			},
			genres: []string{"Rock n Roll"},
		},
		{
			artist: model.Artist{
				Name:      "Matt Quevedo",
				City:      "New York",
				State:     "NY",
				Phone:     "300-400-5000",
				ImageLink: "https://images.unsplash.com/photo-1495223153807-b916f75de8c5",
			},
			genres: []string{"Jazz"},
		},
		{
			artist: model.Artist{
				Name:      "The Wild Sax Band",
				City:      "San Francisco",
				State:     "CA",
				Phone:     "432-325-5432",
				ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61",
			},
			genres: []string{"Jazz", "Classical"},
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range venues {
			if err := tx.Create(&venues[i].venue).Error; err != nil {
				return err
			}
			for _, genre := range venues[i].genres {
				row := model.VenueGenre{VenueID: venues[i].venue.ID, Genre: genre}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}

		for i := range artists {
			if err := tx.Create(&artists[i].artist).Error; err != nil {
				return err
			}
			for _, genre := range artists[i].genres {
				row := model.ArtistGenre{ArtistID: artists[i].artist.ID, Genre: genre}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}

		shows := []model.Show{
			{
				VenueID:   venues[0].venue.ID,
				ArtistID:  artists[0].artist.ID,
				StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC),
			},
			{
				VenueID:   venues[2].venue.ID,
				ArtistID:  artists[1].artist.ID,
				StartTime: time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC),
			},
			{
				VenueID:   venues[2].venue.ID,
				ArtistID:  artists[2].artist.ID,
				StartTime: time.Now().AddDate(1, 0, 0),
			},
		}
		for i := range shows {
			if err := tx.Create(&shows[i]).Error; err != nil {
				return err
			}
		}

		logger.Info("Demo data seeded successfully", map[string]interface{}{
			"venues":  len(venues),
			"artists": len(artists),
			"shows":   len(shows),
		})
		return nil
	})
}
