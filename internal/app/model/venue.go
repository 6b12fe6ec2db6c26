package model

import (
	"time"
)

// Venue represents a place where shows are hosted.
type Venue struct {
	ID                 uint   `gorm:"primarykey" json:"id"`
	Name               string `gorm:"not null" json:"name"`
	City               string `gorm:"type:varchar(120);not null;index" json:"city"`
	State              string `gorm:"type:varchar(120);not null;index" json:"state"`
	Address            string `gorm:"type:varchar(120)" json:"address"`
	Phone              string `gorm:"type:varchar(120)" json:"phone"`
	ImageLink          string `gorm:"type:varchar(500)" json:"image_link"`
	FacebookLink       string `gorm:"type:varchar(120)" json:"facebook_link"`
	Website            string `gorm:"type:varchar(500)" json:"website"`
	SeekingTalent      bool   `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string `gorm:"type:text" json:"seeking_description"`

	Genres []VenueGenre `gorm:"foreignKey:VenueID" json:"-"`
	Shows  []Show       `gorm:"foreignKey:VenueID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Venue) TableName() string {
	return "venues"
}

// GenreNames returns the venue's genre tags in insertion order.
func (v *Venue) GenreNames() []string {
	names := make([]string, 0, len(v.Genres))
	for _, g := range v.Genres {
		names = append(names, g.Genre)
	}
	return names
}

// VenueGenre is a single genre tag row owned by one venue.
// The association is one-directional: the row holds the owning
// venue's key and nothing points back.
type VenueGenre struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	VenueID uint   `gorm:"not null;index" json:"venue_id"`
	Genre   string `gorm:"type:varchar(120);not null" json:"genre"`
}

func (VenueGenre) TableName() string {
	return "venue_genres"
}
