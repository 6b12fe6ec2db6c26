package model

import (
	"time"
)

// Artist represents a performer that can be booked for shows.
type Artist struct {
	ID                 uint   `gorm:"primarykey" json:"id"`
	Name               string `gorm:"not null" json:"name"`
	City               string `gorm:"type:varchar(120);not null;index" json:"city"`
	State              string `gorm:"type:varchar(120);not null;index" json:"state"`
	Phone              string `gorm:"type:varchar(120)" json:"phone"`
	ImageLink          string `gorm:"type:varchar(500)" json:"image_link"`
	FacebookLink       string `gorm:"type:varchar(120)" json:"facebook_link"`
	Website            string `gorm:"type:varchar(120)" json:"website"`
	SeekingVenue       bool   `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string `gorm:"type:text" json:"seeking_description"`

	Genres []ArtistGenre `gorm:"foreignKey:ArtistID" json:"-"`
	Shows  []Show        `gorm:"foreignKey:ArtistID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Artist) TableName() string {
	return "artists"
}

// GenreNames returns the artist's genre tags in insertion order.
func (a *Artist) GenreNames() []string {
	names := make([]string, 0, len(a.Genres))
	for _, g := range a.Genres {
		names = append(names, g.Genre)
	}
	return names
}

// ArtistGenre is a single genre tag row owned by one artist.
type ArtistGenre struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	ArtistID uint   `gorm:"not null;index" json:"artist_id"`
	Genre    string `gorm:"type:varchar(120);not null" json:"genre"`
}

func (ArtistGenre) TableName() string {
	return "artist_genres"
}
