package model

import (
	"time"
)

// Show links one artist to one venue at a start time.
// Shows are created once and never edited or deleted.
type Show struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	VenueID   uint      `gorm:"not null;index" json:"venue_id"`
	ArtistID  uint      `gorm:"not null;index" json:"artist_id"`
	StartTime time.Time `gorm:"not null" json:"start_time"`

	Venue  Venue  `gorm:"foreignKey:VenueID" json:"-"`
	Artist Artist `gorm:"foreignKey:ArtistID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (Show) TableName() string {
	return "shows"
}

// ClassifyShows splits shows into past and upcoming relative to now.
// A show starting exactly at now counts as upcoming. Past/upcoming is
// never stored; callers re-evaluate against the clock on every read.
func ClassifyShows(shows []Show, now time.Time) (past, upcoming []Show) {
	for _, show := range shows {
		if show.StartTime.Before(now) {
			past = append(past, show)
		} else {
			upcoming = append(upcoming, show)
		}
	}
	return past, upcoming
}

// CountUpcoming returns how many of the given shows start at or after now.
func CountUpcoming(shows []Show, now time.Time) int {
	_, upcoming := ClassifyShows(shows, now)
	return len(upcoming)
}
