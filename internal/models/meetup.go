package models

import "time"

type Meetup struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	UserID      int64     `json:"user_id"`
	BannerID    *int64    `json:"banner_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Organizer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MeetupDetails is a meetup joined with its organizer and, when set, its banner.
type MeetupDetails struct {
	Meetup
	Organizer Organizer `json:"organizer"`
	Banner    *File     `json:"banner,omitempty"`
}
