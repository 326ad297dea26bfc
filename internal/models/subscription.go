package models

import "time"

type Subscription struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	MeetupID  int64     `json:"meetup_id"`
	CreatedAt time.Time `json:"created_at"`
}

// SubscriptionDetails is a subscription joined with the meetup it points to.
type SubscriptionDetails struct {
	Subscription
	Meetup MeetupDetails `json:"meetup"`
}
