package subscription

import (
	"time"

	"meetapp/internal/lib/temporal"
	"meetapp/internal/models"
	"meetapp/internal/rejection"
)

// CheckEligibility decides whether user may subscribe to meetup. A nil meetup
// or user means the lookup found nothing. The checks run in a fixed order and
// the first failure wins, so the same request always gets the same reason.
// existing is scanned in order and the first same-hour meetup is reported.
func CheckEligibility(
	now time.Time,
	loc *time.Location,
	user *models.User,
	meetup *models.Meetup,
	existing []models.SubscriptionDetails,
) error {
	if meetup == nil {
		return rejection.ErrMeetupNotFound
	}
	if user == nil {
		return rejection.ErrInvalidUser
	}
	if meetup.UserID == user.ID {
		return rejection.ErrSelfSubscription
	}
	if temporal.IsPast(now, meetup.Date) {
		return rejection.ErrSubscribePast
	}

	for _, sub := range existing {
		if sub.MeetupID == meetup.ID {
			return rejection.ErrAlreadySubscribed
		}
	}

	target := meetup.Date.In(loc)
	for _, sub := range existing {
		if temporal.SameHourSlot(target, sub.Meetup.Date) {
			return rejection.Conflict(sub.Meetup.Title, sub.Meetup.ID)
		}
	}

	return nil
}
