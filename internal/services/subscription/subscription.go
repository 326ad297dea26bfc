// Package subscription runs the rules for joining and leaving meetups.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/lib/temporal"
	"meetapp/internal/mail"
	"meetapp/internal/models"
	"meetapp/internal/rejection"
	"meetapp/internal/storage"
)

type Storage interface {
	UserByID(ctx context.Context, id int64) (*models.User, error)
	MeetupByID(ctx context.Context, id int64) (*models.Meetup, error)
	SubscriptionsByUser(ctx context.Context, userID int64) ([]models.SubscriptionDetails, error)
	CreateSubscription(ctx context.Context, userID, meetupID int64) (*models.Subscription, error)
	SubscriptionByID(ctx context.Context, id int64) (*models.SubscriptionDetails, error)
	DeleteSubscription(ctx context.Context, id int64) error
	UpcomingSubscriptions(ctx context.Context, userID int64, after time.Time) ([]models.SubscriptionDetails, error)
}

type Dispatcher interface {
	Enqueue(ctx context.Context, kind string, payload any) error
}

type Service struct {
	log        *slog.Logger
	storage    Storage
	dispatcher Dispatcher
	clock      temporal.Clock
	loc        *time.Location
}

func New(log *slog.Logger, storage Storage, dispatcher Dispatcher, clock temporal.Clock, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		log:        log,
		storage:    storage,
		dispatcher: dispatcher,
		clock:      clock,
		loc:        loc,
	}
}

// Subscribe creates the subscription and queues the organizer notification.
// A failed enqueue is logged and does not undo the subscription.
func (s *Service) Subscribe(ctx context.Context, userID, meetupID int64) (*models.Subscription, error) {
	const op = "services.subscription.Subscribe"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("user_id", userID),
		slog.Int64("meetup_id", meetupID),
	)

	meetup, err := s.storage.MeetupByID(ctx, meetupID)
	if err != nil && !errors.Is(err, storage.ErrMeetupNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrUserNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var existing []models.SubscriptionDetails
	if meetup != nil && user != nil {
		existing, err = s.storage.SubscriptionsByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := CheckEligibility(s.clock(), s.loc, user, meetup, existing); err != nil {
		return nil, err
	}

	sub, err := s.storage.CreateSubscription(ctx, userID, meetupID)
	if err != nil {
		if errors.Is(err, storage.ErrSubscriptionExists) {
			return nil, rejection.ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = s.dispatcher.Enqueue(ctx, mail.SubscriptionMailKey, mail.SubscriptionPayload{
		OrganizerID:     meetup.UserID,
		MeetupTitle:     meetup.Title,
		Description:     meetup.Description,
		SubscriberName:  user.Name,
		SubscriberEmail: user.Email,
	})
	if err != nil {
		log.Warn("failed to enqueue subscription mail", sl.Err(err))
	}

	log.Info("subscription created", slog.Int64("subscription_id", sub.ID))

	return sub, nil
}

func (s *Service) Cancel(ctx context.Context, userID, subscriptionID int64) error {
	const op = "services.subscription.Cancel"

	sub, err := s.storage.SubscriptionByID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, storage.ErrSubscriptionNotFound) {
			return rejection.ErrSubscriptionNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if sub.UserID != userID {
		return rejection.ErrNotSubscriber
	}
	if temporal.IsPast(s.clock(), sub.Meetup.Date) {
		return rejection.ErrCancelPast
	}

	if err := s.storage.DeleteSubscription(ctx, subscriptionID); err != nil {
		if errors.Is(err, storage.ErrSubscriptionNotFound) {
			return rejection.ErrSubscriptionNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("subscription cancelled",
		slog.String("op", op),
		slog.Int64("user_id", userID),
		slog.Int64("subscription_id", subscriptionID),
	)

	return nil
}

// Upcoming lists the user's subscriptions whose meetup has not started yet.
func (s *Service) Upcoming(ctx context.Context, userID int64) ([]models.SubscriptionDetails, error) {
	const op = "services.subscription.Upcoming"

	subs, err := s.storage.UpcomingSubscriptions(ctx, userID, s.clock())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return subs, nil
}
