// Package meetup owns the create, edit and delete rules for meetups plus the
// listing reads the API exposes.
package meetup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"meetapp/internal/lib/temporal"
	"meetapp/internal/models"
	"meetapp/internal/rejection"
	"meetapp/internal/storage"
)

const PageSize = 10

// MaxPage is the last page whose offset still fits in an int.
const MaxPage = math.MaxInt/PageSize + 1

type Storage interface {
	FileByID(ctx context.Context, id int64) (*models.File, error)
	CreateMeetup(ctx context.Context, meetup *models.Meetup) error
	MeetupByID(ctx context.Context, id int64) (*models.Meetup, error)
	UpdateMeetup(ctx context.Context, meetup *models.Meetup) error
	DeleteMeetup(ctx context.Context, id int64) error
	MeetupsBetween(ctx context.Context, from, to time.Time, limit, offset int) ([]models.MeetupDetails, error)
	MeetupsByOrganizer(ctx context.Context, userID int64) ([]models.MeetupDetails, error)
}

type CreateInput struct {
	Title       string
	Description string
	Location    string
	Date        time.Time
	BannerID    int64
}

// UpdateInput carries only the fields the caller wants changed.
type UpdateInput struct {
	Title       *string
	Description *string
	Location    *string
	Date        *time.Time
	BannerID    *int64
}

type Service struct {
	log     *slog.Logger
	storage Storage
	clock   temporal.Clock
	loc     *time.Location
}

func New(log *slog.Logger, storage Storage, clock temporal.Clock, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		log:     log,
		storage: storage,
		clock:   clock,
		loc:     loc,
	}
}

func (s *Service) Create(ctx context.Context, organizerID int64, in CreateInput) (*models.Meetup, error) {
	const op = "services.meetup.Create"

	if err := s.checkBanner(ctx, in.BannerID); err != nil {
		return nil, err
	}

	if temporal.IsPast(s.clock(), in.Date) {
		return nil, rejection.ErrPastDate
	}

	bannerID := in.BannerID
	meetup := &models.Meetup{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Date:        in.Date,
		UserID:      organizerID,
		BannerID:    &bannerID,
	}

	if err := s.storage.CreateMeetup(ctx, meetup); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("meetup created",
		slog.String("op", op),
		slog.Int64("meetup_id", meetup.ID),
		slog.Int64("organizer_id", organizerID),
	)

	return meetup, nil
}

// Update applies in to the organizer's meetup. A meetup that does not exist
// is reported the same way as one owned by somebody else.
func (s *Service) Update(ctx context.Context, organizerID, meetupID int64, in UpdateInput) (*models.Meetup, error) {
	const op = "services.meetup.Update"

	meetup, err := s.storage.MeetupByID(ctx, meetupID)
	if err != nil {
		if errors.Is(err, storage.ErrMeetupNotFound) {
			return nil, rejection.ErrNotOrganizer
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if meetup.UserID != organizerID {
		return nil, rejection.ErrNotOrganizer
	}

	now := s.clock()
	if temporal.IsPast(now, meetup.Date) {
		return nil, rejection.ErrEditPast
	}
	if in.Date != nil && temporal.IsPast(now, *in.Date) {
		return nil, rejection.ErrPastDate
	}
	if in.BannerID != nil {
		if err := s.checkBanner(ctx, *in.BannerID); err != nil {
			return nil, err
		}
	}

	if in.Title != nil {
		meetup.Title = *in.Title
	}
	if in.Description != nil {
		meetup.Description = *in.Description
	}
	if in.Location != nil {
		meetup.Location = *in.Location
	}
	if in.Date != nil {
		meetup.Date = *in.Date
	}
	if in.BannerID != nil {
		bannerID := *in.BannerID
		meetup.BannerID = &bannerID
	}

	if err := s.storage.UpdateMeetup(ctx, meetup); err != nil {
		if errors.Is(err, storage.ErrMeetupNotFound) {
			return nil, rejection.ErrNotOrganizer
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("meetup updated", slog.String("op", op), slog.Int64("meetup_id", meetupID))

	return meetup, nil
}

func (s *Service) Delete(ctx context.Context, organizerID, meetupID int64) error {
	const op = "services.meetup.Delete"

	meetup, err := s.storage.MeetupByID(ctx, meetupID)
	if err != nil {
		if errors.Is(err, storage.ErrMeetupNotFound) {
			return rejection.ErrMeetupNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if meetup.UserID != organizerID {
		return rejection.ErrNotOrganizer
	}
	if temporal.IsPast(s.clock(), meetup.Date) {
		return rejection.ErrDeletePast
	}

	if err := s.storage.DeleteMeetup(ctx, meetupID); err != nil {
		if errors.Is(err, storage.ErrMeetupNotFound) {
			return rejection.ErrMeetupNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("meetup deleted", slog.String("op", op), slog.Int64("meetup_id", meetupID))

	return nil
}

// ListByDay returns one page of the meetups on day's calendar date, read in
// the service location. Pages start at 1.
func (s *Service) ListByDay(ctx context.Context, day time.Time, page int) ([]models.MeetupDetails, error) {
	const op = "services.meetup.ListByDay"

	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		return []models.MeetupDetails{}, nil
	}

	from, to := temporal.DayBounds(day, s.loc)

	meetups, err := s.storage.MeetupsBetween(ctx, from, to, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return meetups, nil
}

func (s *Service) Organizing(ctx context.Context, organizerID int64) ([]models.MeetupDetails, error) {
	const op = "services.meetup.Organizing"

	meetups, err := s.storage.MeetupsByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return meetups, nil
}

func (s *Service) checkBanner(ctx context.Context, bannerID int64) error {
	const op = "services.meetup.checkBanner"

	if _, err := s.storage.FileByID(ctx, bannerID); err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return rejection.ErrInvalidImage
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
