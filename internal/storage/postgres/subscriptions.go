package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"meetapp/internal/models"
	"meetapp/internal/storage"
)

const subscriptionDetailsSelect = `
	SELECT s.id, s.user_id, s.meetup_id, s.created_at, ` + meetupColumns + `,
		u.id, u.name,
		f.id, f.name, f.path, f.url, f.created_at
	FROM subscriptions s
	JOIN meetups m ON m.id = s.meetup_id
	JOIN users u ON u.id = m.user_id
	LEFT JOIN files f ON f.id = m.banner_id`

func scanSubscriptionDetails(row rowScanner) (*models.SubscriptionDetails, error) {
	var sub models.Subscription

	meetup, err := scanMeetupDetails(row, &sub.ID, &sub.UserID, &sub.MeetupID, &sub.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &models.SubscriptionDetails{
		Subscription: sub,
		Meetup:       *meetup,
	}, nil
}

// CreateSubscription relies on the (user_id, meetup_id) unique key to catch
// concurrent duplicates that slipped past the eligibility check.
func (s *Storage) CreateSubscription(ctx context.Context, userID, meetupID int64) (*models.Subscription, error) {
	const op = "storage.postgres.CreateSubscription"

	query := `
		INSERT INTO subscriptions (user_id, meetup_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	sub := models.Subscription{UserID: userID, MeetupID: meetupID}

	err := s.DB.QueryRowContext(ctx, query, userID, meetupID).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrSubscriptionExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &sub, nil
}

func (s *Storage) SubscriptionByID(ctx context.Context, id int64) (*models.SubscriptionDetails, error) {
	const op = "storage.postgres.SubscriptionByID"

	query := subscriptionDetailsSelect + ` WHERE s.id = $1`

	sub, err := scanSubscriptionDetails(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrSubscriptionNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sub, nil
}

func (s *Storage) DeleteSubscription(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteSubscription"

	result, err := s.DB.ExecContext(ctx, `DELETE FROM subscriptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrSubscriptionNotFound)
	}

	return nil
}

// SubscriptionsByUser returns every subscription the user holds, past ones
// included, ordered by meetup date.
func (s *Storage) SubscriptionsByUser(ctx context.Context, userID int64) ([]models.SubscriptionDetails, error) {
	const op = "storage.postgres.SubscriptionsByUser"

	query := subscriptionDetailsSelect + `
		WHERE s.user_id = $1
		ORDER BY m.date ASC, s.id ASC`

	return s.querySubscriptionDetails(ctx, op, query, userID)
}

func (s *Storage) UpcomingSubscriptions(ctx context.Context, userID int64, after time.Time) ([]models.SubscriptionDetails, error) {
	const op = "storage.postgres.UpcomingSubscriptions"

	query := subscriptionDetailsSelect + `
		WHERE s.user_id = $1 AND m.date > $2
		ORDER BY m.date ASC, s.id ASC`

	return s.querySubscriptionDetails(ctx, op, query, userID, after)
}

func (s *Storage) querySubscriptionDetails(ctx context.Context, op, query string, args ...any) ([]models.SubscriptionDetails, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	subs := make([]models.SubscriptionDetails, 0)
	for rows.Next() {
		sub, err := scanSubscriptionDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan subscription: %w", op, err)
		}
		subs = append(subs, *sub)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating subscriptions: %w", op, err)
	}

	return subs, nil
}
