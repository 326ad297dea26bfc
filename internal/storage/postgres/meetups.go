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

const meetupColumns = `m.id, m.title, m.description, m.location, m.date, m.user_id, m.banner_id, m.created_at, m.updated_at`

const meetupDetailsSelect = `
	SELECT ` + meetupColumns + `,
		u.id, u.name,
		f.id, f.name, f.path, f.url, f.created_at
	FROM meetups m
	JOIN users u ON u.id = m.user_id
	LEFT JOIN files f ON f.id = m.banner_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeetup(row rowScanner) (*models.Meetup, error) {
	var (
		m        models.Meetup
		bannerID sql.NullInt64
	)

	err := row.Scan(
		&m.ID,
		&m.Title,
		&m.Description,
		&m.Location,
		&m.Date,
		&m.UserID,
		&bannerID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if bannerID.Valid {
		m.BannerID = &bannerID.Int64
	}

	return &m, nil
}

// scanMeetupDetails reads a row produced by meetupDetailsSelect, optionally
// preceded by extra columns.
func scanMeetupDetails(row rowScanner, extra ...any) (*models.MeetupDetails, error) {
	var (
		d          models.MeetupDetails
		bannerID   sql.NullInt64
		fileID     sql.NullInt64
		fileName   sql.NullString
		filePath   sql.NullString
		fileURL    sql.NullString
		fileCreate sql.NullTime
	)

	dest := append(extra,
		&d.ID,
		&d.Title,
		&d.Description,
		&d.Location,
		&d.Date,
		&d.UserID,
		&bannerID,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.Organizer.ID,
		&d.Organizer.Name,
		&fileID,
		&fileName,
		&filePath,
		&fileURL,
		&fileCreate,
	)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if bannerID.Valid {
		d.BannerID = &bannerID.Int64
	}

	if fileID.Valid {
		d.Banner = &models.File{
			ID:        fileID.Int64,
			Name:      fileName.String,
			Path:      filePath.String,
			URL:       fileURL.String,
			CreatedAt: fileCreate.Time,
		}
	}

	return &d, nil
}

func (s *Storage) CreateMeetup(ctx context.Context, meetup *models.Meetup) error {
	const op = "storage.postgres.CreateMeetup"

	query := `
		INSERT INTO meetups (title, description, location, date, user_id, banner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := s.DB.QueryRowContext(ctx, query,
		meetup.Title,
		meetup.Description,
		meetup.Location,
		meetup.Date,
		meetup.UserID,
		meetup.BannerID,
	).Scan(&meetup.ID, &meetup.CreatedAt, &meetup.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) MeetupByID(ctx context.Context, id int64) (*models.Meetup, error) {
	const op = "storage.postgres.MeetupByID"

	query := `SELECT ` + meetupColumns + ` FROM meetups m WHERE m.id = $1`

	meetup, err := scanMeetup(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrMeetupNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return meetup, nil
}

func (s *Storage) UpdateMeetup(ctx context.Context, meetup *models.Meetup) error {
	const op = "storage.postgres.UpdateMeetup"

	query := `
		UPDATE meetups
		SET title = $1, description = $2, location = $3, date = $4, banner_id = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	err := s.DB.QueryRowContext(ctx, query,
		meetup.Title,
		meetup.Description,
		meetup.Location,
		meetup.Date,
		meetup.BannerID,
		meetup.ID,
	).Scan(&meetup.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrMeetupNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteMeetup(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteMeetup"

	result, err := s.DB.ExecContext(ctx, `DELETE FROM meetups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrMeetupNotFound)
	}

	return nil
}

func (s *Storage) MeetupsBetween(ctx context.Context, from, to time.Time, limit, offset int) ([]models.MeetupDetails, error) {
	const op = "storage.postgres.MeetupsBetween"

	query := meetupDetailsSelect + `
		WHERE m.date >= $1 AND m.date < $2
		ORDER BY m.date ASC, m.id ASC
		LIMIT $3 OFFSET $4`

	return s.queryMeetupDetails(ctx, op, query, from, to, limit, offset)
}

func (s *Storage) MeetupsByOrganizer(ctx context.Context, userID int64) ([]models.MeetupDetails, error) {
	const op = "storage.postgres.MeetupsByOrganizer"

	query := meetupDetailsSelect + `
		WHERE m.user_id = $1
		ORDER BY m.date ASC, m.id ASC`

	return s.queryMeetupDetails(ctx, op, query, userID)
}

func (s *Storage) queryMeetupDetails(ctx context.Context, op, query string, args ...any) ([]models.MeetupDetails, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	meetups := make([]models.MeetupDetails, 0)
	for rows.Next() {
		d, err := scanMeetupDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan meetup: %w", op, err)
		}
		meetups = append(meetups, *d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating meetups: %w", op, err)
	}

	return meetups, nil
}
