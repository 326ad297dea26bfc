package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"meetapp/internal/models"
	"meetapp/internal/storage"
)

func (s *Storage) CreateFile(ctx context.Context, name, path, url string) (*models.File, error) {
	const op = "storage.postgres.CreateFile"

	query := `
		INSERT INTO files (name, path, url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	file := models.File{Name: name, Path: path, URL: url}

	err := s.DB.QueryRowContext(ctx, query, name, path, url).Scan(&file.ID, &file.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &file, nil
}

func (s *Storage) FileByID(ctx context.Context, id int64) (*models.File, error) {
	const op = "storage.postgres.FileByID"

	query := `
		SELECT id, name, path, url, created_at
		FROM files
		WHERE id = $1`

	var file models.File
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&file.ID,
		&file.Name,
		&file.Path,
		&file.URL,
		&file.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrFileNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &file, nil
}
