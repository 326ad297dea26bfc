// Package upload stores meetup banners on disk and records them as files.
package upload

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/models"
	"meetapp/internal/rejection"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// DefaultMaxSize is 5 MB.
const DefaultMaxSize int64 = 5 * 1000 * 1000

var (
	allowedExtensions = mapset.NewSet(".png", ".jpg", ".jpeg", ".gif")
	allowedTypes      = mapset.NewSet("image/png", "image/jpeg", "image/gif")

	ErrTooLarge        = rejection.New(rejection.ReasonValidationFailed, "file is too large")
	ErrUnsupportedType = rejection.New(rejection.ReasonUnsupportedMedia, "invalid file type")
)

type FileSaver interface {
	CreateFile(ctx context.Context, name, path, url string) (*models.File, error)
}

type Config struct {
	Dir     string
	BaseURL string
	MaxSize int64
}

type Service struct {
	log   *slog.Logger
	cfg   Config
	files FileSaver
}

// New makes sure the upload directory exists.
func New(log *slog.Logger, cfg Config, files FileSaver) (*Service, error) {
	const op = "upload.New"

	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultMaxSize
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Service{log: log, cfg: cfg, files: files}, nil
}

func (s *Service) Dir() string {
	return s.cfg.Dir
}

func (s *Service) MaxSize() int64 {
	return s.cfg.MaxSize
}

// Save checks that r holds an allowed image no bigger than the configured
// limit, writes it under a random name and records it.
func (s *Service) Save(ctx context.Context, originalName string, r io.Reader) (*models.File, error) {
	const op = "upload.Save"

	log := s.log.With(slog.String("op", op), slog.String("original_name", originalName))

	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions.Contains(ext) {
		return nil, ErrUnsupportedType
	}

	data, err := io.ReadAll(io.LimitReader(r, s.cfg.MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%s: read upload: %w", op, err)
	}
	if int64(len(data)) > s.cfg.MaxSize {
		return nil, ErrTooLarge
	}

	if mtype := mimetype.Detect(data); !allowedTypes.Contains(mtype.String()) {
		log.Info("rejected upload", slog.String("mime", mtype.String()))
		return nil, ErrUnsupportedType
	}

	stored := strings.ReplaceAll(uuid.NewString(), "-", "") + ext
	fullPath := filepath.Join(s.cfg.Dir, stored)

	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("%s: write file: %w", op, err)
	}

	file, err := s.files.CreateFile(ctx, originalName, stored, s.cfg.BaseURL+"/files/"+stored)
	if err != nil {
		if rmErr := os.Remove(fullPath); rmErr != nil {
			log.Error("failed to remove orphaned upload", sl.Err(rmErr))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("file uploaded", slog.Int64("file_id", file.ID), slog.String("path", stored))

	return file, nil
}
