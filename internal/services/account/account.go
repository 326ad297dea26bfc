// Package account registers users, edits their profile and opens sessions.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"meetapp/internal/lib/password"
	"meetapp/internal/models"
	"meetapp/internal/rejection"
	"meetapp/internal/storage"
)

type Storage interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error)
	UserByID(ctx context.Context, id int64) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// ProfileInput carries only the fields the user wants changed. Password
// needs OldPassword to match the stored one.
type ProfileInput struct {
	Name        *string
	Email       *string
	OldPassword *string
	Password    *string
}

type Service struct {
	log     *slog.Logger
	storage Storage
	hasher  PasswordHasher
	tokens  TokenIssuer
}

func New(log *slog.Logger, storage Storage, hasher PasswordHasher, tokens TokenIssuer) *Service {
	return &Service{
		log:     log,
		storage: storage,
		hasher:  hasher,
		tokens:  tokens,
	}
}

func (s *Service) Register(ctx context.Context, name, email, plain string) (*models.User, error) {
	const op = "services.account.Register"

	hash, err := s.hash(plain)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.CreateUser(ctx, name, email, hash)
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			return nil, rejection.ErrEmailTaken
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user registered", slog.String("op", op), slog.Int64("user_id", user.ID))

	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, in ProfileInput) (*models.User, error) {
	const op = "services.account.UpdateProfile"

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, rejection.ErrInvalidUser
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if in.Email != nil && *in.Email != user.Email {
		_, err := s.storage.UserByEmail(ctx, *in.Email)
		switch {
		case err == nil:
			return nil, rejection.ErrEmailTaken
		case !errors.Is(err, storage.ErrUserNotFound):
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		user.Email = *in.Email
	}

	if in.Password != nil {
		if in.OldPassword == nil {
			return nil, rejection.New(rejection.ReasonValidationFailed, "field OldPassword is a required field")
		}
		if err := s.compare(user.PasswordHash, *in.OldPassword); err != nil {
			return nil, err
		}

		hash, err := s.hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if in.Name != nil {
		user.Name = *in.Name
	}

	if err := s.storage.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			return nil, rejection.ErrEmailTaken
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("profile updated", slog.String("op", op), slog.Int64("user_id", userID))

	return user, nil
}

// Login checks the credentials and returns the user with a fresh token.
func (s *Service) Login(ctx context.Context, email, plain string) (*models.User, string, error) {
	const op = "services.account.Login"

	user, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, "", rejection.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	if err := s.compare(user.PasswordHash, plain); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	return user, token, nil
}

func (s *Service) hash(plain string) (string, error) {
	const op = "services.account.hash"

	hash, err := s.hasher.Hash(plain)
	if err != nil {
		if errors.Is(err, password.ErrTooLong) {
			return "", rejection.New(rejection.ReasonValidationFailed, password.ErrTooLong.Error())
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return hash, nil
}

func (s *Service) compare(hash, plain string) error {
	const op = "services.account.compare"

	if err := s.hasher.Compare(hash, plain); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return rejection.ErrInvalidCredentials
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
