package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past 72 bytes.
const maxLength = 72

var (
	ErrTooLong  = errors.New("password must be 72 bytes or fewer")
	ErrMismatch = errors.New("password does not match")
)

type Hasher struct {
	cost int
}

func New(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plain string) (string, error) {
	const op = "lib.password.Hash"

	if len(plain) > maxLength {
		return "", fmt.Errorf("%s: %w", op, ErrTooLong)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(hashed), nil
}

func (h *Hasher) Compare(hash, plain string) error {
	const op = "lib.password.Compare"

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
