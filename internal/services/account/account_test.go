package account

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"

	"meetapp/internal/lib/logger/handlers/slogdiscard"
	"meetapp/internal/lib/password"
	"meetapp/internal/models"
	"meetapp/internal/rejection"
	"meetapp/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeStorage struct {
	mu     sync.Mutex
	users  map[int64]*models.User
	nextID int64
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{users: map[int64]*models.User{}}
}

func (f *fakeStorage) CreateUser(_ context.Context, name, email, hash string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email {
			return nil, storage.ErrUserExists
		}
	}
	f.nextID++
	u := &models.User{ID: f.nextID, Name: name, Email: email, PasswordHash: hash}
	f.users[u.ID] = u
	cp := *u
	return &cp, nil
}

func (f *fakeStorage) UserByID(_ context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStorage) UserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (f *fakeStorage) UpdateUser(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[user.ID]; !ok {
		return storage.ErrUserNotFound
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

type stubTokens struct{}

func (stubTokens) Issue(userID int64) (string, error) {
	return "token-" + strings.Repeat("x", int(userID)), nil
}

func newTestService(st *fakeStorage) *Service {
	return New(slogdiscard.NewDiscardLogger(), st, password.New(bcrypt.MinCost), stubTokens{})
}

func ptr[T any](v T) *T {
	return &v
}

func TestRegister(t *testing.T) {
	t.Parallel()

	st := newFakeStorage()
	svc := newTestService(st)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Olivia", "olivia@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Olivia", user.Name)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	_, err = svc.Register(ctx, "Other", "olivia@example.com", "secret2")
	assert.ErrorIs(t, err, rejection.ErrEmailTaken)
	assert.Equal(t, http.StatusBadRequest, rejection.HTTPStatus(err))

	_, err = svc.Register(ctx, "Long", "long@example.com", strings.Repeat("p", 73))
	assert.Equal(t, http.StatusBadRequest, rejection.HTTPStatus(err))
}

func TestLogin(t *testing.T) {
	t.Parallel()

	st := newFakeStorage()
	svc := newTestService(st)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Olivia", "olivia@example.com", "secret1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "success", email: "olivia@example.com", password: "secret1"},
		{name: "wrong password", email: "olivia@example.com", password: "nope", wantErr: rejection.ErrInvalidCredentials},
		{name: "unknown email", email: "ghost@example.com", password: "secret1", wantErr: rejection.ErrInvalidCredentials},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			user, token, err := svc.Login(ctx, tc.email, tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, http.StatusUnauthorized, rejection.HTTPStatus(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, registered.ID, user.ID)
			assert.Equal(t, "token-x", token)
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   ProfileInput
		wantErr error
		check   func(t *testing.T, u *models.User, svc *Service)
	}{
		{
			name:  "rename only",
			input: ProfileInput{Name: ptr("Liv")},
			check: func(t *testing.T, u *models.User, _ *Service) {
				assert.Equal(t, "Liv", u.Name)
				assert.Equal(t, "olivia@example.com", u.Email)
			},
		},
		{
			name:  "same email is not a conflict",
			input: ProfileInput{Email: ptr("olivia@example.com")},
		},
		{
			name:    "email taken by another user",
			input:   ProfileInput{Email: ptr("sam@example.com")},
			wantErr: rejection.ErrEmailTaken,
		},
		{
			name:    "wrong old password",
			input:   ProfileInput{OldPassword: ptr("wrong"), Password: ptr("newpass")},
			wantErr: rejection.ErrInvalidCredentials,
		},
		{
			name:    "password without old password",
			input:   ProfileInput{Password: ptr("newpass")},
			wantErr: rejection.New(rejection.ReasonValidationFailed, ""),
		},
		{
			name:  "password change",
			input: ProfileInput{OldPassword: ptr("secret1"), Password: ptr("newpass")},
			check: func(t *testing.T, u *models.User, svc *Service) {
				_, _, err := svc.Login(context.Background(), "olivia@example.com", "newpass")
				assert.NoError(t, err)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			st := newFakeStorage()
			svc := newTestService(st)
			ctx := context.Background()
			olivia, err := svc.Register(ctx, "Olivia", "olivia@example.com", "secret1")
			require.NoError(t, err)
			_, err = svc.Register(ctx, "Sam", "sam@example.com", "secret2")
			require.NoError(t, err)

			user, err := svc.UpdateProfile(ctx, olivia.ID, tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, user, svc)
			}
		})
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	t.Parallel()

	_, err := newTestService(newFakeStorage()).UpdateProfile(context.Background(), 42, ProfileInput{Name: ptr("x")})
	assert.ErrorIs(t, err, rejection.ErrInvalidUser)
}
