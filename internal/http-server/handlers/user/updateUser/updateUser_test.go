package updateUser

import (
	"bytes"
	"errors"
	"meetapp/internal/http-server/handlers/user/updateUser/mocks"
	"meetapp/internal/http-server/middleware/auth"
	"meetapp/internal/lib/logger/handlers/slogdiscard"
	"meetapp/internal/models"
	"meetapp/internal/rejection"
	"meetapp/internal/services/account"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func passwordChange(old, next string) interface{} {
	return mock.MatchedBy(func(in account.ProfileInput) bool {
		return in.OldPassword != nil && *in.OldPassword == old &&
			in.Password != nil && *in.Password == next &&
			in.Name == nil && in.Email == nil
	})
}

func TestUpdateUserHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.ProfileUpdater)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Rename",
			requestBody: `{"name":"Liv"}`,
			mockSetup: func(m *mocks.ProfileUpdater) {
				m.On("UpdateProfile", mock.Anything, int64(1), mock.MatchedBy(func(in account.ProfileInput) bool {
					return in.Name != nil && *in.Name == "Liv" && in.Password == nil
				})).Return(&models.User{ID: 1, Name: "Liv", Email: "olivia@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","user":{"id":1,"name":"Liv","email":"olivia@example.com",` +
				`"created_at":"0001-01-01T00:00:00Z","updated_at":"0001-01-01T00:00:00Z"}}`,
		},
		{
			name:        "Password change",
			requestBody: `{"old_password":"secret1","password":"newpass","confirm_password":"newpass"}`,
			mockSetup: func(m *mocks.ProfileUpdater) {
				m.On("UpdateProfile", mock.Anything, int64(1), passwordChange("secret1", "newpass")).
					Return(&models.User{ID: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","user":{"id":1,"name":"","email":"",` +
				`"created_at":"0001-01-01T00:00:00Z","updated_at":"0001-01-01T00:00:00Z"}}`,
		},
		{
			name:           "Confirmation mismatch",
			requestBody:    `{"old_password":"secret1","password":"newpass","confirm_password":"other1"}`,
			mockSetup:      func(m *mocks.ProfileUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field ConfirmPassword must match Password"}`,
		},
		{
			name:           "Invalid email",
			requestBody:    `{"email":"nope"}`,
			mockSetup:      func(m *mocks.ProfileUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Email is not a valid email"}`,
		},
		{
			name:        "Wrong old password",
			requestBody: `{"old_password":"wrong1","password":"newpass","confirm_password":"newpass"}`,
			mockSetup: func(m *mocks.ProfileUpdater) {
				m.On("UpdateProfile", mock.Anything, int64(1), passwordChange("wrong1", "newpass")).
					Return(nil, rejection.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid email or password"}`,
		},
		{
			name:        "Internal server error",
			requestBody: `{"name":"Liv"}`,
			mockSetup: func(m *mocks.ProfileUpdater) {
				m.On("UpdateProfile", mock.Anything, int64(1), mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update user"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			updater := mocks.NewProfileUpdater(t)
			tc.mockSetup(updater)

			req, err := http.NewRequest(http.MethodPut, "/users", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			req = req.WithContext(auth.WithUserID(req.Context(), 1))

			rr := httptest.NewRecorder()
			New(logger, updater).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
