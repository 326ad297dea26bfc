package createUser

import (
	"bytes"
	"errors"
	"meetapp/internal/http-server/handlers/user/createUser/mocks"
	"meetapp/internal/lib/logger/handlers/slogdiscard"
	"meetapp/internal/models"
	"meetapp/internal/rejection"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	validBody := `{"name":"Olivia","email":"olivia@example.com","password":"secret1"}`

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.UserRegistrar)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(m *mocks.UserRegistrar) {
				m.On("Register", mock.Anything, "Olivia", "olivia@example.com", "secret1").
					Return(&models.User{ID: 1, Name: "Olivia", Email: "olivia@example.com", PasswordHash: "$2a$hash"}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"email":"olivia@example.com"`)
				assert.NotContains(t, body, "hash")
			},
		},
		{
			name:           "Invalid email",
			requestBody:    `{"name":"Olivia","email":"olivia","password":"secret1"}`,
			mockSetup:      func(m *mocks.UserRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Email is not a valid email"}`,
		},
		{
			name:           "Short password",
			requestBody:    `{"name":"Olivia","email":"olivia@example.com","password":"123"}`,
			mockSetup:      func(m *mocks.UserRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Password must be at least 6"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{`,
			mockSetup:      func(m *mocks.UserRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Email taken",
			requestBody: validBody,
			mockSetup: func(m *mocks.UserRegistrar) {
				m.On("Register", mock.Anything, "Olivia", "olivia@example.com", "secret1").Return(nil, rejection.ErrEmailTaken)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"user already exists"}`,
		},
		{
			name:        "Internal server error",
			requestBody: validBody,
			mockSetup: func(m *mocks.UserRegistrar) {
				m.On("Register", mock.Anything, "Olivia", "olivia@example.com", "secret1").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to register user"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			registrar := mocks.NewUserRegistrar(t)
			tc.mockSetup(registrar)

			req, err := http.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			New(logger, registrar).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
