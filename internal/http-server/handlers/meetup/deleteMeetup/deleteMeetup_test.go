package deleteMeetup

import (
	"errors"
	"meetapp/internal/http-server/handlers/meetup/deleteMeetup/mocks"
	"meetapp/internal/http-server/middleware/auth"
	"meetapp/internal/lib/logger/handlers/slogdiscard"
	"meetapp/internal/rejection"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteMeetupHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		meetupID       string
		mockSetup      func(m *mocks.MeetupDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "Success",
			meetupID: "10",
			mockSetup: func(m *mocks.MeetupDeleter) {
				m.On("Delete", mock.Anything, int64(1), int64(10)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Invalid meetup ID format",
			meetupID:       "ten",
			mockSetup:      func(m *mocks.MeetupDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid meetup id format"}`,
		},
		{
			name:     "Meetup not found",
			meetupID: "10",
			mockSetup: func(m *mocks.MeetupDeleter) {
				m.On("Delete", mock.Anything, int64(1), int64(10)).Return(rejection.ErrMeetupNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"meetup does not exist"}`,
		},
		{
			name:     "Not the organizer",
			meetupID: "10",
			mockSetup: func(m *mocks.MeetupDeleter) {
				m.On("Delete", mock.Anything, int64(1), int64(10)).Return(rejection.ErrNotOrganizer)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"you can only change your own meetups"}`,
		},
		{
			name:     "Past meetup",
			meetupID: "10",
			mockSetup: func(m *mocks.MeetupDeleter) {
				m.On("Delete", mock.Anything, int64(1), int64(10)).Return(rejection.ErrDeletePast)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"you can not delete a past meetup"}`,
		},
		{
			name:     "Internal server error",
			meetupID: "10",
			mockSetup: func(m *mocks.MeetupDeleter) {
				m.On("Delete", mock.Anything, int64(1), int64(10)).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete meetup"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			deleter := mocks.NewMeetupDeleter(t)
			tc.mockSetup(deleter)

			router := chi.NewRouter()
			router.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), 1)))
				})
			})
			router.Delete("/meetup/{id}", New(logger, deleter))

			req, err := http.NewRequest(http.MethodDelete, "/meetup/"+tc.meetupID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

func TestHandlerWithoutURLParam(t *testing.T) {
	t.Parallel()

	handler := New(slogdiscard.NewDiscardLogger(), mocks.NewMeetupDeleter(t))

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), 1))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"meetup id is required"}`, rr.Body.String())
}
