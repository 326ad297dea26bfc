package rejection

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "not found", err: ErrMeetupNotFound, expected: http.StatusBadRequest},
		{name: "invalid user", err: ErrInvalidUser, expected: http.StatusBadRequest},
		{name: "invalid image", err: ErrInvalidImage, expected: http.StatusBadRequest},
		{name: "validation", err: New(ReasonValidationFailed, "bad"), expected: http.StatusBadRequest},
		{name: "not organizer", err: ErrNotOrganizer, expected: http.StatusUnauthorized},
		{name: "self subscription", err: ErrSelfSubscription, expected: http.StatusUnauthorized},
		{name: "already subscribed", err: ErrAlreadySubscribed, expected: http.StatusUnauthorized},
		{name: "past meetup", err: ErrSubscribePast, expected: http.StatusUnauthorized},
		{name: "past date", err: ErrPastDate, expected: http.StatusUnauthorized},
		{name: "conflict", err: Conflict("Go meetup", 3), expected: http.StatusUnauthorized},
		{name: "wrapped", err: fmt.Errorf("op: %w", ErrAlreadySubscribed), expected: http.StatusUnauthorized},
		{name: "storage failure", err: New(ReasonStorageFailure, "disk"), expected: http.StatusInternalServerError},
		{name: "plain error", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, HTTPStatus(tc.err))
		})
	}
}

func TestIsMatchesByReason(t *testing.T) {
	t.Parallel()

	custom := New(ReasonAlreadySubscribed, "some other wording")

	assert.ErrorIs(t, custom, ErrAlreadySubscribed)
	assert.NotErrorIs(t, custom, ErrSelfSubscription)
	assert.ErrorIs(t, Conflict("a", 1), Conflict("b", 2))
}

func TestConflictCarriesMeetup(t *testing.T) {
	t.Parallel()

	err := Conflict("Gophers night", 42)

	assert.Equal(t, KindScheduleConflict, err.Kind())
	assert.Equal(t, int64(42), err.ConflictMeetupID)
	assert.Equal(t, "Gophers night", err.ConflictMeetupTitle)
	assert.Contains(t, err.Error(), "Gophers night (id: 42)")
}

func TestMessageHidesInternalErrors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "failed", Message(errors.New("pq: connection refused"), "failed"))
	assert.Equal(t, "failed", Message(New(ReasonStorageFailure, "disk full"), "failed"))
	assert.Equal(t, ErrDeletePast.Message, Message(ErrDeletePast, "failed"))
}
