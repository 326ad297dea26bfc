// Package rejection holds the typed business-rule failures returned by the
// meetup, subscription and account services.
package rejection

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindAuthorization
	KindTemporal
	KindScheduleConflict
	KindInfrastructure
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindNotFound:
		return "NotFoundError"
	case KindAuthorization:
		return "AuthorizationError"
	case KindTemporal:
		return "TemporalConstraintError"
	case KindScheduleConflict:
		return "ScheduleConflictError"
	case KindInfrastructure:
		return "InfrastructureError"
	default:
		return "UnknownError"
	}
}

type Reason string

const (
	ReasonValidationFailed          Reason = "ValidationFailed"
	ReasonNotFound                  Reason = "NotFound"
	ReasonInvalidUser               Reason = "InvalidUser"
	ReasonInvalidImage              Reason = "InvalidImage"
	ReasonEmailTaken                Reason = "EmailTaken"
	ReasonUnsupportedMedia          Reason = "UnsupportedMedia"
	ReasonUnauthorized              Reason = "Unauthorized"
	ReasonInvalidCredentials        Reason = "InvalidCredentials"
	ReasonSelfSubscriptionForbidden Reason = "SelfSubscriptionForbidden"
	ReasonAlreadySubscribed         Reason = "AlreadySubscribed"
	ReasonEventAlreadyOccurred      Reason = "EventAlreadyOccurred"
	ReasonPastDateForbidden         Reason = "PastDateForbidden"
	ReasonScheduleConflict          Reason = "ScheduleConflict"
	ReasonStorageFailure            Reason = "StorageFailure"
)

// Error is a rejected operation. Two errors match under errors.Is when
// their reasons are equal, so the package-level values below work as
// sentinels even when a caller builds its own message.
type Error struct {
	Reason  Reason
	Message string

	// Set only for ReasonScheduleConflict.
	ConflictMeetupID    int64
	ConflictMeetupTitle string
}

func New(reason Reason, msg string) *Error {
	return &Error{Reason: reason, Message: msg}
}

func Conflict(meetupTitle string, meetupID int64) *Error {
	return &Error{
		Reason:              ReasonScheduleConflict,
		Message:             fmt.Sprintf("you are already subscribed to a meetup in the same hour: %s (id: %d)", meetupTitle, meetupID),
		ConflictMeetupID:    meetupID,
		ConflictMeetupTitle: meetupTitle,
	}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Reason == t.Reason
}

func (e *Error) Kind() Kind {
	switch e.Reason {
	case ReasonValidationFailed, ReasonEmailTaken, ReasonUnsupportedMedia:
		return KindValidation
	case ReasonNotFound, ReasonInvalidUser, ReasonInvalidImage:
		return KindNotFound
	case ReasonUnauthorized, ReasonInvalidCredentials, ReasonSelfSubscriptionForbidden, ReasonAlreadySubscribed:
		return KindAuthorization
	case ReasonEventAlreadyOccurred, ReasonPastDateForbidden:
		return KindTemporal
	case ReasonScheduleConflict:
		return KindScheduleConflict
	default:
		return KindInfrastructure
	}
}

var (
	ErrMeetupNotFound       = New(ReasonNotFound, "meetup does not exist")
	ErrSubscriptionNotFound = New(ReasonNotFound, "subscription does not exist")
	ErrInvalidUser          = New(ReasonInvalidUser, "invalid user")
	ErrInvalidImage         = New(ReasonInvalidImage, "invalid image")
	ErrEmailTaken           = New(ReasonEmailTaken, "user already exists")
	ErrInvalidCredentials   = New(ReasonInvalidCredentials, "invalid email or password")
	ErrSelfSubscription     = New(ReasonSelfSubscriptionForbidden, "you can not subscribe to your own meetup")
	ErrAlreadySubscribed    = New(ReasonAlreadySubscribed, "you have already subscribed to this meetup")
	ErrSubscribePast        = New(ReasonEventAlreadyOccurred, "you can not subscribe to a past meetup")
	ErrCancelPast           = New(ReasonEventAlreadyOccurred, "you can not cancel a subscription to a past meetup")
	ErrEditPast             = New(ReasonEventAlreadyOccurred, "you can not edit a past meetup")
	ErrDeletePast           = New(ReasonEventAlreadyOccurred, "you can not delete a past meetup")
	ErrPastDate             = New(ReasonPastDateForbidden, "past dates are not permitted")
	ErrNotOrganizer         = New(ReasonUnauthorized, "you can only change your own meetups")
	ErrNotSubscriber        = New(ReasonUnauthorized, "you can only cancel your own subscriptions")
)

// HTTPStatus maps an error returned by a service to a response status.
// Anything that is not a rejection is an unhandled failure.
func HTTPStatus(err error) int {
	var rej *Error
	if !errors.As(err, &rej) {
		return http.StatusInternalServerError
	}

	switch rej.Kind() {
	case KindValidation, KindNotFound:
		return http.StatusBadRequest
	case KindAuthorization, KindTemporal, KindScheduleConflict:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing text for err. Failures that are not
// rejections get fallback so internal details never reach the response.
func Message(err error, fallback string) string {
	var rej *Error
	if !errors.As(err, &rej) || rej.Kind() == KindInfrastructure {
		return fallback
	}

	return rej.Message
}
