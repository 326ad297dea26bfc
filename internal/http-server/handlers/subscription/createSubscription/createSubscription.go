package createSubscription

import (
	"context"
	"errors"
	"log/slog"
	"meetapp/internal/http-server/middleware/auth"
	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/models"
	"meetapp/internal/rejection"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type SubscriptionResponse struct {
	response.Response
	Subscription *models.Subscription `json:"subscription"`
}

// ConflictResponse names the meetup already booked in the same hour.
type ConflictResponse struct {
	response.Response
	ConflictMeetupID    int64  `json:"conflict_meetup_id"`
	ConflictMeetupTitle string `json:"conflict_meetup_title"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Subscriber
type Subscriber interface {
	Subscribe(ctx context.Context, userID, meetupID int64) (*models.Subscription, error)
}

func New(log *slog.Logger, subscriber Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.subscription.createSubscription.New"

		log := log.With(slog.String("op", op))

		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		idStr := chi.URLParam(r, "meetup_id")
		if idStr == "" {
			log.Error("meetup id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("meetup id is required"))
			return
		}

		meetupID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Error("invalid meetup id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid meetup id format"))
			return
		}

		log = log.With(slog.Int64("user_id", userID), slog.Int64("meetup_id", meetupID))

		sub, err := subscriber.Subscribe(r.Context(), userID, meetupID)
		if err != nil {
			status, resp := response.FromError(err, "failed to subscribe")
			if status == http.StatusInternalServerError {
				log.Error("failed to subscribe", sl.Err(err))
				render.Status(r, status)
				render.JSON(w, r, resp)
				return
			}

			log.Info("subscription rejected", sl.Err(err))
			render.Status(r, status)

			var rej *rejection.Error
			if errors.As(err, &rej) && rej.Reason == rejection.ReasonScheduleConflict {
				render.JSON(w, r, ConflictResponse{
					Response:            resp,
					ConflictMeetupID:    rej.ConflictMeetupID,
					ConflictMeetupTitle: rej.ConflictMeetupTitle,
				})
				return
			}

			render.JSON(w, r, resp)
			return
		}

		log.Info("subscribed", slog.Int64("subscription_id", sub.ID))

		render.JSON(w, r, SubscriptionResponse{
			Response:     response.OK(),
			Subscription: sub,
		})
	}
}
