package deleteSubscription

import (
	"context"
	"log/slog"
	"meetapp/internal/http-server/middleware/auth"
	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/sl"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SubscriptionCanceller
type SubscriptionCanceller interface {
	Cancel(ctx context.Context, userID, subscriptionID int64) error
}

func New(log *slog.Logger, canceller SubscriptionCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.subscription.deleteSubscription.New"

		log := log.With(slog.String("op", op))

		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		idStr := chi.URLParam(r, "subscription_id")
		if idStr == "" {
			log.Error("subscription id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("subscription id is required"))
			return
		}

		subscriptionID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Error("invalid subscription id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid subscription id format"))
			return
		}

		log = log.With(slog.Int64("subscription_id", subscriptionID))

		if err = canceller.Cancel(r.Context(), userID, subscriptionID); err != nil {
			status, resp := response.FromError(err, "failed to cancel subscription")
			if status == http.StatusInternalServerError {
				log.Error("failed to cancel subscription", sl.Err(err))
			} else {
				log.Info("cancellation rejected", sl.Err(err))
			}
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("subscription cancelled")

		render.JSON(w, r, response.OK())
	}
}
