package getSubscriptions

import (
	"context"
	"log/slog"
	"meetapp/internal/http-server/middleware/auth"
	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/models"
	"net/http"

	"github.com/go-chi/render"
)

type SubscriptionsResponse struct {
	response.Response
	Subscriptions []models.SubscriptionDetails `json:"subscriptions"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SubscriptionsGetter
type SubscriptionsGetter interface {
	Upcoming(ctx context.Context, userID int64) ([]models.SubscriptionDetails, error)
}

func New(log *slog.Logger, getter SubscriptionsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.subscription.getSubscriptions.New"

		log := log.With(slog.String("op", op))

		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		subs, err := getter.Upcoming(r.Context(), userID)
		if err != nil {
			log.Error("failed to get subscriptions", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get subscriptions"))
			return
		}

		log.Info("subscriptions retrieved", slog.Int("count", len(subs)))

		render.JSON(w, r, SubscriptionsResponse{
			Response:      response.OK(),
			Subscriptions: subs,
		})
	}
}
