package deleteMeetup

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MeetupDeleter
type MeetupDeleter interface {
	Delete(ctx context.Context, organizerID, meetupID int64) error
}

func New(log *slog.Logger, deleter MeetupDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meetup.deleteMeetup.New"

		log := log.With(slog.String("op", op))

		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		idStr := chi.URLParam(r, "id")
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

		log = log.With(slog.Int64("meetup_id", meetupID))

		if err = deleter.Delete(r.Context(), userID, meetupID); err != nil {
			status, resp := response.FromError(err, "failed to delete meetup")
			if status == http.StatusInternalServerError {
				log.Error("failed to delete meetup", sl.Err(err))
			} else {
				log.Info("meetup deletion rejected", sl.Err(err))
			}
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("meetup deleted")

		render.JSON(w, r, response.OK())
	}
}
