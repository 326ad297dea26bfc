package getOrganizing

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

type OrganizingResponse struct {
	response.Response
	Meetups []models.MeetupDetails `json:"meetups"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OrganizingGetter
type OrganizingGetter interface {
	Organizing(ctx context.Context, organizerID int64) ([]models.MeetupDetails, error)
}

func New(log *slog.Logger, getter OrganizingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meetup.getOrganizing.New"

		log := log.With(slog.String("op", op))

		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		meetups, err := getter.Organizing(r.Context(), userID)
		if err != nil {
			log.Error("failed to get organized meetups", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get meetups"))
			return
		}

		log.Info("organized meetups retrieved", slog.Int("count", len(meetups)))

		render.JSON(w, r, OrganizingResponse{
			Response: response.OK(),
			Meetups:  meetups,
		})
	}
}
