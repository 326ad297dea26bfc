package getMeetups

import (
	"context"
	"log/slog"
	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/models"
	"meetapp/internal/services/meetup"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"
)

const dateLayout = "2006-01-02"

type MeetupsResponse struct {
	response.Response
	Page    int                    `json:"page"`
	Meetups []models.MeetupDetails `json:"meetups"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MeetupLister
type MeetupLister interface {
	ListByDay(ctx context.Context, day time.Time, page int) ([]models.MeetupDetails, error)
}

// New serves GET /meetups?date=YYYY-MM-DD&page=N.
func New(log *slog.Logger, lister MeetupLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meetup.getMeetups.New"

		log := log.With(slog.String("op", op))

		query := r.URL.Query()

		dateStr := query.Get("date")
		if dateStr == "" {
			log.Error("date is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("date is required"))
			return
		}

		day, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			log.Error("invalid date format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date format, expected YYYY-MM-DD"))
			return
		}

		page := 1
		if pageStr := query.Get("page"); pageStr != "" {
			page, err = strconv.Atoi(pageStr)
			if err != nil || page < 1 || page > meetup.MaxPage {
				log.Error("invalid page", slog.String("page", pageStr))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid page"))
				return
			}
		}

		meetups, err := lister.ListByDay(r.Context(), day, page)
		if err != nil {
			log.Error("failed to get meetups", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get meetups"))
			return
		}

		log.Info("meetups retrieved successfully", slog.Int("count", len(meetups)))

		render.JSON(w, r, MeetupsResponse{
			Response: response.OK(),
			Page:     page,
			Meetups:  meetups,
		})
	}
}
