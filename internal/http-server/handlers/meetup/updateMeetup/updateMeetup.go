package updateMeetup

import (
	"context"
	"errors"
	"log/slog"
	"meetapp/internal/http-server/middleware/auth"
	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/models"
	"meetapp/internal/services/meetup"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// UpdateRequest changes only the fields present in the body.
type UpdateRequest struct {
	ID          int64      `json:"id" validate:"required"`
	Title       *string    `json:"title" validate:"omitnil,min=1"`
	Description *string    `json:"description" validate:"omitnil,min=1"`
	Location    *string    `json:"location" validate:"omitnil,min=1"`
	Date        *time.Time `json:"date"`
	Image       *int64     `json:"image" validate:"omitnil,min=1"`
}

type MeetupResponse struct {
	response.Response
	Meetup *models.Meetup `json:"meetup"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MeetupUpdater
type MeetupUpdater interface {
	Update(ctx context.Context, organizerID, meetupID int64, in meetup.UpdateInput) (*models.Meetup, error)
}

func New(log *slog.Logger, updater MeetupUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meetup.updateMeetup.New"

		log := log.With(slog.String("op", op))

		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		var req UpdateRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		log = log.With(slog.Int64("meetup_id", req.ID))

		m, err := updater.Update(r.Context(), userID, req.ID, meetup.UpdateInput{
			Title:       req.Title,
			Description: req.Description,
			Location:    req.Location,
			Date:        req.Date,
			BannerID:    req.Image,
		})
		if err != nil {
			status, resp := response.FromError(err, "failed to update meetup")
			if status == http.StatusInternalServerError {
				log.Error("failed to update meetup", sl.Err(err))
			} else {
				log.Info("meetup update rejected", sl.Err(err))
			}
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("meetup updated")

		render.JSON(w, r, MeetupResponse{
			Response: response.OK(),
			Meetup:   m,
		})
	}
}
