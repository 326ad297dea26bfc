package createMeetup

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

type MeetupRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Image       int64     `json:"image" validate:"required"`
}

type MeetupResponse struct {
	response.Response
	Meetup *models.Meetup `json:"meetup"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MeetupCreator
type MeetupCreator interface {
	Create(ctx context.Context, organizerID int64, in meetup.CreateInput) (*models.Meetup, error)
}

func New(log *slog.Logger, creator MeetupCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meetup.createMeetup.New"

		log := log.With(slog.String("op", op))

		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		var req MeetupRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		m, err := creator.Create(r.Context(), userID, meetup.CreateInput{
			Title:       req.Title,
			Description: req.Description,
			Location:    req.Location,
			Date:        req.Date,
			BannerID:    req.Image,
		})
		if err != nil {
			status, resp := response.FromError(err, "failed to create meetup")
			if status == http.StatusInternalServerError {
				log.Error("failed to create meetup", sl.Err(err))
			} else {
				log.Info("meetup rejected", sl.Err(err))
			}
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("meetup created", slog.Int64("id", m.ID))

		responseOK(w, r, m)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, m *models.Meetup) {
	render.JSON(w, r, MeetupResponse{
		Response: response.OK(),
		Meetup:   m,
	})
}
