package createSession

import (
	"context"
	"errors"
	"log/slog"
	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/models"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type SessionRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SessionUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SessionResponse struct {
	response.Response
	User  SessionUser `json:"user"`
	Token string      `json:"token"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Authenticator
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

func New(log *slog.Logger, authenticator Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.session.createSession.New"

		log := log.With(slog.String("op", op))

		var req SessionRequest

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

		user, token, err := authenticator.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			status, resp := response.FromError(err, "failed to create session")
			if status == http.StatusInternalServerError {
				log.Error("failed to create session", sl.Err(err))
			} else {
				log.Info("login rejected", slog.String("email", req.Email))
			}
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("session created", slog.Int64("user_id", user.ID))

		render.JSON(w, r, SessionResponse{
			Response: response.OK(),
			User: SessionUser{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
			},
			Token: token,
		})
	}
}
