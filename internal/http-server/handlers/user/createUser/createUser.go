package createUser

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

type UserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UserResponse struct {
	response.Response
	User *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserRegistrar
type UserRegistrar interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
}

func New(log *slog.Logger, registrar UserRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.createUser.New"

		log := log.With(slog.String("op", op))

		var req UserRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("email", req.Email))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		user, err := registrar.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			status, resp := response.FromError(err, "failed to register user")
			if status == http.StatusInternalServerError {
				log.Error("failed to register user", sl.Err(err))
			} else {
				log.Info("registration rejected", sl.Err(err))
			}
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("user registered", slog.Int64("id", user.ID))

		render.JSON(w, r, UserResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
