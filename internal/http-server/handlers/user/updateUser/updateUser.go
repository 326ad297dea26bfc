package updateUser

import (
	"context"
	"errors"
	"log/slog"
	"meetapp/internal/http-server/middleware/auth"
	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/models"
	"meetapp/internal/services/account"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type ProfileRequest struct {
	Name            *string `json:"name" validate:"omitnil,min=1"`
	Email           *string `json:"email" validate:"omitnil,email"`
	OldPassword     *string `json:"old_password" validate:"omitnil,min=6"`
	Password        *string `json:"password" validate:"omitnil,min=6"`
	ConfirmPassword *string `json:"confirm_password"`
}

type UserResponse struct {
	response.Response
	User *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileUpdater
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID int64, in account.ProfileInput) (*models.User, error)
}

func New(log *slog.Logger, updater ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.updateUser.New"

		log := log.With(slog.String("op", op))

		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		var req ProfileRequest

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

		if req.Password != nil && (req.ConfirmPassword == nil || *req.ConfirmPassword != *req.Password) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("field ConfirmPassword must match Password"))
			return
		}

		user, err := updater.UpdateProfile(r.Context(), userID, account.ProfileInput{
			Name:        req.Name,
			Email:       req.Email,
			OldPassword: req.OldPassword,
			Password:    req.Password,
		})
		if err != nil {
			status, resp := response.FromError(err, "failed to update user")
			if status == http.StatusInternalServerError {
				log.Error("failed to update user", sl.Err(err))
			} else {
				log.Info("profile update rejected", sl.Err(err))
			}
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("profile updated", slog.Int64("id", user.ID))

		render.JSON(w, r, UserResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
