// Package auth guards routes with the bearer token issued at login and puts
// the verified user id into the request context.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/lib/tokens"

	"github.com/go-chi/render"
)

type contextKey string

const userIDKey contextKey = "userID"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenVerifier
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// New rejects requests without a valid "Authorization: Bearer <token>" header.
func New(log *slog.Logger, verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, r, "token not provided")
				return
			}

			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				unauthorized(w, r, "token malformatted")
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				log.Info("token rejected", sl.Err(err))

				if errors.Is(err, tokens.ErrTokenExpired) {
					unauthorized(w, r, "token expired")
					return
				}
				unauthorized(w, r, "token invalid")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		}

		return http.HandlerFunc(fn)
	}
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error(msg))
}
