package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-book/internal/logger"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
	"github.com/sbilibin2017/gw-recipe-book/internal/services"
)

// Tokener extracts the bearer token from a request
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Authenticator resolves the user a token belongs to
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// AuthMiddleware returns a middleware that resolves the request principal from
// the bearer token and stores it in the request context.
func AuthMiddleware(tokener Tokener, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "error", err)
				unauthorized(w, "not authenticated")
				return
			}

			user, err := auth.Authenticate(ctx, tokenString)
			if err != nil {
				if !errors.Is(err, services.ErrUnauthenticated) {
					logger.Log.Errorw("failed to resolve principal", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
					return
				}
				logger.Log.Errorw("authorization failed", "error", err)
				unauthorized(w, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(ctx, user)))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

type principalKey struct{}

// WithPrincipal stores the authenticated user in ctx.
func WithPrincipal(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, principalKey{}, user)
}

// GetPrincipalFromContext returns the authenticated user, or nil on unprotected routes.
func GetPrincipalFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(principalKey{}).(*models.User)
	return user
}
