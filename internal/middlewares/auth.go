package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/roommate-service/internal/logger"
	"github.com/sbilibin2017/roommate-service/internal/models"
	"github.com/sbilibin2017/roommate-service/internal/services"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// UserAuthenticator resolves the user behind an access token.
type UserAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// AuthMiddleware rejects requests without a valid bearer token of an active
// user and puts the user and the token into the request context.
func AuthMiddleware(tokener Tokener, authenticator UserAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			user, err := authenticator.Authenticate(ctx, tokenString)
			if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrUserInactive) {
				logger.Log.Infow("authorization failed", "err", err)
				unauthorized(w)
				return
			}
			if err != nil {
				logger.Log.Errorw("failed to authenticate", "err", err)
				writeDetail(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx = context.WithValue(ctx, userKey{}, user)
			ctx = context.WithValue(ctx, tokenKey{}, tokenString)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SuperuserMiddleware lets only superusers through. It must run after
// AuthMiddleware.
func SuperuserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUserFromContext(r.Context())
		if user == nil {
			unauthorized(w)
			return
		}
		if !user.IsSuperuser {
			writeDetail(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type (
	userKey  struct{}
	tokenKey struct{}
)

// GetUserFromContext returns the authenticated user, or nil.
func GetUserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey{}).(*models.User)
	return user
}

// GetTokenFromContext returns the access token of the authenticated request.
func GetTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// WithUser returns a copy of ctx carrying user, as AuthMiddleware does.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeDetail(w, http.StatusUnauthorized, "Unauthorized")
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.DetailResponse{Detail: detail})
}
