package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/roommate-service/internal/middlewares"
	"github.com/sbilibin2017/roommate-service/internal/models"
	"github.com/sbilibin2017/roommate-service/internal/services"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Logouter revokes access tokens.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate with the email as username and return a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} models.BearerResponse "Bearer token returned"
// @Failure 400 {object} models.DetailResponse "LOGIN_BAD_CREDENTIALS"
// @Failure 422 {object} handlers.ValidationErrorResponse "Missing form fields"
// @Router /auth/jwt/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: []models.FieldError{
				{Loc: []string{"body"}, Msg: "invalid form body", Type: "value_error"},
			}})
			return
		}

		var missing []models.FieldError
		for _, field := range []string{"username", "password"} {
			if r.PostForm.Get(field) == "" {
				missing = append(missing, models.FieldError{Loc: []string{"body", field}, Msg: "field required", Type: "value_error.missing"})
			}
		}
		if len(missing) > 0 {
			writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: missing})
			return
		}

		token, err := svc.Login(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeDetail(w, http.StatusBadRequest, "LOGIN_BAD_CREDENTIALS")
			return
		}
		if err != nil {
			writeInternalError(w, "failed to log in", err)
			return
		}

		writeJSON(w, http.StatusOK, models.BearerResponse{AccessToken: token, TokenType: "bearer"})
	}
}

// NewLogoutHandler returns an HTTP handler revoking the caller's token.
// @Summary User logout
// @Description Revoke the bearer token used for this request
// @Tags auth
// @Success 204 "Token revoked"
// @Failure 401 {object} models.DetailResponse "Unauthorized"
// @Router /auth/jwt/logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middlewares.GetTokenFromContext(r.Context())

		err := svc.Logout(r.Context(), token)
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeDetail(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if err != nil {
			writeInternalError(w, "failed to log out", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
