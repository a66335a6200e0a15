package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/roommate-service/internal/models"
	"github.com/sbilibin2017/roommate-service/internal/services"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an active, unverified account. The email must be unused and the password at least 8 characters.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.UserRead "User successfully registered"
// @Failure 400 {object} models.DetailResponse "REGISTER_USER_ALREADY_EXISTS"
// @Failure 400 {object} handlers.CodeReasonResponse "REGISTER_INVALID_PASSWORD"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := svc.Register(r.Context(), req.Email, req.Password)
		switch {
		case errors.Is(err, services.ErrUserAlreadyExists):
			writeDetail(w, http.StatusBadRequest, "REGISTER_USER_ALREADY_EXISTS")
			return
		case errors.Is(err, services.ErrInvalidPassword):
			writeCodeReason(w, http.StatusBadRequest, "REGISTER_INVALID_PASSWORD", err)
			return
		case err != nil:
			writeInternalError(w, "failed to register user", err)
			return
		}

		writeJSON(w, http.StatusCreated, models.NewUserRead(user))
	}
}
