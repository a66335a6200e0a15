package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/roommate-service/internal/models"
	"github.com/sbilibin2017/roommate-service/internal/services"
)

//go:generate mockgen -source=password.go -destination=password_mock.go -package=handlers

// ForgotPassworder starts the password reset flow.
type ForgotPassworder interface {
	ForgotPassword(ctx context.Context, email string) error
}

// PasswordResetter completes the password reset flow.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, token, password string) (*models.User, error)
}

// NewForgotPasswordHandler returns an HTTP handler issuing a reset token.
// @Summary Forgot password
// @Description Issue a password reset token for the account. Answers 202 whether or not the account exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.EmailRequest true "Account email"
// @Success 202 "Accepted"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation error"
// @Router /auth/forgot-password [post]
func NewForgotPasswordHandler(svc ForgotPassworder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.EmailRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := svc.ForgotPassword(r.Context(), req.Email); err != nil {
			writeInternalError(w, "failed to issue reset token", err)
			return
		}

		writeJSON(w, http.StatusAccepted, nil)
	}
}

// NewResetPasswordHandler returns an HTTP handler setting a new password.
// @Summary Reset password
// @Description Set a new password using a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} models.UserRead
// @Failure 400 {object} models.DetailResponse "RESET_PASSWORD_BAD_TOKEN"
// @Failure 400 {object} handlers.CodeReasonResponse "RESET_PASSWORD_INVALID_PASSWORD"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation error"
// @Router /auth/reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ResetPasswordRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := svc.ResetPassword(r.Context(), req.Token, req.Password)
		switch {
		case errors.Is(err, services.ErrBadToken):
			writeDetail(w, http.StatusBadRequest, "RESET_PASSWORD_BAD_TOKEN")
			return
		case errors.Is(err, services.ErrInvalidPassword):
			writeCodeReason(w, http.StatusBadRequest, "RESET_PASSWORD_INVALID_PASSWORD", err)
			return
		case err != nil:
			writeInternalError(w, "failed to reset password", err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewUserRead(user))
	}
}
