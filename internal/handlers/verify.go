package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/roommate-service/internal/models"
	"github.com/sbilibin2017/roommate-service/internal/services"
)

//go:generate mockgen -source=verify.go -destination=verify_mock.go -package=handlers

// VerifyTokenRequester starts the email verification flow.
type VerifyTokenRequester interface {
	RequestVerifyToken(ctx context.Context, email string) error
}

// Verifier completes the email verification flow.
type Verifier interface {
	Verify(ctx context.Context, token string) (*models.User, error)
}

// NewRequestVerifyTokenHandler returns an HTTP handler issuing a verification token.
// @Summary Request verification token
// @Description Issue an email verification token. Answers 202 whether or not the account exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.EmailRequest true "Account email"
// @Success 202 "Accepted"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation error"
// @Router /auth/request-verify-token [post]
func NewRequestVerifyTokenHandler(svc VerifyTokenRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.EmailRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := svc.RequestVerifyToken(r.Context(), req.Email); err != nil {
			writeInternalError(w, "failed to issue verification token", err)
			return
		}

		writeJSON(w, http.StatusAccepted, nil)
	}
}

// NewVerifyHandler returns an HTTP handler verifying an account.
// @Summary Verify email
// @Description Mark the account verified using a verification token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.VerifyRequest true "Verification token"
// @Success 200 {object} models.UserRead
// @Failure 400 {object} models.DetailResponse "VERIFY_USER_BAD_TOKEN / VERIFY_USER_ALREADY_VERIFIED"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation error"
// @Router /auth/verify [post]
func NewVerifyHandler(svc Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.VerifyRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := svc.Verify(r.Context(), req.Token)
		switch {
		case errors.Is(err, services.ErrBadToken):
			writeDetail(w, http.StatusBadRequest, "VERIFY_USER_BAD_TOKEN")
			return
		case errors.Is(err, services.ErrUserAlreadyVerified):
			writeDetail(w, http.StatusBadRequest, "VERIFY_USER_ALREADY_VERIFIED")
			return
		case err != nil:
			writeInternalError(w, "failed to verify user", err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewUserRead(user))
	}
}
