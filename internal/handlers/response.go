package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-service/internal/logger"
	"github.com/sbilibin2017/roommate-service/internal/middlewares"
	"github.com/sbilibin2017/roommate-service/internal/models"
)

// ErrorCodeReason is the detail of errors that carry a machine-readable
// code and a human-readable reason.
// swagger:model ErrorCodeReason
type ErrorCodeReason struct {
	// example: RESET_PASSWORD_INVALID_PASSWORD
	Code string `json:"code"`
	// example: password should be at least 8 characters
	Reason string `json:"reason"`
}

// CodeReasonResponse wraps an ErrorCodeReason
// swagger:model CodeReasonResponse
type CodeReasonResponse struct {
	Detail ErrorCodeReason `json:"detail"`
}

// ValidationErrorResponse is the 422 body
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Detail []models.FieldError `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.DetailResponse{Detail: detail})
}

func writeCodeReason(w http.ResponseWriter, status int, code string, err error) {
	writeJSON(w, status, CodeReasonResponse{Detail: ErrorCodeReason{Code: code, Reason: err.Error()}})
}

func writeValidationError(w http.ResponseWriter, verr *models.ValidationError) {
	writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: verr.Errors})
}

func writeInternalError(w http.ResponseWriter, msg string, err error) {
	logger.Log.Errorw(msg, "error", err)
	writeDetail(w, http.StatusInternalServerError, "Internal server error")
}

// decodeBody decodes and validates a JSON body into dst. On failure it
// writes the 422 response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Log.Infow("failed to decode request body", "error", err)
		msg, typ := "value is not a valid JSON document", "value_error.jsondecode"
		if errors.Is(err, io.EOF) {
			msg, typ = "field required", "value_error.missing"
		}
		writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: []models.FieldError{
			{Loc: []string{"body"}, Msg: msg, Type: typ},
		}})
		return false
	}

	if err := models.Validate(dst); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return false
		}
		writeInternalError(w, "failed to validate request body", err)
		return false
	}
	return true
}

// uuidParam parses a UUID path parameter. On failure it writes the 422
// response and returns false.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: []models.FieldError{
			{Loc: []string{"path", name}, Msg: "value is not a valid uuid", Type: "type_error.uuid"},
		}})
		return uuid.Nil, false
	}
	return id, true
}

// currentUser returns the user set by the auth middleware. Without one it
// writes 401 and returns nil.
func currentUser(w http.ResponseWriter, r *http.Request) *models.User {
	user := middlewares.GetUserFromContext(r.Context())
	if user == nil {
		writeDetail(w, http.StatusUnauthorized, "Unauthorized")
	}
	return user
}
