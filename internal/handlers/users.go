package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-service/internal/models"
	"github.com/sbilibin2017/roommate-service/internal/repositories"
	"github.com/sbilibin2017/roommate-service/internal/services"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserGetter looks users up by id.
type UserGetter interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// UserUpdater applies user updates.
type UserUpdater interface {
	UpdateUser(ctx context.Context, user *models.User, in models.UserUpdate, privileged bool) (*models.User, error)
}

// UserDeleter removes users.
type UserDeleter interface {
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// NewGetMeHandler returns an HTTP handler for the authenticated user.
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} models.UserRead
// @Failure 401 {object} models.DetailResponse "Unauthorized"
// @Router /users/me [get]
// @Security BearerAuth
func NewGetMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r)
		if user == nil {
			return
		}
		writeJSON(w, http.StatusOK, models.NewUserRead(user))
	}
}

// NewUpdateMeHandler returns an HTTP handler updating the authenticated user.
// @Summary Update current user
// @Description Change email and/or password. A new email must be verified again.
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.UserUpdate true "Fields to change"
// @Success 200 {object} models.UserRead
// @Failure 400 {object} models.DetailResponse "UPDATE_USER_EMAIL_ALREADY_EXISTS"
// @Failure 400 {object} handlers.CodeReasonResponse "UPDATE_USER_INVALID_PASSWORD"
// @Failure 401 {object} models.DetailResponse "Unauthorized"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation error"
// @Router /users/me [patch]
// @Security BearerAuth
func NewUpdateMeHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r)
		if user == nil {
			return
		}
		updateUser(w, r, svc, user, false)
	}
}

// NewGetUserHandler returns an HTTP handler for a user by id.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User ID" format(uuid)
// @Success 200 {object} models.UserRead
// @Failure 401 {object} models.DetailResponse "Unauthorized"
// @Failure 403 {object} models.DetailResponse "Forbidden"
// @Failure 404 {object} models.DetailResponse "Not Found"
// @Router /users/{id} [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := lookupUser(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, models.NewUserRead(user))
	}
}

// NewUpdateUserHandler returns an HTTP handler updating a user by id.
// @Summary Update user
// @Description Superusers may also change is_active, is_superuser and is_verified.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID" format(uuid)
// @Param request body models.UserUpdate true "Fields to change"
// @Success 200 {object} models.UserRead
// @Failure 400 {object} models.DetailResponse "UPDATE_USER_EMAIL_ALREADY_EXISTS"
// @Failure 403 {object} models.DetailResponse "Forbidden"
// @Failure 404 {object} models.DetailResponse "Not Found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation error"
// @Router /users/{id} [patch]
// @Security BearerAuth
func NewUpdateUserHandler(getter UserGetter, svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := lookupUser(w, r, getter)
		if !ok {
			return
		}
		updateUser(w, r, svc, user, true)
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting a user by id.
// @Summary Delete user
// @Tags users
// @Param id path string true "User ID" format(uuid)
// @Success 204 "Deleted"
// @Failure 403 {object} models.DetailResponse "Forbidden"
// @Failure 404 {object} models.DetailResponse "Not Found"
// @Failure 409 {object} models.DetailResponse "User still owns profiles, images or ads"
// @Router /users/{id} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		err := svc.DeleteUser(r.Context(), userID)
		if errors.Is(err, services.ErrUserNotFound) {
			writeDetail(w, http.StatusNotFound, "Not Found")
			return
		}
		if errors.Is(err, repositories.ErrConstraintViolation) {
			writeDetail(w, http.StatusConflict, "User still owns profiles, images or ads")
			return
		}
		if err != nil {
			writeInternalError(w, "failed to delete user", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func lookupUser(w http.ResponseWriter, r *http.Request, svc UserGetter) (*models.User, bool) {
	userID, ok := uuidParam(w, r, "id")
	if !ok {
		return nil, false
	}

	user, err := svc.GetUser(r.Context(), userID)
	if err != nil {
		writeInternalError(w, "failed to get user", err)
		return nil, false
	}
	if user == nil {
		writeDetail(w, http.StatusNotFound, "Not Found")
		return nil, false
	}
	return user, true
}

func updateUser(w http.ResponseWriter, r *http.Request, svc UserUpdater, user *models.User, privileged bool) {
	var req models.UserUpdate
	if !decodeBody(w, r, &req) {
		return
	}
	// omitempty lets "" through the email rule
	if email := req.Email.Get(); email != nil && *email == "" {
		writeValidationError(w, models.NewValidationError("email", "value is not a valid email address", "value_error.email"))
		return
	}

	updated, err := svc.UpdateUser(r.Context(), user, req, privileged)
	switch {
	case errors.Is(err, services.ErrEmailAlreadyExists):
		writeDetail(w, http.StatusBadRequest, "UPDATE_USER_EMAIL_ALREADY_EXISTS")
		return
	case errors.Is(err, services.ErrInvalidPassword):
		writeCodeReason(w, http.StatusBadRequest, "UPDATE_USER_INVALID_PASSWORD", err)
		return
	case errors.Is(err, services.ErrUserNotFound):
		writeDetail(w, http.StatusNotFound, "Not Found")
		return
	case err != nil:
		writeInternalError(w, "failed to update user", err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewUserRead(updated))
}
