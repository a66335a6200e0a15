package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-service/internal/models"
	"github.com/sbilibin2017/roommate-service/internal/repositories"
)

//go:generate mockgen -source=profiles.go -destination=profiles_mock.go -package=handlers

// ProfileCreator creates profiles.
type ProfileCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in models.ProfileCreate) (*models.UserProfile, error)
}

// ProfileLister lists profiles.
type ProfileLister interface {
	List(ctx context.Context) ([]models.UserProfile, error)
}

// ProfileGetter looks profiles up by profile id.
type ProfileGetter interface {
	GetByID(ctx context.Context, profileID uuid.UUID) (*models.UserProfile, error)
}

// OwnProfileGetter looks profiles up by owner.
type OwnProfileGetter interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
}

// OwnProfileUpdater updates the profile of an owner.
type OwnProfileUpdater interface {
	UpdateByUserID(ctx context.Context, userID uuid.UUID, patch models.ProfileUpdate) (*models.UserProfile, error)
}

// OwnProfileDeleter deletes the profile of an owner.
type OwnProfileDeleter interface {
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (bool, error)
}

// NewCreateProfileHandler returns an HTTP handler creating the caller's profile.
// @Summary Create profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body models.ProfileCreate true "Profile"
// @Success 201 {object} models.UserProfile
// @Failure 401 {object} models.DetailResponse "Unauthorized"
// @Failure 409 {object} models.DetailResponse "Profile already exists"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation error"
// @Router /profiles [post]
// @Security BearerAuth
func NewCreateProfileHandler(repo ProfileCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r)
		if user == nil {
			return
		}

		var req models.ProfileCreate
		if !decodeBody(w, r, &req) {
			return
		}

		profile, err := repo.Create(r.Context(), user.ID, req)
		if errors.Is(err, repositories.ErrConstraintViolation) {
			writeDetail(w, http.StatusConflict, "Profile already exists")
			return
		}
		if err != nil {
			writeInternalError(w, "failed to create profile", err)
			return
		}

		writeJSON(w, http.StatusCreated, profile)
	}
}

// NewListProfilesHandler returns an HTTP handler listing all profiles.
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Success 200 {array} models.UserProfile
// @Failure 401 {object} models.DetailResponse "Unauthorized"
// @Router /profiles [get]
// @Security BearerAuth
func NewListProfilesHandler(repo ProfileLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := repo.List(r.Context())
		if err != nil {
			writeInternalError(w, "failed to list profiles", err)
			return
		}
		writeJSON(w, http.StatusOK, profiles)
	}
}

// NewGetProfileHandler returns an HTTP handler for a profile by id.
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param profile_id path string true "Profile ID" format(uuid)
// @Success 200 {object} models.UserProfile
// @Failure 404 {object} models.DetailResponse "Profile not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Invalid id"
// @Router /profiles/{profile_id} [get]
// @Security BearerAuth
func NewGetProfileHandler(repo ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, ok := uuidParam(w, r, "profile_id")
		if !ok {
			return
		}

		profile, err := repo.GetByID(r.Context(), profileID)
		writeProfile(w, profile, err)
	}
}

// NewGetMyProfileHandler returns an HTTP handler for the caller's profile.
// @Summary Get my profile
// @Tags profiles
// @Produce json
// @Success 200 {object} models.UserProfile
// @Failure 404 {object} models.DetailResponse "Profile not found"
// @Router /profiles/me [get]
// @Security BearerAuth
func NewGetMyProfileHandler(repo OwnProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r)
		if user == nil {
			return
		}

		profile, err := repo.GetByUserID(r.Context(), user.ID)
		writeProfile(w, profile, err)
	}
}

// NewUpdateMyProfileHandler returns an HTTP handler updating the caller's profile.
// @Summary Update my profile
// @Description Only the fields present in the body change; null clears a field.
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body models.ProfileUpdate true "Fields to change"
// @Success 200 {object} models.UserProfile
// @Failure 404 {object} models.DetailResponse "Profile not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation error"
// @Router /profiles/me [put]
// @Security BearerAuth
func NewUpdateMyProfileHandler(repo OwnProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r)
		if user == nil {
			return
		}

		var req models.ProfileUpdate
		if !decodeBody(w, r, &req) {
			return
		}

		profile, err := repo.UpdateByUserID(r.Context(), user.ID, req)
		if errors.Is(err, repositories.ErrConstraintViolation) {
			writeDetail(w, http.StatusConflict, "Profile update violates a constraint")
			return
		}
		writeProfile(w, profile, err)
	}
}

// NewDeleteMyProfileHandler returns an HTTP handler deleting the caller's profile.
// @Summary Delete my profile
// @Tags profiles
// @Produce json
// @Success 200 {object} models.DetailResponse "Profile deleted successfully"
// @Failure 404 {object} models.DetailResponse "Profile not found"
// @Router /profiles/me [delete]
// @Security BearerAuth
func NewDeleteMyProfileHandler(repo OwnProfileDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r)
		if user == nil {
			return
		}

		deleted, err := repo.DeleteByUserID(r.Context(), user.ID)
		if err != nil {
			writeInternalError(w, "failed to delete profile", err)
			return
		}
		if !deleted {
			writeDetail(w, http.StatusNotFound, "Profile not found")
			return
		}

		writeDetail(w, http.StatusOK, "Profile deleted successfully")
	}
}

func writeProfile(w http.ResponseWriter, profile *models.UserProfile, err error) {
	if err != nil {
		writeInternalError(w, "failed to load profile", err)
		return
	}
	if profile == nil {
		writeDetail(w, http.StatusNotFound, "Profile not found")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
