package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-service/internal/models"
	"github.com/sbilibin2017/roommate-service/internal/repositories"
)

//go:generate mockgen -source=ads.go -destination=ads_mock.go -package=handlers

// AdCreator creates ads.
type AdCreator interface {
	Create(ctx context.Context, in models.AdCreate) (*models.Ad, error)
}

// AdGetter looks ads up by id.
type AdGetter interface {
	GetByID(ctx context.Context, adID uuid.UUID) (*models.Ad, error)
}

// AdLister lists ads.
type AdLister interface {
	List(ctx context.Context) ([]models.Ad, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Ad, error)
}

// AdUpdater applies partial ad updates.
type AdUpdater interface {
	Update(ctx context.Context, adID uuid.UUID, patch models.AdUpdate) (*models.Ad, error)
}

// AdDeleter deletes ads.
type AdDeleter interface {
	Delete(ctx context.Context, adID uuid.UUID) (bool, error)
}

// NewCreateAdHandler returns an HTTP handler creating an ad.
// @Summary Create ad
// @Tags ads
// @Accept json
// @Produce json
// @Param request body models.AdCreate true "Ad"
// @Success 201 {object} models.Ad
// @Failure 409 {object} models.DetailResponse "Unknown owner"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation error"
// @Router /ads [post]
func NewCreateAdHandler(repo AdCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AdCreate
		if !decodeBody(w, r, &req) {
			return
		}

		ad, err := repo.Create(r.Context(), req)
		if errors.Is(err, repositories.ErrConstraintViolation) {
			writeDetail(w, http.StatusConflict, "Ad violates a constraint")
			return
		}
		if err != nil {
			writeInternalError(w, "failed to create ad", err)
			return
		}

		writeJSON(w, http.StatusCreated, ad)
	}
}

// NewGetAdHandler returns an HTTP handler for an ad by id.
// @Summary Get ad
// @Tags ads
// @Produce json
// @Param ad_id path string true "Ad ID" format(uuid)
// @Success 200 {object} models.Ad
// @Failure 404 {object} models.DetailResponse "Ad not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Invalid id"
// @Router /ads/{ad_id} [get]
func NewGetAdHandler(repo AdGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adID, ok := uuidParam(w, r, "ad_id")
		if !ok {
			return
		}

		ad, err := repo.GetByID(r.Context(), adID)
		writeAd(w, ad, err)
	}
}

// NewListAdsHandler returns an HTTP handler listing every ad.
// @Summary List ads
// @Tags ads
// @Produce json
// @Success 200 {array} models.Ad
// @Router /ads [get]
func NewListAdsHandler(repo AdLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ads, err := repo.List(r.Context())
		if err != nil {
			writeInternalError(w, "failed to list ads", err)
			return
		}
		writeJSON(w, http.StatusOK, ads)
	}
}

// NewListOwnerAdsHandler returns an HTTP handler listing the ads of an owner.
// @Summary List ads of an owner
// @Tags ads
// @Produce json
// @Param owner_id path string true "Owner ID" format(uuid)
// @Success 200 {array} models.Ad
// @Failure 422 {object} handlers.ValidationErrorResponse "Invalid id"
// @Router /ads/owner/{owner_id} [get]
func NewListOwnerAdsHandler(repo AdLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := uuidParam(w, r, "owner_id")
		if !ok {
			return
		}

		ads, err := repo.ListByOwner(r.Context(), ownerID)
		if err != nil {
			writeInternalError(w, "failed to list owner ads", err)
			return
		}
		writeJSON(w, http.StatusOK, ads)
	}
}

// NewUpdateAdHandler returns an HTTP handler applying a partial ad update.
// @Summary Update ad
// @Description Only the fields present in the body change; null clears a field except title.
// @Tags ads
// @Accept json
// @Produce json
// @Param ad_id path string true "Ad ID" format(uuid)
// @Param request body models.AdUpdate true "Fields to change"
// @Success 200 {object} models.Ad
// @Failure 404 {object} models.DetailResponse "Ad not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation error"
// @Router /ads/{ad_id} [put]
func NewUpdateAdHandler(repo AdUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adID, ok := uuidParam(w, r, "ad_id")
		if !ok {
			return
		}

		var req models.AdUpdate
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Title.IsNull() {
			writeValidationError(w, models.NewValidationError("title", "none is not an allowed value", "type_error.none.not_allowed"))
			return
		}

		ad, err := repo.Update(r.Context(), adID, req)
		if errors.Is(err, repositories.ErrConstraintViolation) {
			writeDetail(w, http.StatusConflict, "Ad violates a constraint")
			return
		}
		writeAd(w, ad, err)
	}
}

// NewDeleteAdHandler returns an HTTP handler deleting an ad.
// @Summary Delete ad
// @Tags ads
// @Produce json
// @Param ad_id path string true "Ad ID" format(uuid)
// @Success 200 {object} models.DetailResponse "Ad deleted successfully"
// @Failure 404 {object} models.DetailResponse "Ad not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Invalid id"
// @Router /ads/{ad_id} [delete]
func NewDeleteAdHandler(repo AdDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adID, ok := uuidParam(w, r, "ad_id")
		if !ok {
			return
		}

		deleted, err := repo.Delete(r.Context(), adID)
		if err != nil {
			writeInternalError(w, "failed to delete ad", err)
			return
		}
		if !deleted {
			writeDetail(w, http.StatusNotFound, "Ad not found")
			return
		}

		writeDetail(w, http.StatusOK, "Ad deleted successfully")
	}
}

func writeAd(w http.ResponseWriter, ad *models.Ad, err error) {
	if err != nil {
		writeInternalError(w, "failed to load ad", err)
		return
	}
	if ad == nil {
		writeDetail(w, http.StatusNotFound, "Ad not found")
		return
	}
	writeJSON(w, http.StatusOK, ad)
}
