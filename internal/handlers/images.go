package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-service/internal/models"
	"github.com/sbilibin2017/roommate-service/internal/repositories"
)

//go:generate mockgen -source=images.go -destination=images_mock.go -package=handlers

// ImageAdder stores a new image, keeping a single primary one.
type ImageAdder interface {
	AddImage(ctx context.Context, userID uuid.UUID, in models.ImageCreate) (*models.UserImage, error)
}

// ImageLister lists the images of a user.
type ImageLister interface {
	ListImages(ctx context.Context, userID uuid.UUID) ([]models.UserImage, error)
}

// ImageDeleter deletes an image of a user.
type ImageDeleter interface {
	DeleteImage(ctx context.Context, imageID, userID uuid.UUID) (bool, error)
}

// ImageDeletedResponse is returned after an image was deleted
// swagger:model ImageDeletedResponse
type ImageDeletedResponse struct {
	// example: success
	Status string `json:"status"`
}

// NewListImagesHandler returns an HTTP handler listing the caller's images.
// @Summary List my images
// @Tags profiles
// @Produce json
// @Success 200 {array} models.UserImage
// @Failure 401 {object} models.DetailResponse "Unauthorized"
// @Router /profiles/images [get]
// @Security BearerAuth
func NewListImagesHandler(svc ImageLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r)
		if user == nil {
			return
		}

		images, err := svc.ListImages(r.Context(), user.ID)
		if err != nil {
			writeInternalError(w, "failed to list images", err)
			return
		}
		writeJSON(w, http.StatusOK, images)
	}
}

// NewAddImageHandler returns an HTTP handler adding an image for the caller.
// @Summary Add image
// @Description A primary image replaces the current primary one.
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body models.ImageCreate true "Image"
// @Success 201 {object} models.UserImage
// @Failure 401 {object} models.DetailResponse "Unauthorized"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation error"
// @Router /profiles/images [post]
// @Security BearerAuth
func NewAddImageHandler(svc ImageAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r)
		if user == nil {
			return
		}

		var req models.ImageCreate
		if !decodeBody(w, r, &req) {
			return
		}

		img, err := svc.AddImage(r.Context(), user.ID, req)
		if errors.Is(err, repositories.ErrConstraintViolation) {
			writeDetail(w, http.StatusConflict, "Image violates a constraint")
			return
		}
		if err != nil {
			writeInternalError(w, "failed to add image", err)
			return
		}

		writeJSON(w, http.StatusCreated, img)
	}
}

// NewDeleteImageHandler returns an HTTP handler deleting one of the caller's images.
// @Summary Delete image
// @Tags profiles
// @Produce json
// @Param image_id path string true "Image ID" format(uuid)
// @Success 200 {object} handlers.ImageDeletedResponse
// @Failure 404 {object} models.DetailResponse "Image not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Invalid id"
// @Router /profiles/images/{image_id} [delete]
// @Security BearerAuth
func NewDeleteImageHandler(svc ImageDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r)
		if user == nil {
			return
		}

		imageID, ok := uuidParam(w, r, "image_id")
		if !ok {
			return
		}

		deleted, err := svc.DeleteImage(r.Context(), imageID, user.ID)
		if err != nil {
			writeInternalError(w, "failed to delete image", err)
			return
		}
		if !deleted {
			writeDetail(w, http.StatusNotFound, "Image not found")
			return
		}

		writeJSON(w, http.StatusOK, ImageDeletedResponse{Status: "success"})
	}
}
