package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-service/internal/logger"
	"github.com/sbilibin2017/roommate-service/internal/models"
)

//go:generate mockgen -source=image.go -destination=image_mock.go -package=services

// ImageStore persists profile images.
type ImageStore interface {
	Create(ctx context.Context, userID uuid.UUID, imageURL string, isPrimary bool) (*models.UserImage, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.UserImage, error)
	UnsetPrimary(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteForUser(ctx context.Context, imageID, userID uuid.UUID) (bool, error)
}

// ImageService manages the images of a user and keeps at most one of them
// primary.
type ImageService struct {
	images ImageStore
}

// NewImageService creates a new ImageService.
func NewImageService(images ImageStore) *ImageService {
	return &ImageService{images: images}
}

// AddImage stores an image for userID. A new primary image first demotes
// the current ones; the two steps commit separately.
func (svc *ImageService) AddImage(ctx context.Context, userID uuid.UUID, in models.ImageCreate) (*models.UserImage, error) {
	if in.IsPrimary {
		n, err := svc.images.UnsetPrimary(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to unset primary images", "user_id", userID, "err", err)
			return nil, err
		}
		logger.Log.Debugw("primary images unset", "user_id", userID, "count", n)
	}

	img, err := svc.images.Create(ctx, userID, in.ImageURL, in.IsPrimary)
	if err != nil {
		logger.Log.Errorw("failed to save image", "user_id", userID, "err", err)
		return nil, err
	}
	return img, nil
}

// ListImages returns the images of userID.
func (svc *ImageService) ListImages(ctx context.Context, userID uuid.UUID) ([]models.UserImage, error) {
	return svc.images.ListByUser(ctx, userID)
}

// DeleteImage removes the image if userID owns it and reports whether it did.
func (svc *ImageService) DeleteImage(ctx context.Context, imageID, userID uuid.UUID) (bool, error) {
	return svc.images.DeleteForUser(ctx, imageID, userID)
}
