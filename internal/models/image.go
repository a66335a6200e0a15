package models

import (
	"time"

	"github.com/google/uuid"
)

// UserImage represents a row of user_images.
// swagger:model UserImage
type UserImage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	IsPrimary bool      `json:"is_primary" db:"is_primary"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ImageCreate is the body of POST /profiles/images
// swagger:model ImageCreate
type ImageCreate struct {
	// example: https://cdn.example.com/u/1.jpg
	ImageURL  string `json:"image_url" validate:"required,max=2048"`
	IsPrimary bool   `json:"is_primary"`
}
