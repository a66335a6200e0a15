package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/roommate-service/internal/models"
)

const imageColumns = `id, user_id, image_url, is_primary, created_at`

// ImageRepository handles profile image persistence.
type ImageRepository struct {
	base
}

// NewImageRepository creates an ImageRepository. sessionGetter may be nil.
func NewImageRepository(db *sqlx.DB, sessionGetter SessionGetter) *ImageRepository {
	return &ImageRepository{base{db: db, sessionGetter: sessionGetter}}
}

// Create inserts an image for userID. It does not touch other images: callers
// wanting a single primary image call UnsetPrimary first.
func (r *ImageRepository) Create(ctx context.Context, userID uuid.UUID, imageURL string, isPrimary bool) (*models.UserImage, error) {
	query := `
		INSERT INTO user_images (id, user_id, image_url, is_primary, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + imageColumns
	args := []any{uuid.New(), userID, imageURL, isPrimary}

	var img models.UserImage
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		return sqlx.GetContext(ctx, tx, &img, query, args...)
	})

	logQuery(query, args, img.ID, err)

	if err != nil {
		return nil, err
	}
	return &img, nil
}

// GetByID returns the image, or nil.
func (r *ImageRepository) GetByID(ctx context.Context, imageID uuid.UUID) (*models.UserImage, error) {
	query := `SELECT ` + imageColumns + ` FROM user_images WHERE id = $1`

	var img models.UserImage
	found, err := getOne(ctx, r.querier(ctx), &img, query, imageID)

	logQuery(query, []any{imageID}, found, err)

	if err != nil || !found {
		return nil, err
	}
	return &img, nil
}

// ListByUser returns the images of userID.
func (r *ImageRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.UserImage, error) {
	query := `SELECT ` + imageColumns + ` FROM user_images WHERE user_id = $1`

	images := []models.UserImage{}
	err := sqlx.SelectContext(ctx, r.querier(ctx), &images, query, userID)

	logQuery(query, []any{userID}, len(images), err)

	if err != nil {
		return nil, err
	}
	return images, nil
}

// UnsetPrimary clears the primary flag on every image of userID and returns
// how many images were changed.
func (r *ImageRepository) UnsetPrimary(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `UPDATE user_images SET is_primary = FALSE WHERE user_id = $1 AND is_primary`

	var rowsAffected int64
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query, userID)
		if err != nil {
			return err
		}
		rowsAffected, err = res.RowsAffected()
		return err
	})

	logQuery(query, []any{userID}, rowsAffected, err)

	if err != nil {
		return 0, err
	}
	return rowsAffected, nil
}

// DeleteForUser removes the image if it belongs to userID and reports
// whether it did.
func (r *ImageRepository) DeleteForUser(ctx context.Context, imageID, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM user_images WHERE id = $1 AND user_id = $2`

	var rowsAffected int64
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query, imageID, userID)
		if err != nil {
			return err
		}
		rowsAffected, err = res.RowsAffected()
		return err
	})

	logQuery(query, []any{imageID, userID}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
