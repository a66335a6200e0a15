package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/roommate-service/internal/models"
)

const adColumns = `ad_id, owner_id, title, description, age_requirements, nationality, budget,
	number_of_roommates, gender, bad_habits, cleanliness, character, lifestyle`

// AdRepository handles ad persistence.
type AdRepository struct {
	base
}

// NewAdRepository creates an AdRepository. sessionGetter may be nil.
func NewAdRepository(db *sqlx.DB, sessionGetter SessionGetter) *AdRepository {
	return &AdRepository{base{db: db, sessionGetter: sessionGetter}}
}

// Create inserts a new ad and returns it with its generated id.
func (r *AdRepository) Create(ctx context.Context, in models.AdCreate) (*models.Ad, error) {
	query := `
		INSERT INTO ads (` + adColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + adColumns
	args := []any{
		uuid.New(), in.OwnerID, in.Title, in.Description, in.AgeRequirements, in.Nationality, in.Budget,
		in.NumberOfRoommates, in.Gender, in.BadHabits, in.Cleanliness, in.Character, in.Lifestyle,
	}

	var ad models.Ad
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		return sqlx.GetContext(ctx, tx, &ad, query, args...)
	})

	logQuery(query, args, ad.AdID, err)

	if err != nil {
		return nil, err
	}
	return &ad, nil
}

// GetByID returns the ad, or nil if it does not exist.
func (r *AdRepository) GetByID(ctx context.Context, adID uuid.UUID) (*models.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads WHERE ad_id = $1`

	var ad models.Ad
	found, err := getOne(ctx, r.querier(ctx), &ad, query, adID)

	logQuery(query, []any{adID}, found, err)

	if err != nil || !found {
		return nil, err
	}
	return &ad, nil
}

// List returns every ad.
func (r *AdRepository) List(ctx context.Context) ([]models.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads`

	ads := []models.Ad{}
	err := sqlx.SelectContext(ctx, r.querier(ctx), &ads, query)

	logQuery(query, nil, len(ads), err)

	if err != nil {
		return nil, err
	}
	return ads, nil
}

// ListByOwner returns the ads of one owner.
func (r *AdRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads WHERE owner_id = $1`

	ads := []models.Ad{}
	err := sqlx.SelectContext(ctx, r.querier(ctx), &ads, query, ownerID)

	logQuery(query, []any{ownerID}, len(ads), err)

	if err != nil {
		return nil, err
	}
	return ads, nil
}

// Update applies the fields set in patch and returns the updated ad, or nil
// if it does not exist.
func (r *AdRepository) Update(ctx context.Context, adID uuid.UUID, patch models.AdUpdate) (*models.Ad, error) {
	assignments := patch.Assignments()
	if len(assignments) == 0 {
		return r.GetByID(ctx, adID)
	}

	query, args := buildUpdate("ads", assignments, "", "ad_id", adID, adColumns)

	var (
		ad    models.Ad
		found bool
	)
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		found, err = getOne(ctx, tx, &ad, query, args...)
		return err
	})

	logQuery(query, args, found, err)

	if err != nil || !found {
		return nil, err
	}
	return &ad, nil
}

// Delete removes the ad and reports whether it existed.
func (r *AdRepository) Delete(ctx context.Context, adID uuid.UUID) (bool, error) {
	query := `DELETE FROM ads WHERE ad_id = $1`

	var rowsAffected int64
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query, adID)
		if err != nil {
			return err
		}
		rowsAffected, err = res.RowsAffected()
		return err
	})

	logQuery(query, []any{adID}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
