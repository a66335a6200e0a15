package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/roommate-service/internal/models"
)

const profileColumns = `id, user_id, first_name, last_name, bio, gender, birth_date, city, country,
	latitude, longitude, looking_for_gender, preferred_age_min, preferred_age_max, image_url,
	created_at, updated_at`

// ProfileRepository handles user profile persistence.
type ProfileRepository struct {
	base
}

// NewProfileRepository creates a ProfileRepository. sessionGetter may be nil.
func NewProfileRepository(db *sqlx.DB, sessionGetter SessionGetter) *ProfileRepository {
	return &ProfileRepository{base{db: db, sessionGetter: sessionGetter}}
}

// Create inserts the profile of userID. A second profile for the same user
// fails with ErrConstraintViolation.
func (r *ProfileRepository) Create(ctx context.Context, userID uuid.UUID, in models.ProfileCreate) (*models.UserProfile, error) {
	query := `
		INSERT INTO user_profiles (id, user_id, first_name, last_name, bio, gender, birth_date, city, country,
			latitude, longitude, looking_for_gender, preferred_age_min, preferred_age_max, image_url,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING ` + profileColumns
	args := []any{
		uuid.New(), userID, in.FirstName, in.LastName, in.Bio, in.Gender, in.BirthDate, in.City, in.Country,
		in.Latitude, in.Longitude, in.LookingForGender, in.PreferredAgeMin, in.PreferredAgeMax, in.ImageURL,
	}

	var p models.UserProfile
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		return sqlx.GetContext(ctx, tx, &p, query, args...)
	})

	logQuery(query, args, p.ID, err)

	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID returns the profile with the given profile id, or nil.
func (r *ProfileRepository) GetByID(ctx context.Context, profileID uuid.UUID) (*models.UserProfile, error) {
	return r.getBy(ctx, "id", profileID)
}

// GetByUserID returns the profile owned by userID, or nil.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	return r.getBy(ctx, "user_id", userID)
}

func (r *ProfileRepository) getBy(ctx context.Context, column string, id uuid.UUID) (*models.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE ` + column + ` = $1`

	var p models.UserProfile
	found, err := getOne(ctx, r.querier(ctx), &p, query, id)

	logQuery(query, []any{id}, found, err)

	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

// List returns every profile.
func (r *ProfileRepository) List(ctx context.Context) ([]models.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles`

	profiles := []models.UserProfile{}
	err := sqlx.SelectContext(ctx, r.querier(ctx), &profiles, query)

	logQuery(query, nil, len(profiles), err)

	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// UpdateByUserID applies the fields set in patch to the profile of userID
// and returns it, or nil if the user has no profile.
func (r *ProfileRepository) UpdateByUserID(ctx context.Context, userID uuid.UUID, patch models.ProfileUpdate) (*models.UserProfile, error) {
	assignments := patch.Assignments()
	if len(assignments) == 0 {
		return r.GetByUserID(ctx, userID)
	}

	query, args := buildUpdate("user_profiles", assignments, "updated_at = NOW()", "user_id", userID, profileColumns)

	var (
		p     models.UserProfile
		found bool
	)
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		found, err = getOne(ctx, tx, &p, query, args...)
		return err
	})

	logQuery(query, args, found, err)

	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

// DeleteByUserID removes the profile of userID and reports whether it existed.
func (r *ProfileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM user_profiles WHERE user_id = $1`

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
		return false, err
	}
	return rowsAffected > 0, nil
}
