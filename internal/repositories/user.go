package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/roommate-service/internal/models"
)

const userColumns = `id, email, hashed_password, is_active, is_superuser, is_verified, created_at, updated_at`

const redacted = "[REDACTED]"

// UserRepository is the storage adapter of the auth layer.
type UserRepository struct {
	base
}

// NewUserRepository creates a UserRepository. sessionGetter may be nil.
func NewUserRepository(db *sqlx.DB, sessionGetter SessionGetter) *UserRepository {
	return &UserRepository{base{db: db, sessionGetter: sessionGetter}}
}

// GetByID returns the user, or nil.
func (r *UserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var u models.User
	found, err := getOne(ctx, r.querier(ctx), &u, query, userID)

	logQuery(query, []any{userID}, found, err)

	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks the user up case-insensitively, returning nil if absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`

	var u models.User
	found, err := getOne(ctx, r.querier(ctx), &u, query, email)

	logQuery(query, []any{email}, found, err)

	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

// Create inserts an active, unverified, non-superuser account. A taken
// email fails with ErrConstraintViolation.
func (r *UserRepository) Create(ctx context.Context, email, hashedPassword string) (*models.User, error) {
	query := `
		INSERT INTO users (id, email, hashed_password, is_active, is_superuser, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, FALSE, FALSE, NOW(), NOW())
		RETURNING ` + userColumns
	id := uuid.New()

	var u models.User
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		return sqlx.GetContext(ctx, tx, &u, query, id, email, hashedPassword)
	})

	logQuery(query, []any{id, email, redacted}, u.ID, err)

	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Update applies the fields set in patch and returns the user, or nil if
// no row matched.
func (r *UserRepository) Update(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (*models.User, error) {
	assignments := patch.Assignments()
	if len(assignments) == 0 {
		return r.GetByID(ctx, userID)
	}

	query, args := buildUpdate("users", assignments, "updated_at = NOW()", "id", userID, userColumns)

	var (
		u     models.User
		found bool
	)
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		found, err = getOne(ctx, tx, &u, query, args...)
		return err
	})

	logQuery(query, redactArgs(assignments, args), found, err)

	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

// Delete removes the user and reports whether it existed.
func (r *UserRepository) Delete(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM users WHERE id = $1`

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

// redactArgs masks the password hash in the arguments of an update.
func redactArgs(assignments []models.Assignment, args []any) []any {
	out := make([]any, len(args))
	copy(out, args)
	for i, a := range assignments {
		if a.Column == "hashed_password" {
			out[i] = redacted
		}
	}
	return out
}
