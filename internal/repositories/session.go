package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/roommate-service/internal/logger"
	"github.com/sbilibin2017/roommate-service/internal/models"
)

// ErrConstraintViolation is returned when the database rejects a write
// because of a unique, foreign-key, not-null or check constraint.
var ErrConstraintViolation = errors.New("constraint violation")

// Postgres SQLSTATE codes of integrity constraint violations.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// ConstraintError carries the details of a rejected write. It matches
// ErrConstraintViolation with errors.Is.
type ConstraintError struct {
	Code       string
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s: %s (%s)", ErrConstraintViolation, e.Constraint, e.Code)
	}
	return fmt.Sprintf("%s (%s)", ErrConstraintViolation, e.Code)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

func (e *ConstraintError) Is(target error) bool { return target == ErrConstraintViolation }

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce) && ce.Code == pgUniqueViolation
}

func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgNotNullViolation, pgForeignKeyViolation, pgUniqueViolation, pgCheckViolation:
			return &ConstraintError{Code: pgErr.Code, Constraint: pgErr.ConstraintName, Err: err}
		}
	}
	return err
}

// SessionGetter returns the request-scoped connection stored in ctx, or nil.
type SessionGetter func(ctx context.Context) *sqlx.Conn

type queryer interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
}

type txBeginner interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// base holds what every Postgres repository shares: the pool and the
// accessor for the current request session.
type base struct {
	db            *sqlx.DB
	sessionGetter SessionGetter
}

func (b base) session(ctx context.Context) *sqlx.Conn {
	if b.sessionGetter == nil {
		return nil
	}
	return b.sessionGetter(ctx)
}

// querier runs reads on the request session when there is one.
func (b base) querier(ctx context.Context) queryer {
	if s := b.session(ctx); s != nil {
		return s
	}
	return b.db
}

// withTx runs fn in its own transaction and commits it. Every mutating
// repository method goes through here, so each one is an independent commit.
func (b base) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	var beginner txBeginner = b.db
	if s := b.session(ctx); s != nil {
		beginner = s
	}

	tx, err := beginner.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return translateError(err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", translateError(err))
	}
	return nil
}

// getOne scans a single row into dest and reports whether a row was found.
func getOne(ctx context.Context, q sqlx.QueryerContext, dest any, query string, args ...any) (bool, error) {
	err := sqlx.GetContext(ctx, q, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// buildUpdate renders "UPDATE table SET a = $1, b = $2[, extra] WHERE key = $n RETURNING cols".
func buildUpdate(table string, assignments []models.Assignment, extra, keyColumn string, key any, returning string) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, len(assignments)+1)

	sb.WriteString("UPDATE ")
	sb.WriteString(table)
	sb.WriteString(" SET ")
	for i, a := range assignments {
		if i > 0 {
			sb.WriteString(", ")
		}
		args = append(args, a.Value)
		fmt.Fprintf(&sb, "%s = $%d", a.Column, len(args))
	}
	if extra != "" {
		sb.WriteString(", ")
		sb.WriteString(extra)
	}
	args = append(args, key)
	fmt.Fprintf(&sb, " WHERE %s = $%d RETURNING %s", keyColumn, len(args), returning)

	return sb.String(), args
}

// logQuery logs the statement on a single line.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
