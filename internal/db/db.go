// Package db owns the database engine: it opens the sqlx pool that every
// repository and request session draws from, and carries the DDL applied in
// debug mode.
package db

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// DriverName is the database/sql driver registered by pgx.
const DriverName = "pgx"

//go:embed schema.sql
var schema string

// Options configures the connection pool.
type Options struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to the database, applies the pool limits and verifies the
// connection with a ping.
func Open(ctx context.Context, opts Options) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, DriverName, opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	Configure(db, opts)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

// Configure applies pool limits to an existing handle. Zero values keep the
// database/sql defaults.
func Configure(db *sqlx.DB, opts Options) {
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
}

// CreateSchema creates the tables and indexes if they do not exist yet.
// Production deployments are expected to run migrations instead.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Schema returns the DDL applied by CreateSchema.
func Schema() string {
	return schema
}
