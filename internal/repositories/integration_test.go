//go:build integration

package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/roommate-service/internal/db"
	"github.com/sbilibin2017/roommate-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	conn, err := db.Open(ctx, db.Options{DSN: dsn, MaxOpenConns: 10, MaxIdleConns: 5, ConnMaxLifetime: time.Minute})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.CreateSchema(ctx, conn))
	return conn
}

func TestIntegration_Repositories(t *testing.T) {
	conn := setupPostgres(t)
	ctx := context.Background()

	users := NewUserRepository(conn, nil)
	profiles := NewProfileRepository(conn, nil)
	images := NewImageRepository(conn, nil)
	ads := NewAdRepository(conn, nil)

	user, err := users.Create(ctx, "alice@example.com", "hash")
	require.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsVerified)
	assert.False(t, user.IsSuperuser)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := users.Create(ctx, "ALICE@example.com", "hash")
		assert.ErrorIs(t, err, ErrConstraintViolation)
		assert.True(t, IsUniqueViolation(err))

		found, err := users.GetByEmail(ctx, "Alice@Example.COM")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("one profile per user", func(t *testing.T) {
		first, bio := "Ann", "Hi"
		birth := models.NewDate(1995, time.April, 12)
		p, err := profiles.Create(ctx, user.ID, models.ProfileCreate{FirstName: &first, Bio: &bio, BirthDate: &birth})
		require.NoError(t, err)
		assert.Equal(t, "1995-04-12", p.BirthDate.String())

		_, err = profiles.Create(ctx, user.ID, models.ProfileCreate{})
		assert.ErrorIs(t, err, ErrConstraintViolation)

		updated, err := profiles.UpdateByUserID(ctx, user.ID, models.ProfileUpdate{Bio: models.Some("Likes cats")})
		require.NoError(t, err)
		assert.Equal(t, "Ann", *updated.FirstName)
		assert.Equal(t, "Likes cats", *updated.Bio)

		deleted, err := profiles.DeleteByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		gone, err := profiles.GetByID(ctx, p.ID)
		assert.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("single primary image", func(t *testing.T) {
		_, err := images.Create(ctx, user.ID, "https://cdn/1.jpg", true)
		require.NoError(t, err)

		_, err = images.UnsetPrimary(ctx, user.ID)
		require.NoError(t, err)
		_, err = images.Create(ctx, user.ID, "https://cdn/2.jpg", true)
		require.NoError(t, err)

		list, err := images.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		primaries := 0
		for _, img := range list {
			if img.IsPrimary {
				primaries++
				assert.Equal(t, "https://cdn/2.jpg", img.ImageURL)
			}
		}
		assert.Equal(t, 1, primaries)
	})

	t.Run("ad round trip", func(t *testing.T) {
		budget := 500.0
		ad, err := ads.Create(ctx, models.AdCreate{OwnerID: user.ID, Title: "Room available", Budget: &budget})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, ad.AdID)
		assert.Nil(t, ad.Description)
		assert.Nil(t, ad.Gender)

		got, err := ads.GetByID(ctx, ad.AdID)
		require.NoError(t, err)
		assert.Equal(t, ad, got)

		deleted, err := ads.Delete(ctx, ad.AdID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err = ads.GetByID(ctx, ad.AdID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update missing rows", func(t *testing.T) {
		missing := uuid.New()

		u, err := users.Update(ctx, missing, models.UserPatch{IsVerified: models.Some(true)})
		assert.NoError(t, err)
		assert.Nil(t, u)

		p, err := profiles.UpdateByUserID(ctx, missing, models.ProfileUpdate{Bio: models.Some("x")})
		assert.NoError(t, err)
		assert.Nil(t, p)

		a, err := ads.Update(ctx, missing, models.AdUpdate{Title: models.Some("x")})
		assert.NoError(t, err)
		assert.Nil(t, a)
	})

	t.Run("ad for unknown owner", func(t *testing.T) {
		_, err := ads.Create(ctx, models.AdCreate{OwnerID: uuid.New(), Title: "Room"})
		assert.ErrorIs(t, err, ErrConstraintViolation)
	})
}
