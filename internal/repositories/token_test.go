package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenRepo(t *testing.T) (*AuthTokenRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewAuthTokenRepository(client), mr
}

func TestAuthTokenRepository_SaveConsume(t *testing.T) {
	repo, mr := newTokenRepo(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Save(ctx, "reset", "tok", userID, time.Hour))
	assert.True(t, mr.Exists("auth_token:reset:tok"))

	got, err := repo.Consume(ctx, "verify", "tok")
	assert.NoError(t, err)
	assert.Nil(t, got, "purposes are separate")

	got, err = repo.Consume(ctx, "reset", "tok")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, userID, *got)

	got, err = repo.Consume(ctx, "reset", "tok")
	assert.NoError(t, err)
	assert.Nil(t, got, "token is single use")
}

func TestAuthTokenRepository_Expiry(t *testing.T) {
	repo, mr := newTokenRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "verify", "tok", uuid.New(), time.Minute))
	mr.FastForward(2 * time.Minute)

	got, err := repo.Consume(ctx, "verify", "tok")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestAuthTokenRepository_CorruptValue(t *testing.T) {
	repo, mr := newTokenRepo(t)
	require.NoError(t, mr.Set("auth_token:reset:bad", "not-a-uuid"))

	got, err := repo.Consume(context.Background(), "reset", "bad")
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestAuthTokenRepository_Revoke(t *testing.T) {
	repo, mr := newTokenRepo(t)
	ctx := context.Background()

	revoked, err := repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.Revoke(ctx, "jti-1", time.Hour))
	revoked, err = repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, repo.Revoke(ctx, "jti-2", 0))
	assert.False(t, mr.Exists("revoked_jti:jti-2"))

	mr.FastForward(2 * time.Hour)
	revoked, err = repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestAuthTokenRepository_RedisDown(t *testing.T) {
	repo, mr := newTokenRepo(t)
	mr.Close()

	err := repo.Save(context.Background(), "reset", "tok", uuid.New(), time.Hour)
	assert.Error(t, err)

	_, err = repo.IsRevoked(context.Background(), "jti")
	assert.Error(t, err)
}
