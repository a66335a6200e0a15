package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/roommate-service/internal/logger"
)

const (
	authTokenPrefix = "auth_token:"
	revokedPrefix   = "revoked_jti:"
)

// AuthTokenRepository stores one-time reset/verification tokens and the
// revoked access token ids in Redis.
type AuthTokenRepository struct {
	client redis.UniversalClient
}

// NewAuthTokenRepository creates an AuthTokenRepository.
func NewAuthTokenRepository(client redis.UniversalClient) *AuthTokenRepository {
	return &AuthTokenRepository{client: client}
}

func tokenKey(purpose, token string) string {
	return authTokenPrefix + purpose + ":" + token
}

// Save stores token for userID under purpose until ttl elapses.
func (r *AuthTokenRepository) Save(ctx context.Context, purpose, token string, userID uuid.UUID, ttl time.Duration) error {
	err := r.client.Set(ctx, tokenKey(purpose, token), userID.String(), ttl).Err()

	logger.Log.Debugw("token saved", "purpose", purpose, "user_id", userID, "ttl", ttl, "error", err)

	return err
}

// Consume deletes the token and returns its user id. A token can be
// consumed once; unknown or expired tokens yield nil.
func (r *AuthTokenRepository) Consume(ctx context.Context, purpose, token string) (*uuid.UUID, error) {
	val, err := r.client.GetDel(ctx, tokenKey(purpose, token)).Result()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("token not found", "purpose", purpose)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return nil, err
	}

	logger.Log.Debugw("token consumed", "purpose", purpose, "user_id", userID)

	return &userID, nil
}

// Revoke marks an access token id as revoked for ttl, normally the token's
// remaining lifetime.
func (r *AuthTokenRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revokedPrefix+jti, 1, ttl).Err()
}

// IsRevoked reports whether the access token id was revoked.
func (r *AuthTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
