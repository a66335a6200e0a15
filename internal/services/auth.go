package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-service/internal/jwt"
	"github.com/sbilibin2017/roommate-service/internal/logger"
	"github.com/sbilibin2017/roommate-service/internal/models"
	"github.com/sbilibin2017/roommate-service/internal/repositories"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrBadToken            = errors.New("bad token")
	ErrUserAlreadyVerified = errors.New("user already verified")
	ErrUserInactive        = errors.New("user inactive")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrUserNotFound        = errors.New("user not found")
)

// Token purposes in the token store.
const (
	PurposeResetPassword = "reset_password"
	PurposeVerify        = "verify"
)

// UserStore is the storage adapter for users.
type UserStore interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, email, hashedPassword string) (*models.User, error)
	Update(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, userID uuid.UUID) (bool, error)
}

// TokenStore keeps one-time tokens and revoked access token ids.
type TokenStore interface {
	Save(ctx context.Context, purpose, token string, userID uuid.UUID, ttl time.Duration) error
	Consume(ctx context.Context, purpose, token string) (*uuid.UUID, error)
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Tokener issues and parses access tokens.
type Tokener interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
	GetClaims(ctx context.Context, token string) (*jwt.Claims, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AuthOptions holds the token lifetimes and the sender hints put on events.
type AuthOptions struct {
	ResetPasswordTokenTTL time.Duration
	VerificationTokenTTL  time.Duration
	FromEmail             string
	FromName              string
}

// AuthService handles the account lifecycle: registration, login, logout,
// password reset and email verification.
type AuthService struct {
	users       UserStore
	tokens      TokenStore
	jwt         Tokener
	kafkaWriter KafkaWriter
	opts        AuthOptions
	now         func() time.Time
}

// NewAuthService creates a new AuthService instance. kafkaWriter may be nil.
func NewAuthService(users UserStore, tokens TokenStore, jwt Tokener, kafkaWriter KafkaWriter, opts AuthOptions) *AuthService {
	return &AuthService{
		users:       users,
		tokens:      tokens,
		jwt:         jwt,
		kafkaWriter: kafkaWriter,
		opts:        opts,
		now:         time.Now,
	}
}

// publishEvent publishes a user event to Kafka. Failures are logged only.
func (svc *AuthService) publishEvent(ctx context.Context, eventType string, user *models.User, token string) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", eventType, "user_id", user.ID)
		return
	}

	event := models.UserEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: svc.now().Unix(),
		UserID:    user.ID.String(),
		Email:     user.Email,
		Token:     token,
		FromEmail: svc.opts.FromEmail,
		FromName:  svc.opts.FromName,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal user event for Kafka", "type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish user event to Kafka", "type", eventType, "user_id", user.ID, "error", err)
	} else {
		logger.Log.Infow("User event published to Kafka", "type", eventType, "user_id", user.ID)
	}
}

// Register creates an active, unverified account.
func (svc *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	existing, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashed, err := hashPassword(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.users.Create(ctx, email, hashed)
	if repositories.IsUniqueViolation(err) {
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	svc.publishEvent(ctx, models.EventUserRegistered, user, "")

	return user, nil
}

// Login authenticates a user by email and password and returns an access
// token. Unknown emails, wrong passwords and inactive users all yield
// ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "email", email)
		return "", ErrInvalidCredentials
	}

	if !checkPassword(user.HashedPassword, password) {
		logger.Log.Infow("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}
	if !user.IsActive {
		logger.Log.Infow("inactive user login", "user_id", user.ID)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Logout revokes the access token until it would have expired.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := svc.jwt.GetClaims(ctx, token)
	if err != nil {
		return ErrInvalidCredentials
	}

	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(svc.now())
	}

	if err := svc.tokens.Revoke(ctx, claims.ID, ttl); err != nil {
		logger.Log.Errorw("failed to revoke token", "user_id", claims.UserID, "err", err)
		return err
	}
	return nil
}

// Authenticate resolves the user behind an access token. The token must be
// valid and not revoked, and the user must exist and be active.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := svc.jwt.GetClaims(ctx, token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	revoked, err := svc.tokens.IsRevoked(ctx, claims.ID)
	if err != nil {
		logger.Log.Errorw("failed to check token revocation", "err", err)
		return nil, err
	}
	if revoked {
		return nil, ErrInvalidCredentials
	}

	user, err := svc.users.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", claims.UserID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

// ForgotPassword issues a reset token for an active user. Unknown and
// inactive users are ignored so callers cannot probe for accounts.
func (svc *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil || !user.IsActive {
		return nil
	}

	token, err := svc.issueToken(ctx, PurposeResetPassword, user.ID, svc.opts.ResetPasswordTokenTTL)
	if err != nil {
		return err
	}

	svc.publishEvent(ctx, models.EventUserForgotPassword, user, token)

	return nil
}

// ResetPassword consumes a reset token and sets the new password.
func (svc *AuthService) ResetPassword(ctx context.Context, token, password string) (*models.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	user, err := svc.consumeToken(ctx, PurposeResetPassword, token)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrBadToken
	}

	hashed, err := hashPassword(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	updated, err := svc.users.Update(ctx, user.ID, models.UserPatch{HashedPassword: models.Some(hashed)})
	if err != nil {
		logger.Log.Errorw("failed to update password", "user_id", user.ID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrBadToken
	}

	svc.publishEvent(ctx, models.EventUserResetPassword, updated, "")

	return updated, nil
}

// RequestVerifyToken issues a verification token for an active, unverified
// user. Other users are ignored.
func (svc *AuthService) RequestVerifyToken(ctx context.Context, email string) error {
	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil || !user.IsActive || user.IsVerified {
		return nil
	}

	token, err := svc.issueToken(ctx, PurposeVerify, user.ID, svc.opts.VerificationTokenTTL)
	if err != nil {
		return err
	}

	svc.publishEvent(ctx, models.EventUserRequestVerify, user, token)

	return nil
}

// Verify consumes a verification token and marks the user verified.
func (svc *AuthService) Verify(ctx context.Context, token string) (*models.User, error) {
	user, err := svc.consumeToken(ctx, PurposeVerify, token)
	if err != nil {
		return nil, err
	}
	if user.IsVerified {
		return nil, ErrUserAlreadyVerified
	}

	updated, err := svc.users.Update(ctx, user.ID, models.UserPatch{IsVerified: models.Some(true)})
	if err != nil {
		logger.Log.Errorw("failed to verify user", "user_id", user.ID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrBadToken
	}

	svc.publishEvent(ctx, models.EventUserVerified, updated, "")

	return updated, nil
}

func (svc *AuthService) issueToken(ctx context.Context, purpose string, userID uuid.UUID, ttl time.Duration) (string, error) {
	token, err := newToken()
	if err != nil {
		logger.Log.Errorw("failed to generate token", "purpose", purpose, "err", err)
		return "", err
	}
	if err := svc.tokens.Save(ctx, purpose, token, userID, ttl); err != nil {
		logger.Log.Errorw("failed to save token", "purpose", purpose, "user_id", userID, "err", err)
		return "", err
	}
	return token, nil
}

// consumeToken returns the user the token was issued for. Unknown, used or
// expired tokens and deleted users yield ErrBadToken.
func (svc *AuthService) consumeToken(ctx context.Context, purpose, token string) (*models.User, error) {
	userID, err := svc.tokens.Consume(ctx, purpose, token)
	if err != nil {
		logger.Log.Errorw("failed to consume token", "purpose", purpose, "err", err)
		return nil, err
	}
	if userID == nil {
		return nil, ErrBadToken
	}

	user, err := svc.users.GetByID(ctx, *userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", *userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrBadToken
	}
	return user, nil
}
