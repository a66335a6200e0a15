package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-service/internal/jwt"
	"github.com/sbilibin2017/roommate-service/internal/models"
	"github.com/sbilibin2017/roommate-service/internal/repositories"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	users  *MockUserStore
	tokens *MockTokenStore
	jwt    *MockTokener
	kafka  *MockKafkaWriter
}

func newAuthService(t *testing.T) (*AuthService, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		users:  NewMockUserStore(ctrl),
		tokens: NewMockTokenStore(ctrl),
		jwt:    NewMockTokener(ctrl),
		kafka:  NewMockKafkaWriter(ctrl),
	}
	svc := NewAuthService(m.users, m.tokens, m.jwt, m.kafka, AuthOptions{
		ResetPasswordTokenTTL: time.Hour,
		VerificationTokenTTL:  30 * time.Minute,
		FromEmail:             "noreply@example.com",
		FromName:              "Roommates",
	})
	return svc, m
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// expectEvent captures the single event written to Kafka.
func expectEvent(m authMocks, event *models.UserEvent) {
	m.kafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			if len(msgs) == 1 {
				_ = json.Unmarshal(msgs[0].Value, event)
			}
			return nil
		})
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name     string
		password string
		setup    func(m authMocks)
		wantErr  error
	}{
		{
			name:     "successful registration",
			password: "password123",
			setup: func(m authMocks) {
				m.users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
				m.users.EXPECT().Create(gomock.Any(), "alice@example.com", gomock.Any()).
					DoAndReturn(func(_ context.Context, email, hash string) (*models.User, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("password123")))
						return &models.User{ID: uuid.New(), Email: email, IsActive: true}, nil
					})
				m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "user already exists",
			password: "password123",
			setup: func(m authMocks) {
				m.users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(&models.User{ID: uuid.New()}, nil)
			},
			wantErr: ErrUserAlreadyExists,
		},
		{
			name:     "concurrent registration",
			password: "password123",
			setup: func(m authMocks) {
				m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &repositories.ConstraintError{Code: "23505"})
			},
			wantErr: ErrUserAlreadyExists,
		},
		{
			name:     "short password",
			password: "short",
			setup:    func(m authMocks) {},
			wantErr:  ErrInvalidPassword,
		},
		{
			name:     "store error",
			password: "password123",
			setup: func(m authMocks) {
				m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			user, err := svc.Register(context.Background(), "alice@example.com", tt.password)
			if tt.wantErr != nil {
				assert.Nil(t, user)
				if errors.Is(tt.wantErr, ErrUserAlreadyExists) || errors.Is(tt.wantErr, ErrInvalidPassword) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice@example.com", user.Email)
		})
	}
}

func TestAuthService_Register_WithoutKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := NewMockUserStore(ctrl)
	svc := NewAuthService(users, NewMockTokenStore(ctrl), NewMockTokener(ctrl), nil, AuthOptions{})

	users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
	users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.User{ID: uuid.New()}, nil)

	_, err := svc.Register(context.Background(), "bob@example.com", "password123")
	assert.NoError(t, err)
}

func TestAuthService_Register_PublishFailureIgnored(t *testing.T) {
	svc, m := newAuthService(t)

	m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.User{ID: uuid.New()}, nil)
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	_, err := svc.Register(context.Background(), "bob@example.com", "password123")
	assert.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	active := &models.User{ID: userID, Email: "alice@example.com", HashedPassword: hashed(t, "password123"), IsActive: true}
	inactive := &models.User{ID: userID, Email: "alice@example.com", HashedPassword: hashed(t, "password123")}

	tests := []struct {
		name     string
		password string
		user     *models.User
		wantErr  error
	}{
		{"success", "password123", active, nil},
		{"wrong password", "wrong-password", active, ErrInvalidCredentials},
		{"unknown user", "password123", nil, ErrInvalidCredentials},
		{"inactive user", "password123", inactive, ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			m.users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(tt.user, nil)
			if tt.wantErr == nil {
				m.jwt.EXPECT().Generate(gomock.Any(), userID).Return("token", nil)
			}

			token, err := svc.Login(context.Background(), "alice@example.com", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token", token)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	svc, m := newAuthService(t)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	claims := &jwt.Claims{
		UserID: uuid.New(),
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        "jti-1",
			ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	m.jwt.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
	m.tokens.EXPECT().Revoke(gomock.Any(), "jti-1", time.Hour).Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), "token"))

	m.jwt.EXPECT().GetClaims(gomock.Any(), "bad").Return(nil, errors.New("invalid"))
	assert.ErrorIs(t, svc.Logout(context.Background(), "bad"), ErrInvalidCredentials)
}

func TestAuthService_Authenticate(t *testing.T) {
	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID, RegisteredClaims: gojwt.RegisteredClaims{ID: "jti"}}

	tests := []struct {
		name    string
		setup   func(m authMocks)
		wantErr error
	}{
		{
			name: "active user",
			setup: func(m authMocks) {
				m.jwt.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
				m.tokens.EXPECT().IsRevoked(gomock.Any(), "jti").Return(false, nil)
				m.users.EXPECT().GetByID(gomock.Any(), userID).Return(&models.User{ID: userID, IsActive: true}, nil)
			},
		},
		{
			name: "invalid token",
			setup: func(m authMocks) {
				m.jwt.EXPECT().GetClaims(gomock.Any(), "token").Return(nil, errors.New("expired"))
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "revoked token",
			setup: func(m authMocks) {
				m.jwt.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
				m.tokens.EXPECT().IsRevoked(gomock.Any(), "jti").Return(true, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "deleted user",
			setup: func(m authMocks) {
				m.jwt.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
				m.tokens.EXPECT().IsRevoked(gomock.Any(), "jti").Return(false, nil)
				m.users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "inactive user",
			setup: func(m authMocks) {
				m.jwt.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
				m.tokens.EXPECT().IsRevoked(gomock.Any(), "jti").Return(false, nil)
				m.users.EXPECT().GetByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
			},
			wantErr: ErrUserInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			user, err := svc.Authenticate(context.Background(), "token")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, user.ID)
		})
	}
}

func TestAuthService_ForgotPassword(t *testing.T) {
	t.Run("active user gets a token", func(t *testing.T) {
		svc, m := newAuthService(t)
		user := &models.User{ID: uuid.New(), Email: "alice@example.com", IsActive: true}

		var saved string
		m.users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
		m.tokens.EXPECT().Save(gomock.Any(), PurposeResetPassword, gomock.Any(), user.ID, time.Hour).
			DoAndReturn(func(_ context.Context, _, token string, _ uuid.UUID, _ time.Duration) error {
				saved = token
				return nil
			})
		var event models.UserEvent
		expectEvent(m, &event)

		require.NoError(t, svc.ForgotPassword(context.Background(), "alice@example.com"))
		assert.NotEmpty(t, saved)
		assert.Equal(t, models.EventUserForgotPassword, event.Type)
		assert.Equal(t, saved, event.Token)
		assert.Equal(t, user.ID.String(), event.UserID)
		assert.Equal(t, "noreply@example.com", event.FromEmail)
	})

	t.Run("unknown user is ignored", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)

		assert.NoError(t, svc.ForgotPassword(context.Background(), "ghost@example.com"))
	})

	t.Run("inactive user is ignored", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(&models.User{ID: uuid.New()}, nil)

		assert.NoError(t, svc.ForgotPassword(context.Background(), "alice@example.com"))
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().Consume(gomock.Any(), PurposeResetPassword, "tok").Return(&userID, nil)
		m.users.EXPECT().GetByID(gomock.Any(), userID).Return(&models.User{ID: userID, IsActive: true}, nil)
		m.users.EXPECT().Update(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID, patch models.UserPatch) (*models.User, error) {
				require.NotNil(t, patch.HashedPassword.Get())
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*patch.HashedPassword.Get()), []byte("new-password")))
				assert.False(t, patch.Email.IsSet())
				return &models.User{ID: id, IsActive: true}, nil
			})
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		user, err := svc.ResetPassword(context.Background(), "tok", "new-password")
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("bad token", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().Consume(gomock.Any(), PurposeResetPassword, "tok").Return(nil, nil)

		_, err := svc.ResetPassword(context.Background(), "tok", "new-password")
		assert.ErrorIs(t, err, ErrBadToken)
	})

	t.Run("inactive user", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().Consume(gomock.Any(), PurposeResetPassword, "tok").Return(&userID, nil)
		m.users.EXPECT().GetByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)

		_, err := svc.ResetPassword(context.Background(), "tok", "new-password")
		assert.ErrorIs(t, err, ErrBadToken)
	})

	t.Run("short password keeps the token", func(t *testing.T) {
		svc, _ := newAuthService(t)

		_, err := svc.ResetPassword(context.Background(), "tok", "short")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})
}

func TestAuthService_RequestVerifyToken(t *testing.T) {
	t.Run("unverified user", func(t *testing.T) {
		svc, m := newAuthService(t)
		user := &models.User{ID: uuid.New(), Email: "alice@example.com", IsActive: true}

		m.users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
		m.tokens.EXPECT().Save(gomock.Any(), PurposeVerify, gomock.Any(), user.ID, 30*time.Minute).Return(nil)
		var event models.UserEvent
		expectEvent(m, &event)

		require.NoError(t, svc.RequestVerifyToken(context.Background(), "alice@example.com"))
		assert.Equal(t, models.EventUserRequestVerify, event.Type)
		assert.NotEmpty(t, event.Token)
	})

	t.Run("verified user is ignored", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).
			Return(&models.User{ID: uuid.New(), IsActive: true, IsVerified: true}, nil)

		assert.NoError(t, svc.RequestVerifyToken(context.Background(), "alice@example.com"))
	})

	t.Run("token store error", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).
			Return(&models.User{ID: uuid.New(), IsActive: true}, nil)
		m.tokens.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("redis down"))

		assert.Error(t, svc.RequestVerifyToken(context.Background(), "alice@example.com"))
	})
}

func TestAuthService_Verify(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().Consume(gomock.Any(), PurposeVerify, "tok").Return(&userID, nil)
		m.users.EXPECT().GetByID(gomock.Any(), userID).Return(&models.User{ID: userID, IsActive: true}, nil)
		m.users.EXPECT().Update(gomock.Any(), userID, models.UserPatch{IsVerified: models.Some(true)}).
			Return(&models.User{ID: userID, IsActive: true, IsVerified: true}, nil)
		var event models.UserEvent
		expectEvent(m, &event)

		user, err := svc.Verify(context.Background(), "tok")
		require.NoError(t, err)
		assert.True(t, user.IsVerified)
		assert.Equal(t, models.EventUserVerified, event.Type)
		assert.Empty(t, event.Token)
	})

	t.Run("already verified", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().Consume(gomock.Any(), PurposeVerify, "tok").Return(&userID, nil)
		m.users.EXPECT().GetByID(gomock.Any(), userID).Return(&models.User{ID: userID, IsVerified: true}, nil)

		_, err := svc.Verify(context.Background(), "tok")
		assert.ErrorIs(t, err, ErrUserAlreadyVerified)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().Consume(gomock.Any(), PurposeVerify, "tok").Return(&userID, nil)
		m.users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		_, err := svc.Verify(context.Background(), "tok")
		assert.ErrorIs(t, err, ErrBadToken)
	})
}

func TestNewToken(t *testing.T) {
	a, err := newToken()
	require.NoError(t, err)
	b, err := newToken()
	require.NoError(t, err)

	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
}
