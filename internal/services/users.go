package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-service/internal/logger"
	"github.com/sbilibin2017/roommate-service/internal/models"
	"github.com/sbilibin2017/roommate-service/internal/repositories"
)

// UserService handles user management for the account owner and for
// superusers.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// GetUser returns the user, or nil if it does not exist.
func (svc *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return svc.users.GetByID(ctx, userID)
}

// UpdateUser applies in to user. The is_active, is_superuser and is_verified
// flags are only honoured when privileged is true. Changing the email resets
// is_verified. Null values are treated as absent.
func (svc *UserService) UpdateUser(ctx context.Context, user *models.User, in models.UserUpdate, privileged bool) (*models.User, error) {
	var patch models.UserPatch

	if email := in.Email.Get(); email != nil && !strings.EqualFold(*email, user.Email) {
		existing, err := svc.users.GetByEmail(ctx, *email)
		if err != nil {
			logger.Log.Errorw("failed to check email", "err", err)
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, ErrEmailAlreadyExists
		}
		patch.Email = models.Some(*email)
		patch.IsVerified = models.Some(false)
	}

	if password := in.Password.Get(); password != nil {
		if err := validatePassword(*password); err != nil {
			return nil, err
		}
		hashed, err := hashPassword(*password)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		patch.HashedPassword = models.Some(hashed)
	}

	if privileged {
		if v := in.IsActive.Get(); v != nil {
			patch.IsActive = models.Some(*v)
		}
		if v := in.IsSuperuser.Get(); v != nil {
			patch.IsSuperuser = models.Some(*v)
		}
		if v := in.IsVerified.Get(); v != nil {
			patch.IsVerified = models.Some(*v)
		}
	}

	updated, err := svc.users.Update(ctx, user.ID, patch)
	if repositories.IsUniqueViolation(err) {
		return nil, ErrEmailAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to update user", "user_id", user.ID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	return updated, nil
}

// DeleteUser removes the user.
func (svc *UserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	deleted, err := svc.users.Delete(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", userID, "err", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}
