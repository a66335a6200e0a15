package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user record in the database
type User struct {
	ID             uuid.UUID `json:"id" db:"id"`                           // Primary key
	Email          string    `json:"email" db:"email"`                     // Unique login email
	HashedPassword string    `json:"-" db:"hashed_password"`               // bcrypt hash, never serialized
	IsActive       bool      `json:"is_active" db:"is_active"`             // Inactive users cannot log in
	IsSuperuser    bool      `json:"is_superuser" db:"is_superuser"`       // Grants the user management routes
	IsVerified     bool      `json:"is_verified" db:"is_verified"`         // Email ownership confirmed
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`           // Last update timestamp
}

// UserPatch is a partial update of a user row. Unset fields are left untouched.
type UserPatch struct {
	Email          Optional[string]
	HashedPassword Optional[string]
	IsActive       Optional[bool]
	IsSuperuser    Optional[bool]
	IsVerified     Optional[bool]
}

// Assignments lists the columns to update.
func (p UserPatch) Assignments() []Assignment {
	var a []Assignment
	a = assign(a, "email", p.Email)
	a = assign(a, "hashed_password", p.HashedPassword)
	a = assign(a, "is_active", p.IsActive)
	a = assign(a, "is_superuser", p.IsSuperuser)
	a = assign(a, "is_verified", p.IsVerified)
	return a
}

// UserRead is the public representation of a user
// swagger:model UserRead
type UserRead struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	IsVerified  bool      `json:"is_verified"`
}

// NewUserRead maps a stored user to its public representation.
func NewUserRead(u *User) UserRead {
	return UserRead{
		ID:          u.ID,
		Email:       u.Email,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		IsVerified:  u.IsVerified,
	}
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email,max=320"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`
}

// BearerResponse is returned by a successful login
// swagger:model BearerResponse
type BearerResponse struct {
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`
	// example: bearer
	TokenType string `json:"token_type"`
}

// EmailRequest carries an email for forgot-password and request-verify-token
// swagger:model EmailRequest
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest represents the JSON body for password reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// VerifyRequest represents the JSON body for email verification
// swagger:model VerifyRequest
type VerifyRequest struct {
	Token string `json:"token" validate:"required"`
}

// UserUpdate is the body of PATCH /users/me and, with the privileged
// flags, of PATCH /users/{id}
// swagger:model UserUpdate
type UserUpdate struct {
	Email       Optional[string] `json:"email" validate:"omitempty,email,max=320"`
	Password    Optional[string] `json:"password"`
	IsActive    Optional[bool]   `json:"is_active"`
	IsSuperuser Optional[bool]   `json:"is_superuser"`
	IsVerified  Optional[bool]   `json:"is_verified"`
}

// DetailResponse is the generic message/error body
// swagger:model DetailResponse
type DetailResponse struct {
	// example: Ad not found
	Detail string `json:"detail"`
}

// StatusResponse is returned by the root liveness endpoint
// swagger:model StatusResponse
type StatusResponse struct {
	// example: online
	Status  string `json:"status"`
	Message string `json:"message"`
}
