package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile represents a row of user_profiles. One profile per user.
// swagger:model UserProfile
type UserProfile struct {
	ID               uuid.UUID `json:"id" db:"id"`
	UserID           uuid.UUID `json:"user_id" db:"user_id"`
	FirstName        *string   `json:"first_name" db:"first_name"`
	LastName         *string   `json:"last_name" db:"last_name"`
	Bio              *string   `json:"bio" db:"bio"`
	Gender           *Gender   `json:"gender" db:"gender"`
	BirthDate        *Date     `json:"birth_date" db:"birth_date"`
	City             *string   `json:"city" db:"city"`
	Country          *string   `json:"country" db:"country"`
	Latitude         *float64  `json:"latitude" db:"latitude"`
	Longitude        *float64  `json:"longitude" db:"longitude"`
	LookingForGender *Gender   `json:"looking_for_gender" db:"looking_for_gender"`
	PreferredAgeMin  *int      `json:"preferred_age_min" db:"preferred_age_min"`
	PreferredAgeMax  *int      `json:"preferred_age_max" db:"preferred_age_max"`
	ImageURL         *string   `json:"image_url" db:"image_url"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// ProfileCreate is the body of POST /profiles. The owner is the caller.
// swagger:model ProfileCreate
type ProfileCreate struct {
	FirstName        *string  `json:"first_name" validate:"omitempty,max=50"`
	LastName         *string  `json:"last_name" validate:"omitempty,max=50"`
	Bio              *string  `json:"bio" validate:"omitempty,max=500"`
	Gender           *Gender  `json:"gender" validate:"omitempty,oneof=male female other"`
	BirthDate        *Date    `json:"birth_date"`
	City             *string  `json:"city" validate:"omitempty,max=100"`
	Country          *string  `json:"country" validate:"omitempty,max=100"`
	Latitude         *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude        *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	LookingForGender *Gender  `json:"looking_for_gender" validate:"omitempty,oneof=male female other"`
	PreferredAgeMin  *int     `json:"preferred_age_min" validate:"omitempty,min=18,max=120"`
	PreferredAgeMax  *int     `json:"preferred_age_max" validate:"omitempty,min=18,max=120"`
	ImageURL         *string  `json:"image_url" validate:"omitempty,max=2048"`
}

// ProfileUpdate is the body of PUT /profiles/me. Only keys present in the
// request are applied; an explicit null clears the column.
// swagger:model ProfileUpdate
type ProfileUpdate struct {
	FirstName        Optional[string]  `json:"first_name" validate:"omitempty,max=50"`
	LastName         Optional[string]  `json:"last_name" validate:"omitempty,max=50"`
	Bio              Optional[string]  `json:"bio" validate:"omitempty,max=500"`
	Gender           Optional[Gender]  `json:"gender" validate:"omitempty,oneof=male female other"`
	BirthDate        Optional[Date]    `json:"birth_date"`
	City             Optional[string]  `json:"city" validate:"omitempty,max=100"`
	Country          Optional[string]  `json:"country" validate:"omitempty,max=100"`
	Latitude         Optional[float64] `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude        Optional[float64] `json:"longitude" validate:"omitempty,min=-180,max=180"`
	LookingForGender Optional[Gender]  `json:"looking_for_gender" validate:"omitempty,oneof=male female other"`
	PreferredAgeMin  Optional[int]     `json:"preferred_age_min" validate:"omitempty,min=18,max=120"`
	PreferredAgeMax  Optional[int]     `json:"preferred_age_max" validate:"omitempty,min=18,max=120"`
	ImageURL         Optional[string]  `json:"image_url" validate:"omitempty,max=2048"`
}

// Assignments lists the columns to update.
func (p ProfileUpdate) Assignments() []Assignment {
	var a []Assignment
	a = assign(a, "first_name", p.FirstName)
	a = assign(a, "last_name", p.LastName)
	a = assign(a, "bio", p.Bio)
	a = assign(a, "gender", p.Gender)
	a = assign(a, "birth_date", p.BirthDate)
	a = assign(a, "city", p.City)
	a = assign(a, "country", p.Country)
	a = assign(a, "latitude", p.Latitude)
	a = assign(a, "longitude", p.Longitude)
	a = assign(a, "looking_for_gender", p.LookingForGender)
	a = assign(a, "preferred_age_min", p.PreferredAgeMin)
	a = assign(a, "preferred_age_max", p.PreferredAgeMax)
	a = assign(a, "image_url", p.ImageURL)
	return a
}
