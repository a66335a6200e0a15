package models

import (
	"github.com/google/uuid"
)

// Ad represents a row of ads and is also the response body of the ad routes.
// swagger:model Ad
type Ad struct {
	AdID              uuid.UUID `json:"ad_id" db:"ad_id"`
	OwnerID           uuid.UUID `json:"owner_id" db:"owner_id"`
	Title             string    `json:"title" db:"title"`
	Description       *string   `json:"description" db:"description"`
	AgeRequirements   *int      `json:"age_requirements" db:"age_requirements"`
	Nationality       *string   `json:"nationality" db:"nationality"`
	Budget            *float64  `json:"budget" db:"budget"`
	NumberOfRoommates *int      `json:"number_of_roommates" db:"number_of_roommates"`
	Gender            *Gender   `json:"gender" db:"gender"`
	BadHabits         *string   `json:"bad_habits" db:"bad_habits"`
	Cleanliness       *string   `json:"cleanliness" db:"cleanliness"`
	Character         *string   `json:"character" db:"character"`
	Lifestyle         *string   `json:"lifestyle" db:"lifestyle"`
}

// AdCreate is the body of POST /ads
// swagger:model AdCreate
type AdCreate struct {
	OwnerID           uuid.UUID `json:"owner_id" validate:"required"`
	Title             string    `json:"title" validate:"required,max=255"`
	Description       *string   `json:"description"`
	AgeRequirements   *int      `json:"age_requirements" validate:"omitempty,min=0,max=150"`
	Nationality       *string   `json:"nationality" validate:"omitempty,max=100"`
	Budget            *float64  `json:"budget" validate:"omitempty,min=0"`
	NumberOfRoommates *int      `json:"number_of_roommates" validate:"omitempty,min=0"`
	Gender            *Gender   `json:"gender" validate:"omitempty,oneof=male female other"`
	BadHabits         *string   `json:"bad_habits" validate:"omitempty,max=255"`
	Cleanliness       *string   `json:"cleanliness" validate:"omitempty,max=255"`
	Character         *string   `json:"character" validate:"omitempty,max=255"`
	Lifestyle         *string   `json:"lifestyle" validate:"omitempty,max=255"`
}

// AdUpdate is the body of PUT /ads/{ad_id}. Only keys present are applied.
// swagger:model AdUpdate
type AdUpdate struct {
	Title             Optional[string]  `json:"title" validate:"omitempty,max=255"`
	Description       Optional[string]  `json:"description"`
	AgeRequirements   Optional[int]     `json:"age_requirements" validate:"omitempty,min=0,max=150"`
	Nationality       Optional[string]  `json:"nationality" validate:"omitempty,max=100"`
	Budget            Optional[float64] `json:"budget" validate:"omitempty,min=0"`
	NumberOfRoommates Optional[int]     `json:"number_of_roommates" validate:"omitempty,min=0"`
	Gender            Optional[Gender]  `json:"gender" validate:"omitempty,oneof=male female other"`
	BadHabits         Optional[string]  `json:"bad_habits" validate:"omitempty,max=255"`
	Cleanliness       Optional[string]  `json:"cleanliness" validate:"omitempty,max=255"`
	Character         Optional[string]  `json:"character" validate:"omitempty,max=255"`
	Lifestyle         Optional[string]  `json:"lifestyle" validate:"omitempty,max=255"`
}

// Assignments lists the columns to update.
func (p AdUpdate) Assignments() []Assignment {
	var a []Assignment
	a = assign(a, "title", p.Title)
	a = assign(a, "description", p.Description)
	a = assign(a, "age_requirements", p.AgeRequirements)
	a = assign(a, "nationality", p.Nationality)
	a = assign(a, "budget", p.Budget)
	a = assign(a, "number_of_roommates", p.NumberOfRoommates)
	a = assign(a, "gender", p.Gender)
	a = assign(a, "bad_habits", p.BadHabits)
	a = assign(a, "cleanliness", p.Cleanliness)
	a = assign(a, "character", p.Character)
	a = assign(a, "lifestyle", p.Lifestyle)
	return a
}
