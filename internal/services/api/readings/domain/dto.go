// Package domain holds DTOs for readings http and service contracts
package domain

import (
	"falnama/internal/core/script"
	"falnama/internal/core/segment"
)

// CreateInput describes a reading to compute and persist
type CreateInput struct {
	Name      string        `json:"name" validate:"required,max=200" example:"علی"`
	BirthDate string        `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"1995-06-15"`
	Locale    string        `json:"locale,omitempty" validate:"omitempty,max=35" example:"fa-IR"`
	System    script.System `json:"system,omitempty" validate:"omitempty,oneof=auto pythagorean chaldean abjad" example:"auto"`

	// WithInterpretation also generates and segments upstream text
	WithInterpretation bool `json:"with_interpretation,omitempty" example:"true"`
}

// Reading is a computed and persisted numerology reading
type Reading struct {
	ID               string            `json:"id" example:"7f9c64d0-5f3a-4f0e-9f5c-2d1f29c7b9aa"`
	Name             string            `json:"name" example:"علی"`
	Script           script.Script     `json:"script" example:"persian"`
	System           script.System     `json:"system" example:"abjad"`
	DestinyNumber    int               `json:"destiny_number" example:"2"`
	LifePathNumber   int               `json:"life_path_number,omitempty" example:"9"`
	BirthDate        string            `json:"birth_date,omitempty" example:"1995-06-15"`
	BirthDateJalaali string            `json:"birth_date_jalaali,omitempty" example:"۱۳۷۴/۰۳/۲۵"`
	Interpretation   []segment.Section `json:"interpretation,omitempty"`
	CreatedAt        string            `json:"created_at" example:"2026-08-26T12:00:00Z"`
}

// RecentInput filters the recent readings listing
type RecentInput struct {
	System script.System `json:"system,omitempty" validate:"omitempty,oneof=pythagorean chaldean abjad" example:"abjad"`
	Limit  int           `json:"limit,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}
