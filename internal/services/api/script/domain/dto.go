// Package domain holds DTOs for script detection http and service contracts
package domain

import "falnama/internal/core/script"

// DetectInput asks for a writing system classification
type DetectInput struct {
	Text string `json:"text" validate:"omitempty,max=10000" example:"Ali علی"`
}

// DetectResult carries the classification and its inputs
type DetectResult struct {
	Script          script.Script `json:"script" example:"mixed"`
	ContainsPersian bool          `json:"contains_persian" example:"true"`
	ContainsLatin   bool          `json:"contains_latin" example:"true"`
}

// SystemInput asks for a numerology system recommendation for a name
type SystemInput struct {
	Name     string        `json:"name" validate:"required,max=200" example:"علی"`
	Locale   string        `json:"locale,omitempty" validate:"omitempty,max=35" example:"fa-IR"`
	Override script.System `json:"override,omitempty" validate:"omitempty,oneof=auto pythagorean chaldean abjad" example:"auto"`
}

// SystemResult carries the recommended system
type SystemResult struct {
	System script.System `json:"system" example:"abjad"`
}
