// Package domain holds DTOs for interpretation http and service contracts
package domain

import (
	"falnama/internal/core/script"
	"falnama/internal/core/segment"
)

// SectionsInput asks for display segmentation of freeform prose
type SectionsInput struct {
	Text string `json:"text" validate:"omitempty,max=100000" example:"## Overview\nYour number is 3."`
}

// SectionsResult carries the ordered display sections
type SectionsResult struct {
	Sections []segment.Section `json:"sections"`
}

// ReadingInput asks for generated interpretation text for one reading
type ReadingInput struct {
	Name   string        `json:"name" validate:"required,max=200" example:"Alice"`
	System script.System `json:"system" validate:"omitempty,oneof=auto pythagorean chaldean abjad" example:"pythagorean"`
	Number int           `json:"number" validate:"min=0,max=33" example:"3"`
	Locale string        `json:"locale,omitempty" validate:"omitempty,max=35" example:"en"`
}

// ReadingResult carries the generated text and its segmentation
type ReadingResult struct {
	System   script.System     `json:"system" example:"pythagorean"`
	Text     string            `json:"text"`
	Sections []segment.Section `json:"sections"`
}
