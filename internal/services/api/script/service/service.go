// Package service contains script detection workflows
package service

import (
	corescript "falnama/internal/core/script"
	"falnama/internal/services/api/script/domain"
)

// Service defines the service contract for script detection
type Service interface{ domain.ServicePort }

// Svc implements the Service interface over the pure core package
type Svc struct {
	// DefaultLocale is assumed when a request carries no locale
	DefaultLocale string
}

// New creates a new script service
func New(defaultLocale string) *Svc {
	if defaultLocale == "" {
		defaultLocale = "en"
	}
	return &Svc{DefaultLocale: defaultLocale}
}

// Detect classifies the writing system of the input text
func (s *Svc) Detect(in domain.DetectInput) domain.DetectResult {
	return domain.DetectResult{
		Script:          corescript.Detect(in.Text),
		ContainsPersian: corescript.ContainsPersian(in.Text),
		ContainsLatin:   corescript.ContainsLatin(in.Text),
	}
}

// System recommends a numerology system for a name.
// An explicit override wins, then script, then locale.
func (s *Svc) System(in domain.SystemInput) domain.SystemResult {
	locale := in.Locale
	if locale == "" {
		locale = s.DefaultLocale
	}
	override := in.Override
	if override == "" {
		override = corescript.SystemAuto
	}
	return domain.SystemResult{System: corescript.AutoSelect(in.Name, locale, override)}
}
