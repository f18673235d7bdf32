// Package service contains localization workflows
package service

import (
	"falnama/internal/core/digits"
	"falnama/internal/core/jalaali"
	"falnama/internal/services/api/localize/domain"
)

// Service defines the service contract for localization
type Service interface{ domain.ServicePort }

// Svc implements the Service interface over the pure core packages
type Svc struct{}

// New creates a new localize service
func New() *Svc { return &Svc{} }

// Digits converts ASCII digits in freeform text to Persian digits
func (s *Svc) Digits(in domain.DigitsInput) domain.DigitsResult {
	return domain.DigitsResult{Text: digits.ToPersian(in.Text)}
}

// Number renders an integer with Persian digits, optionally grouped
func (s *Svc) Number(in domain.NumberInput) domain.NumberResult {
	if in.Grouped {
		return domain.NumberResult{Text: digits.Grouped(in.Value)}
	}
	return domain.NumberResult{Text: digits.FromInt(in.Value)}
}

// Ordinal renders the Persian ordinal of a positive integer
func (s *Svc) Ordinal(in domain.OrdinalInput) domain.OrdinalResult {
	return domain.OrdinalResult{Text: digits.Ordinal(in.Value)}
}

// Date formats an ISO Gregorian date in the Jalaali calendar
func (s *Svc) Date(in domain.DateInput) domain.DateResult {
	return domain.DateResult{Text: jalaali.FormatDate(in.Date)}
}
