// Package service contains interpretation workflows
package service

import (
	"context"

	"falnama/internal/adapters/oracle"
	"falnama/internal/core/script"
	"falnama/internal/core/segment"
	perr "falnama/internal/platform/errors"
	"falnama/internal/services/api/interpret/domain"
)

// Generator is satisfied by the oracle client
type Generator interface {
	Interpret(ctx context.Context, in oracle.InterpretRequest) (string, error)
}

// Service defines the service contract for interpretation
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	gen Generator
}

// New creates a new interpret service. gen may be nil when no upstream is
// configured; Sections still works, Reading reports unavailable.
func New(gen Generator) *Svc {
	return &Svc{gen: gen}
}

// Sections segments freeform prose into ordered display sections
func (s *Svc) Sections(in domain.SectionsInput) domain.SectionsResult {
	secs := segment.Sections(in.Text)
	if secs == nil {
		secs = []segment.Section{}
	}
	return domain.SectionsResult{Sections: secs}
}

// Reading generates interpretation text upstream and segments it for display
func (s *Svc) Reading(ctx context.Context, in domain.ReadingInput) (domain.ReadingResult, error) {
	if s.gen == nil {
		return domain.ReadingResult{}, perr.Unavailablef("interpretation upstream not configured")
	}
	sys := in.System
	if sys == "" || sys == script.SystemAuto {
		sys = script.AutoSelect(in.Name, in.Locale, script.SystemAuto)
	}
	text, err := s.gen.Interpret(ctx, oracle.InterpretRequest{
		Name:   in.Name,
		System: sys,
		Number: in.Number,
		Locale: in.Locale,
	})
	if err != nil {
		return domain.ReadingResult{}, err
	}
	out := domain.ReadingResult{System: sys, Text: text, Sections: segment.Sections(text)}
	if out.Sections == nil {
		out.Sections = []segment.Section{}
	}
	return out, nil
}
