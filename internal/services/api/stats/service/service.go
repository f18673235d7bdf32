// Package service contains stats workflows
package service

import (
	"context"

	perr "falnama/internal/platform/errors"
	"falnama/internal/services/api/stats/domain"
	"falnama/internal/services/api/stats/repo"
)

// Service defines the service contract for stats
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo repo.Repo
}

// New creates a new stats service. repo may be nil when the analytics
// sink is disabled; every call then reports unavailable.
func New(r repo.Repo) *Svc { return &Svc{Repo: r} }

// Systems returns per-system reading counts
func (s *Svc) Systems(ctx context.Context) ([]domain.SystemCount, error) {
	if s.Repo == nil {
		return nil, perr.Unavailablef("stats sink not configured")
	}
	rows, err := s.Repo.Systems(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SystemCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.SystemCount{System: r.System, Count: r.Count})
	}
	return out, nil
}

// Daily returns per-day reading counts over the requested window
func (s *Svc) Daily(ctx context.Context, in domain.DailyInput) ([]domain.DailyCount, error) {
	if s.Repo == nil {
		return nil, perr.Unavailablef("stats sink not configured")
	}
	rows, err := s.Repo.Daily(ctx, in.Days)
	if err != nil {
		return nil, err
	}
	out := make([]domain.DailyCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.DailyCount{Day: r.Day.UTC().Format("2006-01-02"), Count: r.Count})
	}
	return out, nil
}
