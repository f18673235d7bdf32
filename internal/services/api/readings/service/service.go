// Package service contains readings workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"falnama/internal/core/jalaali"
	"falnama/internal/core/numerology"
	"falnama/internal/core/script"
	"falnama/internal/modkit/repokit"
	perr "falnama/internal/platform/errors"
	"falnama/internal/platform/logger"
	interpretdom "falnama/internal/services/api/interpret/domain"
	"falnama/internal/services/api/readings/domain"
	"falnama/internal/services/api/readings/repo"
)

// Service defines the service contract for readings
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	// optional collaborators; the core reading works without them
	events repo.Events
	interp interpretdom.ServicePort

	log logger.Logger
	now func() time.Time
}

// New creates a new readings service. events and interp may be nil.
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], events repo.Events, interp interpretdom.ServicePort) *Svc {
	if db == nil {
		panic("readings.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("readings.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		events: events,
		interp: interp,
		log:    *logger.Named("readings"),
		now:    time.Now,
	}
}

// Create computes a reading for a name, persists it, and emits an analytics event
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Reading, error) {
	if in.Name == "" {
		return domain.Reading{}, perr.InvalidArgf("name is required")
	}

	sys := in.System
	if sys == "" || sys == script.SystemAuto {
		sys = script.AutoSelect(in.Name, in.Locale, script.SystemAuto)
	}

	out := domain.Reading{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Script:        script.Detect(in.Name),
		System:        sys,
		DestinyNumber: numerology.DestinyNumber(in.Name, sys),
	}

	var lifePath *int
	var birthDate *string
	if in.BirthDate != "" {
		lp, err := numerology.LifePathNumber(in.BirthDate)
		if err != nil {
			return domain.Reading{}, perr.InvalidArgf("birth_date must be a valid ISO date")
		}
		lifePath = &lp
		birthDate = &in.BirthDate
		out.LifePathNumber = lp
		out.BirthDate = in.BirthDate
		out.BirthDateJalaali = jalaali.FormatDate(in.BirthDate)
	}

	if in.WithInterpretation && s.interp != nil {
		res, err := s.interp.Reading(ctx, interpretdom.ReadingInput{
			Name:   in.Name,
			System: sys,
			Number: out.DestinyNumber,
			Locale: in.Locale,
		})
		if err != nil {
			return domain.Reading{}, err
		}
		out.Interpretation = res.Sections
	}

	createdAt := s.now().UTC()
	out.CreatedAt = createdAt.Format(time.RFC3339)

	row := repo.RowReading{
		ID:             uuid.MustParse(out.ID),
		Name:           out.Name,
		Script:         string(out.Script),
		System:         string(out.System),
		DestinyNumber:  out.DestinyNumber,
		LifePathNumber: lifePath,
		BirthDate:      birthDate,
		CreatedAt:      createdAt,
	}
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		return s.binder.Bind(q).Insert(ctx, row)
	})
	if err != nil {
		return domain.Reading{}, err
	}

	s.emit(ctx, out, createdAt)
	return out, nil
}

// emit writes the analytics event; failures are logged, never surfaced
func (s *Svc) emit(ctx context.Context, r domain.Reading, createdAt time.Time) {
	if s.events == nil {
		return
	}
	ev := repo.Event{
		ID:            r.ID,
		System:        string(r.System),
		Script:        string(r.Script),
		DestinyNumber: r.DestinyNumber,
		CreatedAt:     createdAt,
	}
	if err := s.events.Emit(ctx, ev); err != nil {
		s.log.Warn().Err(err).Str("reading_id", r.ID).Msg("reading event emit failed")
	}
}

// Get returns one persisted reading by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Reading, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return domain.Reading{}, perr.InvalidArgf("id must be a uuid")
	}
	row, err := s.Repo.GetByID(ctx, uid)
	if err != nil {
		return domain.Reading{}, err
	}
	return fromRow(row), nil
}

// Recent lists recently persisted readings, newest first
func (s *Svc) Recent(ctx context.Context, in domain.RecentInput) ([]domain.Reading, error) {
	rows, err := s.Repo.Recent(ctx, string(in.System), in.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Reading, 0, len(rows))
	for _, r := range rows {
		out = append(out, fromRow(r))
	}
	return out, nil
}

func fromRow(r repo.RowReading) domain.Reading {
	out := domain.Reading{
		ID:            r.ID.String(),
		Name:          r.Name,
		Script:        script.Script(r.Script),
		System:        script.System(r.System),
		DestinyNumber: r.DestinyNumber,
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.LifePathNumber != nil {
		out.LifePathNumber = *r.LifePathNumber
	}
	if r.BirthDate != nil {
		out.BirthDate = *r.BirthDate
		out.BirthDateJalaali = jalaali.FormatDate(*r.BirthDate)
	}
	return out
}
