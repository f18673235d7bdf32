package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"falnama/internal/core/script"
	"falnama/internal/core/segment"
	"falnama/internal/modkit/repokit"
	perr "falnama/internal/platform/errors"
	interpretdom "falnama/internal/services/api/interpret/domain"
	"falnama/internal/services/api/readings/domain"
	"falnama/internal/services/api/readings/repo"
)

// fakeTx satisfies repokit.TxRunner without touching a database
type fakeTx struct{}

func (fakeTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (fakeTx) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (fakeTx) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (fakeTx) Tx(ctx context.Context, fn func(repokit.Queryer) error) error {
	return fn(fakeTx{})
}

// fakeRepo records inserts and serves canned rows
type fakeRepo struct {
	inserted []repo.RowReading
	row      repo.RowReading
	rows     []repo.RowReading
}

func (f *fakeRepo) Insert(_ context.Context, row repo.RowReading) error {
	f.inserted = append(f.inserted, row)
	return nil
}

func (f *fakeRepo) GetByID(context.Context, uuid.UUID) (repo.RowReading, error) {
	return f.row, nil
}

func (f *fakeRepo) Recent(context.Context, string, int) ([]repo.RowReading, error) {
	return f.rows, nil
}

type fakeEvents struct{ events []repo.Event }

func (f *fakeEvents) Emit(_ context.Context, ev repo.Event) error {
	f.events = append(f.events, ev)
	return nil
}

type fakeInterp struct{}

func (fakeInterp) Sections(interpretdom.SectionsInput) interpretdom.SectionsResult {
	return interpretdom.SectionsResult{}
}

func (fakeInterp) Reading(_ context.Context, in interpretdom.ReadingInput) (interpretdom.ReadingResult, error) {
	return interpretdom.ReadingResult{
		System:   in.System,
		Text:     "fate text",
		Sections: []segment.Section{{Body: "fate text"}},
	}, nil
}

func newSvc(r repo.Repo, ev repo.Events, interp interpretdom.ServicePort) *Svc {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return r })
	return New(fakeTx{}, binder, ev, interp)
}

func TestCreate_PersianName(t *testing.T) {
	fr := &fakeRepo{}
	ev := &fakeEvents{}
	s := newSvc(fr, ev, nil)

	out, err := s.Create(context.Background(), domain.CreateInput{
		Name:      "علی",
		BirthDate: "1995-06-15",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.System != script.SystemAbjad || out.Script != script.ScriptPersian {
		t.Fatalf("system=%q script=%q", out.System, out.Script)
	}
	if out.DestinyNumber != 2 {
		t.Fatalf("destiny = %d, want 2", out.DestinyNumber)
	}
	if out.LifePathNumber != 9 {
		t.Fatalf("life path = %d, want 9", out.LifePathNumber)
	}
	if out.BirthDateJalaali != "۱۳۷۴/۰۳/۲۵" {
		t.Fatalf("jalaali birth date = %q", out.BirthDateJalaali)
	}
	if _, err := uuid.Parse(out.ID); err != nil {
		t.Fatalf("id is not a uuid: %q", out.ID)
	}

	if len(fr.inserted) != 1 {
		t.Fatalf("inserted %d rows, want 1", len(fr.inserted))
	}
	row := fr.inserted[0]
	if row.System != "abjad" || row.DestinyNumber != 2 || row.LifePathNumber == nil || *row.LifePathNumber != 9 {
		t.Fatalf("row = %+v", row)
	}

	if len(ev.events) != 1 || ev.events[0].System != "abjad" {
		t.Fatalf("events = %+v", ev.events)
	}
}

func TestCreate_NoBirthDate(t *testing.T) {
	fr := &fakeRepo{}
	s := newSvc(fr, nil, nil)

	out, err := s.Create(context.Background(), domain.CreateInput{Name: "Alice"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.System != script.SystemPythagorean || out.LifePathNumber != 0 || out.BirthDateJalaali != "" {
		t.Fatalf("out = %+v", out)
	}
	if fr.inserted[0].LifePathNumber != nil || fr.inserted[0].BirthDate != nil {
		t.Fatalf("optional columns should stay null: %+v", fr.inserted[0])
	}
}

func TestCreate_InvalidBirthDate(t *testing.T) {
	s := newSvc(&fakeRepo{}, nil, nil)
	_, err := s.Create(context.Background(), domain.CreateInput{Name: "Alice", BirthDate: "2024-02-31"})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}
}

func TestCreate_EmptyName(t *testing.T) {
	s := newSvc(&fakeRepo{}, nil, nil)
	_, err := s.Create(context.Background(), domain.CreateInput{})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}
}

func TestCreate_WithInterpretation(t *testing.T) {
	s := newSvc(&fakeRepo{}, nil, fakeInterp{})
	out, err := s.Create(context.Background(), domain.CreateInput{Name: "Alice", WithInterpretation: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(out.Interpretation) != 1 || out.Interpretation[0].Body != "fate text" {
		t.Fatalf("interpretation = %+v", out.Interpretation)
	}
}

func TestCreate_OverrideSystem(t *testing.T) {
	fr := &fakeRepo{}
	s := newSvc(fr, nil, nil)
	out, err := s.Create(context.Background(), domain.CreateInput{Name: "علی", System: script.SystemPythagorean})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.System != script.SystemPythagorean {
		t.Fatalf("override should win, got %q", out.System)
	}
}

func TestGet_InvalidID(t *testing.T) {
	s := newSvc(&fakeRepo{}, nil, nil)
	_, err := s.Get(context.Background(), "not-a-uuid")
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}
}
