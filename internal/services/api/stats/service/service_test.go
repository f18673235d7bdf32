package service

import (
	"context"
	"testing"
	"time"

	perr "falnama/internal/platform/errors"
	"falnama/internal/services/api/stats/domain"
	"falnama/internal/services/api/stats/repo"
)

type fakeRepo struct {
	systems []repo.RowSystemCount
	daily   []repo.RowDailyCount
	days    int
}

func (f *fakeRepo) Systems(context.Context) ([]repo.RowSystemCount, error) {
	return f.systems, nil
}

func (f *fakeRepo) Daily(_ context.Context, days int) ([]repo.RowDailyCount, error) {
	f.days = days
	return f.daily, nil
}

func TestSystems(t *testing.T) {
	s := New(&fakeRepo{systems: []repo.RowSystemCount{
		{System: "abjad", Count: 12},
		{System: "pythagorean", Count: 7},
	}})
	out, err := s.Systems(context.Background())
	if err != nil {
		t.Fatalf("Systems: %v", err)
	}
	if len(out) != 2 || out[0].System != "abjad" || out[0].Count != 12 {
		t.Fatalf("out = %+v", out)
	}
}

func TestDaily(t *testing.T) {
	day := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	fr := &fakeRepo{daily: []repo.RowDailyCount{{Day: day, Count: 3}}}
	s := New(fr)
	out, err := s.Daily(context.Background(), domain.DailyInput{Days: 7})
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if fr.days != 7 {
		t.Fatalf("window = %d, want 7", fr.days)
	}
	if len(out) != 1 || out[0].Day != "2026-08-26" || out[0].Count != 3 {
		t.Fatalf("out = %+v", out)
	}
}

func TestSinkNotConfigured(t *testing.T) {
	s := New(nil)
	if _, err := s.Systems(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want unavailable, got %v", err)
	}
	if _, err := s.Daily(context.Background(), domain.DailyInput{}); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want unavailable, got %v", err)
	}
}
