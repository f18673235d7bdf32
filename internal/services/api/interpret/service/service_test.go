package service

import (
	"context"
	"testing"

	"falnama/internal/adapters/oracle"
	"falnama/internal/core/script"
	perr "falnama/internal/platform/errors"
	"falnama/internal/services/api/interpret/domain"
)

type fakeGen struct {
	text string
	err  error
	last oracle.InterpretRequest
}

func (f *fakeGen) Interpret(_ context.Context, in oracle.InterpretRequest) (string, error) {
	f.last = in
	return f.text, f.err
}

func TestSections(t *testing.T) {
	s := New(nil)
	got := s.Sections(domain.SectionsInput{Text: "## One\nfirst\n\n## Two\nsecond"})
	if len(got.Sections) != 2 || got.Sections[0].Heading != "One" {
		t.Fatalf("Sections = %+v", got.Sections)
	}

	empty := s.Sections(domain.SectionsInput{})
	if empty.Sections == nil || len(empty.Sections) != 0 {
		t.Fatalf("empty input should yield an empty, non-nil slice: %#v", empty.Sections)
	}
}

func TestReading_SegmentsUpstreamText(t *testing.T) {
	gen := &fakeGen{text: "## Path\nyour number carries water\n\n## Shadow\nmind the moon"}
	s := New(gen)
	out, err := s.Reading(context.Background(), domain.ReadingInput{Name: "علی", Number: 2})
	if err != nil {
		t.Fatalf("Reading: %v", err)
	}
	if out.System != script.SystemAbjad {
		t.Fatalf("auto system = %q, want abjad", out.System)
	}
	if gen.last.System != script.SystemAbjad || gen.last.Number != 2 {
		t.Fatalf("upstream request = %+v", gen.last)
	}
	if len(out.Sections) != 2 || out.Sections[1].Heading != "Shadow" {
		t.Fatalf("sections = %+v", out.Sections)
	}
}

func TestReading_ExplicitSystemKept(t *testing.T) {
	gen := &fakeGen{text: "plain"}
	s := New(gen)
	out, err := s.Reading(context.Background(), domain.ReadingInput{Name: "علی", System: script.SystemChaldean})
	if err != nil {
		t.Fatalf("Reading: %v", err)
	}
	if out.System != script.SystemChaldean {
		t.Fatalf("system = %q, want chaldean", out.System)
	}
}

func TestReading_NoUpstreamConfigured(t *testing.T) {
	s := New(nil)
	_, err := s.Reading(context.Background(), domain.ReadingInput{Name: "Alice"})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want unavailable, got %v", err)
	}
}

func TestReading_UpstreamErrorPropagates(t *testing.T) {
	gen := &fakeGen{err: perr.InvalidArgf("bad name")}
	s := New(gen)
	_, err := s.Reading(context.Background(), domain.ReadingInput{Name: "Alice"})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}
}
