package service

import (
	"testing"

	corescript "falnama/internal/core/script"
	"falnama/internal/services/api/script/domain"
)

func TestDetect(t *testing.T) {
	s := New("en")
	got := s.Detect(domain.DetectInput{Text: "Ali علی"})
	if got.Script != corescript.ScriptMixed || !got.ContainsPersian || !got.ContainsLatin {
		t.Fatalf("Detect = %+v", got)
	}
	if s.Detect(domain.DetectInput{Text: "12345"}).Script != corescript.ScriptUnknown {
		t.Fatal("digits-only should be unknown")
	}
}

func TestSystem(t *testing.T) {
	s := New("en")

	tests := []struct {
		name string
		in   domain.SystemInput
		out  corescript.System
	}{
		{name: "default pythagorean", in: domain.SystemInput{Name: "Alice"}, out: corescript.SystemPythagorean},
		{name: "persian selects abjad", in: domain.SystemInput{Name: "علی"}, out: corescript.SystemAbjad},
		{name: "fa locale selects abjad", in: domain.SystemInput{Name: "Alice", Locale: "fa"}, out: corescript.SystemAbjad},
		{name: "override wins", in: domain.SystemInput{Name: "علی", Override: corescript.SystemChaldean}, out: corescript.SystemChaldean},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.System(tc.in).System; got != tc.out {
				t.Fatalf("System(%+v) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestSystem_FallsBackToServiceLocale(t *testing.T) {
	s := New("fa-IR")
	if got := s.System(domain.SystemInput{Name: "Alice"}).System; got != corescript.SystemAbjad {
		t.Fatalf("service default locale should apply, got %q", got)
	}
}
