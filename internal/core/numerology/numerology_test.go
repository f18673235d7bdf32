package numerology

import (
	"testing"

	"falnama/internal/core/script"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		in  int
		out int
	}{
		{0, 0},
		{9, 9},
		{10, 1},
		{29, 11}, // digit sum hits a master number and stops
		{22, 22},
		{33, 33},
		{38, 11},
		{110, 2},
		{999, 9}, // 27 -> 9
		{-14, 5},
	}
	for _, tc := range tests {
		if got := Reduce(tc.in); got != tc.out {
			t.Fatalf("Reduce(%d) = %d, want %d", tc.in, got, tc.out)
		}
	}
}

func TestDestinyNumber_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		sys  script.System
		out  int
	}{
		{name: "pythagorean alice", in: "Alice", sys: script.SystemPythagorean, out: 3},   // 1+3+9+3+5 = 21
		{name: "chaldean alice", in: "Alice", sys: script.SystemChaldean, out: 4},         // 1+3+1+3+5 = 13
		{name: "abjad ali", in: "علی", sys: script.SystemAbjad, out: 2},                   // 70+30+10 = 110
		{name: "persian letter folds", in: "پری", sys: script.SystemAbjad, out: 5},        // 2+200+10 = 212
		{name: "auto resolves persian name", in: "علی", sys: script.SystemAuto, out: 2},
		{name: "auto resolves latin name", in: "Alice", sys: script.SystemAuto, out: 3},
		{name: "accents fold to base letters", in: "José", sys: script.SystemPythagorean, out: DestinyNumber("Jose", script.SystemPythagorean)},
		{name: "spaces and punctuation ignored", in: "A l-i c.e", sys: script.SystemPythagorean, out: 3},
		{name: "no scoring letters", in: "123 !?", sys: script.SystemPythagorean, out: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DestinyNumber(tc.in, tc.sys); got != tc.out {
				t.Fatalf("DestinyNumber(%q, %q) = %d, want %d", tc.in, tc.sys, got, tc.out)
			}
		})
	}
}

func TestLetterValue(t *testing.T) {
	if got := LetterValue(script.SystemPythagorean, 'j'); got != 1 {
		t.Fatalf("pythagorean j = %d, want 1", got)
	}
	if got := LetterValue(script.SystemChaldean, 'f'); got != 8 {
		t.Fatalf("chaldean f = %d, want 8", got)
	}
	if got := LetterValue(script.SystemAbjad, 'غ'); got != 1000 {
		t.Fatalf("abjad ghayn = %d, want 1000", got)
	}
	if got := LetterValue(script.SystemPythagorean, '۷'); got != 0 {
		t.Fatalf("digits carry no letter value, got %d", got)
	}
}

func TestLifePathNumber(t *testing.T) {
	tests := []struct {
		in  string
		out int
	}{
		{"1995-06-15", 9},  // 1+9+9+5+0+6+1+5 = 36 -> 9
		{"1990-11-29", 5},  // 32 -> 5
		{"2009-11-09", 22}, // 22 is preserved
	}
	for _, tc := range tests {
		got, err := LifePathNumber(tc.in)
		if err != nil {
			t.Fatalf("LifePathNumber(%q): %v", tc.in, err)
		}
		if got != tc.out {
			t.Fatalf("LifePathNumber(%q) = %d, want %d", tc.in, got, tc.out)
		}
	}

	if _, err := LifePathNumber("not-a-date"); err == nil {
		t.Fatal("invalid date should error")
	}
}
