package jalaali

import (
	"strings"
	"testing"
)

func TestFormatDate_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "empty in empty out", in: "", out: ""},
		{name: "garbage degrades to empty", in: "not-a-date", out: ""},
		{name: "partial date degrades to empty", in: "2024-01", out: ""},
		{name: "regression fixed value", in: "2024-01-01", out: "۱۴۰۲/۱۰/۱۱"},
		{name: "nowruz day", in: "2024-03-20", out: "۱۴۰۳/۰۱/۰۱"},
		{name: "day before nowruz", in: "2024-03-19", out: "۱۴۰۲/۱۲/۲۹"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatDate(tc.in); got != tc.out {
				t.Fatalf("FormatDate(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestFormatDate_NowruzBoundaryYear(t *testing.T) {
	// the day Nowruz lands on flips the Jalaali year; 1403 must appear
	got := FormatDate("2024-03-20")
	if !strings.Contains(got, "۱۴۰۳") {
		t.Fatalf("FormatDate(2024-03-20) = %q, want year ۱۴۰۳", got)
	}
}

func TestConvert(t *testing.T) {
	y, m, d, err := Convert("2024-01-01")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if y != 1402 || m != 10 || d != 11 {
		t.Fatalf("Convert(2024-01-01) = %d/%d/%d, want 1402/10/11", y, m, d)
	}

	if _, _, _, err := Convert(""); err == nil {
		t.Fatal("Convert(\"\") should error")
	}
}

func TestFormatDate_Deterministic(t *testing.T) {
	first := FormatDate("1995-06-15")
	for i := 0; i < 5; i++ {
		if got := FormatDate("1995-06-15"); got != first {
			t.Fatalf("conversion not deterministic: %q vs %q", got, first)
		}
	}
}
