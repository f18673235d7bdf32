package digits

import (
	"testing"
	"unicode/utf8"
)

func TestToPersian_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "empty", in: "", out: ""},
		{name: "all digits", in: "0123456789", out: "۰۱۲۳۴۵۶۷۸۹"},
		{name: "mixed text", in: "ch 3 of 12", out: "ch ۳ of ۱۲"},
		{name: "no digits passes through", in: "hello دنیا", out: "hello دنیا"},
		{name: "already persian is a no-op", in: "۴۲", out: "۴۲"},
		{name: "punctuation unchanged", in: "1.5%", out: "۱.۵%"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ToPersian(tc.in)
			if got != tc.out {
				t.Fatalf("ToPersian(%q) = %q, want %q", tc.in, got, tc.out)
			}
			if utf8.RuneCountInString(got) != utf8.RuneCountInString(tc.in) {
				t.Fatalf("rune length changed: %q -> %q", tc.in, got)
			}
		})
	}
}

func TestToPersian_Idempotent(t *testing.T) {
	once := ToPersian("score 99 of 100")
	if twice := ToPersian(once); twice != once {
		t.Fatalf("second pass changed output: %q -> %q", once, twice)
	}
}

func TestFromInt(t *testing.T) {
	tests := []struct {
		in  int
		out string
	}{
		{0, "۰"},
		{7, "۷"},
		{42, "۴۲"},
		{-13, "-۱۳"},
	}
	for _, tc := range tests {
		if got := FromInt(tc.in); got != tc.out {
			t.Fatalf("FromInt(%d) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestGrouped(t *testing.T) {
	tests := []struct {
		in  int
		out string
	}{
		{0, "۰"},
		{999, "۹۹۹"},
		{1000, "۱٬۰۰۰"},
		{1234567, "۱٬۲۳۴٬۵۶۷"},
		{-45000, "-۴۵٬۰۰۰"},
	}
	for _, tc := range tests {
		if got := Grouped(tc.in); got != tc.out {
			t.Fatalf("Grouped(%d) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		in  int
		out string
	}{
		{1, "اول"},
		{2, "دوم"},
		{10, "دهم"},
		// everything else falls back to numeral + suffix, teens included
		{3, "۳م"},
		{11, "۱۱م"},
		{21, "۲۱م"},
	}
	for _, tc := range tests {
		if got := Ordinal(tc.in); got != tc.out {
			t.Fatalf("Ordinal(%d) = %q, want %q", tc.in, got, tc.out)
		}
	}
}
