package script

import "testing"

func TestDetect_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  Script
	}{
		{name: "latin name", in: "Alice", out: ScriptLatin},
		{name: "persian name", in: "علی", out: ScriptPersian},
		{name: "mixed name", in: "Ali علی", out: ScriptMixed},
		{name: "digits only", in: "12345", out: ScriptUnknown},
		{name: "empty", in: "", out: ScriptUnknown},
		{name: "symbols only", in: "!@#$", out: ScriptUnknown},
		{name: "arabic presentation forms", in: "ﭑ", out: ScriptPersian},
		{name: "arabic supplement", in: "ݑ", out: ScriptPersian},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.in); got != tc.out {
				t.Fatalf("Detect(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestContainsLatin(t *testing.T) {
	if ContainsLatin("۱۲۳") {
		t.Fatal("persian digits are not latin letters")
	}
	if !ContainsLatin("z") {
		t.Fatal("ascii letter should count")
	}
	// accented letters outside ASCII do not count
	if ContainsLatin("éàü") {
		t.Fatal("non-ascii letters should not count")
	}
}

func TestAutoSelect_Table(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		locale   string
		override System
		out      System
	}{
		{name: "latin defaults to pythagorean", in: "Alice", locale: "en", override: SystemAuto, out: SystemPythagorean},
		{name: "persian script wins", in: "علی", locale: "en", override: SystemAuto, out: SystemAbjad},
		{name: "fa locale selects abjad", in: "Alice", locale: "fa", override: SystemAuto, out: SystemAbjad},
		{name: "fa-IR locale selects abjad", in: "Alice", locale: "fa-IR", override: SystemAuto, out: SystemAbjad},
		{name: "FA uppercase locale", in: "Alice", locale: "FA", override: SystemAuto, out: SystemAbjad},
		{name: "override always wins", in: "Alice", locale: "en", override: SystemChaldean, out: SystemChaldean},
		{name: "override beats persian script", in: "علی", locale: "fa", override: SystemPythagorean, out: SystemPythagorean},
		{name: "mixed script still selects abjad", in: "Ali علی", locale: "en", override: SystemAuto, out: SystemAbjad},
		{name: "empty override acts as auto", in: "Alice", locale: "en", override: "", out: SystemPythagorean},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AutoSelect(tc.in, tc.locale, tc.override); got != tc.out {
				t.Fatalf("AutoSelect(%q, %q, %q) = %q, want %q", tc.in, tc.locale, tc.override, got, tc.out)
			}
		})
	}
}
