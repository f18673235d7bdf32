// Package script classifies the writing system of a string and derives
// the numerology system best suited to a name.
package script

import "strings"

// Script is a coarse writing system classification
type Script string

// Script classifications
const (
	ScriptPersian Script = "persian"
	ScriptLatin   Script = "latin"
	ScriptMixed   Script = "mixed"
	ScriptUnknown Script = "unknown"
)

// System identifies a numerology letter-value system
type System string

// Numerology systems
const (
	SystemAuto        System = "auto"
	SystemPythagorean System = "pythagorean"
	SystemChaldean    System = "chaldean"
	SystemAbjad       System = "abjad"
)

// Valid reports whether s names a concrete system or the auto sentinel
func (s System) Valid() bool {
	switch s {
	case SystemAuto, SystemPythagorean, SystemChaldean, SystemAbjad:
		return true
	}
	return false
}

// ContainsPersian reports whether s holds at least one rune in the
// Arabic/Persian blocks, presentation forms included.
func ContainsPersian(s string) bool {
	for _, r := range s {
		switch {
		case r >= 0x0600 && r <= 0x06FF,
			r >= 0x0750 && r <= 0x077F,
			r >= 0xFB50 && r <= 0xFDFF,
			r >= 0xFE70 && r <= 0xFEFF:
			return true
		}
	}
	return false
}

// ContainsLatin reports whether s holds at least one ASCII letter.
func ContainsLatin(s string) bool {
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			return true
		}
	}
	return false
}

// Detect classifies s by the writing systems present.
// Digits-only or symbol-only input maps to ScriptUnknown.
func Detect(s string) Script {
	p, l := ContainsPersian(s), ContainsLatin(s)
	switch {
	case p && l:
		return ScriptMixed
	case p:
		return ScriptPersian
	case l:
		return ScriptLatin
	default:
		return ScriptUnknown
	}
}

// AutoSelect picks the numerology system for a name.
// An explicit override always wins. Otherwise a name in Persian script
// selects abjad, then a fa locale selects abjad, then pythagorean;
// script detection takes priority over locale.
func AutoSelect(name, locale string, override System) System {
	if override != "" && override != SystemAuto {
		return override
	}
	if ContainsPersian(name) {
		return SystemAbjad
	}
	if len(locale) >= 2 && strings.EqualFold(locale[:2], "fa") {
		return SystemAbjad
	}
	return SystemPythagorean
}
