// Package numerology computes reduced letter-value numbers for names and
// birth dates under the Pythagorean, Chaldean and Abjad systems.
package numerology

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"falnama/internal/core/jalaali"
	"falnama/internal/core/script"
)

// chaldean letter values; unlike Pythagorean these do not follow the
// alphabet position and 9 is never assigned
var chaldean = map[rune]int{
	'a': 1, 'b': 2, 'c': 3, 'd': 4, 'e': 5, 'f': 8, 'g': 3,
	'h': 5, 'i': 1, 'j': 1, 'k': 2, 'l': 3, 'm': 4, 'n': 5,
	'o': 7, 'p': 8, 'q': 1, 'r': 2, 's': 3, 't': 4, 'u': 6,
	'v': 6, 'w': 6, 'x': 5, 'y': 1, 'z': 7,
}

// abjad letter values (hisab al-jummal), with the four Persian-only
// letters folded onto their Arabic base letters
var abjad = map[rune]int{
	'ا': 1, 'ب': 2, 'ج': 3, 'د': 4, 'ه': 5, 'و': 6, 'ز': 7,
	'ح': 8, 'ط': 9, 'ی': 10, 'ک': 20, 'ل': 30, 'م': 40, 'ن': 50,
	'س': 60, 'ع': 70, 'ف': 80, 'ص': 90, 'ق': 100, 'ر': 200,
	'ش': 300, 'ت': 400, 'ث': 500, 'خ': 600, 'ذ': 700, 'ض': 800,
	'ظ': 900, 'غ': 1000,

	// Persian additions fold to base letters
	'پ': 2, 'چ': 3, 'ژ': 7, 'گ': 20,

	// common Arabic variants
	'آ': 1, 'أ': 1, 'إ': 1, 'ء': 1, 'ة': 5, 'ؤ': 6, 'ي': 10,
	'ى': 10, 'ئ': 10, 'ك': 20,
}

// stripMarks removes combining marks so accented Latin names fold to
// their base letters before lookup
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// masterNumbers are preserved by Reduce instead of being collapsed further
func isMaster(n int) bool { return n == 11 || n == 22 || n == 33 }

// Reduce collapses n to a single digit by repeated digit summing,
// stopping early on the master numbers 11, 22 and 33.
func Reduce(n int) int {
	if n < 0 {
		n = -n
	}
	for n > 9 && !isMaster(n) {
		s := 0
		for n > 0 {
			s += n % 10
			n /= 10
		}
		n = s
	}
	return n
}

// LetterValue returns the value of r under sys, or 0 when r carries no
// value in that system.
func LetterValue(sys script.System, r rune) int {
	switch sys {
	case script.SystemPythagorean:
		r = unicode.ToLower(r)
		if r < 'a' || r > 'z' {
			return 0
		}
		return int(r-'a')%9 + 1
	case script.SystemChaldean:
		return chaldean[unicode.ToLower(r)]
	case script.SystemAbjad:
		return abjad[r]
	default:
		return 0
	}
}

// DestinyNumber sums the letter values of every scoring rune in name under
// sys and reduces the total. SystemAuto resolves via script detection first.
// A name with no scoring letters yields 0.
func DestinyNumber(name string, sys script.System) int {
	if sys == "" || sys == script.SystemAuto {
		sys = script.AutoSelect(name, "", script.SystemAuto)
	}
	if sys != script.SystemAbjad {
		if folded, _, err := transform.String(stripMarks, name); err == nil {
			name = folded
		}
	}
	sum := 0
	for _, r := range name {
		sum += LetterValue(sys, r)
	}
	if sum == 0 {
		return 0
	}
	return Reduce(sum)
}

// LifePathNumber reduces the digit sum of an ISO birth date (YYYY-MM-DD),
// preserving master numbers. The date must parse as a valid Gregorian date.
func LifePathNumber(iso string) (int, error) {
	if _, _, _, err := jalaali.Convert(iso); err != nil {
		return 0, err
	}
	sum := 0
	for _, r := range iso {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	return Reduce(sum), nil
}

// Systems lists the concrete systems a reading can be computed under
func Systems() []script.System {
	return []script.System{script.SystemPythagorean, script.SystemChaldean, script.SystemAbjad}
}
