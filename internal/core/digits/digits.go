// Package digits converts ASCII digits and integers to their Persian
// (Extended Arabic-Indic) presentation forms.
package digits

import (
	"strconv"
	"strings"
)

// persianZero is U+06F0, the Extended Arabic-Indic zero
const persianZero = '۰'

// ThousandsSeparator is the Arabic thousands separator placed between triplets
const ThousandsSeparator = "٬"

// ToPersian replaces every ASCII digit 0-9 with its Persian equivalent.
// All other runes pass through unchanged, so the output has the same
// rune length as the input.
func ToPersian(s string) string {
	if s == "" {
		return ""
	}
	out := []rune(s)
	changed := false
	for i, r := range out {
		if r >= '0' && r <= '9' {
			out[i] = persianZero + (r - '0')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(out)
}

// FromInt stringifies n and converts its digits.
// A leading minus sign is preserved unconverted.
func FromInt(n int) string {
	return ToPersian(strconv.Itoa(n))
}

// Grouped formats n with Persian digits and the Arabic thousands separator
// between triplets. Numbers under 1000 carry no separator.
func Grouped(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.Itoa(n)
	if len(s) > 3 {
		var b strings.Builder
		pre := len(s) % 3
		if pre > 0 {
			b.WriteString(s[:pre])
		}
		for i := pre; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteString(ThousandsSeparator)
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		s = "-" + s
	}
	return ToPersian(s)
}

// ordinalWords are the only ordinals rendered as idiomatic words.
// Every other n takes the numeral plus the generic suffix; do not extend
// this table without a product decision.
var ordinalWords = map[int]string{
	1:  "اول",
	2:  "دوم",
	10: "دهم",
}

// ordinalSuffix is the generic Persian ordinal suffix
const ordinalSuffix = "م"

// Ordinal returns the idiomatic word for 1, 2 and 10, and the Persian
// numeral with the generic suffix for every other n.
func Ordinal(n int) string {
	if w, ok := ordinalWords[n]; ok {
		return w
	}
	return FromInt(n) + ordinalSuffix
}
