// Package jalaali renders Gregorian calendar dates in the Solar Hijri
// (Jalaali) calendar with Persian digits.
package jalaali

import (
	"fmt"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"

	"falnama/internal/core/digits"
)

// isoLayout is the ISO calendar date layout accepted by this package
const isoLayout = "2006-01-02"

// Convert parses an ISO Gregorian date (YYYY-MM-DD) and returns the
// Jalaali year, month (1-12) and day triple.
func Convert(iso string) (year, month, day int, err error) {
	t, err := time.Parse(isoLayout, iso)
	if err != nil {
		return 0, 0, 0, err
	}
	pt := ptime.New(t)
	return pt.Year(), int(pt.Month()), pt.Day(), nil
}

// FormatDate converts an ISO Gregorian date to a zero padded Jalaali
// yyyy/mm/dd string rendered with Persian digits.
// Empty or unparseable input degrades to the empty string.
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}
	y, m, d, err := Convert(iso)
	if err != nil {
		return ""
	}
	return digits.ToPersian(fmt.Sprintf("%04d/%02d/%02d", y, m, d))
}
