// Package datex holds the calendar arithmetic used by the panel. All values
// are civil dates: a time.Time at midnight in its own location.
package datex

import (
	"fmt"
	"time"
)

// Layout is the wire and storage layout for due dates.
const Layout = time.DateOnly

// DisplayLayout is how due dates are shown to operators.
const DisplayLayout = "02/01/2006"

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalises to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonthsClamped adds months to from keeping the day of month. When that
// day does not exist in the target month (Jan 31 + 1 month) the result is
// the 1st of the month after the target and rolledOver is true.
func AddMonthsClamped(from time.Time, months int) (date time.Time, rolledOver bool) {
	y, m, d := from.Date()
	loc := from.Location()

	// Normalise the target month through time.Date so month overflow
	// carries into the year.
	target := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, loc)
	ty, tm, _ := target.Date()

	if d > DaysInMonth(ty, tm) {
		return time.Date(ty, tm+1, 1, 0, 0, 0, 0, loc), true
	}
	return time.Date(ty, tm, d, 0, 0, 0, 0, loc), false
}

// DaysBetween returns the whole calendar days from a to b, negative when b
// is before a. Clock time is ignored.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// Parse reads a YYYY-MM-DD date in loc.
func Parse(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(Layout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("datex: invalid date %q: %w", s, err)
	}
	return t, nil
}

// Format renders t as YYYY-MM-DD.
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(Layout)
}

// FormatDisplay renders t as DD/MM/YYYY.
func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DisplayLayout)
}
