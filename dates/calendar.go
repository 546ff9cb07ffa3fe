package dates

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Unit is a calendar or clock unit used by [Add], [StartOf], [EndOf] and
// [Diff].
type Unit int

const (
	Millisecond Unit = iota
	Second
	Minute
	Hour
	Day
	Week
	Month
	Quarter
	Year
)

var unitNames = map[Unit]string{
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
	Week:        "week",
	Month:       "month",
	Quarter:     "quarter",
	Year:        "year",
}

var unitAliases = map[string]Unit{
	"ms": Millisecond, "s": Second, "m": Minute, "h": Hour, "d": Day,
	"w": Week, "M": Month, "Q": Quarter, "y": Year,
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit accepts day.js unit names: full ("month"), plural ("months")
// or short ("M").
func ParseUnit(s string) (Unit, error) {
	if u, ok := unitAliases[s]; ok {
		return u, nil
	}
	name := strings.TrimSuffix(strings.ToLower(s), "s")
	for u, n := range unitNames {
		if n == name {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// clock maps sub-day units to durations.
var clock = map[Unit]time.Duration{
	Millisecond: time.Millisecond,
	Second:      time.Second,
	Minute:      time.Minute,
	Hour:        time.Hour,
}

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// Add returns t moved by n units. Month, quarter and year steps clamp the
// day to the end of the target month.
//
//	Add(jan31, 1, Month) // → Feb 29 in a leap year
func Add(t time.Time, n int, unit Unit) time.Time {
	if d, ok := clock[unit]; ok {
		return t.Add(time.Duration(n) * d)
	}
	switch unit {
	case Day:
		return t.AddDate(0, 0, n)
	case Week:
		return t.AddDate(0, 0, 7*n)
	case Month:
		return addMonths(t, n)
	case Quarter:
		return addMonths(t, 3*n)
	case Year:
		return addMonths(t, 12*n)
	}
	return t
}

func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	day := min(d, daysIn(first.Year(), first.Month()))
	return time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// StartOf returns the first instant of the unit containing t. Weeks start on
// Sunday.
func StartOf(t time.Time, unit Unit) time.Time {
	y, m, d := t.Date()
	loc := t.Location()
	switch unit {
	case Millisecond:
		return t.Truncate(time.Millisecond)
	case Second:
		return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, loc)
	case Minute:
		return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
	case Hour:
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, loc)
	case Day:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	case Week:
		return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, loc)
	case Month:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case Quarter:
		return time.Date(y, m-(m-1)%3, 1, 0, 0, 0, 0, loc)
	case Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	}
	return t
}

// EndOf returns the last instant (nanosecond precision) of the unit
// containing t.
func EndOf(t time.Time, unit Unit) time.Time {
	return Add(StartOf(t, unit), 1, unit).Add(-time.Nanosecond)
}

// Diff returns a - b in whole units, truncated toward zero.
//
//	Diff(mar15, jan15, Month) // → 2
func Diff(a, b time.Time, unit Unit) int64 {
	return int64(DiffFloat(a, b, unit))
}

// DiffFloat returns a - b in fractional units. Month, quarter and year
// differences follow calendar months rather than fixed durations.
func DiffFloat(a, b time.Time, unit Unit) float64 {
	if d, ok := clock[unit]; ok {
		return float64(a.Sub(b)) / float64(d)
	}
	switch unit {
	case Day:
		return float64(wallSub(a, b)) / float64(24*time.Hour)
	case Week:
		return float64(wallSub(a, b)) / float64(7*24*time.Hour)
	case Month:
		return monthDiff(a, b)
	case Quarter:
		return monthDiff(a, b) / 3
	case Year:
		return monthDiff(a, b) / 12
	}
	return 0
}

// wallSub returns a - b corrected by the change in zone offset, so two
// local midnights across a DST transition are exactly one day apart.
func wallSub(a, b time.Time) time.Duration {
	_, offA := a.Zone()
	_, offB := b.Zone()
	return a.Sub(b) + time.Duration(offA-offB)*time.Second
}

// monthDiff returns a - b in months, interpolating the partial month
// against the length of the month it falls in.
func monthDiff(a, b time.Time) float64 {
	if a.Day() < b.Day() {
		return -monthDiff(b, a)
	}
	whole := (b.Year()-a.Year())*12 + int(b.Month()-a.Month())
	anchor := addMonths(a, whole)
	var frac float64
	if b.Before(anchor) {
		prev := addMonths(a, whole-1)
		frac = float64(b.Sub(anchor)) / float64(anchor.Sub(prev))
	} else {
		next := addMonths(a, whole+1)
		frac = float64(b.Sub(anchor)) / float64(next.Sub(anchor))
	}
	out := -(float64(whole) + frac)
	if out == 0 || math.IsNaN(out) {
		return 0
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────────────────

// FromNow renders t relative to the current time, e.g. "3 days ago".
func FromNow(t time.Time) string { return humanize.Time(t) }

// RelativeTo renders t relative to ref, e.g. "2 hours from now".
func RelativeTo(t, ref time.Time) string {
	return humanize.RelTime(t, ref, "ago", "from now")
}

// IsLeapYear reports whether the year of t is a leap year.
func IsLeapYear(t time.Time) bool {
	y := t.Year()
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// DaysInMonth returns the number of days in the month of t.
func DaysInMonth(t time.Time) int { return daysIn(t.Year(), t.Month()) }

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsSameDay reports whether a and b share a calendar date in a's location.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
