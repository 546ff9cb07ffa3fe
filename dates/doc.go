// Package dates provides day.js style helpers on top of time.Time.
//
// Layouts use day.js tokens rather than Go's reference time:
//
//	dates.Format(t, "dddd, MMMM D, YYYY [at] h:mm A")
//	// → "Tuesday, March 5, 2024 at 2:07 PM"
//
// Text inside square brackets is copied literally. Calendar arithmetic
// ([Add], [StartOf], [EndOf], [Diff]) works in the time's own location,
// and month arithmetic clamps to the last day of the target month.
package dates
