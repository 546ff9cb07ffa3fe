// Package mathx provides numeric helpers: aggregates over slices, rounding
// to a decimal precision, clamping and human-readable formatting.
//
// Aggregates that have no meaningful value for empty input ([Mean],
// [Median], [Variance]) return NaN, while [Min] and [Max] report ok=false.
package mathx
