package mathx

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatBytes renders n with SI units.
//
//	FormatBytes(82854982) // → "83 MB"
func FormatBytes(n uint64) string { return humanize.Bytes(n) }

// FormatIBytes renders n with IEC units.
//
//	FormatIBytes(82854982) // → "79 MiB"
func FormatIBytes(n uint64) string { return humanize.IBytes(n) }

// ParseBytes parses strings such as "42 MB" or "1.5GiB" into a byte count.
func ParseBytes(s string) (uint64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	return n, nil
}

// FormatNumber renders f with thousands separators and at most decimals
// fractional digits.
//
//	FormatNumber(1234567.891, 2) // → "1,234,567.89"
func FormatNumber(f float64, decimals int) string {
	return humanize.CommafWithDigits(f, decimals)
}

// FormatInt renders n with thousands separators.
func FormatInt(n int64) string { return humanize.Comma(n) }

// Ordinal renders n with its English ordinal suffix.
//
//	Ordinal(22) // → "22nd"
func Ordinal(n int) string { return humanize.Ordinal(n) }
