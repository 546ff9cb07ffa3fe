package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-utilkit/dates"
)

var sample = time.Date(2024, time.March, 5, 14, 7, 9, 45*int(time.Millisecond), time.UTC)

func TestFormat(t *testing.T) {
	tests := []struct {
		layout string
		want   string
	}{
		{"YYYY-MM-DD HH:mm:ss.SSS", "2024-03-05 14:07:09.045"},
		{"YY M D H m s", "24 3 5 14 7 9"},
		{"dddd, MMMM D, YYYY [at] h:mm A", "Tuesday, March 5, 2024 at 2:07 PM"},
		{"ddd MMM DD hh:mm a", "Tue Mar 05 02:07 pm"},
		{"dd d", "Tu 2"},
		{"[YYYY] YYYY", "YYYY 2024"},
		{"Z ZZ", "+00:00 +0000"},
		{"X", "1709647629"},
		{"x", "1709647629045"},
	}
	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			assert.Equal(t, tt.want, dates.Format(sample, tt.layout))
		})
	}
}

func TestFormatMidnightAndOffset(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	midnight := time.Date(2024, 1, 1, 0, 5, 0, 0, ist)
	assert.Equal(t, "12:05 AM +05:30 +0530", dates.Format(midnight, "h:mm A Z ZZ"))
}

func TestGoLayout(t *testing.T) {
	got, err := dates.GoLayout("YYYY-MM-DD[T]HH:mm:ss.SSSZ")
	require.NoError(t, err)
	assert.Equal(t, "2006-01-02T15:04:05.000Z07:00", got)

	for _, layout := range []string{"d", "dd", "X", "x", "ssSSS", "[Monday] D", "[1st] D"} {
		_, err := dates.GoLayout(layout)
		assert.ErrorIs(t, err, dates.ErrUnsupportedToken, "layout %q", layout)
	}
}

func TestParse(t *testing.T) {
	got, err := dates.Parse("2024-03-05 14:07", "YYYY-MM-DD HH:mm")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC), got)

	got, err = dates.Parse("5/3/24 2:07 PM", "D/M/YY h:mm A")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC), got)

	got, err = dates.Parse("2024-03-05T14:07:09.045+02:00", "YYYY-MM-DD[T]HH:mm:ss.SSSZ")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 3, 5, 12, 7, 9, 45*int(time.Millisecond), time.UTC)))

	_, err = dates.Parse("Tu", "dd")
	assert.ErrorIs(t, err, dates.ErrUnsupportedToken)

	_, err = dates.Parse("2024-13-01", "YYYY-MM-DD")
	assert.Error(t, err)
}

func TestParseInLocation(t *testing.T) {
	loc := time.FixedZone("X", -3*3600)
	got, err := dates.ParseInLocation("2024-03-05 10:00", "YYYY-MM-DD HH:mm", loc)
	require.NoError(t, err)
	assert.Equal(t, 13, got.UTC().Hour())
}

func TestIsValid(t *testing.T) {
	assert.True(t, dates.IsValid("2024-02-29", "YYYY-MM-DD"))
	assert.False(t, dates.IsValid("2023-02-29", "YYYY-MM-DD"))
	assert.False(t, dates.IsValid("yesterday", "YYYY-MM-DD"))
}
