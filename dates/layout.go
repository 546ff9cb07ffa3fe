package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// tokens lists every layout token, longest first within a shared prefix.
var tokens = []string{
	"YYYY", "YY",
	"MMMM", "MMM", "MM", "M",
	"DD", "D",
	"dddd", "ddd", "dd", "d",
	"HH", "H", "hh", "h",
	"mm", "m",
	"ss", "s", "SSS",
	"A", "a",
	"ZZ", "Z",
	"X", "x",
}

type piece struct {
	text    string
	literal bool
}

func tokenize(layout string) []piece {
	var pieces []piece
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			pieces = append(pieces, piece{text: lit.String(), literal: true})
			lit.Reset()
		}
	}

	for i := 0; i < len(layout); {
		if layout[i] == '[' {
			if end := strings.IndexByte(layout[i:], ']'); end > 0 {
				lit.WriteString(layout[i+1 : i+end])
				i += end + 1
				continue
			}
		}
		matched := ""
		for _, tok := range tokens {
			if strings.HasPrefix(layout[i:], tok) {
				matched = tok
				break
			}
		}
		if matched == "" {
			lit.WriteByte(layout[i])
			i++
			continue
		}
		flush()
		pieces = append(pieces, piece{text: matched})
		i += len(matched)
	}
	flush()
	return pieces
}

// Format renders t using a day.js layout.
//
//	Format(t, "YYYY-MM-DD HH:mm:ss.SSS") // → "2024-03-05 14:07:09.045"
func Format(t time.Time, layout string) string {
	var b strings.Builder
	for _, p := range tokenize(layout) {
		if p.literal {
			b.WriteString(p.text)
			continue
		}
		b.WriteString(formatToken(t, p.text))
	}
	return b.String()
}

func formatToken(t time.Time, tok string) string {
	switch tok {
	case "YYYY":
		return fmt.Sprintf("%04d", t.Year())
	case "YY":
		return fmt.Sprintf("%02d", t.Year()%100)
	case "MMMM":
		return t.Month().String()
	case "MMM":
		return t.Month().String()[:3]
	case "MM":
		return fmt.Sprintf("%02d", int(t.Month()))
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "DD":
		return fmt.Sprintf("%02d", t.Day())
	case "D":
		return strconv.Itoa(t.Day())
	case "dddd":
		return t.Weekday().String()
	case "ddd":
		return t.Weekday().String()[:3]
	case "dd":
		return t.Weekday().String()[:2]
	case "d":
		return strconv.Itoa(int(t.Weekday()))
	case "HH":
		return fmt.Sprintf("%02d", t.Hour())
	case "H":
		return strconv.Itoa(t.Hour())
	case "hh":
		return fmt.Sprintf("%02d", hour12(t))
	case "h":
		return strconv.Itoa(hour12(t))
	case "mm":
		return fmt.Sprintf("%02d", t.Minute())
	case "m":
		return strconv.Itoa(t.Minute())
	case "ss":
		return fmt.Sprintf("%02d", t.Second())
	case "s":
		return strconv.Itoa(t.Second())
	case "SSS":
		return fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
	case "A":
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case "a":
		if t.Hour() < 12 {
			return "am"
		}
		return "pm"
	case "Z":
		return t.Format("-07:00")
	case "ZZ":
		return t.Format("-0700")
	case "X":
		return strconv.FormatInt(t.Unix(), 10)
	case "x":
		return strconv.FormatInt(t.UnixMilli(), 10)
	}
	return tok
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

// goLayouts maps tokens to Go reference-time layout elements.
var goLayouts = map[string]string{
	"YYYY": "2006", "YY": "06",
	"MMMM": "January", "MMM": "Jan", "MM": "01", "M": "1",
	"DD": "02", "D": "2",
	"dddd": "Monday", "ddd": "Mon",
	"HH": "15", "H": "15", "hh": "03", "h": "3",
	"mm": "04", "m": "4",
	"ss": "05", "s": "5",
	"A": "PM", "a": "pm",
	"Z": "Z07:00", "ZZ": "Z0700",
}

// reserved holds substrings Go would read as layout elements inside a
// literal.
var reserved = []string{"Jan", "Mon", "MST", "PM", "pm", "Z0", "_2"}

// GoLayout translates a day.js layout to a Go reference-time layout.
func GoLayout(layout string) (string, error) {
	var b strings.Builder
	for _, p := range tokenize(layout) {
		if p.literal {
			if strings.ContainsAny(p.text, "0123456789") || containsAny(p.text, reserved) {
				return "", fmt.Errorf("%w: literal %q", ErrUnsupportedToken, p.text)
			}
			b.WriteString(p.text)
			continue
		}
		if p.text == "SSS" {
			if !strings.HasSuffix(b.String(), ".") && !strings.HasSuffix(b.String(), ",") {
				return "", fmt.Errorf("%w: %q must follow a decimal separator", ErrUnsupportedToken, p.text)
			}
			b.WriteString("000")
			continue
		}
		g, ok := goLayouts[p.text]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedToken, p.text)
		}
		b.WriteString(g)
	}
	return b.String(), nil
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Parse parses value with a day.js layout. Values without an offset are
// interpreted as UTC.
func Parse(value, layout string) (time.Time, error) {
	return ParseInLocation(value, layout, time.UTC)
}

// ParseInLocation is [Parse] interpreting offset-less values in loc.
func ParseInLocation(value, layout string, loc *time.Location) (time.Time, error) {
	goLayout, err := GoLayout(layout)
	if err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(goLayout, value, loc)
}

// IsValid reports whether value parses with layout.
func IsValid(value, layout string) bool {
	_, err := Parse(value, layout)
	return err == nil
}
