package strs

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ─────────────────────────────────────────────────────────────────────────────
// Normalisation
// ─────────────────────────────────────────────────────────────────────────────

// ligatures covers Latin letters that have no canonical decomposition.
var ligatures = strings.NewReplacer(
	"ß", "ss", "æ", "ae", "Æ", "Ae", "œ", "oe", "Œ", "Oe",
	"ø", "o", "Ø", "O", "đ", "d", "Đ", "D", "ł", "l", "Ł", "L",
	"þ", "th", "Þ", "Th", "ð", "d", "Ð", "D",
)

// Deburr removes diacritical marks, turning Latin-1 and Latin Extended-A
// letters into basic Latin letters.
//
//	Deburr("déjà vu") // → "deja vu"
func Deburr(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return ligatures.Replace(out)
}

// Slugify converts s to a URL-safe slug: diacritics are removed, letters
// are lower-cased, spaces, hyphens and underscores become single hyphens and
// every other character is dropped.
//
//	Slugify("Hello World")  // → "hello-world"
//	Slugify("My App 2.0!")  // → "my-app-20"
//	Slugify("Crème Brûlée") // → "creme-brulee"
func Slugify(s string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(Deburr(s)) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '\t' || r == '\n':
			pendingSep = true
		}
	}
	return b.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Padding & truncation
// ─────────────────────────────────────────────────────────────────────────────

// Pad pads both sides of s with chars to length runes. The left side gets
// the smaller half. chars defaults to a space.
//
//	Pad("abc", 8, "_-") // → "_-abc_-_"
func Pad(s string, length int, chars string) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	total := length - n
	left := total / 2
	return fill(chars, left) + s + fill(chars, total-left)
}

// PadStart pads the left side of s with chars to length runes.
func PadStart(s string, length int, chars string) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return fill(chars, length-n) + s
}

// PadEnd pads the right side of s with chars to length runes.
func PadEnd(s string, length int, chars string) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + fill(chars, length-n)
}

// fill repeats chars and cuts the result to exactly n runes.
func fill(chars string, n int) string {
	if chars == "" {
		chars = " "
	}
	if n <= 0 {
		return ""
	}
	cr := []rune(chars)
	out := make([]rune, n)
	for i := range out {
		out[i] = cr[i%len(cr)]
	}
	return string(out)
}

// TruncateOptions configures [Truncate].
type TruncateOptions struct {
	// Length is the maximum length of the result in runes, omission
	// included.
	Length int

	// Omission is appended to truncated strings. Empty means none.
	Omission string

	// Separator, when set, truncates at its last occurrence before the cut
	// so words are not split.
	Separator string
}

// DefaultTruncateOptions returns a 30 rune limit with "..." as omission.
func DefaultTruncateOptions() TruncateOptions {
	return TruncateOptions{Length: 30, Omission: "..."}
}

// Truncate shortens s to opts.Length runes.
//
//	Truncate("hi-diddly-ho there, neighborino", DefaultTruncateOptions())
//	// → "hi-diddly-ho there, neighbo..."
//	Truncate("hi-diddly-ho there, neighborino", TruncateOptions{Length: 24, Omission: "...", Separator: " "})
//	// → "hi-diddly-ho there,..."
func Truncate(s string, opts TruncateOptions) string {
	r := []rune(s)
	if len(r) <= opts.Length {
		return s
	}
	end := opts.Length - utf8.RuneCountInString(opts.Omission)
	if end < 1 {
		return opts.Omission
	}
	cut := string(r[:end])
	if opts.Separator != "" {
		if i := strings.LastIndex(cut, opts.Separator); i > 0 {
			cut = cut[:i]
		}
	}
	return cut + opts.Omission
}

// ─────────────────────────────────────────────────────────────────────────────
// Escaping
// ─────────────────────────────────────────────────────────────────────────────

var (
	htmlEscaper   = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&#39;")
	htmlUnescaper = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&#39;", "'", "&#34;", `"`)
)

// EscapeHTML converts &, <, >, " and ' to their HTML entities.
func EscapeHTML(s string) string { return htmlEscaper.Replace(s) }

// UnescapeHTML is the inverse of [EscapeHTML].
func UnescapeHTML(s string) string { return htmlUnescaper.Replace(s) }

// EscapeRegExp escapes every regular expression metacharacter in s.
func EscapeRegExp(s string) string { return regexp.QuoteMeta(s) }

// ─────────────────────────────────────────────────────────────────────────────
// Misc
// ─────────────────────────────────────────────────────────────────────────────

// Reverse reverses s rune by rune.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// Repeat repeats s n times. n <= 0 yields "".
func Repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

// Mask replaces every rune of s but the last visible ones with mask.
//
//	Mask("4242424242424242", 4, '*') // → "************4242"
func Mask(s string, visible int, mask rune) string {
	r := []rune(s)
	visible = max(0, min(visible, len(r)))
	for i := 0; i < len(r)-visible; i++ {
		r[i] = mask
	}
	return string(r)
}

// UUID returns a random (version 4) UUID string.
func UUID() string { return uuid.NewString() }

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Random returns a cryptographically random alphanumeric string of n runes.
func Random(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	limit := big.NewInt(int64(len(alphanumeric)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			panic("strs: crypto/rand failed: " + err.Error())
		}
		b[i] = alphanumeric[idx.Int64()]
	}
	return string(b)
}
