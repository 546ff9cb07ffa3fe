package strs

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words splits s into words at separators, lower-to-upper transitions,
// acronym boundaries and letter/digit boundaries.
//
//	Words("fooBar_baz")      // → [foo Bar baz]
//	Words("XMLHttpRequest2") // → [XML Http Request 2]
func Words(s string) []string {
	var words []string
	runes := []rune(s)
	start := -1
	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		prev := runes[i-1]
		switch {
		case unicode.IsDigit(r) != unicode.IsDigit(prev):
			flush(i)
			start = i
		case unicode.IsUpper(r) && !unicode.IsUpper(prev):
			flush(i)
			start = i
		case unicode.IsUpper(r) && unicode.IsUpper(prev) &&
			i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			flush(i)
			start = i
		}
	}
	flush(len(runes))
	if words == nil {
		return []string{}
	}
	return words
}

// CamelCase converts s to camelCase.
func CamelCase(s string) string {
	words := Words(s)
	for i, w := range words {
		if i == 0 {
			words[i] = strings.ToLower(w)
		} else {
			words[i] = Capitalize(w)
		}
	}
	return strings.Join(words, "")
}

// PascalCase converts s to PascalCase.
func PascalCase(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, "")
}

// KebabCase converts s to kebab-case.
func KebabCase(s string) string { return joinWords(s, "-", strings.ToLower) }

// SnakeCase converts s to snake_case.
func SnakeCase(s string) string { return joinWords(s, "_", strings.ToLower) }

// ConstantCase converts s to CONSTANT_CASE.
func ConstantCase(s string) string { return joinWords(s, "_", strings.ToUpper) }

// LowerCase converts s to space separated lower case words.
func LowerCase(s string) string { return joinWords(s, " ", strings.ToLower) }

// UpperCase converts s to space separated upper case words.
func UpperCase(s string) string { return joinWords(s, " ", strings.ToUpper) }

// StartCase upper-cases the first letter of every word and leaves the rest
// untouched.
//
//	StartCase("--foo-bar--") // → "Foo Bar"
//	StartCase("fooBar")      // → "Foo Bar"
func StartCase(s string) string { return joinWords(s, " ", UpperFirst) }

func joinWords(s, sep string, fn func(string) string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = fn(w)
	}
	return strings.Join(words, sep)
}

// TitleCase applies English title casing to s using Unicode word breaking.
// Unlike [StartCase] it keeps the original separators.
func TitleCase(s string) string {
	return TitleCaseLang(s, language.English)
}

// TitleCaseLang is [TitleCase] with language-specific rules, e.g. Dutch
// "ij" digraphs.
func TitleCaseLang(s string, tag language.Tag) string {
	return cases.Title(tag).String(s)
}

// Capitalize upper-cases the first rune of s and lower-cases the rest.
func Capitalize(s string) string {
	return UpperFirst(strings.ToLower(s))
}

// UpperFirst upper-cases the first rune of s.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerFirst lower-cases the first rune of s.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
