// Package strs provides string helpers: case conversion, padding,
// truncation, slugs and templating.
//
// Case helpers split their input into words first, so they accept any mix of
// camelCase, PascalCase, snake_case, kebab-case and free text:
//
//	strs.KebabCase("fooBar baz_qux") // → "foo-bar-baz-qux"
//	strs.CamelCase("XMLHttpRequest") // → "xmlHttpRequest"
//
// All helpers count runes, not bytes, so multi-byte text pads and truncates
// correctly. [Deburr] and [TitleCase] are backed by golang.org/x/text.
package strs
