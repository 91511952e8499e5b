package deeptective

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Content length bounds, counted in runes.
const (
	// MaxContentLength is the number of runes kept from a page before truncation.
	MaxContentLength = 2000

	// MinContentLength is the threshold a page's text must exceed to be kept.
	MinContentLength = 100
)

// Ellipsis marks truncated content.
const Ellipsis = "..."

// BoilerplateSelector matches the elements removed before reading page text.
const BoilerplateSelector = "script, style, nav, footer, header, aside, iframe"

// Cleaner reduces an HTML page to plain text.
type Cleaner interface {
	// Clean removes boilerplate subtrees, flattens the text of the body and
	// normalizes its whitespace with NormalizeWhitespace.
	Clean(html string) (string, error)
}

// NormalizeWhitespace collapses every run of whitespace, including newlines
// and tabs, into a single space and trims both ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.FieldsFunc(s, isSpace), " ")
}

// isSpace also treats the byte order mark as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Truncate keeps the first max runes of s and appends Ellipsis when s is longer.
func Truncate(s string, max int) string {
	if max < 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == max {
			return s[:i] + Ellipsis
		}
		count++
	}
	return s
}

// RuneCount returns the number of characters in s.
func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}
