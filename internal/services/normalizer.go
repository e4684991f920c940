package services

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// Everything outside the allow-list gets stripped. The punctuation set
	// keeps emails, phone-ish tokens, bullets and skill names intelligible.
	disallowedRe = regexp.MustCompile(`[^A-Za-z0-9\s@\-.,•®©#&+/()]`)
)

// Normalize collapses whitespace runs into single spaces, strips characters
// outside the resume allow-list and trims the result. It is total and
// idempotent; empty input yields empty output.
func Normalize(text string) string {
	// Strip before collapsing, so removed characters cannot leave behind a
	// double space that a second pass would collapse differently.
	text = disallowedRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
