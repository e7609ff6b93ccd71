package tokenizer

import (
	"regexp"
	"strings"
)

var (
	urlPattern        = regexp.MustCompile(`https?://\S+|www\.\S+`)
	digitPattern      = regexp.MustCompile(`\d+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Clean normalizes text before tokenization: it strips URLs and digit runs,
// collapses whitespace runs to a single space, and trims the ends.
//
// Clean never fails and is deterministic. It does not lowercase, strip
// punctuation, or remove angle-bracket content; casing and punctuation are
// part of the text the tokenizer learns.
func Clean(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = digitPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
