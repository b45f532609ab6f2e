package label

import (
	"regexp"
	"strings"

	"github.com/forPelevin/gomoji"
)

var (
	urlPattern = regexp.MustCompile(`(?i)(https?://\S+|www\.\S+)`)
	// Everything that is not Latin alphanumeric, Devanagari, or whitespace.
	nonTextPattern    = regexp.MustCompile(`[^0-9a-z\x{0900}-\x{097F}\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Clean normalizes raw comment text for labeling: URLs and emojis are
// stripped, the text is lowercased, and anything outside Latin
// alphanumerics and the Devanagari block is dropped. Whitespace collapses
// to single spaces.
func Clean(text string) string {
	v := urlPattern.ReplaceAllString(text, " ")
	v = gomoji.RemoveEmojis(v)
	v = strings.ToLower(v)
	v = nonTextPattern.ReplaceAllString(v, " ")
	v = whitespacePattern.ReplaceAllString(v, " ")
	return strings.TrimSpace(v)
}
