package reconcile

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes and drops combining marks so "Línea" and "linea"
// produce the same key.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize builds the canonical matching key for a piece of free text:
// trimmed, lowercased, diacritics stripped, whitespace collapsed to single
// spaces. It is deterministic and idempotent, and is the only key-generation
// function used by the index and resolvers, which makes every match case-
// and accent-insensitive.
func Normalize(value string) string {
	text := strings.ToLower(strings.TrimSpace(value))
	if text == "" {
		return ""
	}
	if stripped, _, err := transform.String(stripMarks, text); err == nil {
		text = stripped
	}
	return whitespaceRun.ReplaceAllString(text, " ")
}
