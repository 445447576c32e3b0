package pipeline

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	nonAlnum   = regexp.MustCompile(`[^A-Za-z0-9 ]+`)
)

// CleanText membuang karakter di luar [A-Za-z0-9 ], merapatkan spasi,
// dan trim. Huruf beraksen dilipat ke huruf dasarnya lebih dulu.
func CleanText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}
	s = whitespace.ReplaceAllString(s, " ")
	s = nonAlnum.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
