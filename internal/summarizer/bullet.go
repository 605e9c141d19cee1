package summarizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Ellipsis marks a bullet cut at its word limit. It lies outside the stripped
// punctuation set, so it survives the trailing strip.
const Ellipsis = "…"

const trailingPunct = ".,;:"

// FormatBullet upper-cases the first character of sentence, truncates it to
// maxWords words and strips trailing punctuation.
func FormatBullet(sentence string, maxWords int) string {
	text := capitalize(strings.TrimSpace(sentence))

	words := strings.Fields(text)
	if maxWords > 0 && len(words) > maxWords {
		return trimTail(strings.Join(words[:maxWords], " ")) + Ellipsis
	}

	return trimTail(text)
}

// trimTail drops trailing punctuation and any space it leaves behind, so
// "plan , ." and "plan" yield the same bullet.
func trimTail(s string) string {
	return strings.TrimRightFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(trailingPunct, r)
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}
