package summarizer

import (
	"regexp"
	"strings"
)

// fillers are removed as whole words or fixed phrases, case-insensitively.
var fillers = []string{
	"you know", "i mean",
	"uh-huh", "mm-hmm", "mhm",
	"umm", "um", "uhh", "uh", "erm", "er", "ah", "hmm",
	"basically", "actually", "literally",
}

// Word edges are spelled out because \b only knows ASCII word characters,
// which would let "er" match inside "Müer". The neighbours are captured and
// written back.
const wordEdge = `[^\p{L}\p{N}_]`

var (
	reFiller     = regexp.MustCompile(`(?i)(^|` + wordEdge + `)(?:` + fillerAlternation() + `),?(` + wordEdge + `|$)`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

func fillerAlternation() string {
	quoted := make([]string, len(fillers))
	for i, f := range fillers {
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(f), " ", `\s+`)
	}
	return strings.Join(quoted, "|")
}

// Normalize deletes filler tokens and collapses whitespace runs to a single
// space. Removal repeats until nothing changes, so Normalize is idempotent
// even when deleting one filler brings the words of another together. Adjacent
// fillers share an edge, so each pass removes every other one.
func Normalize(text string) string {
	out := collapseSpace(text)
	for {
		next := collapseSpace(reFiller.ReplaceAllString(out, "${1} ${2}"))
		if next == out {
			return out
		}
		out = next
	}
}

func collapseSpace(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}
