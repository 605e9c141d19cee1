package summarizer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var reTerminators = regexp.MustCompile(`[.!?]+`)

// Segment splits text on runs of sentence terminators and keeps, in document
// order, the trimmed pieces longer than minLength characters.
func Segment(text string, minLength int) []string {
	var sentences []string
	for _, piece := range reTerminators.Split(text, -1) {
		piece = strings.TrimSpace(piece)
		if utf8.RuneCountInString(piece) <= minLength {
			continue
		}
		sentences = append(sentences, piece)
	}
	return sentences
}
