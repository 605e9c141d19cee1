package summarizer

import "github.com/nguyentantai21042004/verba/internal/models"

// Summarizer turns a transcript into structured meeting notes.
type Summarizer interface {
	Summarize(transcript string) models.Summary
}
