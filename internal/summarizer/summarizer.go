package summarizer

import (
	"strings"

	"github.com/nguyentantai21042004/verba/internal/models"
)

const (
	// EmptyTranscriptBullet is the only key point of a blank transcript.
	EmptyTranscriptBullet = "No content available"
	// NoKeyPointsBullet replaces an empty key point list.
	NoKeyPointsBullet = "No significant content captured"
)

// Summarize runs normalize, segment, extract and assemble over transcript.
func (s *implSummarizer) Summarize(transcript string) models.Summary {
	if strings.TrimSpace(transcript) == "" {
		return EmptySummary()
	}

	sentences := Segment(Normalize(transcript), s.opts.MinSentenceLength)

	return Assemble(
		ExtractKeyPoints(sentences, s.opts.LeadSentences, s.opts.MaxKeyPoints, s.opts.KeyPointWords),
		ExtractDecisions(sentences, s.opts.MaxDecisions, s.opts.ItemWords),
		ExtractActionItems(sentences, s.opts.MaxActionItems, s.opts.ItemWords),
	)
}

// Assemble builds a Summary, substituting a placeholder when no key point
// was found. Empty decisions and action items are kept as they are.
func Assemble(keyPoints, decisions, actionItems []string) models.Summary {
	if len(keyPoints) == 0 {
		keyPoints = []string{NoKeyPointsBullet}
	}
	return models.Summary{
		KeyPoints:   keyPoints,
		Decisions:   decisions,
		ActionItems: actionItems,
	}.Normalize()
}

// EmptySummary is the summary of a blank transcript.
func EmptySummary() models.Summary {
	return models.Summary{
		KeyPoints:   []string{EmptyTranscriptBullet},
		Decisions:   []string{},
		ActionItems: []string{},
	}
}
