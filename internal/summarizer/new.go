package summarizer

import "github.com/nguyentantai21042004/verba/internal/models"

// Options holds the tuning constants of the extraction heuristics.
type Options struct {
	LeadSentences     int
	MaxKeyPoints      int
	MaxDecisions      int
	MaxActionItems    int
	KeyPointWords     int
	ItemWords         int
	MinSentenceLength int
}

// DefaultOptions returns the stock heuristic settings.
func DefaultOptions() Options {
	return Options{
		LeadSentences:     2,
		MaxKeyPoints:      5,
		MaxDecisions:      5,
		MaxActionItems:    5,
		KeyPointWords:     20,
		ItemWords:         18,
		MinSentenceLength: 10,
	}
}

type implSummarizer struct {
	opts Options
}

// New creates a Summarizer. Zero-valued options fall back to DefaultOptions.
func New(opts Options) Summarizer {
	def := DefaultOptions()
	if opts.LeadSentences <= 0 {
		opts.LeadSentences = def.LeadSentences
	}
	if opts.MaxKeyPoints <= 0 {
		opts.MaxKeyPoints = def.MaxKeyPoints
	}
	if opts.MaxDecisions <= 0 {
		opts.MaxDecisions = def.MaxDecisions
	}
	if opts.MaxActionItems <= 0 {
		opts.MaxActionItems = def.MaxActionItems
	}
	if opts.KeyPointWords <= 0 {
		opts.KeyPointWords = def.KeyPointWords
	}
	if opts.ItemWords <= 0 {
		opts.ItemWords = def.ItemWords
	}
	if opts.MinSentenceLength <= 0 {
		opts.MinSentenceLength = def.MinSentenceLength
	}
	return &implSummarizer{opts: opts}
}

var _ Summarizer = (*implSummarizer)(nil)

// Summarize is a convenience wrapper using DefaultOptions.
func Summarize(transcript string) models.Summary {
	return New(DefaultOptions()).Summarize(transcript)
}
