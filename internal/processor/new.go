package processor

import (
	"github.com/nguyentantai21042004/verba/internal/config"
	"github.com/nguyentantai21042004/verba/internal/logger"
	"github.com/nguyentantai21042004/verba/internal/session"
	"github.com/nguyentantai21042004/verba/internal/summarizer"
	"github.com/nguyentantai21042004/verba/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	store       session.Store
	logger      logger.Logger
	slots       *slots
}

// New creates a new Processor instance
func New(cfg *config.Config, tr transcriber.Transcriber, sum summarizer.Summarizer, store session.Store, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		transcriber: tr,
		summarizer:  sum,
		store:       store,
		logger:      log,
		slots:       newSlots(cfg.Performance.MaxConcurrent),
	}
}

// SummarizerOptions maps the summary config section onto summarizer options.
func SummarizerOptions(cfg config.SummaryConfig) summarizer.Options {
	return summarizer.Options{
		LeadSentences:     cfg.LeadSentences,
		MaxKeyPoints:      cfg.MaxKeyPoints,
		MaxDecisions:      cfg.MaxDecisions,
		MaxActionItems:    cfg.MaxActionItems,
		KeyPointWords:     cfg.KeyPointWords,
		ItemWords:         cfg.ItemWords,
		MinSentenceLength: cfg.MinSentenceLength,
	}
}
