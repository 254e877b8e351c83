package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/secmda"
)

var _ secmda.SectionExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a SectionExtractor and logs the outcome of each
// extraction, including whether the section was found.
type LoggingExtractor struct {
	next   secmda.SectionExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next secmda.SectionExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

func (e *LoggingExtractor) ExtractSection(html string, category secmda.Category) (text string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract section",
			"form", category,
			"input_bytes", len(html),
			"found", err == nil && !secmda.IsNotFound(text),
			"output_bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractSection(html, category)
}
