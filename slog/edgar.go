package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/secmda"
)

var _ secmda.FilingIndex = (*LoggingFilingIndex)(nil)

// LoggingFilingIndex wraps a FilingIndex with lookup logging.
type LoggingFilingIndex struct {
	next   secmda.FilingIndex
	logger *slog.Logger
}

// NewLoggingFilingIndex creates a new LoggingFilingIndex.
func NewLoggingFilingIndex(next secmda.FilingIndex, logger *slog.Logger) *LoggingFilingIndex {
	return &LoggingFilingIndex{next: next, logger: logger}
}

func (x *LoggingFilingIndex) LookupCIK(ctx context.Context, ticker string) (cik string, err error) {
	defer func(begin time.Time) {
		x.logger.Info("cik lookup",
			"ticker", ticker,
			"cik", cik,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return x.next.LookupCIK(ctx, ticker)
}

func (x *LoggingFilingIndex) FindFilings(ctx context.Context, cik string, category secmda.Category) (filings []*secmda.Filing, err error) {
	defer func(begin time.Time) {
		x.logger.Info("filing search",
			"cik", cik,
			"form", category,
			"count", len(filings),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return x.next.FindFilings(ctx, cik, category)
}
