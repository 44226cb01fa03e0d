package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagescope"
)

var _ pagescope.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   pagescope.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagescope.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs how much of the page was kept as main content.
func (e *LoggingExtractor) Extract(html string) (result *pagescope.ExtractResult, err error) {
	defer func(begin time.Time) {
		kept := 0
		if result != nil {
			kept = len(result.ContentHTML)
		}
		e.logger.Info("extract",
			"bytes_in", len(html),
			"bytes_out", kept,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
