package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagescope"
)

var _ pagescope.ContentDetector = (*LoggingContentDetector)(nil)

// LoggingContentDetector wraps a ContentDetector with logging.
type LoggingContentDetector struct {
	next   pagescope.ContentDetector
	logger *slog.Logger
}

// NewLoggingContentDetector creates a new LoggingContentDetector.
func NewLoggingContentDetector(next pagescope.ContentDetector, logger *slog.Logger) *LoggingContentDetector {
	return &LoggingContentDetector{next: next, logger: logger}
}

// Detect logs the detected framework and content selector.
func (d *LoggingContentDetector) Detect(doc pagescope.Document) (pagescope.Framework, string) {
	begin := time.Now()
	framework, selector := d.next.Detect(doc)

	name := string(framework)
	if framework == pagescope.FrameworkUnknown {
		name = "(unknown)"
	}
	d.logger.Info("content detection",
		"framework", name,
		"selector", selector,
		"duration", time.Since(begin),
	)
	return framework, selector
}
