package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagescope"
)

var _ pagescope.Retriever = (*LoggingRetriever)(nil)

// LoggingRetriever wraps a Retriever with logging.
type LoggingRetriever struct {
	next   pagescope.Retriever
	logger *slog.Logger
}

// NewLoggingRetriever creates a new LoggingRetriever.
func NewLoggingRetriever(next pagescope.Retriever, logger *slog.Logger) *LoggingRetriever {
	return &LoggingRetriever{next: next, logger: logger}
}

// Rank logs the number of ranked texts and the best score.
func (r *LoggingRetriever) Rank(ctx context.Context, query string, texts []string, limit int) (matches []pagescope.Match, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"query", query,
			"texts", len(texts),
			"matches", len(matches),
		}
		if len(matches) > 0 {
			attrs = append(attrs, "top_score", matches[0].Score)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		r.logger.Info("rank", attrs...)
	}(time.Now())
	return r.next.Rank(ctx, query, texts, limit)
}
