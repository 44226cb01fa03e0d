package mock

import (
	"context"

	"github.com/fwojciec/pagescope"
)

var _ pagescope.Retriever = (*Retriever)(nil)

// Retriever is a mock implementation of pagescope.Retriever.
type Retriever struct {
	RankFn func(ctx context.Context, query string, texts []string, limit int) ([]pagescope.Match, error)
}

func (r *Retriever) Rank(ctx context.Context, query string, texts []string, limit int) ([]pagescope.Match, error) {
	return r.RankFn(ctx, query, texts, limit)
}
