package pagescope

import "context"

// Match is a text ranked against a query.
type Match struct {
	// Index is the position of the text in the ranked input.
	Index int     `json:"index" yaml:"index"`
	Text  string  `json:"text" yaml:"text"`
	Score float32 `json:"score" yaml:"score"`
}

// Retriever scores extracted texts against a query.
type Retriever interface {
	// Rank returns up to limit texts ordered by descending similarity to
	// query. A limit <= 0 returns every text.
	Rank(ctx context.Context, query string, texts []string, limit int) ([]Match, error)
}

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
