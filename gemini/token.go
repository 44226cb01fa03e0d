package gemini

import (
	"context"

	"github.com/fwojciec/pagescope"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

// DefaultTokenizerModel is the model whose vocabulary counts tokens when
// NewTokenCounter gets no model.
const DefaultTokenizerModel = "gemini-2.0-flash"

var _ pagescope.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens locally with a Gemini model vocabulary, so
// clipping texts to a budget needs no API calls.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter loads the tokenizer of model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultTokenizerModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, pagescope.Errorf(pagescope.EINVALID, "no tokenizer for model %q: %v", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens returns the number of tokens text takes as a user turn.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}, nil)
	if err != nil {
		return 0, err
	}
	return int(result.TotalTokens), nil
}
