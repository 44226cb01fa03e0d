// Package gemini ranks and measures extracted texts with Google Gemini
// models.
package gemini

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/fwojciec/pagescope"
	"google.golang.org/genai"
)

// DefaultEmbeddingModel is the model used when NewRetriever gets no model.
const DefaultEmbeddingModel = "gemini-embedding-001"

// maxBatch is the number of contents the API embeds per request.
const maxBatch = 100

var _ pagescope.Retriever = (*Retriever)(nil)

// Retriever implements pagescope.Retriever with Gemini embeddings.
type Retriever struct {
	client *genai.Client
	model  string
}

// NewRetriever creates a new Retriever.
func NewRetriever(client *genai.Client, model string) *Retriever {
	if model == "" {
		model = DefaultEmbeddingModel
	}
	return &Retriever{client: client, model: model}
}

// Rank embeds query and texts and orders texts by cosine similarity to
// the query.
func (r *Retriever) Rank(ctx context.Context, query string, texts []string, limit int) ([]pagescope.Match, error) {
	if query == "" {
		return nil, pagescope.Errorf(pagescope.EINVALID, "query required")
	}
	if len(texts) == 0 {
		return []pagescope.Match{}, nil
	}

	queryVecs, err := r.embed(ctx, []string{query}, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, err
	}
	vecs, err := r.embed(ctx, texts, "RETRIEVAL_DOCUMENT")
	if err != nil {
		return nil, err
	}
	return RankEmbeddings(queryVecs[0], texts, vecs, limit), nil
}

func (r *Retriever) embed(ctx context.Context, texts []string, taskType string) ([][]float32, error) {
	vecs := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += maxBatch {
		end := min(start+maxBatch, len(texts))

		contents := make([]*genai.Content, 0, end-start)
		for _, text := range texts[start:end] {
			contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))
		}

		resp, err := r.client.Models.EmbedContent(ctx, r.model, contents, &genai.EmbedContentConfig{TaskType: taskType})
		if err != nil {
			return nil, fmt.Errorf("embed content: %w", err)
		}
		if resp == nil || len(resp.Embeddings) != end-start {
			return nil, pagescope.Errorf(pagescope.EINTERNAL, "gemini returned an unexpected number of embeddings")
		}
		for _, e := range resp.Embeddings {
			vecs = append(vecs, e.Values)
		}
	}
	return vecs, nil
}

// RankEmbeddings orders texts by the cosine similarity of their vectors
// to query, best first, keeping at most limit matches. Ties keep input
// order. A limit <= 0 keeps every match.
func RankEmbeddings(query []float32, texts []string, vecs [][]float32, limit int) []pagescope.Match {
	matches := make([]pagescope.Match, len(texts))
	for i, text := range texts {
		var score float32
		if i < len(vecs) {
			score = Cosine(query, vecs[i])
		}
		matches[i] = pagescope.Match{Index: i, Text: text, Score: score}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if limit > 0 && limit < len(matches) {
		matches = matches[:limit]
	}
	return matches
}

// Cosine returns the cosine similarity of a and b, or 0 when either is a
// zero vector or their lengths differ.
func Cosine(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}
