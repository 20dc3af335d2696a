// Package gemini provides Gemini-backed implementations of the embedding
// and completion provider interfaces.
package gemini

import (
	"context"

	"github.com/fwojciec/docscope"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultEmbeddingModel is used when no embedding model is specified.
const DefaultEmbeddingModel = "gemini-embedding-001"

// Ensure Embedder implements docscope.Embedder at compile time.
var _ docscope.Embedder = (*Embedder)(nil)

// Embedder implements docscope.Embedder using the Gemini embedding API.
type Embedder struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewEmbedder creates a new Embedder. An empty model selects
// DefaultEmbeddingModel; a nil limiter disables client-side rate limiting.
func NewEmbedder(client *genai.Client, model string, limiter *rate.Limiter) *Embedder {
	if model == "" {
		model = DefaultEmbeddingModel
	}
	return &Embedder{client: client, model: model, limiter: limiter}
}

// Embed returns the embedding vector for the text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, docscope.Errorf(docscope.EINVALID, "text required")
	}

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: text}},
		}},
		nil,
	)
	if err != nil {
		return nil, err
	}
	if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, docscope.Errorf(docscope.EINTERNAL, "gemini returned no embedding")
	}

	return result.Embeddings[0].Values, nil
}
