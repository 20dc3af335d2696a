package mock

import (
	"context"

	"github.com/fwojciec/docscope"
)

var _ docscope.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of docscope.Embedder.
type Embedder struct {
	EmbedFn func(ctx context.Context, text string) ([]float32, error)
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedFn(ctx, text)
}

var _ docscope.Completer = (*Completer)(nil)

// Completer is a mock implementation of docscope.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, prompt string) (string, error)
}

func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	return c.CompleteFn(ctx, prompt)
}
