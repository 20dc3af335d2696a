package detect

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/fwojciec/docscope"
)

// DefaultSimilarityThreshold is the minimum cosine similarity the best
// ecosystem must exceed for the semantic stage to produce a result.
const DefaultSimilarityThreshold = 0.75

var _ docscope.Matcher = (*SemanticMatcher)(nil)

// SemanticMatcher is the third detection stage: cosine similarity between
// the raw query embedding and ecosystem description embeddings. Ecosystems
// without an embedding are skipped. Provider failures are logged and
// treated as no result so the cascade continues.
type SemanticMatcher struct {
	Embedder docscope.Embedder

	// Logger receives provider failures. Defaults to slog.Default().
	Logger *slog.Logger

	// Threshold overrides DefaultSimilarityThreshold when positive.
	Threshold float64
}

func (m *SemanticMatcher) Name() string { return "semantic" }

func (m *SemanticMatcher) Match(ctx context.Context, query string, catalog *docscope.Catalog) (*docscope.DetectionResult, error) {
	if m.Embedder == nil {
		return nil, nil
	}

	vec, err := m.Embedder.Embed(ctx, query)
	if err != nil {
		m.logger().Warn("query embedding failed", "error", err)
		return nil, nil
	}
	if len(vec) == 0 {
		return nil, nil
	}

	var best *docscope.Ecosystem
	bestSim := math.Inf(-1)
	for _, eco := range catalog.Ecosystems {
		if len(eco.DescriptionEmbedding) == 0 {
			continue
		}
		if sim := Cosine(vec, eco.DescriptionEmbedding); sim > bestSim {
			best, bestSim = eco, sim
		}
	}

	if best == nil || bestSim <= m.threshold() {
		return nil, nil
	}

	return &docscope.DetectionResult{
		Ecosystem:           best,
		Confidence:          int(math.Round(bestSim * 100)),
		Reasoning:           fmt.Sprintf("semantic similarity %.1f%% to ecosystem description", bestSim*100),
		SuggestedDocSources: catalog.SourcesFor(best.ID),
	}, nil
}

func (m *SemanticMatcher) threshold() float64 {
	if m.Threshold > 0 {
		return m.Threshold
	}
	return DefaultSimilarityThreshold
}

func (m *SemanticMatcher) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}

// Cosine computes cosine similarity between two vectors, range [-1, 1].
// Mismatched lengths and zero vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	den := math.Sqrt(na) * math.Sqrt(nb)
	if den == 0 {
		return 0
	}
	return dot / den
}
