package detect_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/docscope"
	"github.com/fwojciec/docscope/detect"
	"github.com/fwojciec/docscope/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// embeddedCatalog returns a catalog where two ecosystems carry orthogonal
// unit embeddings and one carries none.
func embeddedCatalog() *docscope.Catalog {
	return &docscope.Catalog{
		Ecosystems: []*docscope.Ecosystem{
			{ID: "frontend_web", Description: "Frontend", DescriptionEmbedding: []float32{1, 0, 0}, IsActive: true},
			{ID: "systems", Description: "Systems", DescriptionEmbedding: []float32{0, 1, 0}, IsActive: true},
			{ID: "general", Description: "General", IsActive: true},
		},
		Sources: map[string][]string{
			"frontend_web": {"react-docs"},
		},
	}
}

func fixedEmbedder(vec []float32) *mock.Embedder {
	return &mock.Embedder{
		EmbedFn: func(ctx context.Context, text string) ([]float32, error) {
			return vec, nil
		},
	}
}

func TestSemanticMatcher_Match(t *testing.T) {
	t.Parallel()

	t.Run("selects the most similar embedded ecosystem", func(t *testing.T) {
		t.Parallel()

		matcher := &detect.SemanticMatcher{Embedder: fixedEmbedder([]float32{0.95, 0.05, 0})}

		result, err := matcher.Match(context.Background(), "query", embeddedCatalog())

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "frontend_web", result.Ecosystem.ID)
		assert.Equal(t, []string{"react-docs"}, result.SuggestedDocSources)
	})

	t.Run("confidence is the rounded similarity percentage", func(t *testing.T) {
		t.Parallel()

		matcher := &detect.SemanticMatcher{Embedder: fixedEmbedder([]float32{1, 0, 0})}

		result, err := matcher.Match(context.Background(), "query", embeddedCatalog())

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 100, result.Confidence)
		assert.Equal(t, "semantic similarity 100.0% to ecosystem description", result.Reasoning)
	})

	t.Run("passes the raw query to the embedder", func(t *testing.T) {
		t.Parallel()

		var received string
		embedder := &mock.Embedder{
			EmbedFn: func(ctx context.Context, text string) ([]float32, error) {
				received = text
				return []float32{1, 0, 0}, nil
			},
		}
		matcher := &detect.SemanticMatcher{Embedder: embedder}

		_, err := matcher.Match(context.Background(), "  Mixed CASE Query  ", embeddedCatalog())

		require.NoError(t, err)
		assert.Equal(t, "  Mixed CASE Query  ", received)
	})

	t.Run("returns no result below the threshold", func(t *testing.T) {
		t.Parallel()

		// cos = 0.6 against frontend_web, 0 against systems: the best
		// similarity sits below the 0.75 default.
		matcher := &detect.SemanticMatcher{Embedder: fixedEmbedder([]float32{0.6, 0, 0.8})}

		result, err := matcher.Match(context.Background(), "query", embeddedCatalog())

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("returns no result on provider error", func(t *testing.T) {
		t.Parallel()

		embedder := &mock.Embedder{
			EmbedFn: func(ctx context.Context, text string) ([]float32, error) {
				return nil, fmt.Errorf("embedding provider down")
			},
		}
		matcher := &detect.SemanticMatcher{Embedder: embedder}

		result, err := matcher.Match(context.Background(), "query", embeddedCatalog())

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("returns no result on empty vector", func(t *testing.T) {
		t.Parallel()

		matcher := &detect.SemanticMatcher{Embedder: fixedEmbedder(nil)}

		result, err := matcher.Match(context.Background(), "query", embeddedCatalog())

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("skips ecosystems without embeddings", func(t *testing.T) {
		t.Parallel()

		catalog := &docscope.Catalog{
			Ecosystems: []*docscope.Ecosystem{
				{ID: "general", Description: "General", IsActive: true},
			},
			Sources: map[string][]string{},
		}
		matcher := &detect.SemanticMatcher{Embedder: fixedEmbedder([]float32{1, 0, 0})}

		result, err := matcher.Match(context.Background(), "query", catalog)

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("honors custom threshold", func(t *testing.T) {
		t.Parallel()

		matcher := &detect.SemanticMatcher{
			Embedder:  fixedEmbedder([]float32{0.6, 0, 0.8}),
			Threshold: 0.5,
		}

		result, err := matcher.Match(context.Background(), "query", embeddedCatalog())

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "frontend_web", result.Ecosystem.ID)
	})

	t.Run("returns no result without an embedder", func(t *testing.T) {
		t.Parallel()

		matcher := &detect.SemanticMatcher{}

		result, err := matcher.Match(context.Background(), "query", embeddedCatalog())

		require.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestCosine(t *testing.T) {
	t.Parallel()

	t.Run("identical vectors have similarity 1", func(t *testing.T) {
		t.Parallel()

		v := []float32{0.3, -0.2, 0.9}

		assert.InDelta(t, 1.0, detect.Cosine(v, v), 1e-9)
	})

	t.Run("is symmetric", func(t *testing.T) {
		t.Parallel()

		a := []float32{0.1, 0.5, -0.3}
		b := []float32{-0.7, 0.2, 0.4}

		assert.InDelta(t, detect.Cosine(a, b), detect.Cosine(b, a), 1e-12)
	})

	t.Run("orthogonal vectors have similarity 0", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, 0.0, detect.Cosine([]float32{1, 0}, []float32{0, 1}), 1e-12)
	})

	t.Run("opposite vectors have similarity -1", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, -1.0, detect.Cosine([]float32{1, 2}, []float32{-1, -2}), 1e-9)
	})

	t.Run("zero vector yields 0", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, detect.Cosine([]float32{0, 0}, []float32{1, 2}))
	})

	t.Run("mismatched lengths yield 0", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, detect.Cosine([]float32{1}, []float32{1, 2}))
	})
}
