package detect_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docscope"
	"github.com/fwojciec/docscope/detect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordMatcher_Match(t *testing.T) {
	t.Parallel()

	matcher := &detect.KeywordMatcher{}

	t.Run("scores primary and group keywords identically", func(t *testing.T) {
		t.Parallel()

		// "deploy" is primary, "docker" and "aws" live in groups: three
		// labels at +10 each.
		result, err := matcher.Match(context.Background(), "Deploying docker containers to AWS", testCatalog())

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "cloud_infra", result.Ecosystem.ID)
		assert.Equal(t, 85, result.Confidence)
		assert.Equal(t, "matched keywords: deploy, containers:docker, vendors:aws", result.Reasoning)
		assert.Equal(t, []string{"aws-docs", "k8s-docs"}, result.SuggestedDocSources)
	})

	t.Run("single keyword hit yields confidence 75", func(t *testing.T) {
		t.Parallel()

		result, err := matcher.Match(context.Background(), "tuning the garbage collector and memory usage", testCatalog())

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "systems", result.Ecosystem.ID)
		assert.Equal(t, 75, result.Confidence)
		assert.Equal(t, "matched keywords: memory", result.Reasoning)
	})

	t.Run("caps confidence at 95", func(t *testing.T) {
		t.Parallel()

		catalog := &docscope.Catalog{
			Ecosystems: []*docscope.Ecosystem{{
				ID:          "cloud_infra",
				Description: "Cloud",
				Keywords:    []string{"deploy", "infrastructure", "serverless", "docker", "kubernetes", "aws"},
				IsActive:    true,
			}},
			Sources: map[string][]string{},
		}

		result, err := matcher.Match(context.Background(),
			"deploy serverless infrastructure with docker and kubernetes on aws", catalog)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 95, result.Confidence)
	})

	t.Run("returns no result below minimum score", func(t *testing.T) {
		t.Parallel()

		result, err := matcher.Match(context.Background(), "how to bake sourdough bread", testCatalog())

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("first ecosystem to reach the maximum score wins ties", func(t *testing.T) {
		t.Parallel()

		catalog := &docscope.Catalog{
			Ecosystems: []*docscope.Ecosystem{
				{ID: "first", Description: "First", Keywords: []string{"shared"}, IsActive: true},
				{ID: "second", Description: "Second", Keywords: []string{"shared"}, IsActive: true},
			},
			Sources: map[string][]string{},
		}

		result, err := matcher.Match(context.Background(), "a query about shared things", catalog)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "first", result.Ecosystem.ID)
	})

	t.Run("higher score beats earlier catalog position", func(t *testing.T) {
		t.Parallel()

		catalog := &docscope.Catalog{
			Ecosystems: []*docscope.Ecosystem{
				{ID: "first", Description: "First", Keywords: []string{"alpha"}, IsActive: true},
				{ID: "second", Description: "Second", Keywords: []string{"alpha", "beta"}, IsActive: true},
			},
			Sources: map[string][]string{},
		}

		result, err := matcher.Match(context.Background(), "alpha and beta", catalog)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "second", result.Ecosystem.ID)
		assert.Equal(t, 80, result.Confidence)
	})

	t.Run("group labels are stable across runs", func(t *testing.T) {
		t.Parallel()

		catalog := &docscope.Catalog{
			Ecosystems: []*docscope.Ecosystem{{
				ID:          "cloud_infra",
				Description: "Cloud",
				KeywordGroups: map[string][]string{
					"vendors":    {"aws"},
					"containers": {"docker"},
				},
				IsActive: true,
			}},
			Sources: map[string][]string{},
		}

		for range 10 {
			result, err := matcher.Match(context.Background(), "docker on aws", catalog)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, "matched keywords: containers:docker, vendors:aws", result.Reasoning)
		}
	})
}
