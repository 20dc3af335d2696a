// Package detect implements the four-stage ecosystem detection cascade:
// alias match, keyword scoring, semantic similarity, and AI classification.
package detect

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/docscope"
)

var _ docscope.Detector = (*Pipeline)(nil)

// Pipeline runs detection stages in strict order against the cached catalog
// and returns the first confident result. No stage runs out of order and no
// stage is skipped based on query content, so which stage fires is
// deterministic for a given catalog and set of stage outcomes.
type Pipeline struct {
	Catalog  docscope.CatalogService
	Matchers []docscope.Matcher
}

// NewPipeline assembles the standard cascade. The final AI stage is the
// totality guarantee: it produces a result for any non-empty catalog even
// when both providers fail.
func NewPipeline(catalog docscope.CatalogService, embedder docscope.Embedder, completer docscope.Completer, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		Catalog: catalog,
		Matchers: []docscope.Matcher{
			&AliasMatcher{},
			&KeywordMatcher{},
			&SemanticMatcher{Embedder: embedder, Logger: logger},
			&AIMatcher{Completer: completer, Logger: logger},
		},
	}
}

// DetectEcosystem classifies the query. Returns ENOTFOUND when no ecosystems
// are configured; otherwise a result is guaranteed.
func (p *Pipeline) DetectEcosystem(ctx context.Context, query string) (*docscope.DetectionResult, error) {
	catalog, err := p.Catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalog.Ecosystems) == 0 {
		return nil, docscope.Errorf(docscope.ENOTFOUND, "no ecosystems configured")
	}

	for _, m := range p.Matchers {
		result, err := m.Match(ctx, query, catalog)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
	}

	return nil, docscope.Errorf(docscope.EINTERNAL, "detection cascade produced no result")
}

// normalize lowercases and trims a query for the lexical stages. The
// semantic and AI stages receive the raw query.
func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
