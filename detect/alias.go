package detect

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/docscope"
)

// aliasConfidence is fixed: an alias hit is the strongest lexical signal.
const aliasConfidence = 95

var _ docscope.Matcher = (*AliasMatcher)(nil)

// AliasMatcher is the first detection stage: an exact substring match
// against curated alias lists. The first hit in catalog order wins, so ties
// among multiple alias hits are broken by ecosystem priority, not by alias
// specificity.
type AliasMatcher struct{}

func (m *AliasMatcher) Name() string { return "alias" }

func (m *AliasMatcher) Match(ctx context.Context, query string, catalog *docscope.Catalog) (*docscope.DetectionResult, error) {
	normalized := normalize(query)

	for _, eco := range catalog.Ecosystems {
		for _, alias := range eco.Aliases {
			if alias == "" {
				continue
			}
			if strings.Contains(normalized, strings.ToLower(alias)) {
				return &docscope.DetectionResult{
					Ecosystem:           eco,
					Confidence:          aliasConfidence,
					Reasoning:           fmt.Sprintf("matched alias %q in query", alias),
					SuggestedDocSources: catalog.SourcesFor(eco.ID),
				}, nil
			}
		}
	}

	return nil, nil
}
