package detect

import (
	"context"
	"maps"
	"slices"
	"strings"

	"github.com/fwojciec/docscope"
)

const (
	// keywordWeight applies to primary and group keywords alike: group
	// keywords exist so cross-cutting terms (e.g. infrastructure vendor
	// names) score as strongly as primary topic keywords.
	keywordWeight = 10

	// minKeywordScore is the threshold below which the stage yields no
	// result, i.e. at least one keyword must match.
	minKeywordScore = 10

	keywordBaseConfidence = 70
	keywordPerLabel       = 5
	keywordMaxConfidence  = 95
)

var _ docscope.Matcher = (*KeywordMatcher)(nil)

// KeywordMatcher is the second detection stage: weighted keyword and
// keyword-group scoring over the normalized query. The ecosystem with the
// strictly highest score wins; on ties the first ecosystem in catalog order
// to reach the maximum is kept. That tie-break is deliberate: catalog order
// is priority order, so it stays deterministic for a fixed catalog.
type KeywordMatcher struct{}

func (m *KeywordMatcher) Name() string { return "keyword" }

func (m *KeywordMatcher) Match(ctx context.Context, query string, catalog *docscope.Catalog) (*docscope.DetectionResult, error) {
	normalized := normalize(query)

	var best *docscope.Ecosystem
	var bestScore int
	var bestLabels []string

	for _, eco := range catalog.Ecosystems {
		score, labels := scoreEcosystem(normalized, eco)
		if score > bestScore {
			best, bestScore, bestLabels = eco, score, labels
		}
	}

	if best == nil || bestScore < minKeywordScore {
		return nil, nil
	}

	confidence := keywordBaseConfidence + keywordPerLabel*len(bestLabels)
	if confidence > keywordMaxConfidence {
		confidence = keywordMaxConfidence
	}

	return &docscope.DetectionResult{
		Ecosystem:           best,
		Confidence:          confidence,
		Reasoning:           "matched keywords: " + strings.Join(bestLabels, ", "),
		SuggestedDocSources: catalog.SourcesFor(best.ID),
	}, nil
}

// scoreEcosystem accumulates keyword hits for one ecosystem. Group hits are
// labeled "group:keyword". Groups are visited in sorted order so the label
// list is stable.
func scoreEcosystem(normalized string, eco *docscope.Ecosystem) (int, []string) {
	var score int
	var labels []string

	for _, kw := range eco.Keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(normalized, strings.ToLower(kw)) {
			score += keywordWeight
			labels = append(labels, kw)
		}
	}

	for _, group := range slices.Sorted(maps.Keys(eco.KeywordGroups)) {
		for _, kw := range eco.KeywordGroups[group] {
			if kw == "" {
				continue
			}
			if strings.Contains(normalized, strings.ToLower(kw)) {
				score += keywordWeight
				labels = append(labels, group+":"+kw)
			}
		}
	}

	return score, labels
}
