package mock

import (
	"context"

	"github.com/fwojciec/docscope"
)

var _ docscope.Detector = (*Detector)(nil)

// Detector is a mock implementation of docscope.Detector.
type Detector struct {
	DetectEcosystemFn func(ctx context.Context, query string) (*docscope.DetectionResult, error)
}

func (d *Detector) DetectEcosystem(ctx context.Context, query string) (*docscope.DetectionResult, error) {
	return d.DetectEcosystemFn(ctx, query)
}

var _ docscope.Matcher = (*Matcher)(nil)

// Matcher is a mock implementation of docscope.Matcher.
type Matcher struct {
	NameFn  func() string
	MatchFn func(ctx context.Context, query string, catalog *docscope.Catalog) (*docscope.DetectionResult, error)
}

func (m *Matcher) Name() string {
	if m.NameFn == nil {
		return "mock"
	}
	return m.NameFn()
}

func (m *Matcher) Match(ctx context.Context, query string, catalog *docscope.Catalog) (*docscope.DetectionResult, error) {
	return m.MatchFn(ctx, query, catalog)
}
