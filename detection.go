package docscope

import "context"

// DetectionResult is the outcome of routing a query to an ecosystem.
type DetectionResult struct {
	Ecosystem *Ecosystem `json:"ecosystem"`

	// Confidence is a 0-100 heuristic score, not a calibrated probability.
	Confidence int `json:"confidence"`

	// Reasoning explains which stage and signal produced the result.
	Reasoning string `json:"reasoning"`

	// SuggestedDocSources lists the doc-source IDs assigned to the matched
	// ecosystem. An empty list is valid.
	SuggestedDocSources []string `json:"suggestedDocSources"`
}

// Detector routes a free-text query to exactly one ecosystem.
type Detector interface {
	// DetectEcosystem classifies the query against the current catalog.
	// Returns ENOTFOUND if no ecosystems are configured; every other
	// failure mode resolves to a result.
	DetectEcosystem(ctx context.Context, query string) (*DetectionResult, error)
}

// Matcher is a single detection stage. A nil result with a nil error means
// the stage found no confident match and the cascade should continue.
type Matcher interface {
	// Name identifies the stage in logs and reasoning.
	Name() string

	// Match attempts to classify the query against the catalog.
	Match(ctx context.Context, query string, catalog *Catalog) (*DetectionResult, error)
}

// Embedder converts text into a fixed-length numeric vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Completer returns a generative model completion for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
