package detect

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fwojciec/docscope"
)

const (
	defaultAIConfidence = 50
	defaultAIReasoning  = "AI detection"
	fallbackReasoning   = "Fallback to general"
)

var _ docscope.Matcher = (*AIMatcher)(nil)

// AIMatcher is the terminal detection stage: generative classification over
// the active catalog. It never fails for a non-empty catalog — provider
// errors, malformed responses, and unknown ecosystem IDs all resolve to the
// canonical fallback ecosystem with confidence 0.
type AIMatcher struct {
	Completer docscope.Completer

	// Logger receives provider and parse failures. Defaults to slog.Default().
	Logger *slog.Logger
}

// classification is the constrained response shape requested from the
// generative provider. Confidence is a pointer so an absent field is
// distinguishable from an explicit 0.
type classification struct {
	EcosystemID string `json:"ecosystemId"`
	Confidence  *int   `json:"confidence"`
	Reasoning   string `json:"reasoning"`
}

func (m *AIMatcher) Name() string { return "ai" }

func (m *AIMatcher) Match(ctx context.Context, query string, catalog *docscope.Catalog) (*docscope.DetectionResult, error) {
	var parsed classification
	if m.Completer != nil {
		raw, err := m.Completer.Complete(ctx, BuildClassifyPrompt(catalog, query))
		if err != nil {
			m.logger().Warn("ai classification failed", "error", err)
		} else {
			parsed = parseClassification(raw, m.logger())
		}
	}

	if eco := catalog.ByID(parsed.EcosystemID); eco != nil {
		confidence := defaultAIConfidence
		if parsed.Confidence != nil {
			confidence = clamp(*parsed.Confidence, 0, 100)
		}
		reasoning := parsed.Reasoning
		if reasoning == "" {
			reasoning = defaultAIReasoning
		}
		return &docscope.DetectionResult{
			Ecosystem:           eco,
			Confidence:          confidence,
			Reasoning:           reasoning,
			SuggestedDocSources: catalog.SourcesFor(eco.ID),
		}, nil
	}

	fallback := catalog.Fallback()
	if fallback == nil {
		return nil, docscope.Errorf(docscope.ENOTFOUND, "no ecosystems configured")
	}
	return &docscope.DetectionResult{
		Ecosystem:           fallback,
		Confidence:          0,
		Reasoning:           fallbackReasoning,
		SuggestedDocSources: catalog.SourcesFor(fallback.ID),
	}, nil
}

// BuildClassifyPrompt builds the classification prompt enumerating every
// active ecosystem's ID and description plus the raw query.
func BuildClassifyPrompt(catalog *docscope.Catalog, query string) string {
	var sb strings.Builder
	sb.WriteString("Classify the user query into exactly one documentation ecosystem.\n\n")
	sb.WriteString("<ecosystems>\n")
	for _, eco := range catalog.Ecosystems {
		sb.WriteString("<ecosystem>\n")
		fmt.Fprintf(&sb, "<id>%s</id>\n", eco.ID)
		fmt.Fprintf(&sb, "<description>%s</description>\n", eco.Description)
		sb.WriteString("</ecosystem>\n")
	}
	sb.WriteString("</ecosystems>\n\n")
	fmt.Fprintf(&sb, "Query: %s\n\n", query)
	sb.WriteString(`Respond with JSON: {"ecosystemId": "<id>", "confidence": <0-100>, "reasoning": "<one sentence>"}`)
	return sb.String()
}

// parseClassification parses a model response defensively. Code fences and
// surrounding prose are stripped; anything still unparseable yields the
// zero value rather than an error.
func parseClassification(raw string, logger *slog.Logger) classification {
	cleaned := strings.TrimSpace(raw)
	if start := strings.Index(cleaned, "{"); start >= 0 {
		if end := strings.LastIndex(cleaned, "}"); end > start {
			cleaned = cleaned[start : end+1]
		}
	}

	var out classification
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		logger.Warn("unparseable ai classification", "error", err, "response", raw)
		return classification{}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m *AIMatcher) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}
