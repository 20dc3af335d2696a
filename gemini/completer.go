package gemini

import (
	"context"

	"github.com/fwojciec/docscope"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is used when no generation model is specified.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements docscope.Completer at compile time.
var _ docscope.Completer = (*Completer)(nil)

// Completer implements docscope.Completer using Gemini, constraining the
// response to the classification JSON shape.
type Completer struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewCompleter creates a new Completer. An empty model selects DefaultModel;
// a nil limiter disables client-side rate limiting.
func NewCompleter(client *genai.Client, model string, limiter *rate.Limiter) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model, limiter: limiter}
}

// Complete returns the model completion for the prompt.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", docscope.Errorf(docscope.EINVALID, "prompt required")
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildClassifyConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", docscope.Errorf(docscope.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildClassifyConfig returns the GenerateContentConfig for classification
// calls. The response schema constrains output to the expected JSON shape;
// the parser downstream still treats the response defensively.
func BuildClassifyConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You classify developer questions into documentation ecosystems. Respond with JSON only.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"ecosystemId": {Type: genai.TypeString},
				"confidence":  {Type: genai.TypeInteger},
				"reasoning":   {Type: genai.TypeString},
			},
			Required: []string{"ecosystemId"},
		},
	}
}
