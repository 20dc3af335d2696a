package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/docscope"
)

// Run executes the detect command.
func (c *DetectCmd) Run(deps *Dependencies) error {
	result, err := deps.Detector.DetectEcosystem(deps.Ctx, c.Query)
	if err != nil {
		if docscope.ErrorCode(err) == docscope.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s. Use 'docscope seed' to load a catalog.\n", docscope.ErrorMessage(err))
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docscope.ErrorMessage(err))
		}
		return err
	}

	if c.JSON {
		out := struct {
			EcosystemID         string   `json:"ecosystemId"`
			Confidence          int      `json:"confidence"`
			Reasoning           string   `json:"reasoning"`
			SuggestedDocSources []string `json:"suggestedDocSources"`
		}{result.Ecosystem.ID, result.Confidence, result.Reasoning, result.SuggestedDocSources}

		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(deps.Stdout, "%s (confidence %d)\n", result.Ecosystem.ID, result.Confidence)
	fmt.Fprintf(deps.Stdout, "reasoning: %s\n", result.Reasoning)
	for _, id := range result.SuggestedDocSources {
		fmt.Fprintf(deps.Stdout, "source: %s\n", id)
	}

	return nil
}
