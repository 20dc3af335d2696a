package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/docscope"
	"gopkg.in/yaml.v3"
)

// evalFile is the YAML shape accepted by the eval command.
type evalFile struct {
	Cases []evalCase `yaml:"cases"`
}

type evalCase struct {
	Query             string `yaml:"query"`
	Ecosystem         string `yaml:"ecosystem"`
	MinConfidence     int    `yaml:"minConfidence"`
	ReasoningContains string `yaml:"reasoningContains"`
}

// Run executes the eval command: each case is fed through the detection
// pipeline and checked against its expectations.
func (c *EvalCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	var eval evalFile
	if err := yaml.Unmarshal(data, &eval); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return fmt.Errorf("failed to parse eval file %q: %w", c.File, err)
	}

	if len(eval.Cases) == 0 {
		fmt.Fprintln(deps.Stdout, "No cases found.")
		return nil
	}

	passed := 0
	for _, tc := range eval.Cases {
		result, err := deps.Detector.DetectEcosystem(deps.Ctx, tc.Query)
		if err != nil {
			fmt.Fprintf(deps.Stdout, "FAIL  %q: %s\n", tc.Query, docscope.ErrorMessage(err))
			continue
		}

		var failures []string
		if tc.Ecosystem != "" && result.Ecosystem.ID != tc.Ecosystem {
			failures = append(failures, fmt.Sprintf("ecosystem %s, want %s", result.Ecosystem.ID, tc.Ecosystem))
		}
		if result.Confidence < tc.MinConfidence {
			failures = append(failures, fmt.Sprintf("confidence %d, want >= %d", result.Confidence, tc.MinConfidence))
		}
		if tc.ReasoningContains != "" && !strings.Contains(result.Reasoning, tc.ReasoningContains) {
			failures = append(failures, fmt.Sprintf("reasoning %q, want substring %q", result.Reasoning, tc.ReasoningContains))
		}

		if len(failures) > 0 {
			fmt.Fprintf(deps.Stdout, "FAIL  %q: %s\n", tc.Query, strings.Join(failures, "; "))
			continue
		}

		passed++
		fmt.Fprintf(deps.Stdout, "PASS  %q -> %s (confidence %d)\n", tc.Query, result.Ecosystem.ID, result.Confidence)
	}

	fmt.Fprintf(deps.Stdout, "%d/%d cases passed\n", passed, len(eval.Cases))

	if passed < len(eval.Cases) {
		return fmt.Errorf("%d of %d cases failed", len(eval.Cases)-passed, len(eval.Cases))
	}
	return nil
}
