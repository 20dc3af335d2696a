package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/docscope"
	main "github.com/fwojciec/docscope/cmd/docscope"
	"github.com/fwojciec/docscope/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the detection result", func(t *testing.T) {
		t.Parallel()

		detector := &mock.Detector{
			DetectEcosystemFn: func(ctx context.Context, query string) (*docscope.DetectionResult, error) {
				assert.Equal(t, "How do I use React hooks?", query)
				return &docscope.DetectionResult{
					Ecosystem:           &docscope.Ecosystem{ID: "frontend_web"},
					Confidence:          95,
					Reasoning:           `matched alias "react" in query`,
					SuggestedDocSources: []string{"react-docs", "mdn"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Detector: detector,
		}

		cmd := &main.DetectCmd{Query: "How do I use React hooks?"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "frontend_web (confidence 95)")
		assert.Contains(t, output, `reasoning: matched alias "react" in query`)
		assert.Contains(t, output, "source: react-docs")
		assert.Contains(t, output, "source: mdn")
		assert.Empty(t, stderr.String())
	})

	t.Run("prints JSON with --json", func(t *testing.T) {
		t.Parallel()

		detector := &mock.Detector{
			DetectEcosystemFn: func(ctx context.Context, query string) (*docscope.DetectionResult, error) {
				return &docscope.DetectionResult{
					Ecosystem:           &docscope.Ecosystem{ID: "cloud_infra"},
					Confidence:          85,
					Reasoning:           "matched keywords: deploy, containers:docker",
					SuggestedDocSources: []string{"aws-docs"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Detector: detector,
		}

		cmd := &main.DetectCmd{Query: "deploy docker", JSON: true}

		err := cmd.Run(deps)

		require.NoError(t, err)

		var out struct {
			EcosystemID         string   `json:"ecosystemId"`
			Confidence          int      `json:"confidence"`
			Reasoning           string   `json:"reasoning"`
			SuggestedDocSources []string `json:"suggestedDocSources"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
		assert.Equal(t, "cloud_infra", out.EcosystemID)
		assert.Equal(t, 85, out.Confidence)
		assert.Equal(t, []string{"aws-docs"}, out.SuggestedDocSources)
	})

	t.Run("hints at seeding on an empty catalog", func(t *testing.T) {
		t.Parallel()

		detector := &mock.Detector{
			DetectEcosystemFn: func(ctx context.Context, query string) (*docscope.DetectionResult, error) {
				return nil, docscope.Errorf(docscope.ENOTFOUND, "no ecosystems configured")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Detector: detector,
		}

		cmd := &main.DetectCmd{Query: "query"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "no ecosystems configured")
		assert.Contains(t, stderr.String(), "docscope seed")
		assert.Empty(t, stdout.String())
	})

	t.Run("returns error when detection fails", func(t *testing.T) {
		t.Parallel()

		detector := &mock.Detector{
			DetectEcosystemFn: func(ctx context.Context, query string) (*docscope.DetectionResult, error) {
				return nil, docscope.Errorf(docscope.EINTERNAL, "database error")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Detector: detector,
		}

		cmd := &main.DetectCmd{Query: "query"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Empty(t, stdout.String())
	})
}
