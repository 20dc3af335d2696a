package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docscope"
	main "github.com/fwojciec/docscope/cmd/docscope"
	"github.com/fwojciec/docscope/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const evalYAML = `cases:
  - query: "How do I use React hooks?"
    ecosystem: frontend_web
    minConfidence: 95
    reasoningContains: react
  - query: "Deploying docker containers to AWS"
    ecosystem: cloud_infra
    minConfidence: 80
`

func writeEvalFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eval.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestEvalCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports passing cases", func(t *testing.T) {
		t.Parallel()

		detector := &mock.Detector{
			DetectEcosystemFn: func(ctx context.Context, query string) (*docscope.DetectionResult, error) {
				if query == "How do I use React hooks?" {
					return &docscope.DetectionResult{
						Ecosystem:  &docscope.Ecosystem{ID: "frontend_web"},
						Confidence: 95,
						Reasoning:  `matched alias "react" in query`,
					}, nil
				}
				return &docscope.DetectionResult{
					Ecosystem:  &docscope.Ecosystem{ID: "cloud_infra"},
					Confidence: 85,
					Reasoning:  "matched keywords: deploy, containers:docker",
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

		cmd := &main.EvalCmd{File: writeEvalFile(t, evalYAML)}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, `PASS  "How do I use React hooks?" -> frontend_web (confidence 95)`)
		assert.Contains(t, output, "2/2 cases passed")
	})

	t.Run("reports failing cases and returns an error", func(t *testing.T) {
		t.Parallel()

		detector := &mock.Detector{
			DetectEcosystemFn: func(ctx context.Context, query string) (*docscope.DetectionResult, error) {
				return &docscope.DetectionResult{
					Ecosystem:  &docscope.Ecosystem{ID: "general"},
					Confidence: 0,
					Reasoning:  "Fallback to general",
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

		cmd := &main.EvalCmd{File: writeEvalFile(t, evalYAML)}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "2 of 2 cases failed")
		output := stdout.String()
		assert.Contains(t, output, "FAIL")
		assert.Contains(t, output, "ecosystem general, want frontend_web")
		assert.Contains(t, output, "confidence 0, want >= 95")
		assert.Contains(t, output, "0/2 cases passed")
	})

	t.Run("counts detection errors as failures", func(t *testing.T) {
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

		cmd := &main.EvalCmd{File: writeEvalFile(t, evalYAML)}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "no ecosystems configured")
	})

	t.Run("handles an empty case list", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}

		cmd := &main.EvalCmd{File: writeEvalFile(t, "cases: []")}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No cases found")
	})

	t.Run("returns error for a missing file", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}

		cmd := &main.EvalCmd{File: filepath.Join(t.TempDir(), "missing.yaml")}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
