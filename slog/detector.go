// Package slog provides logging decorators for docscope services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docscope"
)

// Ensure LoggingDetector implements docscope.Detector.
var _ docscope.Detector = (*LoggingDetector)(nil)

// LoggingDetector wraps a Detector with logging of the detection outcome.
type LoggingDetector struct {
	next   docscope.Detector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next docscope.Detector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// DetectEcosystem delegates to the wrapped detector and logs the result.
func (d *LoggingDetector) DetectEcosystem(ctx context.Context, query string) (*docscope.DetectionResult, error) {
	begin := time.Now()
	result, err := d.next.DetectEcosystem(ctx, query)
	if err != nil {
		d.logger.Error("ecosystem detection",
			"query", query,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	d.logger.Info("ecosystem detection",
		"query", query,
		"ecosystem", result.Ecosystem.ID,
		"confidence", result.Confidence,
		"sources", len(result.SuggestedDocSources),
		"duration", time.Since(begin),
	)
	return result, nil
}
