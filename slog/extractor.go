package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/codehunter"
)

// Ensure LoggingExtractor implements codehunter.Extractor.
var _ codehunter.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   codehunter.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next codehunter.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the URL being extracted and delegates to the wrapped extractor.
func (e *LoggingExtractor) Extract(ctx context.Context, url string) (files []codehunter.SourceFile, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"url", url,
			"files", len(files),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, url)
}
