package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/codehunter"
)

// Ensure LoggingAsker implements codehunter.Asker.
var _ codehunter.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with logging.
type LoggingAsker struct {
	next   codehunter.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next codehunter.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs the exchange size.
func (a *LoggingAsker) Ask(ctx context.Context, question string, files []codehunter.SourceFile) (answer string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("ask",
			"question_bytes", len(question),
			"files", len(files),
			"answer_bytes", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, question, files)
}
