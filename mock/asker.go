package mock

import (
	"context"

	"github.com/fwojciec/codehunter"
)

var _ codehunter.Asker = (*Asker)(nil)

// Asker is a mock implementation of codehunter.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string, files []codehunter.SourceFile) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string, files []codehunter.SourceFile) (string, error) {
	return a.AskFn(ctx, question, files)
}
