package mock

import (
	"context"

	"github.com/fwojciec/codehunter"
)

var _ codehunter.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of codehunter.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, url string) ([]codehunter.SourceFile, error)
}

func (e *Extractor) Extract(ctx context.Context, url string) ([]codehunter.SourceFile, error) {
	return e.ExtractFn(ctx, url)
}
