// Package demo provides stand-in implementations of codehunter.Extractor and
// codehunter.Asker. They never touch the network: the extractor returns an
// embedded sample site and the asker replies with a fixed template, each
// after an artificial delay.
package demo

import (
	"context"
	"time"
)

// Default delays.
const (
	DefaultExtractDelay = 3 * time.Second
	DefaultAskDelay     = time.Second
)

type options struct {
	delay time.Duration
}

// Option configures an Extractor or an Asker.
type Option func(*options)

// WithDelay sets the artificial delay before a result is returned.
// Zero or negative means no delay.
func WithDelay(d time.Duration) Option {
	return func(o *options) {
		o.delay = d
	}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
