package mock

import (
	"context"

	"github.com/fwojciec/codehunter"
)

var _ codehunter.Storage = (*Storage)(nil)

// Storage is a mock implementation of codehunter.Storage.
type Storage struct {
	GetFn    func(ctx context.Context, key string) ([]byte, error)
	SetFn    func(ctx context.Context, key string, value []byte) error
	DeleteFn func(ctx context.Context, key string) error
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	return s.GetFn(ctx, key)
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	return s.SetFn(ctx, key, value)
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.DeleteFn(ctx, key)
}
