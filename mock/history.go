package mock

import (
	"context"

	"github.com/fwojciec/codehunter"
)

var _ codehunter.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of codehunter.HistoryService.
type HistoryService struct {
	LoadFn      func(ctx context.Context) ([]codehunter.HistoryEntry, error)
	AddFn       func(ctx context.Context, url string, files []codehunter.SourceFile) (codehunter.HistoryEntry, error)
	RemoveFn    func(ctx context.Context, id string) ([]codehunter.HistoryEntry, error)
	ClearFn     func(ctx context.Context) error
	EntriesFn   func() []codehunter.HistoryEntry
	FindEntryFn func(id string) (codehunter.HistoryEntry, error)
}

func (s *HistoryService) Load(ctx context.Context) ([]codehunter.HistoryEntry, error) {
	return s.LoadFn(ctx)
}

func (s *HistoryService) Add(ctx context.Context, url string, files []codehunter.SourceFile) (codehunter.HistoryEntry, error) {
	return s.AddFn(ctx, url, files)
}

func (s *HistoryService) Remove(ctx context.Context, id string) ([]codehunter.HistoryEntry, error) {
	return s.RemoveFn(ctx, id)
}

func (s *HistoryService) Clear(ctx context.Context) error {
	return s.ClearFn(ctx)
}

func (s *HistoryService) Entries() []codehunter.HistoryEntry {
	return s.EntriesFn()
}

func (s *HistoryService) FindEntry(id string) (codehunter.HistoryEntry, error) {
	return s.FindEntryFn(id)
}
