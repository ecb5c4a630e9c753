// Package fs provides file-based key-value storage.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/codehunter"
)

// Ensure Storage implements codehunter.Storage at compile time.
var _ codehunter.Storage = (*Storage)(nil)

// Storage implements codehunter.Storage with one file per key.
// Values are written to a temporary file and renamed into place, so a
// reader never sees a partially written value.
type Storage struct {
	dir string
}

// NewStorage creates a new Storage rooted at dir.
// The directory is created on the first write.
func NewStorage(dir string) *Storage {
	return &Storage{dir: dir}
}

// KeyPath returns the file that holds key. File names are a hash of the key,
// so any key maps to a single file directly inside the storage directory.
func (s *Storage) KeyPath(key string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%016x.kv", xxhash.Sum64String(key)))
}

// Get returns the value stored under key.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.KeyPath(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, codehunter.Errorf(codehunter.ENOTFOUND, "key %q not found", key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return data, nil
}

// Set atomically replaces the value stored under key.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	path := s.KeyPath(key)
	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.KeyPath(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
