package codehunter

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// History defaults.
const (
	DefaultHistoryKey = "code-hunter-history"
	DefaultMaxHistory = 20
)

// HistoryEntry is one durable record of a past extraction.
// Entries are values and never change after creation.
type HistoryEntry struct {
	ID        string
	URL       string
	CreatedAt time.Time
	FileCount int
	Files     []SourceFile
}

// Storage is durable key-value storage.
type Storage interface {
	// Get returns the value stored under key.
	// Returns ENOTFOUND if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// HistoryService represents a service for managing extraction history.
type HistoryService interface {
	// Load reads the persisted history, replacing the in-memory state.
	// Corrupt data is discarded and yields an empty history.
	Load(ctx context.Context) ([]HistoryEntry, error)

	// Add records an extraction at the front of the history.
	// A non-nil error with code EUNAVAILABLE means the entry was added in
	// memory but could not be persisted.
	Add(ctx context.Context, url string, files []SourceFile) (HistoryEntry, error)

	// Remove deletes the entry with the given ID. Unknown IDs are a no-op.
	Remove(ctx context.Context, id string) ([]HistoryEntry, error)

	// Clear removes every entry and the persisted data.
	Clear(ctx context.Context) error

	// Entries returns the current history, most recent first.
	Entries() []HistoryEntry

	// FindEntry returns the entry with the given ID.
	// Returns ENOTFOUND if no such entry exists.
	FindEntry(id string) (HistoryEntry, error)
}

// HistoryConfig configures a History. Zero values select the defaults.
type HistoryConfig struct {
	Key        string
	MaxEntries int
}

// Compile-time interface verification.
var _ HistoryService = (*History)(nil)

// History is a bounded, URL-deduplicated, most-recent-first list of
// extractions. Every mutation is written through to Storage before the
// call returns.
type History struct {
	mu      sync.Mutex
	storage Storage
	key     string
	max     int
	entries []HistoryEntry
}

// NewHistory creates a History backed by storage. Call Load to read any
// previously persisted entries.
func NewHistory(storage Storage, config HistoryConfig) *History {
	if config.Key == "" {
		config.Key = DefaultHistoryKey
	}
	if config.MaxEntries <= 0 {
		config.MaxEntries = DefaultMaxHistory
	}
	return &History{
		storage: storage,
		key:     config.Key,
		max:     config.MaxEntries,
	}
}

// Load reads the persisted history.
func (h *History) Load(ctx context.Context) ([]HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = nil

	data, err := h.storage.Get(ctx, h.key)
	if ErrorCode(err) == ENOTFOUND {
		return h.snapshot(), nil
	}
	if err != nil {
		return h.snapshot(), Errorf(EUNAVAILABLE, "failed to read history: %v", err)
	}

	entries, err := decodeHistory(data)
	if err != nil {
		// Drop the blob so the same corruption is not hit on every load.
		_ = h.storage.Delete(ctx, h.key)
		return h.snapshot(), nil
	}

	if len(entries) > h.max {
		entries = entries[:h.max]
	}
	h.entries = entries
	return h.snapshot(), nil
}

// Add records an extraction of url.
func (h *History) Add(ctx context.Context, url string, files []SourceFile) (HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry := HistoryEntry{
		ID:        uuid.Must(uuid.NewV7()).String(),
		URL:       url,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		FileCount: len(files),
		Files:     slices.Clone(files),
	}

	updated := make([]HistoryEntry, 0, len(h.entries)+1)
	updated = append(updated, entry)
	for _, e := range h.entries {
		if e.URL != url {
			updated = append(updated, e)
		}
	}
	if len(updated) > h.max {
		updated = updated[:h.max]
	}
	h.entries = updated

	return cloneEntry(entry), h.persist(ctx)
}

// Remove deletes the entry with the given ID.
func (h *History) Remove(ctx context.Context, id string) ([]HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := slices.IndexFunc(h.entries, func(e HistoryEntry) bool { return e.ID == id })
	if i < 0 {
		return h.snapshot(), nil
	}
	h.entries = slices.Delete(slices.Clone(h.entries), i, i+1)

	return h.snapshot(), h.persist(ctx)
}

// Clear removes all entries and deletes the persisted data.
func (h *History) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = nil
	if err := h.storage.Delete(ctx, h.key); err != nil {
		return Errorf(EUNAVAILABLE, "failed to delete history: %v", err)
	}
	return nil
}

// Entries returns a copy of the current history, most recent first.
func (h *History) Entries() []HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshot()
}

// FindEntry returns the entry with the given ID.
func (h *History) FindEntry(id string) (HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, e := range h.entries {
		if e.ID == id {
			return cloneEntry(e), nil
		}
	}
	return HistoryEntry{}, Errorf(ENOTFOUND, "history entry %q not found", id)
}

// persist writes the full in-memory history to storage. Callers hold h.mu.
func (h *History) persist(ctx context.Context) error {
	data, err := encodeHistory(h.entries)
	if err != nil {
		return Errorf(EINTERNAL, "failed to encode history: %v", err)
	}
	if err := h.storage.Set(ctx, h.key, data); err != nil {
		return Errorf(EUNAVAILABLE, "failed to save history: %v", err)
	}
	return nil
}

func (h *History) snapshot() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	for i, e := range h.entries {
		out[i] = cloneEntry(e)
	}
	return out
}

func cloneEntry(e HistoryEntry) HistoryEntry {
	e.Files = slices.Clone(e.Files)
	return e
}

// timestampLayout matches JavaScript's Date.prototype.toISOString.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// historyRecord is the persisted form of a HistoryEntry.
type historyRecord struct {
	ID        string       `json:"id"`
	URL       string       `json:"url"`
	Timestamp string       `json:"timestamp"`
	FileCount int          `json:"fileCount"`
	Files     []SourceFile `json:"files"`
}

func encodeHistory(entries []HistoryEntry) ([]byte, error) {
	records := make([]historyRecord, len(entries))
	for i, e := range entries {
		records[i] = historyRecord{
			ID:        e.ID,
			URL:       e.URL,
			Timestamp: e.CreatedAt.UTC().Format(timestampLayout),
			FileCount: e.FileCount,
			Files:     e.Files,
		}
	}
	return json.Marshal(records)
}

func decodeHistory(data []byte) ([]HistoryEntry, error) {
	var records []historyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}
	if records == nil {
		return nil, fmt.Errorf("failed to parse history: got null, want an array")
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, r := range records {
		createdAt, err := time.Parse(time.RFC3339Nano, r.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to parse timestamp of entry %q: %w", r.ID, err)
		}
		entries = append(entries, HistoryEntry{
			ID:        r.ID,
			URL:       r.URL,
			CreatedAt: createdAt.UTC(),
			FileCount: r.FileCount,
			Files:     r.Files,
		})
	}
	return entries, nil
}
