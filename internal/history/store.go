package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/onurcolak/direct-message-service/internal/domain"
	"github.com/onurcolak/direct-message-service/pkg/logger"
)

const (
	StorageKey    = "recentMessages"
	SchemaVersion = 1

	DefaultMaxSize = 5
)

type kvStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type storedHistory struct {
	Version int                   `json:"version"`
	Entries []domain.HistoryEntry `json:"entries"`
}

// legacyEntry is the shape older clients wrote: a bare JSON array of these.
type legacyEntry struct {
	Number  string `json:"number"`
	Message string `json:"message"`
	Date    string `json:"date"`
	AppType string `json:"appType"`
}

// Store is an ordered, bounded, key-deduplicated log of past sends and scans.
// The newest entry is always first.
type Store struct {
	kv      kvStore
	maxSize int

	mu      sync.Mutex
	entries []domain.HistoryEntry
	loaded  bool
}

func NewStore(kv kvStore, maxSize int) *Store {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Store{kv: kv, maxSize: maxSize}
}

func (s *Store) MaxSize() int {
	return s.maxSize
}

// Load returns the current history. Missing, unreadable or malformed stored
// data yields the in-memory list (empty on first run).
func (s *Store) Load(ctx context.Context) []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.load(ctx)
	return s.snapshot()
}

// Record moves entry to the front, dropping any previous entry with the same
// key and evicting from the tail beyond the max size. The returned list is
// valid even when persisting fails; the error then wraps ErrStorageFailure.
func (s *Store) Record(ctx context.Context, entry domain.HistoryEntry) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.load(ctx)

	next := make([]domain.HistoryEntry, 0, s.maxSize)
	next = append(next, entry)
	for _, e := range s.entries {
		if len(next) == s.maxSize {
			break
		}
		if e.Key == entry.Key {
			continue
		}
		next = append(next, e)
	}
	s.entries = next

	// Writing without having read would overwrite the stored list with a partial one.
	if !s.loaded {
		return s.snapshot(), fmt.Errorf("%w: stored history not read yet, keeping entry in memory", domain.ErrStorageFailure)
	}

	return s.snapshot(), s.persist(ctx)
}

// Clear empties the history. Callers are expected to have confirmed with the user.
func (s *Store) Clear(ctx context.Context) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = []domain.HistoryEntry{}
	s.loaded = true

	return s.snapshot(), s.persist(ctx)
}

// load reads the stored history once. The store is the only writer, so after
// a successful read the in-memory list stays authoritative. A failed read is
// retried on the next call, and entries recorded meanwhile are merged in
// front of the stored ones.
func (s *Store) load(ctx context.Context) {
	if s.loaded {
		return
	}
	if s.entries == nil {
		s.entries = []domain.HistoryEntry{}
	}

	raw, found, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		logger.Warnf("Failed to read history, using in-memory copy: %v", err)
		return
	}
	s.loaded = true

	if !found {
		return
	}

	entries, err := decode(raw)
	if err != nil {
		logger.Warnf("Stored history is unreadable, treating as empty: %v", err)
		return
	}

	s.entries = merge(s.entries, entries, s.maxSize)
}

// merge keeps newer first, drops keys already present and truncates to max.
func merge(newer, older []domain.HistoryEntry, max int) []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, 0, max)
	seen := make(map[string]bool, max)
	for _, list := range [][]domain.HistoryEntry{newer, older} {
		for _, e := range list {
			if len(out) == max {
				return out
			}
			if seen[e.Key] {
				continue
			}
			seen[e.Key] = true
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(storedHistory{Version: SchemaVersion, Entries: s.entries})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal history: %w", domain.ErrStorageFailure, err)
	}

	if err := s.kv.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("%w: failed to save history: %w", domain.ErrStorageFailure, err)
	}

	return nil
}

func (s *Store) snapshot() []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func decode(raw string) ([]domain.HistoryEntry, error) {
	var probe json.RawMessage
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, err
	}

	if len(probe) > 0 && probe[0] == '[' {
		return decodeLegacy(probe)
	}

	var stored storedHistory
	if err := json.Unmarshal(probe, &stored); err != nil {
		return nil, err
	}
	if stored.Version != SchemaVersion {
		return nil, fmt.Errorf("unsupported history schema version %d", stored.Version)
	}

	entries := make([]domain.HistoryEntry, 0, len(stored.Entries))
	seen := make(map[string]bool, len(stored.Entries))
	for _, e := range stored.Entries {
		if e.Key == "" || seen[e.Key] {
			continue
		}
		seen[e.Key] = true
		entries = append(entries, e)
	}

	return entries, nil
}

func decodeLegacy(raw json.RawMessage) ([]domain.HistoryEntry, error) {
	var legacy []legacyEntry
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, err
	}

	entries := make([]domain.HistoryEntry, 0, len(legacy))
	seen := make(map[string]bool, len(legacy))
	for _, l := range legacy {
		if l.Number == "" || seen[l.Number] {
			continue
		}
		seen[l.Number] = true

		variant, err := domain.ParseAppVariant(l.AppType)
		if err != nil {
			variant = domain.AppPrimary
		}

		entries = append(entries, domain.HistoryEntry{
			Key:            l.Number,
			DisplayMessage: l.Message,
			Timestamp:      l.Date,
			AppVariant:     variant,
		})
	}

	return entries, nil
}
