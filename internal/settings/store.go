package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/onurcolak/direct-message-service/internal/domain"
	"github.com/onurcolak/direct-message-service/pkg/logger"
)

const StorageKey = "darkMode"

type kvStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Store persists user preferences. Anything it cannot read degrades to
// domain.DefaultSettings.
type Store struct {
	kv kvStore

	mu      sync.Mutex
	current domain.Settings
	loaded  bool
}

func NewStore(kv kvStore) *Store {
	return &Store{kv: kv, current: domain.DefaultSettings()}
}

func (s *Store) Load(ctx context.Context) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.load(ctx)
	return s.current
}

func (s *Store) SaveDarkMode(ctx context.Context, enabled bool) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.load(ctx)
	s.current.DarkMode = enabled
	s.loaded = true

	data, err := json.Marshal(s.current)
	if err != nil {
		return s.current, fmt.Errorf("%w: failed to marshal settings: %w", domain.ErrStorageFailure, err)
	}

	if err := s.kv.Set(ctx, StorageKey, string(data)); err != nil {
		return s.current, fmt.Errorf("%w: failed to save settings: %w", domain.ErrStorageFailure, err)
	}

	return s.current, nil
}

func (s *Store) load(ctx context.Context) {
	if s.loaded {
		return
	}

	raw, found, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		logger.Warnf("Failed to read settings, using defaults: %v", err)
		return
	}
	s.loaded = true

	if !found {
		return
	}

	settings, err := decode(raw)
	if err != nil {
		logger.Warnf("Stored settings are unreadable, using defaults: %v", err)
		return
	}
	s.current = settings
}

func decode(raw string) (domain.Settings, error) {
	// Older clients stored the bare flag.
	var legacy bool
	if err := json.Unmarshal([]byte(raw), &legacy); err == nil {
		settings := domain.DefaultSettings()
		settings.DarkMode = legacy
		return settings, nil
	}

	var settings domain.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return domain.Settings{}, err
	}
	if settings.Version != domain.SettingsSchemaVersion {
		return domain.Settings{}, fmt.Errorf("unsupported settings schema version %d", settings.Version)
	}

	return settings, nil
}
