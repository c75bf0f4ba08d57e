// Package storage provides the string key-value stores the timer repository
// persists through.
package storage

import (
	"sync"

	"fyne.io/fyne/v2"
)

// PreferencesStore adapts fyne.Preferences to the timer.Store interface.
// Preferences writes land in the per-user application config managed by
// Fyne, so the app must be created with app.NewWithID.
type PreferencesStore struct {
	prefs fyne.Preferences
}

// NewPreferencesStore wraps the given preferences.
func NewPreferencesStore(prefs fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs}
}

// Get returns the stored value for key. A key that has never been written
// reports ok=false.
func (s *PreferencesStore) Get(key string) (string, bool, error) {
	value := s.prefs.StringWithFallback(key, "\x00missing")
	if value == "\x00missing" {
		return "", false, nil
	}
	return value, true, nil
}

// Set stores value under key.
func (s *PreferencesStore) Set(key, value string) error {
	s.prefs.SetString(key, value)
	return nil
}

// MemoryStore is an in-memory store used by tests. Optional error hooks
// simulate backend failures.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string

	GetErr error
	SetErr error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	if s.GetErr != nil {
		return "", false, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
