// Package history persists run outcomes to a flat JSON file.
package history

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/piper/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultPath is the history file used when none is configured.
const DefaultPath = "piper_history.json"

// Store implements ports.RunStore using a flat JSON file. Only final
// outcomes are kept; per-line output is never stored.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache []domain.RunRecord
}

// NewStore creates a RunStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path: filepath.Clean(path),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read run history")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal run history")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal run history")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for run history")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write run history")
	}

	return nil
}

// Append records one completed run.
func (s *Store) Append(rec domain.RunRecord) error {
	s.mu.Lock()
	s.cache = append(s.cache, rec)
	s.mu.Unlock()

	return s.save()
}

// List returns all recorded runs in append order.
func (s *Store) List() ([]domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.RunRecord, len(s.cache))
	copy(out, s.cache)
	return out, nil
}
