// Package cache persists small pieces of layout knowledge (like the mode
// button column index) between runs so startup does not rescan from scratch.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
)

// HintKey is where the mode button column index is stored.
const HintKey = "mode-button-index"

// DefaultPath returns the cache file location under the user cache dir.
func DefaultPath() (string, error) {
	return xdg.CacheFile(filepath.Join("captvty-bridge", "hints.json"))
}

// Store is a mutex-guarded JSON key/value file.
type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]json.RawMessage
}

// Open loads the store at path, creating an empty one if the file does not
// exist yet. A corrupt file is discarded rather than failing the run.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]json.RawMessage)}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		s.values = make(map[string]json.RawMessage)
	}
	return s, nil
}

// GetInt reads an integer value. ok is false when the key is absent or not
// an integer.
func (s *Store) GetInt(key string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, found := s.values[key]
	if !found {
		return 0, false
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	return v, true
}

// SetInt stores an integer value without persisting it. Call Save to flush.
func (s *Store) SetInt(key string, v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, _ := json.Marshal(v)
	s.values[key] = raw
}

// Delete removes a key without persisting.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Save writes the store atomically: the payload goes to a temp file in the
// same directory and is renamed over the target.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".hints-*")
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace cache: %w", err)
	}
	return nil
}
