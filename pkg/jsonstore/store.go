package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store persists a single JSON document on disk. Writes go to a temp file
// that is renamed over the target so readers never see a partial document.
type Store struct {
	mu   sync.RWMutex
	path string
}

// New creates a Store for path, creating the parent directory if needed.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("jsonstore: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("jsonstore: create dir: %w", err)
	}
	return &Store{path: path}, nil
}

// Path returns the file the store writes to.
func (s *Store) Path() string {
	return s.path
}

// Load decodes the file into v. A missing file leaves v untouched.
func (s *Store) Load(v any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(v)
}

// Save encodes v and atomically replaces the file.
func (s *Store) Save(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, s.path)
}

// Exists reports whether the file is present.
func (s *Store) Exists() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := os.Stat(s.path)
	return err == nil
}
