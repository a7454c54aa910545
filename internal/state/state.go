// Package state is a file-backed key-value store for app settings that
// survive restarts. Values are JSON; the whole store is one document.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

type Store struct {
	path   string
	values map[string]json.RawMessage
	dirty  bool
}

// DefaultPath is <user config dir>/<app>/<file>.
func DefaultPath(app, file string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("state: locate config dir: %w", err)
	}
	return filepath.Join(dir, app, file), nil
}

// Open loads the store at path. A missing file yields an empty store; an
// unreadable or malformed one is an error.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: map[string]json.RawMessage{}}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("state: read %s: %w", path, err)
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("state: parse %s: %w", path, err)
	}
	return s, nil
}

// Memory returns a store that is never written to disk.
func Memory() *Store {
	return &Store{values: map[string]json.RawMessage{}}
}

func (s *Store) Path() string { return s.path }

// Get decodes the value under key into v and reports whether the key existed.
func (s *Store) Get(key string, v interface{}) (bool, error) {
	raw, ok := s.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("state: decode %q: %w", key, err)
	}
	return true, nil
}

func (s *Store) Set(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("state: encode %q: %w", key, err)
	}
	s.values[key] = raw
	s.dirty = true
	return nil
}

func (s *Store) Delete(key string) {
	if _, ok := s.values[key]; ok {
		delete(s.values, key)
		s.dirty = true
	}
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save writes the store if it changed since the last load or save. The file
// is replaced atomically via a temp file in the same directory.
func (s *Store) Save() error {
	if s.path == "" || !s.dirty {
		return nil
	}
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("state: encode: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("state: create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("state: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("state: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("state: close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("state: replace %s: %w", s.path, err)
	}
	s.dirty = false
	return nil
}
