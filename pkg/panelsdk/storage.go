package panelsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Fixed storage keys.
const (
	StorageKeyUser  = "pandda_user"
	StorageKeyTheme = "pandda_theme"
	StorageKeyToken = "pandda_token"
)

// LocalStorage is a string key/value store persisted as one JSON object in a
// file. Every write rewrites the file.
type LocalStorage struct {
	path string

	mu   sync.Mutex
	data map[string]string
}

// DefaultStoragePath is storage.json under the user's config directory.
func DefaultStoragePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("panelsdk: locate config dir: %w", err)
	}
	return filepath.Join(dir, "pandda", "storage.json"), nil
}

// OpenLocalStorage loads path, starting empty when the file does not exist.
func OpenLocalStorage(path string) (*LocalStorage, error) {
	ls := &LocalStorage{path: path, data: map[string]string{}}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ls, nil
	case err != nil:
		return nil, fmt.Errorf("panelsdk: read storage: %w", err)
	}
	if len(raw) == 0 {
		return ls, nil
	}
	if err := json.Unmarshal(raw, &ls.data); err != nil {
		return nil, fmt.Errorf("panelsdk: decode storage %s: %w", path, err)
	}
	return ls, nil
}

// Path returns the backing file.
func (ls *LocalStorage) Path() string { return ls.path }

// Get returns the value of key and whether it was set.
func (ls *LocalStorage) Get(key string) (string, bool) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	v, ok := ls.data[key]
	return v, ok
}

// Set stores value under key and flushes the file.
func (ls *LocalStorage) Set(key, value string) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.data[key] = value
	return ls.flushLocked()
}

// Remove deletes key and flushes the file.
func (ls *LocalStorage) Remove(keys ...string) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	for _, k := range keys {
		delete(ls.data, k)
	}
	return ls.flushLocked()
}

func (ls *LocalStorage) flushLocked() error {
	if err := os.MkdirAll(filepath.Dir(ls.path), 0o700); err != nil {
		return fmt.Errorf("panelsdk: create storage dir: %w", err)
	}
	raw, err := json.MarshalIndent(ls.data, "", "  ")
	if err != nil {
		return fmt.Errorf("panelsdk: encode storage: %w", err)
	}

	tmp := ls.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("panelsdk: write storage: %w", err)
	}
	if err := os.Rename(tmp, ls.path); err != nil {
		return fmt.Errorf("panelsdk: replace storage: %w", err)
	}
	return nil
}
