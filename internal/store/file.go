// ABOUTME: File-backed Store persisting state as JSON in the XDG config directory
// ABOUTME: Re-reads the file on every access so other processes' writes are seen

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const stateFileName = "state.json"

// FileStore keeps state in <configDir>/state.json
type FileStore struct {
	configDir string
	mu        sync.Mutex
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at configDir
func NewFileStore(configDir string) *FileStore {
	return &FileStore{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bookquotes")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "bookquotes")
}

// Path returns the path to the state file
func (fs *FileStore) Path() string {
	return filepath.Join(fs.configDir, stateFileName)
}

// load reads the state file. Missing or invalid JSON reads as empty.
func (fs *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(fs.Path())
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	state := map[string]string{}
	if err := json.Unmarshal(data, &state); err != nil {
		// Invalid JSON, start fresh
		return map[string]string{}, nil
	}
	return state, nil
}

// save writes the state through a temp file and rename
func (fs *FileStore) save(state map[string]string) error {
	if err := os.MkdirAll(fs.configDir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(fs.configDir, stateFileName+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, fs.Path())
}

// Get implements Store
func (fs *FileStore) Get(key string) (string, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	state, err := fs.load()
	if err != nil {
		return "", false
	}
	v, ok := state[key]
	return v, ok
}

// Set implements Store
func (fs *FileStore) Set(key, value string) error {
	return fs.SetAll(map[string]string{key: value})
}

// SetAll implements Store
func (fs *FileStore) SetAll(values map[string]string, remove ...string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	state, err := fs.load()
	if err != nil {
		return err
	}
	for _, k := range remove {
		delete(state, k)
	}
	for k, v := range values {
		state[k] = v
	}
	return fs.save(state)
}

// Remove implements Store
func (fs *FileStore) Remove(keys ...string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	state, err := fs.load()
	if err != nil {
		return err
	}

	changed := false
	for _, k := range keys {
		if _, ok := state[k]; ok {
			delete(state, k)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return fs.save(state)
}
