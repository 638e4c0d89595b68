// Package store persists tickr's small amount of state (currently only the
// theme preference) as a JSON key-value file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// CurrentSchemaVersion is the current version of the state schema.
const CurrentSchemaVersion = 1

// KV is a string key-value store.
type KV interface {
	// Get returns the value stored under key and whether it was present.
	Get(key string) (string, bool, error)

	// Set stores value under key.
	Set(key, value string) error
}

// State is the on-disk layout of the state file.
type State struct {
	Values        map[string]string `json:"values"`
	UpdatedAt     map[string]int64  `json:"updated_at,omitempty"` // Unix timestamps per key
	SchemaVersion int               `json:"schema_version"`
}

// DefaultState returns an empty State.
func DefaultState() *State {
	return &State{
		Values:        make(map[string]string),
		UpdatedAt:     make(map[string]int64),
		SchemaVersion: CurrentSchemaVersion,
	}
}

// StateFile is a KV backed by a JSON file. Every Set rewrites the file
// atomically via a temp file and rename.
type StateFile struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewStateFile creates a StateFile at path. The file is created on first Set.
func NewStateFile(path string) *StateFile {
	return &StateFile{path: path, now: time.Now}
}

// Path returns the location of the state file.
func (f *StateFile) Path() string {
	return f.path
}

// Get implements KV.
func (f *StateFile) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.load()
	if err != nil {
		return "", false, err
	}

	value, ok := state.Values[key]
	return value, ok, nil
}

// Set implements KV. A corrupted state file is replaced.
func (f *StateFile) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.load()
	if err != nil {
		state = DefaultState()
	}

	state.Values[key] = value
	state.UpdatedAt[key] = f.now().Unix()

	return f.save(state)
}

// UpdatedAt returns when key was last written.
func (f *StateFile) UpdatedAt(key string) (time.Time, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.load()
	if err != nil {
		return time.Time{}, false, err
	}

	ts, ok := state.UpdatedAt[key]
	if !ok {
		return time.Time{}, false, nil
	}
	return time.Unix(ts, 0), true, nil
}

// load reads the state file. A missing file yields an empty state.
func (f *StateFile) load() (*State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultState(), nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", f.path, err)
	}

	if state.Values == nil {
		state.Values = make(map[string]string)
	}
	if state.UpdatedAt == nil {
		state.UpdatedAt = make(map[string]int64)
	}
	if state.SchemaVersion == 0 {
		state.SchemaVersion = CurrentSchemaVersion
	}

	return &state, nil
}

func (f *StateFile) save(state *State) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	// Write atomically via temp file
	tmpPath := f.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return os.Rename(tmpPath, f.path)
}
