// Package store persists the two scalars that outlive a session: the
// player's preferred target shape and the best score. Storage is a small
// JSON file; every failure path degrades to defaults, since the game must
// stay playable without durable storage.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/x444dyx/pulse/internal/shape"
)

// State is the persisted preference set.
type State struct {
	Shape string `json:"shape"`
	Best  int    `json:"best"`
}

// defaults returns the state used when nothing valid is stored.
func defaults() State {
	return State{Shape: string(shape.Default()), Best: 0}
}

// Store reads and writes the preference file at a fixed path.
type Store struct {
	path string
}

// Open returns a store backed by the given file path. The file need not
// exist yet.
func Open(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the standard preference file location under the
// user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pulse", "state.json"), nil
}

// Load reads the stored state. A missing, unreadable, or corrupt file
// yields the defaults; an unknown shape value degrades to the default
// shape and a negative best score to zero.
func (s *Store) Load() State {
	st := defaults()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return st
	}
	var loaded State
	if err := json.Unmarshal(data, &loaded); err != nil {
		return st
	}

	st.Shape = string(shape.Normalize(shape.ID(loaded.Shape)))
	if loaded.Best > 0 {
		st.Best = loaded.Best
	}
	return st
}

// Save writes the state, creating the parent directory if needed. Callers
// may ignore the returned error: a failed write only loses durability.
func (s *Store) Save(st State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
