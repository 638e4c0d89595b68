package theme

import (
	"log/slog"
)

// Key is the persistence key holding the preference.
const Key = "theme"

// Theme is a light/dark preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Parse maps a stored value to a Theme. Anything other than "dark" is light.
func Parse(s string) Theme {
	if s == string(Dark) {
		return Dark
	}
	return Light
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// KV is the persistence collaborator for the preference.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Store holds the applied theme and persists changes to it.
// Persistence is best-effort: failures are logged and never returned.
type Store struct {
	kv      KV
	logger  *slog.Logger
	current Theme
}

// NewStore creates a Store applying the light theme until Load is called.
func NewStore(kv KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, logger: logger, current: Light}
}

// Load applies the persisted preference. A missing, unreadable or
// unrecognized value applies the light theme.
func (s *Store) Load() Theme {
	value, ok, err := s.kv.Get(Key)
	switch {
	case err != nil:
		s.logger.Warn("failed to read theme preference, using light", "error", err)
		s.current = Light
	case !ok:
		s.current = Light
	default:
		s.current = Parse(value)
	}

	s.logger.Debug("theme loaded", "theme", s.current)
	return s.current
}

// Toggle flips the applied theme and persists it.
func (s *Store) Toggle() Theme {
	return s.Set(s.current.Toggle())
}

// Set applies t and persists it.
func (s *Store) Set(t Theme) Theme {
	s.current = Parse(string(t))
	if err := s.kv.Set(Key, string(s.current)); err != nil {
		s.logger.Warn("failed to save theme preference", "theme", s.current, "error", err)
	}
	return s.current
}

// Current returns the applied theme.
func (s *Store) Current() Theme {
	return s.current
}

// Dark reports whether the dark theme is applied.
func (s *Store) Dark() bool {
	return s.current == Dark
}
