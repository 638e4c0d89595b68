// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// AppName is used for the config, data and state directory names.
const AppName = "tickr"

// Default configuration values.
const (
	DefaultClockInterval     = time.Second
	DefaultStopwatchInterval = 10 * time.Millisecond
	DefaultClearDelay        = 100 * time.Millisecond
	DefaultVolume            = 50
)

// Sound names, matching the [audio.sounds] keys.
var SoundNames = []string{"start", "stop", "reset", "tick"}

// Config represents the tickr configuration.
type Config struct {
	Clock     ClockConfig     `toml:"clock"`
	Stopwatch StopwatchConfig `toml:"stopwatch"`
	Animation AnimationConfig `toml:"animation"`
	Audio     AudioConfig     `toml:"audio"`
}

// ClockConfig holds wall-clock settings.
type ClockConfig struct {
	Interval  Duration `toml:"interval"`   // How often the clock is sampled
	TickSound bool     `toml:"tick_sound"` // Play the tick sound every interval
}

// StopwatchConfig holds stopwatch settings.
type StopwatchConfig struct {
	Interval Duration `toml:"interval"` // Display refresh period while running
}

// AnimationConfig holds tick highlight settings.
type AnimationConfig struct {
	ClearDelay Duration `toml:"clear_delay"` // How long a highlight stays on
}

// AudioConfig contains audio settings.
type AudioConfig struct {
	Enabled bool        `toml:"enabled"`
	Volume  int         `toml:"volume"` // 0-100
	Sounds  SoundConfig `toml:"sounds"`
}

// SoundConfig contains per-event sound file paths.
type SoundConfig struct {
	Start string `toml:"start"`
	Stop  string `toml:"stop"`
	Reset string `toml:"reset"`
	Tick  string `toml:"tick"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	soundDir := filepath.Join(DataPath(), "sounds")

	return &Config{
		Clock: ClockConfig{
			Interval:  Duration(DefaultClockInterval),
			TickSound: false,
		},
		Stopwatch: StopwatchConfig{
			Interval: Duration(DefaultStopwatchInterval),
		},
		Animation: AnimationConfig{
			ClearDelay: Duration(DefaultClearDelay),
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  DefaultVolume,
			Sounds: SoundConfig{
				Start: filepath.Join(soundDir, "start.mp3"),
				Stop:  filepath.Join(soundDir, "stop.mp3"),
				Reset: filepath.Join(soundDir, "reset.mp3"),
				Tick:  filepath.Join(soundDir, "tick.mp3"),
			},
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// ConfigDir returns the tickr config directory.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, AppName)
}

// DataPath returns the path to the data directory.
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share.
func DataPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, AppName)
}

// StateDir returns the path to the state directory.
// Uses XDG_STATE_HOME if set, otherwise ~/.local/state.
func StateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, AppName)
}

// StatePath returns the path to the persisted state file.
func StatePath() string {
	return filepath.Join(StateDir(), "state.json")
}

// LogPath returns the path of the log file used while the TUI owns the terminal.
func LogPath() string {
	return filepath.Join(StateDir(), AppName+".log")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Clock.Interval.Duration() <= 0 {
		return fmt.Errorf("clock.interval must be positive, got %s", c.Clock.Interval.Duration())
	}
	if c.Stopwatch.Interval.Duration() <= 0 {
		return fmt.Errorf("stopwatch.interval must be positive, got %s", c.Stopwatch.Interval.Duration())
	}
	if c.Animation.ClearDelay.Duration() <= 0 {
		return fmt.Errorf("animation.clear_delay must be positive, got %s", c.Animation.ClearDelay.Duration())
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return fmt.Errorf("volume must be between 0 and 100, got %d", c.Audio.Volume)
	}
	return nil
}

// SoundPath returns the file configured for the named sound, with ~ expanded.
// Returns empty string for unknown names or unset sounds.
func (c *Config) SoundPath(name string) string {
	var path string
	switch name {
	case "start":
		path = c.Audio.Sounds.Start
	case "stop":
		path = c.Audio.Sounds.Stop
	case "reset":
		path = c.Audio.Sounds.Reset
	case "tick":
		path = c.Audio.Sounds.Tick
	}
	return ExpandPath(path)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// EnsureStateDir creates the state directory if it doesn't exist.
func EnsureStateDir() error {
	path := StateDir()
	if path == "" {
		return errors.New("unable to determine state directory")
	}
	return os.MkdirAll(path, 0755)
}
