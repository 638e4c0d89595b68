package audio

import (
	"context"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"github.com/jmylchreest/tickr/internal/config"
)

// Manager maps sound names (start, stop, reset, tick) to configured files and
// plays them without ever reporting failure to the caller.
type Manager struct {
	mu      sync.RWMutex
	logger  *slog.Logger
	player  *Player
	watcher *Watcher
	enabled bool

	// Sound name to file path
	sounds map[string]string

	// play is swapped in tests to avoid touching the speaker.
	play func(path string) error
	wg   sync.WaitGroup
}

// NewManager creates a new audio manager from cfg.
func NewManager(cfg *config.Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}

	player := NewPlayer(logger)

	m := &Manager{
		logger:  logger,
		player:  player,
		watcher: NewWatcher(player, logger),
		sounds:  make(map[string]string),
		play:    player.Play,
	}

	m.loadSoundConfig(cfg)

	return m
}

// loadSoundConfig loads sounds from the configuration.
func (m *Manager) loadSoundConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled = cfg.Audio.Enabled
	m.player.SetVolume(float64(cfg.Audio.Volume) / 100.0)

	for _, name := range config.SoundNames {
		path := cfg.SoundPath(name)
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); err != nil {
			m.logger.Warn("sound file not found", "sound", name, "path", path)
			continue
		}

		m.sounds[name] = filepath.Clean(path)
		m.logger.Debug("loaded sound", "sound", name, "path", path)
	}
}

// Start preloads the configured sounds and starts the file watcher.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.RLock()
	sounds := make(map[string]string, len(m.sounds))
	maps.Copy(sounds, m.sounds)
	enabled := m.enabled
	m.mu.RUnlock()

	if !enabled {
		m.logger.Debug("audio disabled")
		return nil
	}

	for name, path := range sounds {
		if err := m.player.Preload(path); err != nil {
			m.logger.Warn("failed to preload sound", "sound", name, "path", path, "error", err)
		}
		if err := m.watcher.Watch(path); err != nil {
			m.logger.Warn("failed to watch sound file", "path", path, "error", err)
		}
	}

	if err := m.watcher.Start(ctx); err != nil {
		return err
	}

	m.logger.Info("audio manager started", "sounds", len(sounds))
	return nil
}

// Stop waits for in-flight playback requests and shuts down the manager.
func (m *Manager) Stop() {
	m.wg.Wait()
	m.watcher.Stop()
	m.player.Close()
	m.logger.Debug("audio manager stopped")
}

// Play plays the named sound in the background. Unknown names, disabled
// audio and playback errors are logged and otherwise ignored.
func (m *Manager) Play(name string) {
	m.mu.RLock()
	enabled := m.enabled
	path, ok := m.sounds[name]
	m.mu.RUnlock()

	if !enabled {
		return
	}
	if !ok {
		m.logger.Debug("no sound configured", "sound", name)
		return
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if err := m.play(path); err != nil {
			m.logger.Warn("failed to play sound", "sound", name, "path", path, "error", err)
		}
	}()
}

// Sounds returns the resolved sound paths by name.
func (m *Manager) Sounds() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.sounds)
}

// SetVolume sets the playback volume (0.0 to 1.0).
func (m *Manager) SetVolume(volume float64) {
	m.player.SetVolume(volume)
}

// GetVolume returns the current volume.
func (m *Manager) GetVolume() float64 {
	return m.player.GetVolume()
}
