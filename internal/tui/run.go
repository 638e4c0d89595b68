package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/tickr/internal/audio"
	"github.com/jmylchreest/tickr/internal/clock"
	"github.com/jmylchreest/tickr/internal/config"
	"github.com/jmylchreest/tickr/internal/store"
	"github.com/jmylchreest/tickr/internal/theme"
	"github.com/jmylchreest/tickr/internal/widget"
)

// RunOptions configures the TUI.
type RunOptions struct {
	Config *config.Config
	State  store.KV
	Logger *slog.Logger
}

// Run starts the TUI and blocks until the user quits.
func Run(ctx context.Context, opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Timer goroutines hand callbacks to the update loop through this channel.
	timers := make(chan func(), 64)
	realClock := clock.NewReal(func(fn func()) {
		select {
		case timers <- fn:
		case <-ctx.Done():
		}
	})

	var sounds widget.Sounds = widget.NopSounds{}
	if opts.Config != nil && opts.Config.Audio.Enabled {
		manager := audio.NewManager(opts.Config, logger)
		if err := manager.Start(ctx); err != nil {
			logger.Warn("failed to start audio", "error", err)
		}
		defer manager.Stop()
		sounds = manager
	}

	themes := theme.NewStore(opts.State, logger)
	themes.Load()

	// Pick up theme changes made by 'tickr theme' in another terminal.
	if sf, ok := opts.State.(*store.StateFile); ok {
		fw, err := store.NewFileWatcher(sf.Path(), func() {
			select {
			case timers <- func() { themes.Load() }:
			case <-ctx.Done():
			}
		}, logger)
		if err != nil {
			logger.Warn("failed to watch state file", "error", err)
		} else if err := fw.Start(); err != nil {
			logger.Debug("state file not watched", "error", err)
			_ = fw.Stop()
		} else {
			defer func() {
				cancel()
				_ = fw.Stop()
			}()
		}
	}

	m := New(Options{
		Config: opts.Config,
		Clock:  realClock,
		Sounds: sounds,
		Themes: themes,
		Logger: logger,
		Timers: timers,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
