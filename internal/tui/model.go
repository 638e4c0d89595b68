// Package tui provides the BubbleTea-based clock and stopwatch interface.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/tickr/internal/clock"
	"github.com/jmylchreest/tickr/internal/config"
	"github.com/jmylchreest/tickr/internal/theme"
	"github.com/jmylchreest/tickr/internal/widget"
)

// Options configures a Model.
type Options struct {
	Config *config.Config
	Clock  clock.Clock
	Sounds widget.Sounds
	Themes *theme.Store
	Logger *slog.Logger

	// Timers delivers timer callbacks queued by a clock.Real dispatcher.
	// Nil when the clock runs callbacks itself (tests).
	Timers <-chan func()
}

// Model is the main TUI model.
type Model struct {
	logger *slog.Logger

	// Widget
	clockEngine *widget.ClockEngine
	stopwatch   *widget.Stopwatch
	modes       *widget.ModeController
	themes      *theme.Store

	// Rendering
	styles   map[theme.Theme]theme.Styles
	keys     KeyMap
	help     help.Model
	showHelp bool
	width    int
	height   int

	timers <-chan func()
}

// timerMsg carries a timer callback onto the update loop.
type timerMsg struct {
	fn func()
}

// New creates a new TUI model and starts the wall clock.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	clearDelay := cfg.Animation.ClearDelay.Duration()

	clockEngine := widget.NewClockEngine(opts.Clock, opts.Sounds, widget.ClockOptions{
		Interval:   cfg.Clock.Interval.Duration(),
		ClearDelay: clearDelay,
		TickSound:  cfg.Clock.TickSound,
	})
	stopwatch := widget.NewStopwatch(opts.Clock, opts.Sounds, widget.StopwatchOptions{
		Interval:   cfg.Stopwatch.Interval.Duration(),
		ClearDelay: clearDelay,
	})

	m := Model{
		logger:      logger,
		clockEngine: clockEngine,
		stopwatch:   stopwatch,
		modes:       widget.NewModeController(stopwatch),
		themes:      opts.Themes,
		styles: map[theme.Theme]theme.Styles{
			theme.Light: theme.LoadPalette(theme.Light, logger).Styles(),
			theme.Dark:  theme.LoadPalette(theme.Dark, logger).Styles(),
		},
		keys:   DefaultKeyMap(),
		help:   help.New(),
		timers: opts.Timers,
	}

	clockEngine.Start()
	return m
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return m.waitForTimer
}

// waitForTimer waits for the next timer callback.
func (m Model) waitForTimer() tea.Msg {
	if m.timers == nil {
		return nil
	}
	fn, ok := <-m.timers
	if !ok {
		return nil
	}
	return timerMsg{fn: fn}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case timerMsg:
		msg.fn()
		return m, m.waitForTimer
	}

	return m, nil
}

// handleKey handles key presses. Stopwatch controls only act in stopwatch
// mode and only while their button is enabled.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		if m.themes != nil {
			t := m.themes.Toggle()
			m.logger.Debug("theme toggled", "theme", t)
		}
		return m, nil

	case key.Matches(msg, m.keys.ClockMode):
		m.modes.SelectClock()
		return m, nil

	case key.Matches(msg, m.keys.StopwatchMode):
		m.modes.SelectStopwatch()
		return m, nil
	}

	if m.modes.Mode() != widget.ModeStopwatch {
		return m, nil
	}

	buttons := m.stopwatch.Buttons()
	switch {
	case key.Matches(msg, m.keys.Start) && buttons.Start:
		m.stopwatch.Start()
	case key.Matches(msg, m.keys.Stop) && buttons.Stop:
		m.stopwatch.Stop()
	case key.Matches(msg, m.keys.Reset) && buttons.Reset:
		m.stopwatch.Reset()
	}

	return m, nil
}

// Mode returns the visible view.
func (m Model) Mode() widget.Mode {
	return m.modes.Mode()
}

// Stopwatch returns the stopwatch engine.
func (m Model) Stopwatch() *widget.Stopwatch {
	return m.stopwatch
}

// Clock returns the wall-clock engine.
func (m Model) Clock() *widget.ClockEngine {
	return m.clockEngine
}

func (m Model) currentTheme() theme.Theme {
	if m.themes == nil {
		return theme.Light
	}
	return m.themes.Current()
}
