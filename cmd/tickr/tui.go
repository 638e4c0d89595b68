package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tickr/internal/config"
	"github.com/jmylchreest/tickr/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive clock and stopwatch",
	Long: `Launch the terminal clock and stopwatch.

Key bindings:
  c, 1        Clock mode (stops a running stopwatch)
  w, 2        Stopwatch mode
  s, enter    Start the stopwatch
  x, p        Stop the stopwatch
  r           Reset the stopwatch
  t           Toggle light/dark theme
  ?           Show help
  q           Quit

Logs are written to ~/.local/state/tickr/tickr.log while the TUI runs.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal, so logs go to a file.
	logOut := io.Discard
	if err := config.EnsureStateDir(); err == nil {
		f, err := os.OpenFile(config.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err == nil {
			defer func() { _ = f.Close() }()
			logOut = f
		}
	}
	setupLogger(logOut)

	return tui.Run(cmd.Context(), tui.RunOptions{
		Config: cfg,
		State:  stateFile,
		Logger: logger,
	})
}
