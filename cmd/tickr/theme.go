package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tickr/internal/theme"
)

var themeOpts struct {
	format string
}

// ThemeStatus is the output of 'tickr theme'.
type ThemeStatus struct {
	Theme     string `json:"theme" yaml:"theme"`
	ChangedAt string `json:"changed_at,omitempty" yaml:"changed_at,omitempty"`
	Changed   string `json:"changed,omitempty" yaml:"changed,omitempty"`
	StateFile string `json:"state_file" yaml:"state_file"`
}

// themeCmd represents the theme command group.
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the theme preference",
	Long: `Show or change the light/dark theme used by the TUI.

Use 'tickr theme' to show the current preference.
Use 'tickr theme toggle' to switch between light and dark.
Use 'tickr theme light' or 'tickr theme dark' to pick one.`,
	RunE: themeStatusRun,
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := theme.NewStore(stateFile, logger)
		s.Load()
		s.Toggle()
		return themeStatusRun(cmd, args)
	},
}

var themeLightCmd = &cobra.Command{
	Use:   "light",
	Short: "Use the light theme",
	RunE:  themeSetRun(theme.Light),
}

var themeDarkCmd = &cobra.Command{
	Use:   "dark",
	Short: "Use the dark theme",
	RunE:  themeSetRun(theme.Dark),
}

func init() {
	themeCmd.AddCommand(themeToggleCmd)
	themeCmd.AddCommand(themeLightCmd)
	themeCmd.AddCommand(themeDarkCmd)

	themeCmd.PersistentFlags().StringVarP(&themeOpts.format, "format", "f", "plain",
		"Output format (plain, json, yaml)")

	rootCmd.AddCommand(themeCmd)
}

func themeSetRun(t theme.Theme) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		theme.NewStore(stateFile, logger).Set(t)
		return themeStatusRun(cmd, args)
	}
}

func themeStatusRun(cmd *cobra.Command, args []string) error {
	s := theme.NewStore(stateFile, logger)
	status := ThemeStatus{
		Theme:     string(s.Load()),
		StateFile: stateFile.Path(),
	}

	at, ok, err := stateFile.UpdatedAt(theme.Key)
	if err != nil {
		logger.Warn("failed to read theme change time", "error", err)
	} else if ok {
		status.ChangedAt = at.Format(time.RFC3339)
		status.Changed = humanize.Time(at)
	}

	return writeThemeStatus(cmd.OutOrStdout(), status, themeOpts.format)
}

func writeThemeStatus(w io.Writer, status ThemeStatus, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(status)

	case "yaml":
		data, err := yaml.Marshal(status)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		_, err = w.Write(data)
		return err

	case "plain", "":
		fmt.Fprintf(w, "Theme: %s\n", status.Theme)
		if status.Changed != "" {
			fmt.Fprintf(w, "  Last change: %s\n", status.Changed)
		}
		return nil

	default:
		return fmt.Errorf("unknown format %q (use plain, json or yaml)", format)
	}
}
