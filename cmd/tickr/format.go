package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tickr/internal/timefmt"
)

var formatCmd = &cobra.Command{
	Use:   "format <milliseconds>...",
	Short: "Format millisecond durations as HH:MM:SS.mmm",
	Long: `Format one or more durations given in milliseconds the way the stopwatch
displays them. Hours are not wrapped at 24.

  tickr format 3661000     # 01:01:01.000`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		ms, err := parseMillis(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), timefmt.Format(ms).String())
	}
	return nil
}

func parseMillis(s string) (int64, error) {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: must be a whole number of milliseconds", s)
	}
	if ms < 0 {
		return 0, fmt.Errorf("invalid duration %q: must not be negative", s)
	}
	return ms, nil
}
