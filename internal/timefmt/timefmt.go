// Package timefmt renders durations and wall-clock times as the fixed-width
// fields shown on the clock and stopwatch faces.
package timefmt

import (
	"fmt"
	"time"
)

// Parts holds the zero-padded display fields of a duration.
type Parts struct {
	Hours        string
	Minutes      string
	Seconds      string
	Milliseconds string
}

// String returns the parts as HH:MM:SS.mmm.
func (p Parts) String() string {
	return p.Hours + ":" + p.Minutes + ":" + p.Seconds + "." + p.Milliseconds
}

// Format splits ms into hours, minutes, seconds and milliseconds.
// Hours are not wrapped at 24 and widen past two digits as needed.
// Negative input is treated as zero.
func Format(ms int64) Parts {
	if ms < 0 {
		ms = 0
	}

	totalSeconds := ms / 1000
	return Parts{
		Hours:        fmt.Sprintf("%02d", totalSeconds/3600),
		Minutes:      fmt.Sprintf("%02d", (totalSeconds%3600)/60),
		Seconds:      fmt.Sprintf("%02d", totalSeconds%60),
		Milliseconds: fmt.Sprintf("%03d", ms%1000),
	}
}

// Clock returns the local hour, minute and second of t as two-digit strings.
func Clock(t time.Time) (hours, minutes, seconds string) {
	t = t.Local()
	return fmt.Sprintf("%02d", t.Hour()),
		fmt.Sprintf("%02d", t.Minute()),
		fmt.Sprintf("%02d", t.Second())
}
