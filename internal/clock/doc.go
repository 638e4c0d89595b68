// Package clock abstracts wall-clock sampling and timer scheduling so the
// widget engines can be driven by real timers in the TUI and by a simulated
// clock in tests.
package clock
