// Package widget implements the clock and stopwatch engines, the tick
// animation and the mode switch that together drive the tickr display.
//
// Everything in this package is single-threaded: methods must be called from
// the goroutine that owns the widget (the TUI update loop), and the clock
// passed in is expected to deliver timer callbacks on that same goroutine.
package widget
