package widget

// Mode is the visible view.
type Mode int

const (
	ModeClock Mode = iota
	ModeStopwatch
)

func (m Mode) String() string {
	switch m {
	case ModeClock:
		return "clock"
	case ModeStopwatch:
		return "stopwatch"
	default:
		return "unknown"
	}
}

// ModeController switches between the clock and stopwatch views.
type ModeController struct {
	mode      Mode
	stopwatch *Stopwatch
}

// NewModeController creates a controller in clock mode.
func NewModeController(sw *Stopwatch) *ModeController {
	mc := &ModeController{stopwatch: sw}
	mc.SelectClock()
	return mc
}

// SelectClock shows the clock and stops the stopwatch, keeping its elapsed
// time.
func (mc *ModeController) SelectClock() {
	mc.mode = ModeClock
	mc.stopwatch.Stop()
}

// SelectStopwatch shows the stopwatch. A running stopwatch keeps running.
func (mc *ModeController) SelectStopwatch() {
	mc.mode = ModeStopwatch
}

// Mode returns the visible view.
func (mc *ModeController) Mode() Mode {
	return mc.mode
}
