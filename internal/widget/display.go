package widget

// Sound names understood by a Sounds implementation.
const (
	SoundStart = "start"
	SoundStop  = "stop"
	SoundReset = "reset"
	SoundTick  = "tick"
)

// Sounds plays short named sound effects. Implementations must not block and
// handle their own failures.
type Sounds interface {
	Play(name string)
}

// NopSounds discards every request.
type NopSounds struct{}

// Play implements Sounds.
func (NopSounds) Play(string) {}

// Field is one rendered segment of a time display.
type Field struct {
	Text    string
	Ticking bool // tick highlight is applied
}

// ClockFace is the render target of the wall clock.
type ClockFace struct {
	Hours   Field
	Minutes Field
	Seconds Field
}

// StopwatchFace is the render target of the stopwatch.
type StopwatchFace struct {
	Hours        Field
	Minutes      Field
	Seconds      Field
	Milliseconds Field
}

// Buttons reports which stopwatch controls are enabled.
type Buttons struct {
	Start bool
	Stop  bool
	Reset bool
}
