package chip8

import "fmt"

// KeyCount is the number of keys on the hex keypad.
const KeyCount = 16

// KeyEvent is a single key transition reported by a host EventSource.
// Hex is in [0,15] for a hex-keypad key; for any other (host-defined)
// key, Hex is -1 and Free carries a host-specific key code.
type KeyEvent struct {
	Hex  int
	Free int
	Down bool
}

// EventSource is the host collaborator Input.Refresh drains each frame.
// Implemented by internal/pixelhost; the emulator core only depends on
// this interface, never on a windowing library directly.
type EventSource interface {
	PollEvents() []KeyEvent
	ShouldQuit() bool
}

// Input holds the 16-key hex keypad state plus the host's non-hex ("free")
// keys: which are currently held, and which had a key-down edge during the
// most recent Refresh.
type Input struct {
	keys      [KeyCount]bool
	freeHeld  map[int]bool
	freeEdge  map[int]bool
	shouldEnd bool
}

// NewInput returns an Input with nothing held.
func NewInput() *Input {
	return &Input{
		freeHeld: make(map[int]bool),
		freeEdge: make(map[int]bool),
	}
}

// Refresh drains pending events from src and updates state. freeEdge is
// cleared first, so after Refresh it reflects only edges seen during this
// call, never a previous one.
func (in *Input) Refresh(src EventSource) {
	in.freeEdge = make(map[int]bool)

	if src.ShouldQuit() {
		in.shouldEnd = true
	}

	for _, ev := range src.PollEvents() {
		if ev.Hex >= 0 && ev.Hex < KeyCount {
			in.keys[ev.Hex] = ev.Down
			continue
		}
		if ev.Down {
			if !in.freeHeld[ev.Free] {
				in.freeEdge[ev.Free] = true
			}
			in.freeHeld[ev.Free] = true
		} else {
			delete(in.freeHeld, ev.Free)
		}
	}
}

// IsKeyPressed reports whether hex key k is currently held. k outside
// [0,15] is logged and reported as not pressed.
func (in *Input) IsKeyPressed(k int) bool {
	if k < 0 || k >= KeyCount {
		fmt.Printf("[input] %#x is not a valid key\n", k)
		return false
	}
	return in.keys[k]
}

// SetKeyPressed directly sets a hex key's held state. Used by tests; the
// host normally drives state through Refresh instead.
func (in *Input) SetKeyPressed(k int, pressed bool) {
	if k < 0 || k >= KeyCount {
		return
	}
	in.keys[k] = pressed
}

// GetAnyKeyPressed returns the lowest-indexed held hex key, if any.
func (in *Input) GetAnyKeyPressed() (int, bool) {
	for i := 0; i < KeyCount; i++ {
		if in.keys[i] {
			return i, true
		}
	}
	return 0, false
}

// IsFreeKeyPressed reports whether a non-hex key is currently held.
func (in *Input) IsFreeKeyPressed(code int) bool {
	return in.freeHeld[code]
}

// IsFreeKeyJustPressed reports whether a non-hex key had a key-down edge
// during the most recent Refresh.
func (in *Input) IsFreeKeyJustPressed(code int) bool {
	return in.freeEdge[code]
}

// ShouldQuit reports whether a host quit event has been observed.
func (in *Input) ShouldQuit() bool {
	return in.shouldEnd
}
