// Package pixelhost is the windowing backend for chipforge: a faiface/pixel
// window that renders the chip8.Display grid and reports key transitions
// through the chip8.EventSource interface. The emulator core never imports
// this package; cmd/run.go wires the two together.
package pixelhost

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/rjpeters/chipforge/internal/chip8"
)

const (
	cellsWide     = float64(chip8.DisplayWidth)
	cellsHigh     = float64(chip8.DisplayHeight)
	screenWidth   = 1024.0
	screenHeight  = 512.0
	title         = "chipforge"
)

// keyOrder is the hex-keypad-to-host-key mapping: numeric keypad 0-9 for
// hex 0-9, then Q,W,E,R,T,Y for hex A-F, in that order.
var keyOrder = [16]pixelgl.Button{
	pixelgl.KeyKP0, pixelgl.KeyKP1, pixelgl.KeyKP2, pixelgl.KeyKP3,
	pixelgl.KeyKP4, pixelgl.KeyKP5, pixelgl.KeyKP6, pixelgl.KeyKP7,
	pixelgl.KeyKP8, pixelgl.KeyKP9,
	pixelgl.KeyQ, pixelgl.KeyW, pixelgl.KeyE, pixelgl.KeyR, pixelgl.KeyT, pixelgl.KeyY,
}

// DebugToggleKey is the free (non-hex) key whose key-down edge flips the
// debugger overlay, matching the original's K_LSHIFT toggle.
const DebugToggleKey = int(pixelgl.KeyLeftShift)

// Window wraps a pixelgl window and draws the chip8 display grid into it.
type Window struct {
	*pixelgl.Window
	imd *imdraw.IMDraw
}

// New opens a window sized for the CHIP-8 64x32 grid.
func New() (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, screenWidth, screenHeight),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening window: %w", err)
	}
	return &Window{Window: w, imd: imdraw.New(nil)}, nil
}

// Render draws every on pixel in disp as a filled rectangle. It does not
// flip the window itself; call Update once the debugger overlay (if any)
// has also drawn. It walks the full 64x32 grid (see chip8.Display.Each).
func (w *Window) Render(disp *chip8.Display) {
	w.Clear(colornames.Black)
	w.imd.Clear()
	w.imd.Color = pixel.RGB(1, 1, 1)

	cellW := screenWidth / cellsWide
	cellH := screenHeight / cellsHigh

	disp.Each(func(x, y int, on bool) {
		if !on {
			return
		}
		// origin is top-left in chip8.Display; pixel's Y axis grows
		// upward, so flip row order on draw.
		fx, fy := float64(x), cellsHigh-1-float64(y)
		w.imd.Push(pixel.V(fx*cellW, fy*cellH))
		w.imd.Push(pixel.V(fx*cellW+cellW, fy*cellH+cellH))
		w.imd.Rectangle(0)
	})

	w.imd.Draw(w)
}

// PollEvents implements chip8.EventSource by diffing pixelgl's per-frame
// button state against the hex keymap and the debug-toggle key.
func (w *Window) PollEvents() []chip8.KeyEvent {
	var events []chip8.KeyEvent

	for hex, btn := range keyOrder {
		if w.JustPressed(btn) {
			events = append(events, chip8.KeyEvent{Hex: hex, Down: true})
		} else if w.JustReleased(btn) {
			events = append(events, chip8.KeyEvent{Hex: hex, Down: false})
		}
	}

	if w.JustPressed(pixelgl.KeyLeftShift) {
		events = append(events, chip8.KeyEvent{Hex: -1, Free: DebugToggleKey, Down: true})
	} else if w.JustReleased(pixelgl.KeyLeftShift) {
		events = append(events, chip8.KeyEvent{Hex: -1, Free: DebugToggleKey, Down: false})
	}

	return events
}

// ShouldQuit implements chip8.EventSource.
func (w *Window) ShouldQuit() bool {
	return w.Closed()
}

// FrameTicker returns a ticker firing at the given refresh rate, used to
// throttle the host loop.
func FrameTicker(hz int) *time.Ticker {
	return time.NewTicker(time.Second / time.Duration(hz))
}
