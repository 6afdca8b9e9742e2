package pixelhost

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/rjpeters/chipforge/internal/chip8"
)

// Debugger overlays V-register, special-register, stack, frequency, and
// opcode-history text on top of the running display. It holds a
// non-owning view of the CPU: it reads state to render, never mutates it.
type Debugger struct {
	cpu     *chip8.CPU
	txt     *text.Text
	visible bool
}

// NewDebugger builds a debugger overlay reading from cpu.
func NewDebugger(cpu *chip8.CPU) *Debugger {
	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	return &Debugger{
		cpu: cpu,
		txt: text.New(pixel.V(10, screenHeight-20), atlas),
	}
}

// Toggle flips overlay visibility; wired to the debug-toggle key's edge.
func (d *Debugger) Toggle() {
	d.visible = !d.visible
}

// Draw renders the overlay onto target if visible.
func (d *Debugger) Draw(target pixel.Target) {
	if !d.visible {
		return
	}

	d.txt.Clear()
	d.txt.Color = colornames.Limegreen

	for i, v := range d.cpu.Registers.V {
		fmt.Fprintf(d.txt, "V%X=%#02x ", i, v)
		if i%4 == 3 {
			fmt.Fprintln(d.txt)
		}
	}
	fmt.Fprintf(d.txt, "I=%#03x PC=%#03x SP=%d DT=%d ST=%d\n",
		d.cpu.Registers.I, d.cpu.Registers.PC, d.cpu.Registers.SP, d.cpu.Registers.DT, d.cpu.Registers.ST)

	fmt.Fprint(d.txt, "stack:")
	for i := 0; i <= d.cpu.Registers.SP && i < chip8.StackSize; i++ {
		fmt.Fprintf(d.txt, " %#03x", d.cpu.Registers.Stack[i])
	}
	fmt.Fprintln(d.txt)

	fmt.Fprintf(d.txt, "freq=%.0f/s\n", d.cpu.Frequency())

	fmt.Fprint(d.txt, "history:")
	for _, op := range d.cpu.OpcodeHistory() {
		fmt.Fprintf(d.txt, " %#04x", op)
	}
	fmt.Fprintln(d.txt)

	d.txt.Draw(target, pixel.IM)
}
