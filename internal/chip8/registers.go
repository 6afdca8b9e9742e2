package chip8

// StackSize is the depth of the call stack.
const StackSize = 16

// Registers holds the CHIP-8 CPU's register file: sixteen general-purpose
// 8-bit registers, the index register, the program counter, the stack
// pointer, the two 60Hz timers, and the return-address stack.
type Registers struct {
	V  [16]byte
	I  uint16
	PC uint16

	// SP is -1 when the stack is empty, matching the source system's
	// sentinel. 00EE with SP=-1 logs a stack underflow and returns to
	// stack[0]+2 rather than failing; see DESIGN.md.
	SP    int
	DT    byte
	ST    byte
	Stack [StackSize]uint16
}

// NewRegisters returns a Registers in its post-reset state: PC at
// ProgramStart, SP empty, everything else zeroed.
func NewRegisters() *Registers {
	return &Registers{
		PC: ProgramStart,
		SP: -1,
	}
}

// Reset restores the register file to its post-construction state.
func (r *Registers) Reset() {
	*r = Registers{PC: ProgramStart, SP: -1}
}
