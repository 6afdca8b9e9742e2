package chip8

import (
	"fmt"
	"time"
)

// CycleDuration is the period of both the instruction clock and the timer
// clock: 60 Hz.
const CycleDuration = time.Second / 60

// OpcodeHistoryLen is the depth of the opcode history ring the debugger
// overlay reads.
const OpcodeHistoryLen = 10

// CPU owns all VM state (memory, registers, display, input) and drives two
// decoupled 60 Hz clocks: an instruction clock and a timer clock. It is
// driven by a single-threaded host loop calling Tick once per iteration;
// there is no internal concurrency.
type CPU struct {
	Registers *Registers
	Memory    *Memory
	Display   *Display
	Input     *Input

	// InstructionsPerFrame lets a host run more than one instruction per
	// 1/60s instruction-clock tick while timers still decrement at a fixed
	// 60Hz. Defaults to 1, the canonical 60 IPS behavior.
	InstructionsPerFrame int

	lastCycleTime time.Time
	lastTimerTime time.Time

	cyclesExecuted  int
	lastFrequencyAt time.Time
	frequency       float64
	opcodeHistory   []uint16
}

// NewCPU wires a fresh Memory/Registers/Display/Input together.
func NewCPU() *CPU {
	now := time.Now()
	return &CPU{
		Registers:            NewRegisters(),
		Memory:               NewMemory(),
		Display:              NewDisplay(),
		Input:                NewInput(),
		InstructionsPerFrame: 1,
		lastCycleTime:        now,
		lastTimerTime:        now,
		lastFrequencyAt:      now,
	}
}

// LoadROM copies rom into memory starting at ProgramStart.
func (c *CPU) LoadROM(rom []byte) error {
	if len(rom) > MemorySize-ProgramStart {
		return fmt.Errorf("rom too large: %d bytes, max %d", len(rom), MemorySize-ProgramStart)
	}
	c.Memory.SetMany(rom, ProgramStart)
	return nil
}

// Step executes exactly one fetch-decode-dispatch cycle, unconditionally
// (no clock gating). Used directly by tests and by Tick once the
// instruction clock decides a cycle is due.
func (c *CPU) Step() {
	op := uint16(c.Memory.Get(int(c.Registers.PC)))<<8 | uint16(c.Memory.Get(int(c.Registers.PC)+1))

	p := &payload{regs: c.Registers, mem: c.Memory, disp: c.Display, in: c.Input}
	f := decode(op)

	entry, ok := lookup(op)
	if !ok {
		fmt.Printf("[cpu] unrecognized opcode %#04x\n", op)
	} else {
		entry.handler(p, f)
	}

	c.recordHistory(op)

	if !opcodeSetsPC(op) {
		c.Registers.PC += 2
	}
}

func (c *CPU) recordHistory(op uint16) {
	c.opcodeHistory = append(c.opcodeHistory, op)
	if len(c.opcodeHistory) > OpcodeHistoryLen {
		c.opcodeHistory = c.opcodeHistory[len(c.opcodeHistory)-OpcodeHistoryLen:]
	}
}

func (c *CPU) updateTimers() {
	if c.Registers.DT > 0 {
		c.Registers.DT--
	}
	if c.Registers.ST > 0 {
		c.Registers.ST--
	}
}

func (c *CPU) updateFrequency(now time.Time) {
	elapsed := now.Sub(c.lastFrequencyAt)
	if elapsed >= time.Second {
		c.frequency = float64(c.cyclesExecuted) / elapsed.Seconds()
		c.cyclesExecuted = 0
		c.lastFrequencyAt = now
	}
}

// Tick samples the clock and, if due, executes one or more instructions and
// independently decrements the timers. Ordering within a tick: sample time,
// execute if due, decrement timers if due, update the frequency meter.
// Non-blocking; safe to call as often as the host loop likes.
func (c *CPU) Tick() {
	now := time.Now()

	if now.Sub(c.lastCycleTime) >= CycleDuration {
		frames := c.InstructionsPerFrame
		if frames < 1 {
			frames = 1
		}
		for i := 0; i < frames; i++ {
			c.Step()
		}
		c.lastCycleTime = now
		c.cyclesExecuted++
	}

	if now.Sub(c.lastTimerTime) >= CycleDuration {
		c.updateTimers()
		c.lastTimerTime = now
	}

	c.updateFrequency(now)
}

// Frequency returns the most recently published cycles-per-second reading.
func (c *CPU) Frequency() float64 {
	return c.frequency
}

// OpcodeHistory returns the most recent opcodes executed, oldest first.
func (c *CPU) OpcodeHistory() []uint16 {
	return c.opcodeHistory
}
