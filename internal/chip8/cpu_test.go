package chip8

import (
	"testing"
	"time"
)

func TestLoadROMRejectsOversizeImage(t *testing.T) {
	c := NewCPU()
	big := make([]byte, MemorySize-ProgramStart+1)
	if err := c.LoadROM(big); err == nil {
		t.Errorf("LoadROM should reject a ROM that overruns memory")
	}
}

func TestTickDoesNothingBeforeOneSixtiethSecond(t *testing.T) {
	c := NewCPU()
	c.Registers.DT = 10
	startPC := c.Registers.PC

	// manufacture a just-created CPU's clocks so Tick sees no elapsed time
	now := time.Now()
	c.lastCycleTime = now
	c.lastTimerTime = now

	c.Tick()

	if c.Registers.PC != startPC {
		t.Errorf("PC advanced on a sub-frame tick")
	}
	if c.Registers.DT != 10 {
		t.Errorf("DT decremented on a sub-frame tick")
	}
}

func TestTimerDecrementsOncePerDueTick(t *testing.T) {
	c := NewCPU()
	c.Registers.DT = 10

	past := time.Now().Add(-3 * CycleDuration)
	c.lastCycleTime = past
	c.lastTimerTime = past

	c.Tick()

	if c.Registers.DT != 9 {
		t.Errorf("DT = %d after one due tick, want 9 (one decrement per Tick call)", c.Registers.DT)
	}
}

func TestOpcodeHistoryRingCapsLength(t *testing.T) {
	c := NewCPU()
	for i := 0; i < OpcodeHistoryLen+3; i++ {
		c.Memory.Set(ProgramStart, 0x00)
		c.Memory.Set(ProgramStart+1, 0xE0) // CLS, a harmless repeatable no-PC-change op
		c.Registers.PC = ProgramStart
		c.Step()
	}

	hist := c.OpcodeHistory()
	if len(hist) != OpcodeHistoryLen {
		t.Errorf("history length = %d, want %d", len(hist), OpcodeHistoryLen)
	}
}
