package chip8

import "testing"

// stepCPUWithOpcode loads a single big-endian opcode at ProgramStart, runs
// setup (if any), executes one Step, and returns the CPU.
func stepCPUWithOpcode(t *testing.T, op uint16, setup func(c *CPU)) *CPU {
	t.Helper()
	c := NewCPU()
	c.Memory.Set(ProgramStart, byte(op>>8))
	c.Memory.Set(ProgramStart+1, byte(op&0xFF))
	if setup != nil {
		setup(c)
	}
	c.Step()
	return c
}

func TestAddWithCarry(t *testing.T) {
	c := stepCPUWithOpcode(t, 0x8014, func(c *CPU) {
		c.Registers.V[0] = 0xFF
		c.Registers.V[1] = 0x01
	})
	if c.Registers.V[0] != 0x00 {
		t.Errorf("V0 = %#02x, want 0x00", c.Registers.V[0])
	}
	if c.Registers.V[0xF] != 1 {
		t.Errorf("VF = %d, want 1", c.Registers.V[0xF])
	}
}

func TestSubNoBorrow(t *testing.T) {
	c := stepCPUWithOpcode(t, 0x8015, func(c *CPU) {
		c.Registers.V[0] = 0x10
		c.Registers.V[1] = 0x05
	})
	if c.Registers.V[0] != 0x0B {
		t.Errorf("V0 = %#02x, want 0x0B", c.Registers.V[0])
	}
	if c.Registers.V[0xF] != 1 {
		t.Errorf("VF = %d, want 1", c.Registers.V[0xF])
	}
}

func TestShrCopyThenShift(t *testing.T) {
	c := stepCPUWithOpcode(t, 0x8016, func(c *CPU) {
		c.Registers.V[0] = 0
		c.Registers.V[1] = 0x03
	})
	if c.Registers.V[0] != 0x01 {
		t.Errorf("V0 = %#02x, want 0x01", c.Registers.V[0])
	}
	if c.Registers.V[0xF] != 1 {
		t.Errorf("VF = %d, want 1", c.Registers.V[0xF])
	}
}

func TestJP(t *testing.T) {
	c := stepCPUWithOpcode(t, 0x1234, nil)
	if c.Registers.PC != 0x234 {
		t.Errorf("PC = %#04x, want 0x234", c.Registers.PC)
	}
}

func TestCallThenRet(t *testing.T) {
	c := NewCPU()
	// CALL 0x300
	c.Memory.Set(ProgramStart, 0x23)
	c.Memory.Set(ProgramStart+1, 0x00)
	// RET, placed at the call target
	c.Memory.Set(0x300, 0x00)
	c.Memory.Set(0x301, 0xEE)

	c.Step() // CALL
	if c.Registers.PC != 0x300 {
		t.Fatalf("after CALL, PC = %#04x, want 0x300", c.Registers.PC)
	}
	if c.Registers.SP != 0 {
		t.Fatalf("after CALL, SP = %d, want 0", c.Registers.SP)
	}

	c.Step() // RET
	if c.Registers.PC != 0x202 {
		t.Errorf("after RET, PC = %#04x, want 0x202", c.Registers.PC)
	}
	if c.Registers.SP != -1 {
		t.Errorf("after RET, SP = %d, want -1", c.Registers.SP)
	}
}

func TestSpriteDrawNoCollisionThenCollision(t *testing.T) {
	c := NewCPU()
	c.Registers.I = 0 // glyph '0' lives at font address 0
	c.Registers.V[0] = 0
	c.Registers.V[1] = 0

	c.Memory.Set(ProgramStart, 0xD0)
	c.Memory.Set(ProgramStart+1, 0x05)

	c.Step()
	if !c.Display.GetPixel(0, 0) {
		t.Errorf("pixel (0,0) should be on after first draw")
	}
	if c.Registers.V[0xF] != 0 {
		t.Errorf("VF = %d after first draw, want 0 (no collision)", c.Registers.V[0xF])
	}

	// redraw the same sprite at the same spot: every lit pixel clears
	c.Registers.PC = ProgramStart
	c.Step()
	if c.Display.GetPixel(0, 0) {
		t.Errorf("pixel (0,0) should be off after XOR redraw")
	}
	if c.Registers.V[0xF] != 1 {
		t.Errorf("VF = %d after second draw, want 1 (collision)", c.Registers.V[0xF])
	}
}

func TestFX0AWaitsWhenNoKeyHeld(t *testing.T) {
	c := stepCPUWithOpcode(t, 0xF00A, nil)
	if c.Registers.PC != ProgramStart {
		t.Errorf("PC = %#04x, want unchanged at %#04x", c.Registers.PC, ProgramStart)
	}
}

func TestFX0AAdvancesOnceAKeyIsHeld(t *testing.T) {
	c := stepCPUWithOpcode(t, 0xF00A, func(c *CPU) {
		c.Input.SetKeyPressed(0x3, true)
	})
	if c.Registers.PC != ProgramStart+2 {
		t.Errorf("PC = %#04x, want %#04x", c.Registers.PC, ProgramStart+2)
	}
	if c.Registers.V[0] != 0x3 {
		t.Errorf("V0 = %#02x, want 0x3", c.Registers.V[0])
	}
}

func TestBCDOf234(t *testing.T) {
	c := stepCPUWithOpcode(t, 0xF033, func(c *CPU) {
		c.Registers.V[0] = 234
		c.Registers.I = 0x300
	})
	want := [3]byte{2, 3, 4}
	for i, w := range want {
		if got := c.Memory.Get(0x300 + i); got != w {
			t.Errorf("mem[%#04x] = %d, want %d", 0x300+i, got, w)
		}
	}
}

func TestLDIToVAndBack(t *testing.T) {
	c := NewCPU()
	c.Registers.V[0] = 1
	c.Registers.V[1] = 2
	c.Registers.V[2] = 3
	c.Registers.I = 0x400

	c.Memory.Set(ProgramStart, 0xF2)
	c.Memory.Set(ProgramStart+1, 0x55)
	c.Step()

	c.Registers.V[0], c.Registers.V[1], c.Registers.V[2] = 0, 0, 0
	c.Registers.PC = ProgramStart
	c.Memory.Set(ProgramStart, 0xF2)
	c.Memory.Set(ProgramStart+1, 0x65)
	c.Step()

	if c.Registers.V[0] != 1 || c.Registers.V[1] != 2 || c.Registers.V[2] != 3 {
		t.Errorf("round trip through FX55/FX65 lost state: V = %v", c.Registers.V[:3])
	}
}

func TestSkipIfKeyPressed(t *testing.T) {
	c := stepCPUWithOpcode(t, 0xE09E, func(c *CPU) {
		c.Registers.V[0] = 0x5
		c.Input.SetKeyPressed(0x5, true)
	})
	if c.Registers.PC != ProgramStart+4 {
		t.Errorf("PC = %#04x, want %#04x (skip taken)", c.Registers.PC, ProgramStart+4)
	}
}
