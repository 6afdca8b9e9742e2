package chip8

import "fmt"

// MemorySize is the size of the flat CHIP-8 address space.
const MemorySize = 4096

// ProgramStart is the address CHIP-8 ROMs are loaded at.
const ProgramStart = 0x200

// FontSet is the built-in 4x5 hex glyph set, loaded at address 0x000.
//
// http://www.multigesture.net/articles/how-to-write-an-emulator-chip-8-interpreter
var FontSet = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the flat 4096-byte CHIP-8 address space, with the fontset
// preloaded at address 0x000.
type Memory struct {
	data [MemorySize]byte
}

// NewMemory returns a Memory with the fontset loaded at 0x000.
func NewMemory() *Memory {
	m := &Memory{}
	m.SetMany(FontSet[:], 0)
	return m
}

func (m *Memory) isValidAddr(addr int) bool {
	valid := addr >= 0 && addr < MemorySize
	if !valid {
		fmt.Printf("[memory] %#x is out of range\n", addr)
	}
	return valid
}

// Get reads a byte. Out-of-range reads are logged and return 0.
func (m *Memory) Get(addr int) byte {
	if !m.isValidAddr(addr) {
		return 0
	}
	return m.data[addr]
}

// Set writes a byte. Out-of-range writes are logged and dropped.
func (m *Memory) Set(addr int, value byte) {
	if !m.isValidAddr(addr) {
		return
	}
	m.data[addr] = value
}

// SetMany writes a block of bytes starting at addr. Out-of-range writes
// (start or end) are logged and dropped entirely.
func (m *Memory) SetMany(values []byte, addr int) {
	end := addr + len(values)
	if !m.isValidAddr(addr) || (len(values) > 0 && !m.isValidAddr(end-1)) {
		return
	}
	copy(m.data[addr:end], values)
}
