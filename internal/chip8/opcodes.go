package chip8

import (
	"fmt"
	"math/rand"
)

// fields are the nibble/byte groupings every handler is offered; most only
// need a subset.
type fields struct {
	x, y, n uint16
	nn      byte
	nnn     uint16
}

// payload bundles the four pieces of state an opcode handler may touch.
// Handlers mutate freely through these pointers; nothing here is copied.
type payload struct {
	regs *Registers
	mem  *Memory
	disp *Display
	in   *Input
}

type opcodeHandler func(p *payload, f fields)

type opcodeEntry struct {
	mask, id uint16
	name     string
	handler  opcodeHandler
}

// opcodeTable is scanned linearly. The 0x00xx, 0x8xxx, 0xExxx and 0xFxxx
// families are matched only by narrower masks (0xFFFF, 0xF00F, 0xF0FF) and
// have no 0xF000-masked catch-all entry, so at most one entry matches any
// opcode.
var opcodeTable = []opcodeEntry{
	{0xFFFF, 0x00E0, "CLS", opCLS},
	{0xFFFF, 0x00EE, "RET", opRET},
	{0xFFFF, 0x0FFF, "WAIT", opWAIT},
	{0xF000, 0x1000, "JP", opJP},
	{0xF000, 0x2000, "CALL", opCALL},
	{0xF000, 0x3000, "SE", opSE},
	{0xF000, 0x4000, "SNE", opSNE},
	{0xF000, 0x5000, "SE_REG", opSEReg},
	{0xF000, 0x6000, "LD", opLD},
	{0xF000, 0x7000, "ADD", opADD},
	{0xF00F, 0x8000, "LD_REG", opLDReg},
	{0xF00F, 0x8001, "OR", opOR},
	{0xF00F, 0x8002, "AND", opAND},
	{0xF00F, 0x8003, "XOR", opXOR},
	{0xF00F, 0x8004, "ADD_REG", opADDReg},
	{0xF00F, 0x8005, "SUB", opSUB},
	{0xF00F, 0x8006, "SHR", opSHR},
	{0xF00F, 0x8007, "SUBN", opSUBN},
	{0xF00F, 0x800E, "SHL", opSHL},
	{0xF000, 0x9000, "SNE_REG", opSNEReg},
	{0xF000, 0xA000, "LD_I", opLDI},
	{0xF000, 0xB000, "JP_V0", opJPV0},
	{0xF000, 0xC000, "RND", opRND},
	{0xF000, 0xD000, "DRW", opDRW},
	{0xF0FF, 0xE09E, "SKP", opSKP},
	{0xF0FF, 0xE0A1, "SKNP", opSKNP},
	{0xF0FF, 0xF007, "LD_VX_DT", opLDVxDT},
	{0xF0FF, 0xF00A, "LD_VX_K", opLDVxK},
	{0xF0FF, 0xF015, "LD_DT_VX", opLDDTVx},
	{0xF0FF, 0xF018, "LD_ST_VX", opLDSTVx},
	{0xF0FF, 0xF01E, "ADD_I_VX", opADDIVx},
	{0xF0FF, 0xF029, "LD_F", opLDF},
	{0xF0FF, 0xF033, "LD_B", opLDB},
	{0xF0FF, 0xF055, "LD_I_TO_V", opLDIToV},
	{0xF0FF, 0xF065, "LD_V_TO_I", opLDVToI},
}

// decode extracts the nibble/byte groupings an opcode handler might need.
func decode(op uint16) fields {
	return fields{
		x:   (op & 0x0F00) >> 8,
		y:   (op & 0x00F0) >> 4,
		n:   op & 0x000F,
		nn:  byte(op & 0x00FF),
		nnn: op & 0x0FFF,
	}
}

// lookup returns the first matching table entry, linear-scanned.
func lookup(op uint16) (opcodeEntry, bool) {
	for _, e := range opcodeTable {
		if op&e.mask == e.id {
			return e, true
		}
	}
	return opcodeEntry{}, false
}

// opcodeSetsPC reports whether the caller must not auto-advance PC after
// the opcode: RET and every opcode whose high nibble is 0, 1, 2 or B. RET,
// JP, CALL and JP_V0 set PC themselves; the rest of the 0x0nnn family
// (WAIT, CLS, unrecognized opcodes) leaves PC where it was.
func opcodeSetsPC(op uint16) bool {
	if op == 0x00EE {
		return true
	}
	switch op & 0xF000 {
	case 0x0000, 0x1000, 0x2000, 0xB000:
		return true
	}
	return false
}

func opWAIT(p *payload, f fields) {}

func opCLS(p *payload, f fields) {
	p.disp.Clear()
}

func opRET(p *payload, f fields) {
	if p.regs.SP >= 0 {
		addr := p.regs.Stack[p.regs.SP]
		p.regs.SP--
		p.regs.PC = addr + 2
		return
	}
	fmt.Println("[cpu] stack underflow on RET")
	p.regs.PC = p.regs.Stack[0] + 2
}

func opJP(p *payload, f fields) {
	p.regs.PC = f.nnn
}

func opCALL(p *payload, f fields) {
	p.regs.SP++
	if p.regs.SP >= StackSize {
		fmt.Println("[cpu] stack overflow on CALL")
		p.regs.SP = StackSize - 1
	}
	p.regs.Stack[p.regs.SP] = p.regs.PC
	p.regs.PC = f.nnn
}

func opSE(p *payload, f fields) {
	if p.regs.V[f.x] == f.nn {
		p.regs.PC += 2
	}
}

func opSNE(p *payload, f fields) {
	if p.regs.V[f.x] != f.nn {
		p.regs.PC += 2
	}
}

func opSEReg(p *payload, f fields) {
	if p.regs.V[f.x] == p.regs.V[f.y] {
		p.regs.PC += 2
	}
}

func opLD(p *payload, f fields) {
	p.regs.V[f.x] = f.nn
}

func opADD(p *payload, f fields) {
	p.regs.V[f.x] = byte((int(p.regs.V[f.x]) + int(f.nn)) % 256)
}

func opLDReg(p *payload, f fields) {
	p.regs.V[f.x] = p.regs.V[f.y]
}

func opOR(p *payload, f fields) {
	p.regs.V[f.x] |= p.regs.V[f.y]
}

func opAND(p *payload, f fields) {
	p.regs.V[f.x] &= p.regs.V[f.y]
}

func opXOR(p *payload, f fields) {
	p.regs.V[f.x] ^= p.regs.V[f.y]
}

func opADDReg(p *payload, f fields) {
	sum := int(p.regs.V[f.x]) + int(p.regs.V[f.y])
	if sum > 255 {
		p.regs.V[0xF] = 1
	} else {
		p.regs.V[0xF] = 0
	}
	p.regs.V[f.x] = byte(sum & 0xFF)
}

func opSUB(p *payload, f fields) {
	vf := byte(0)
	if p.regs.V[f.x] > p.regs.V[f.y] {
		vf = 1
	}
	diff := byte((int(p.regs.V[f.x]) - int(p.regs.V[f.y])) & 0xFF)
	p.regs.V[f.x] = diff
	p.regs.V[0xF] = vf
}

func opSHR(p *payload, f fields) {
	p.regs.V[f.x] = p.regs.V[f.y]
	vf := p.regs.V[f.x] & 1
	p.regs.V[f.x] >>= 1
	p.regs.V[0xF] = vf
}

func opSUBN(p *payload, f fields) {
	vf := byte(0)
	if p.regs.V[f.y] > p.regs.V[f.x] {
		vf = 1
	}
	diff := byte((int(p.regs.V[f.y]) - int(p.regs.V[f.x])) & 0xFF)
	p.regs.V[f.x] = diff
	p.regs.V[0xF] = vf
}

func opSHL(p *payload, f fields) {
	p.regs.V[f.x] = p.regs.V[f.y]
	vf := (p.regs.V[f.x] & 0x80) >> 7
	p.regs.V[f.x] = (p.regs.V[f.x] << 1) & 0xFF
	p.regs.V[0xF] = vf
}

func opSNEReg(p *payload, f fields) {
	if p.regs.V[f.x] != p.regs.V[f.y] {
		p.regs.PC += 2
	}
}

func opLDI(p *payload, f fields) {
	p.regs.I = f.nnn
}

func opJPV0(p *payload, f fields) {
	p.regs.PC = f.nnn + uint16(p.regs.V[0])
}

func opRND(p *payload, f fields) {
	p.regs.V[f.x] = byte(rand.Intn(256)) & f.nn
}

func opDRW(p *payload, f fields) {
	vx := int(p.regs.V[f.x])
	vy := int(p.regs.V[f.y])
	collision := false

	for row := 0; row < int(f.n); row++ {
		sprite := p.mem.Get(int(p.regs.I) + row)
		for col := 0; col < 8; col++ {
			px := (sprite >> (7 - col)) & 1
			if px == 0 {
				continue
			}
			pxX := (vx + col) % DisplayWidth
			pxY := (vy + row) % DisplayHeight
			cur := p.disp.GetPixel(pxX, pxY)
			next := cur != (px == 1)
			if cur && !next {
				collision = true
			}
			p.disp.SetPixel(pxX, pxY, next)
		}
	}

	if collision {
		p.regs.V[0xF] = 1
	} else {
		p.regs.V[0xF] = 0
	}
}

func opSKP(p *payload, f fields) {
	if p.in.IsKeyPressed(int(p.regs.V[f.x]) & 0xF) {
		p.regs.PC += 2
	}
}

func opSKNP(p *payload, f fields) {
	if !p.in.IsKeyPressed(int(p.regs.V[f.x]) & 0xF) {
		p.regs.PC += 2
	}
}

func opLDVxDT(p *payload, f fields) {
	p.regs.V[f.x] = p.regs.DT
}

func opLDVxK(p *payload, f fields) {
	key, ok := p.in.GetAnyKeyPressed()
	if !ok {
		p.regs.PC -= 2
		return
	}
	p.regs.V[f.x] = byte(key)
}

func opLDDTVx(p *payload, f fields) {
	p.regs.DT = p.regs.V[f.x]
}

func opLDSTVx(p *payload, f fields) {
	p.regs.ST = p.regs.V[f.x]
}

func opADDIVx(p *payload, f fields) {
	p.regs.I += uint16(p.regs.V[f.x])
}

func opLDF(p *payload, f fields) {
	p.regs.I = uint16(p.regs.V[f.x]&0x0F) * 5
}

func opLDB(p *payload, f fields) {
	v := p.regs.V[f.x]
	p.mem.Set(int(p.regs.I), v/100)
	p.mem.Set(int(p.regs.I)+1, (v/10)%10)
	p.mem.Set(int(p.regs.I)+2, v%10)
}

func opLDIToV(p *payload, f fields) {
	for i := uint16(0); i <= f.x; i++ {
		p.mem.Set(int(p.regs.I)+int(i), p.regs.V[i])
	}
}

func opLDVToI(p *payload, f fields) {
	for i := uint16(0); i <= f.x; i++ {
		p.regs.V[i] = p.mem.Get(int(p.regs.I) + int(i))
	}
}
