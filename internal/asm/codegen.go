package asm

// generate packs each instruction's operands onto its base opcode and
// serializes the result big-endian, high byte first, with no header.
func generate(instructions []instruction) []byte {
	rom := make([]byte, 0, len(instructions)*2)
	for _, inst := range instructions {
		op := inst.base
		for _, o := range inst.operands {
			switch o.kind {
			case kindVX:
				op |= (o.value & 0xF) << 8
			case kindVY:
				op |= (o.value & 0xF) << 4
			case kindN:
				op |= o.value & 0xF
			case kindNN:
				op |= o.value & 0xFF
			case kindNNN:
				op |= o.value & 0xFFF
			}
		}
		rom = append(rom, byte(op>>8), byte(op&0xFF))
	}
	return rom
}
