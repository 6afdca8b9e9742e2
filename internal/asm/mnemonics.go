package asm

// mnemonic describes one assembler keyword: its fixed base opcode bits and
// the operands it expects, in order.
type mnemonic struct {
	base     uint16
	operands []operandKind
}

var mnemonics = map[string]mnemonic{
	"WAIT":       {0x0FFF, nil},
	"CLS":        {0x00E0, nil},
	"RET":        {0x00EE, nil},
	"JP":         {0x1000, []operandKind{kindNNN}},
	"CALL":       {0x2000, []operandKind{kindNNN}},
	"SE":         {0x3000, []operandKind{kindVX, kindNN}},
	"SNE":        {0x4000, []operandKind{kindVX, kindNN}},
	"SE_REG":     {0x5000, []operandKind{kindVX, kindVY}},
	"LD":         {0x6000, []operandKind{kindVX, kindNN}},
	"ADD":        {0x7000, []operandKind{kindVX, kindNN}},
	"LD_REG":     {0x8000, []operandKind{kindVX, kindVY}},
	"OR":         {0x8001, []operandKind{kindVX, kindVY}},
	"AND":        {0x8002, []operandKind{kindVX, kindVY}},
	"XOR":        {0x8003, []operandKind{kindVX, kindVY}},
	"ADD_REG":    {0x8004, []operandKind{kindVX, kindVY}},
	"SUB":        {0x8005, []operandKind{kindVX, kindVY}},
	"SHR":        {0x8006, []operandKind{kindVX}},
	"SUBN":       {0x8007, []operandKind{kindVX, kindVY}},
	"SHL":        {0x800E, []operandKind{kindVX}},
	"SNE_REG":    {0x9000, []operandKind{kindVX, kindVY}},
	"LD_I":       {0xA000, []operandKind{kindNNN}},
	"JP_V0":      {0xB000, []operandKind{kindNNN}},
	"RND":        {0xC000, []operandKind{kindVX, kindNN}},
	"DRW":        {0xD000, []operandKind{kindVX, kindVY, kindN}},
	"SKP":        {0xE09E, []operandKind{kindVX}},
	"SKNP":       {0xE0A1, []operandKind{kindVX}},
	"LD_VX_DT":   {0xF007, []operandKind{kindVX}},
	"LD_VX_K":    {0xF00A, []operandKind{kindVX}},
	"LD_DT_VX":   {0xF015, []operandKind{kindVX}},
	"LD_ST_VX":   {0xF018, []operandKind{kindVX}},
	"ADD_I_VX":   {0xF01E, []operandKind{kindVX}},
	"LD_F":       {0xF029, []operandKind{kindVX}},
	"LD_B":       {0xF033, []operandKind{kindVX}},
	"LD_I_TO_V":  {0xF055, []operandKind{kindVX}},
	"LD_V_TO_I":  {0xF065, []operandKind{kindVX}},
}

// labelOperand reports whether mnemonic name accepts a label name in place of
// a numeric NNN literal. Only JP and CALL do.
func labelOperand(name string) bool {
	return name == "JP" || name == "CALL"
}
