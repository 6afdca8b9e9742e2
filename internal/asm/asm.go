// Package asm compiles CHIP-8 .c8s assembly source into big-endian CHIP-8
// ROM images: lexer, parser (label resolution and operand validation), and
// code generator, wired together behind Assemble.
package asm

// Assemble compiles source into a ROM image. Errors are always a
// *ParseError (FileError is reserved for the caller, which owns the path
// and extension checks).
func Assemble(source []byte) ([]byte, error) {
	tokens := lex(string(source))
	instructions, err := parse(tokens)
	if err != nil {
		return nil, err
	}
	return generate(instructions), nil
}

// LexOnly tokenizes source without parsing or code generation, for the
// assembler CLI's --skip-parsing flag.
func LexOnly(source []byte) int {
	return len(lex(string(source)))
}
