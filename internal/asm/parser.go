package asm

import (
	"strconv"
	"strings"
)

// ProgramStart is the load address ROMs begin at; labels are addressed
// relative to it.
const ProgramStart = 0x200

// operand is one resolved operand value paired with the kind the mnemonic
// declared for that position.
type operand struct {
	kind  operandKind
	value uint16
}

// instruction is a fully decoded, label-free line: a base opcode plus its
// resolved operands, ready for code generation.
type instruction struct {
	mnemonic string
	base     uint16
	operands []operand
	line     int
}

// parse groups tokens into lines, registers labels, and validates operands,
// returning the label-free instruction stream. The 0-based line reported in
// a ParseError is the instruction index, the same count label addresses use
// (non-empty, non-label lines only).
func parse(tokens []token) ([]instruction, error) {
	lines := groupLines(tokens)

	labels := map[string]uint16{}
	var bodyLines [][]token

	// First pass: strip label-definition lines, bind each label to the
	// address of the next non-label line. Reported line numbers count only
	// non-label instruction lines, never the lexer's raw physical line.
	for _, ln := range lines {
		if len(ln) == 0 {
			continue
		}
		if isLabelDef(ln) {
			name := strings.TrimSuffix(ln[0].text, ":")
			if _, dup := labels[name]; dup {
				return nil, &ParseError{Mnemonic: name, Line: len(bodyLines), Reason: "duplicate label"}
			}
			labels[name] = ProgramStart + uint16(len(bodyLines))*2
			continue
		}
		bodyLines = append(bodyLines, ln)
	}

	instructions := make([]instruction, 0, len(bodyLines))
	for i, ln := range bodyLines {
		inst, err := parseLine(ln, i, labels)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, inst)
	}

	return instructions, nil
}

// groupLines folds a flat token stream into lines, splitting on newline
// tokens and discarding commas (they only separated operands).
func groupLines(tokens []token) [][]token {
	var lines [][]token
	var cur []token
	for _, t := range tokens {
		switch t.kind {
		case tokNewline:
			if len(cur) > 0 {
				lines = append(lines, cur)
			}
			cur = nil
		case tokComma:
			// operand separator only, not carried into the line
		default:
			cur = append(cur, t)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

func isLabelDef(ln []token) bool {
	return len(ln) >= 1 && strings.HasSuffix(ln[0].text, ":")
}

func parseLine(ln []token, sourceLine int, labels map[string]uint16) (instruction, error) {
	name := ln[0].text
	m, ok := mnemonics[name]
	if !ok {
		return instruction{}, &ParseError{Mnemonic: name, Line: sourceLine, Reason: "unknown mnemonic"}
	}

	operandTokens := ln[1:]
	if len(operandTokens) < len(m.operands) {
		return instruction{}, &ParseError{Mnemonic: name, Line: sourceLine, Reason: "missing operand"}
	}

	ops := make([]operand, 0, len(m.operands))
	for i, kind := range m.operands {
		tok := operandTokens[i].text
		val, err := resolveOperand(name, kind, tok, sourceLine, labels)
		if err != nil {
			return instruction{}, err
		}
		ops = append(ops, operand{kind: kind, value: val})
	}

	return instruction{mnemonic: name, base: m.base, operands: ops, line: sourceLine}, nil
}

func resolveOperand(mnemonicName string, kind operandKind, tok string, line int, labels map[string]uint16) (uint16, error) {
	switch kind {
	case kindVX, kindVY:
		return parseRegister(mnemonicName, tok, line)
	default:
		return parseLiteral(mnemonicName, kind, tok, line, labels)
	}
}

func parseRegister(mnemonicName, tok string, line int) (uint16, error) {
	if len(tok) < 2 || tok[0] != 'v' {
		return 0, &ParseError{Mnemonic: mnemonicName, Line: line, Reason: "expected register of the form v0..v15"}
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil {
		return 0, &ParseError{Mnemonic: mnemonicName, Line: line, Reason: "register index is not numeric"}
	}
	if n < 0 || n > 15 {
		return 0, &ParseError{Mnemonic: mnemonicName, Line: line, Reason: "register index out of range 0..15"}
	}
	return uint16(n), nil
}

func parseLiteral(mnemonicName string, kind operandKind, tok string, line int, labels map[string]uint16) (uint16, error) {
	var val int64
	var err error

	switch {
	case strings.HasPrefix(tok, "0x"):
		if !isUpperHex(tok[2:]) {
			return 0, &ParseError{Mnemonic: mnemonicName, Line: line, Reason: "invalid numeric literal: " + tok}
		}
		val, err = strconv.ParseInt(tok[2:], 16, 32)
	case strings.HasPrefix(tok, "0b"):
		val, err = strconv.ParseInt(tok[2:], 2, 32)
	default:
		val, err = strconv.ParseInt(tok, 10, 32)
		if err != nil && labelOperand(mnemonicName) {
			addr, ok := labels[tok]
			if !ok {
				return 0, &ParseError{Mnemonic: mnemonicName, Line: line, Reason: "unknown label: " + tok}
			}
			return addr, nil
		}
	}
	if err != nil {
		return 0, &ParseError{Mnemonic: mnemonicName, Line: line, Reason: "invalid numeric literal: " + tok}
	}

	limit := int64(0)
	switch kind {
	case kindN:
		limit = 0xF
	case kindNN:
		limit = 0xFF
	case kindNNN:
		limit = 0xFFF
	}
	if val < 0 || val > limit {
		return 0, &ParseError{Mnemonic: mnemonicName, Line: line, Reason: "literal out of range"}
	}
	return uint16(val), nil
}

// isUpperHex reports whether every character is a decimal digit or an
// uppercase A-F, rejecting lowercase hex digits.
func isUpperHex(digits string) bool {
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
