// Completion: 100% - Literal encoder complete, all four operand forms supported
package main

import (
	"strconv"
	"strings"
)

// maxCellValue is the largest value a single tape cell can hold. Literals
// above it are a compile-time range error, never a wraparound.
const maxCellValue = 255

// OperandKind enumerates the recognized `ent` operand forms.
type OperandKind int

const (
	OperandInput OperandKind = iota
	OperandChar
	OperandString
	OperandNumber
)

// Operand is a validated `ent` operand. Every encoded byte has already
// been checked against maxCellValue, so emission cannot fail.
type Operand struct {
	Kind  OperandKind
	Value byte   // cell value for OperandChar and OperandNumber
	Text  string // cell values, one per character, for OperandString
}

// ParseOperand validates the operand of an `ent` statement. Recognized
// forms, in priority order: the keyword input, a single-quoted character
// literal of exactly one character (no escape sequences), a double-quoted
// string literal, and a decimal integer in [0, 255].
func ParseOperand(raw string) (Operand, error) {
	if raw == "input" {
		return Operand{Kind: OperandInput}, nil
	}

	if r := []rune(raw); len(r) == 3 && r[0] == '\'' && r[2] == '\'' {
		if r[1] > maxCellValue {
			return Operand{}, rangeErrorf("character %q has code point %d, too large for a single cell (max %d)", r[1], r[1], maxCellValue)
		}
		return Operand{Kind: OperandChar, Value: byte(r[1])}, nil
	}

	if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
		text := raw[1 : len(raw)-1]
		for _, r := range text {
			if r > maxCellValue {
				return Operand{}, rangeErrorf("character %q has code point %d, too large for a single cell (max %d)", r, r, maxCellValue)
			}
		}
		return Operand{Kind: OperandString, Text: text}, nil
	}

	if isDigits(raw) {
		n, err := strconv.Atoi(raw)
		if err != nil || n > maxCellValue {
			return Operand{}, rangeErrorf("value %s is too large for a single cell (max %d)", raw, maxCellValue)
		}
		return Operand{Kind: OperandNumber, Value: byte(n)}, nil
	}

	return Operand{}, syntaxErrorf("invalid value for ent: %s", raw)
}

// encodeOperand appends the primitive sequence for a validated operand.
// Every cell write is preceded by the clear idiom, so the resulting value
// does not depend on the cell's previous contents. String literals occupy
// consecutive cells and leave the pointer on the last character's cell;
// there is no trailing return shift.
func (c *compilation) encodeOperand(op Operand) {
	switch op.Kind {
	case OperandInput:
		c.emitClear()
		c.emit(opIn)
	case OperandChar, OperandNumber:
		c.emitClear()
		c.emitN(opInc, int(op.Value))
	case OperandString:
		for i, r := range []rune(op.Text) {
			if i > 0 {
				c.emit(opRight)
			}
			c.emitClear()
			c.emitN(opInc, int(r))
		}
	}
}
