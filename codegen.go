// Completion: 100% - Token emitter complete, block tracking and all statement forms
package main

import "strings"

// The eight primitive tokens of the target tape machine. The emitted
// program contains these characters and nothing else; loop nesting is
// expressed purely by matched bracket pairs in emission order.
const (
	opRight = '>' // move pointer forward
	opLeft  = '<' // move pointer backward
	opInc   = '+' // increment current cell
	opDec   = '-' // decrement current cell
	opOpen  = '[' // skip past the matching ']' when the cell is zero
	opClose = ']' // jump back to the matching '[' when the cell is non-zero
	opOut   = '.' // write the current cell
	opIn    = ',' // read one byte into the current cell
)

// compilation is the explicit state of one Compile call: the append-only
// token stream and the stack of indentation levels at which loops were
// opened. A fresh compilation is created per call; nothing is shared
// between calls or held at package level.
type compilation struct {
	out   strings.Builder
	loops []int
}

func (c *compilation) emit(op byte) {
	c.out.WriteByte(op)
}

func (c *compilation) emitN(op byte, n int) {
	for i := 0; i < n; i++ {
		c.out.WriteByte(op)
	}
}

// emitClear writes the clear idiom: decrement the current cell until it
// reaches zero.
func (c *compilation) emitClear() {
	c.emit(opOpen)
	c.emit(opDec)
	c.emit(opClose)
}

// closeBlocks pops every loop whose body has ended. A loop body ends
// when a line appears at or above the indentation its header was opened
// at, so a second loop at the same indentation is a sibling, not a
// nested loop.
func (c *compilation) closeBlocks(indent int) {
	for len(c.loops) > 0 && indent <= c.loops[len(c.loops)-1] {
		c.emit(opClose)
		c.loops = c.loops[:len(c.loops)-1]
	}
}

// openLoop records the indentation of the loop header and emits the
// loop-open token.
func (c *compilation) openLoop(indent int) {
	c.emit(opOpen)
	c.loops = append(c.loops, indent)
}

// Compile translates BrainBang source text into the primitive token
// stream of the target tape machine. Compilation is strictly sequential
// over the normalized lines and stops at the first error; no partial
// output is returned. Loops still open at end of input are closed
// implicitly rather than rejected.
func Compile(source string) (string, error) {
	lines, err := NormalizeLines(source)
	if err != nil {
		return "", err
	}

	c := &compilation{}
	for _, ln := range lines {
		if err := c.processLine(ln); err != nil {
			return "", err
		}
	}

	for len(c.loops) > 0 {
		c.emit(opClose)
		c.loops = c.loops[:len(c.loops)-1]
	}

	return c.out.String(), nil
}

// processLine closes any loops the line's indentation has dedented out
// of, then classifies and emits the line's own statement. Errors come
// back annotated with the line's source position.
func (c *compilation) processLine(ln SourceLine) error {
	c.closeBlocks(ln.Indent)

	stmt, err := ClassifyStatement(ln.Content)
	if err != nil {
		return atLine(err, ln.Line, ln.Content)
	}

	switch stmt.Kind {
	case StmtLoop:
		c.openLoop(ln.Indent)
	case StmtEnt:
		c.encodeOperand(stmt.Operand)
	case StmtCellOut:
		c.emit(opOut)
	case StmtShift, StmtMultiShift:
		op := byte(opLeft)
		if stmt.Forward {
			op = opRight
		}
		c.emitN(op, stmt.Amount)
	case StmtInc:
		c.emitN(opInc, stmt.Amount)
	case StmtDec:
		c.emitN(opDec, stmt.Amount)
	case StmtClear:
		c.emitClear()
	}

	return nil
}
