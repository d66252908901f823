// Completion: 100% - Tape machine executor complete
package main

import (
	"context"
	"fmt"
	"io"
)

// defaultTapeSize is the initial number of cells. The tape grows to the
// right on demand, so this only bounds the first allocation.
const defaultTapeSize = 30000

// cancelCheckInterval bounds how many instructions run between polls of
// the context, so a looping program can still be cancelled.
const cancelCheckInterval = 4096

// matchBrackets precomputes the jump table for a token program: for each
// '[' the offset of its matching ']' and vice versa.
func matchBrackets(program string) (map[int]int, error) {
	jumps := make(map[int]int)
	var stack []int

	for i := 0; i < len(program); i++ {
		switch program[i] {
		case opOpen:
			stack = append(stack, i)
		case opClose:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unmatched ']' at offset %d", i)
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jumps[open] = i
			jumps[i] = open
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("unmatched '[' at offset %d", stack[len(stack)-1])
	}
	return jumps, nil
}

// RunProgram executes a primitive token program on a fresh tape. Cells
// wrap modulo 256. The tape grows to the right on demand; moving left of
// cell zero is an error. End of input leaves the current cell unchanged.
// Characters outside the eight-token alphabet are ignored, so compiled
// output and hand-written programs both run.
func RunProgram(ctx context.Context, program string, in io.Reader, out io.Writer, tapeSize int) error {
	if tapeSize <= 0 {
		tapeSize = defaultTapeSize
	}

	jumps, err := matchBrackets(program)
	if err != nil {
		return err
	}

	tape := make([]byte, tapeSize)
	ptr := 0
	steps := 0
	buf := make([]byte, 1)

	for pc := 0; pc < len(program); pc++ {
		steps++
		if steps%cancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}

		switch program[pc] {
		case opRight:
			ptr++
			if ptr == len(tape) {
				tape = append(tape, make([]byte, tapeSize)...)
			}
		case opLeft:
			ptr--
			if ptr < 0 {
				return fmt.Errorf("pointer moved left of cell 0 at offset %d", pc)
			}
		case opInc:
			tape[ptr]++
		case opDec:
			tape[ptr]--
		case opOpen:
			if tape[ptr] == 0 {
				pc = jumps[pc]
			}
		case opClose:
			if tape[ptr] != 0 {
				pc = jumps[pc]
			}
		case opOut:
			if _, err := out.Write([]byte{tape[ptr]}); err != nil {
				return err
			}
		case opIn:
			if n, err := in.Read(buf); n > 0 {
				tape[ptr] = buf[0]
			} else if err != nil && err != io.EOF {
				return err
			}
		}
	}

	return nil
}
