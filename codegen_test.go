package main

import (
	"errors"
	"strings"
	"testing"
)

// mustCompile compiles source and fails the test on error.
func mustCompile(t *testing.T, src string) string {
	t.Helper()
	program, err := Compile(src)
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", src, err)
	}
	return program
}

// TestCompileLiterals tests the emission rules for each literal form
func TestCompileLiterals(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"EntZero", "ent 0;", "[-]"},
		{"EntOne", "ent 1;", "[-]+"},
		{"Ent255", "ent 255;", "[-]" + strings.Repeat("+", 255)},
		{"EntCharA", "ent 'A';", "[-]" + strings.Repeat("+", 65)},
		{"EntInput", "ent input;", "[-],"},
		{"EntStringAB", `ent "AB";`, "[-]" + strings.Repeat("+", 65) + ">[-]" + strings.Repeat("+", 66)},
		{"EntEmptyString", `ent "";`, ""},
		{"Clear", "clr;", "[-]"},
		{"CellOut", "cellout;", "."},
		{"ShiftLeft", "<;", "<"},
		{"ShiftRight", ">;", ">"},
		{"MultiShiftLeft", "<<3;", "<<<"},
		{"MultiShiftRight", ">>4;", ">>>>"},
		{"Inc", "inc;", "+"},
		{"IncAmount", "inc 5;", "+++++"},
		{"Dec", "dec;", "-"},
		{"DecAmount", "dec 3;", "---"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustCompile(t, tt.src)
			if got != tt.want {
				t.Errorf("Compile(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

// TestCompileLoopBlock tests that equal deeper indentation groups lines
// into one loop body surrounded by one bracket pair
func TestCompileLoopBlock(t *testing.T) {
	src := "loop:\n    inc;\n    cellout;\n"
	got := mustCompile(t, src)
	if got != "[+.]" {
		t.Errorf("Compile = %q, want %q", got, "[+.]")
	}
}

// TestCompileDedentClosesLoop tests that a dedented line closes the block
// before its own statement is emitted
func TestCompileDedentClosesLoop(t *testing.T) {
	src := "inc 2;\nloop:\n    dec;\ncellout;\n"
	got := mustCompile(t, src)
	if got != "++[-]." {
		t.Errorf("Compile = %q, want %q", got, "++[-].")
	}
}

// TestCompileNestedLoops tests strictly deeper indentation nests loops
func TestCompileNestedLoops(t *testing.T) {
	src := "loop:\n    loop:\n        dec;\n    dec;\n"
	got := mustCompile(t, src)
	if got != "[[-]-]" {
		t.Errorf("Compile = %q, want %q", got, "[[-]-]")
	}
}

// TestSiblingLoopsAtEqualIndent tests that a loop header at the same
// indentation as an open loop closes it first instead of nesting
func TestSiblingLoopsAtEqualIndent(t *testing.T) {
	src := "loop:\n    inc;\nloop:\n    dec;\n"
	got := mustCompile(t, src)
	if got != "[+][-]" {
		t.Errorf("Compile = %q, want %q", got, "[+][-]")
	}
}

// TestUnterminatedBlockFlushedAtEOF tests that end of input closes all
// open frames so brackets stay balanced
func TestUnterminatedBlockFlushedAtEOF(t *testing.T) {
	src := "loop:\n    loop:\n        inc;\n"
	got := mustCompile(t, src)
	if got != "[[+]]" {
		t.Errorf("Compile = %q, want %q", got, "[[+]]")
	}
}

// TestStringLiteralPointerRest tests that a string leaves the pointer on
// the last character's cell: a single '<' must land on the first character
func TestStringLiteralPointerRest(t *testing.T) {
	src := "ent \"AB\";\n<;\ncellout;\n"
	want := "[-]" + strings.Repeat("+", 65) + ">[-]" + strings.Repeat("+", 66) + "<."
	got := mustCompile(t, src)
	if got != want {
		t.Errorf("Compile = %q, want %q", got, want)
	}
}

// TestCompileErrorCarriesLine tests that errors are annotated with the
// 1-based source position and the offending content
func TestCompileErrorCarriesLine(t *testing.T) {
	src := "inc;\n\n// comment\nent 999;\n"
	_, err := Compile(src)
	if err == nil {
		t.Fatal("Compile succeeded, want range error")
	}

	var ce *CompilerError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want *CompilerError", err)
	}
	if ce.Category != CategoryRange {
		t.Errorf("category = %v, want range", ce.Category)
	}
	if ce.Line != 4 {
		t.Errorf("line = %d, want 4", ce.Line)
	}
	if ce.Content != "ent 999;" {
		t.Errorf("content = %q, want %q", ce.Content, "ent 999;")
	}
}

// TestCompileNoPartialOutput tests that a failing compilation returns an
// empty program even when earlier lines emitted tokens
func TestCompileNoPartialOutput(t *testing.T) {
	program, err := Compile("inc 10;\nbogus;\n")
	if err == nil {
		t.Fatal("Compile succeeded, want syntax error")
	}
	if program != "" {
		t.Errorf("program = %q, want empty on error", program)
	}
}

// TestCompileFreshStatePerCall tests that loop state does not leak
// between compilations
func TestCompileFreshStatePerCall(t *testing.T) {
	first := mustCompile(t, "loop:\n    inc;\n")
	second := mustCompile(t, "dec;\n")
	if first != "[+]" {
		t.Errorf("first = %q, want %q", first, "[+]")
	}
	if second != "-" {
		t.Errorf("second = %q, want %q", second, "-")
	}
}

// TestCompileEmptySource tests that blank and comment-only sources
// compile to an empty program
func TestCompileEmptySource(t *testing.T) {
	for _, src := range []string{"", "\n\n", "// nothing\n   \n"} {
		if got := mustCompile(t, src); got != "" {
			t.Errorf("Compile(%q) = %q, want empty", src, got)
		}
	}
}
