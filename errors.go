// Completion: 100% - Error handling complete, clear and helpful messages
package main

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory classifies the type of compilation error
type ErrorCategory int

const (
	CategorySyntax ErrorCategory = iota
	CategoryRange
)

func (c ErrorCategory) String() string {
	switch c {
	case CategorySyntax:
		return "syntax"
	case CategoryRange:
		return "range"
	default:
		return "unknown"
	}
}

// CompilerError represents a single compilation error. Line is the
// 1-based position of the offending line in the original source text,
// or 0 while the error has not yet been attached to a line. Content is
// the trimmed text of the offending line.
type CompilerError struct {
	Category ErrorCategory
	Message  string
	Line     int
	Content  string
}

// Error implements the error interface
func (e *CompilerError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s error: %s", e.Line, e.Category, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Category, e.Message)
}

// Format returns a nicely formatted error message with source context
func (e *CompilerError) Format(useColor bool) string {
	var sb strings.Builder

	// Error header
	if useColor {
		sb.WriteString("\033[1;31m") // Bold red
	}
	sb.WriteString(e.Category.String())
	sb.WriteString(" error: ")
	if useColor {
		sb.WriteString("\033[0m") // Reset
	}
	sb.WriteString(e.Message)
	sb.WriteString("\n")

	// Location
	if e.Line > 0 {
		if useColor {
			sb.WriteString("\033[1;34m") // Bold blue
		}
		sb.WriteString("  --> line ")
		sb.WriteString(fmt.Sprintf("%d", e.Line))
		if useColor {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	// Source context
	if e.Content != "" && e.Line > 0 {
		lineNum := fmt.Sprintf("%d", e.Line)
		padding := strings.Repeat(" ", len(lineNum)+1)

		sb.WriteString(padding)
		sb.WriteString("|\n")
		sb.WriteString(lineNum)
		sb.WriteString(" | ")
		sb.WriteString(e.Content)
		sb.WriteString("\n")
		sb.WriteString(padding)
		sb.WriteString("| ")
		if useColor {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString(strings.Repeat("^", len(e.Content)))
		if useColor {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// syntaxErrorf creates a syntax error. The line-processing loop attaches
// the source position before the error escapes Compile.
func syntaxErrorf(format string, args ...any) *CompilerError {
	return &CompilerError{
		Category: CategorySyntax,
		Message:  fmt.Sprintf(format, args...),
	}
}

// rangeErrorf creates a range error for a literal that does not fit in
// a single tape cell.
func rangeErrorf(format string, args ...any) *CompilerError {
	return &CompilerError{
		Category: CategoryRange,
		Message:  fmt.Sprintf(format, args...),
	}
}

// atLine attaches the originating source line to an error, leaving
// already-located errors untouched.
func atLine(err error, line int, content string) error {
	var ce *CompilerError
	if errors.As(err, &ce) {
		if ce.Line == 0 {
			ce.Line = line
			ce.Content = content
		}
		return ce
	}
	return &CompilerError{
		Category: CategorySyntax,
		Message:  err.Error(),
		Line:     line,
		Content:  content,
	}
}
