// Completion: 100% - Line normalizer complete, supports all BrainBang source forms
package main

import (
	"fmt"
	"strings"
)

// commentMarker starts a comment that runs to the end of the line.
const commentMarker = "//"

// Indentation units contributed by each kind of leading whitespace.
const (
	spaceIndent = 1
	tabIndent   = 4
)

// SourceLine is one non-blank, comment-stripped line of BrainBang source.
type SourceLine struct {
	Indent  int    // indentation units before the first non-whitespace character
	Content string // trimmed statement text, terminator still attached
	Line    int    // 1-based position in the original source text
}

// NormalizeLines turns raw source text into the ordered sequence of
// SourceLine records the emitter consumes. Comments are stripped first,
// lines that are blank afterwards contribute nothing, and every
// surviving line must end in ':' (block opener) or ';' (simple
// statement). The transformation is pure; calling it again restarts
// from the original text.
func NormalizeLines(source string) ([]SourceLine, error) {
	var lines []SourceLine

	for i, raw := range strings.Split(source, "\n") {
		if idx := strings.Index(raw, commentMarker); idx >= 0 {
			raw = raw[:idx]
		}

		content := strings.TrimSpace(raw)
		if content == "" {
			continue
		}

		if !strings.HasSuffix(content, ":") && !strings.HasSuffix(content, ";") {
			return nil, &CompilerError{
				Category: CategorySyntax,
				Message:  fmt.Sprintf("line must end with ':' or ';': %s", content),
				Line:     i + 1,
				Content:  content,
			}
		}

		lines = append(lines, SourceLine{
			Indent:  measureIndent(raw),
			Content: content,
			Line:    i + 1,
		})
	}

	return lines, nil
}

// measureIndent counts leading whitespace, one unit per space and four
// per tab, stopping at the first non-whitespace character. Mixed leading
// whitespace is summed, not type-checked.
func measureIndent(line string) int {
	indent := 0
	for _, ch := range line {
		switch ch {
		case ' ':
			indent += spaceIndent
		case '\t':
			indent += tabIndent
		default:
			return indent
		}
	}
	return indent
}
