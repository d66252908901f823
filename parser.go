// Completion: 100% - Statement classifier complete, covers the full BrainBang grammar
package main

import (
	"strconv"
	"strings"
)

// StatementKind enumerates every statement form in the language. The
// emitter switches exhaustively over these instead of probing strings.
type StatementKind int

const (
	StmtLoop StatementKind = iota
	StmtEnt
	StmtCellOut
	StmtShift
	StmtMultiShift
	StmtInc
	StmtDec
	StmtClear
)

func (k StatementKind) String() string {
	switch k {
	case StmtLoop:
		return "loop"
	case StmtEnt:
		return "ent"
	case StmtCellOut:
		return "cellout"
	case StmtShift:
		return "shift"
	case StmtMultiShift:
		return "multi-shift"
	case StmtInc:
		return "inc"
	case StmtDec:
		return "dec"
	case StmtClear:
		return "clr"
	default:
		return "unknown"
	}
}

// Statement is one classified source line with its payload already
// validated: shift direction and repeat count for shifts, amount for
// inc/dec, and a parsed literal operand for ent.
type Statement struct {
	Kind    StatementKind
	Forward bool
	Amount  int
	Operand Operand
}

// ClassifyStatement turns the trimmed content of a source line (the
// terminator was validated by the normalizer and is stripped here) into
// a Statement. Anything that does not match one of the known forms is a
// syntax error naming the statement.
func ClassifyStatement(content string) (Statement, error) {
	body := strings.TrimSpace(content[:len(content)-1])

	// ':' terminates block openers, and 'loop' is the only one.
	if strings.HasSuffix(content, ":") {
		if body != "loop" {
			return Statement{}, syntaxErrorf("unknown block statement: %s", content)
		}
		return Statement{Kind: StmtLoop}, nil
	}

	switch {
	case body == "cellout":
		return Statement{Kind: StmtCellOut}, nil

	case body == "<" || body == ">":
		return Statement{Kind: StmtShift, Forward: body == ">", Amount: 1}, nil

	case strings.HasPrefix(body, "<<") || strings.HasPrefix(body, ">>"):
		n, err := parsePositiveInt(body[2:], "number in shift operator")
		if err != nil {
			return Statement{}, err
		}
		return Statement{Kind: StmtMultiShift, Forward: body[0] == '>', Amount: n}, nil

	case body == "inc":
		return Statement{Kind: StmtInc, Amount: 1}, nil

	case strings.HasPrefix(body, "inc "):
		n, err := parsePositiveInt(strings.TrimSpace(body[4:]), "increment amount")
		if err != nil {
			return Statement{}, err
		}
		return Statement{Kind: StmtInc, Amount: n}, nil

	case body == "dec":
		return Statement{Kind: StmtDec, Amount: 1}, nil

	case strings.HasPrefix(body, "dec "):
		n, err := parsePositiveInt(strings.TrimSpace(body[4:]), "decrement amount")
		if err != nil {
			return Statement{}, err
		}
		return Statement{Kind: StmtDec, Amount: n}, nil

	case body == "clr":
		return Statement{Kind: StmtClear}, nil

	case strings.HasPrefix(body, "ent "):
		op, err := ParseOperand(strings.TrimSpace(body[4:]))
		if err != nil {
			return Statement{}, err
		}
		return Statement{Kind: StmtEnt, Operand: op}, nil

	default:
		return Statement{}, syntaxErrorf("unknown statement: %s", body)
	}
}

// parsePositiveInt parses a strictly positive decimal integer token.
// Signs, non-digit text, and zero are all rejected.
func parsePositiveInt(tok, what string) (int, error) {
	if !isDigits(tok) {
		return 0, syntaxErrorf("invalid %s: %q", what, tok)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, syntaxErrorf("invalid %s: %q", what, tok)
	}
	if n <= 0 {
		return 0, syntaxErrorf("%s must be positive: %d", what, n)
	}
	return n, nil
}

// isDigits reports whether s is non-empty and all ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
