// Completion: 95% - REPL complete; editing is line-based, no mid-block revision
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/tebeka/atexit"
)

const (
	historyFile = ".brainbang_history"
	promptMain  = "bb> "
	promptCont  = "... "
)

// cmdRepl runs an interactive loop: each snippet is compiled, the token
// stream is printed, and the program is executed on a fresh tape.
func cmdRepl(ctx *CommandContext) error {
	fmt.Printf("BrainBang REPL (%s)\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.\n", versionString)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)

	// Registered rather than deferred so the history survives
	// atexit.Exit on the signal path as well.
	atexit.Register(func() {
		ln.Close()
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	})

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		atexit.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		code, ok := readSnippet(ln)
		if !ok {
			fmt.Println()
			return nil
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return nil
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		program, err := Compile(code)
		if err != nil {
			printDiagnostic(ctx, err)
			continue
		}

		fmt.Println(program)

		var out strings.Builder
		if err := RunProgram(context.Background(), program, os.Stdin, &out, ctx.TapeSize); err != nil {
			fmt.Fprintf(os.Stderr, "run error: %v\n", err)
			continue
		}
		if out.Len() > 0 {
			fmt.Println(out.String())
		}

		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readSnippet reads one statement, or a loop header together with its
// indented body. A line ending in ':' opens a continuation prompt that
// stays open until an empty line is entered.
func readSnippet(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", true
		}

		if b.Len() == 0 {
			b.WriteString(line)
			if !strings.HasSuffix(strings.TrimSpace(line), ":") {
				return b.String(), true
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			return b.String(), true
		}
		b.WriteByte('\n')
		b.WriteString(line)
	}
}
