// Completion: 100% - Utility module complete
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// cli.go - User-friendly command-line interface for bb
//
// This file implements a Go-like CLI interface with subcommands:
// - bb build <file.bb> [-o output] (compile to a .bf token file)
// - bb run <file.bb> (compile and run on the built-in tape machine)
// - bb repl (interactive compile-and-run loop)
// - bb watch <file.bb> (recompile whenever the file changes)
// - bb <file.bb> (shorthand for build)

// CommandContext holds the execution context for a CLI command
type CommandContext struct {
	Args       []string
	Verbose    bool
	UseColor   bool
	TapeSize   int
	OutputPath string
}

// usageError marks a bad invocation; main maps it to exit code 2 so
// misuse is distinguishable from failed compilations.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// RunCLI determines which command to run based on arguments
func RunCLI(ctx *CommandContext) error {
	if len(ctx.Args) == 0 {
		return cmdHelp()
	}

	subcmd := ctx.Args[0]

	switch subcmd {
	case "build":
		if len(ctx.Args) < 2 {
			return usagef("usage: bb build <file.bb> [-o output]")
		}
		return cmdBuild(ctx, ctx.Args[1:])

	case "run":
		if len(ctx.Args) < 2 {
			return usagef("usage: bb run <file.bb>")
		}
		return cmdRun(ctx, ctx.Args[1:])

	case "repl":
		return cmdRepl(ctx)

	case "watch":
		if len(ctx.Args) < 2 {
			return usagef("usage: bb watch <file.bb>")
		}
		return cmdWatch(ctx, ctx.Args[1:])

	case "help", "--help", "-h":
		return cmdHelp()

	case "version", "--version", "-V":
		fmt.Println(versionString)
		return nil

	default:
		// A .bb file is shorthand for build
		if strings.HasSuffix(subcmd, ".bb") {
			return cmdBuild(ctx, ctx.Args)
		}
		return usagef("unknown command: %s\n\nRun 'bb help' for usage information", subcmd)
	}
}

// outputFileName derives the token output path from the source path:
// prog.bb becomes prog.bf, anything else gets .bf appended.
func outputFileName(sourcePath string) string {
	if strings.HasSuffix(sourcePath, ".bb") {
		return strings.TrimSuffix(sourcePath, ".bb") + ".bf"
	}
	return sourcePath + ".bf"
}

// compileFile reads and compiles one source file, keeping "file not
// found" distinguishable from "compilation failed".
func compileFile(ctx *CommandContext, path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", path)
		}
		return "", fmt.Errorf("cannot read %s: %v", path, err)
	}

	if ctx.Verbose {
		fmt.Fprintf(os.Stderr, "Compiling %s\n", path)
	}

	return Compile(string(src))
}

// cmdBuild compiles one BrainBang source file to a token file
func cmdBuild(ctx *CommandContext, args []string) error {
	path := args[0]
	outPath := ctx.OutputPath
	for i := 1; i < len(args); i++ {
		if args[i] == "-o" && i+1 < len(args) {
			outPath = args[i+1]
			i++
		}
	}

	program, err := compileFile(ctx, path)
	if err != nil {
		return err
	}

	if outPath == "" {
		outPath = outputFileName(path)
	}

	if err := os.WriteFile(outPath, []byte(program), 0644); err != nil {
		return fmt.Errorf("cannot write %s: %v", outPath, err)
	}

	if ctx.Verbose {
		fmt.Fprintf(os.Stderr, "Wrote %d tokens to %s\n", len(program), outPath)
	}
	return nil
}

// cmdRun compiles a source file and executes it immediately
func cmdRun(ctx *CommandContext, args []string) error {
	program, err := compileFile(ctx, args[0])
	if err != nil {
		return err
	}
	return RunProgram(context.Background(), program, os.Stdin, os.Stdout, ctx.TapeSize)
}

// cmdWatch rebuilds the source file every time it changes on disk
func cmdWatch(ctx *CommandContext, args []string) error {
	path := args[0]

	rebuild := func(p string) {
		if err := cmdBuild(ctx, []string{p}); err != nil {
			printDiagnostic(ctx, err)
			return
		}
		fmt.Fprintf(os.Stderr, "Rebuilt %s\n", p)
	}

	fw, err := NewFileWatcher(path, rebuild)
	if err != nil {
		return err
	}
	defer fw.Close()

	// Initial build; report failures but keep watching.
	if err := cmdBuild(ctx, []string{path}); err != nil {
		printDiagnostic(ctx, err)
	}

	fmt.Fprintf(os.Stderr, "Watching %s (Ctrl+C to stop)\n", path)
	fw.Watch()
	return nil
}

// printDiagnostic renders a compilation error with source context, and
// anything else as a plain error line.
func printDiagnostic(ctx *CommandContext, err error) {
	var ce *CompilerError
	if errors.As(err, &ce) {
		fmt.Fprint(os.Stderr, ce.Format(ctx.UseColor))
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

func cmdHelp() error {
	fmt.Printf(`%s - BrainBang compiler

Usage:
  bb build <file.bb> [-o output]   Compile to a .bf token file
  bb run <file.bb>                 Compile and run on the built-in tape machine
  bb repl                          Start an interactive compile-and-run loop
  bb watch <file.bb>               Recompile whenever the file changes
  bb <file.bb>                     Shorthand for build
  bb version                       Print the version

Flags:
  -o <path>    Output file path (build)
  -v           Verbose output (or set BB_VERBOSE=1)
  -no-color    Disable colored diagnostics (or set NO_COLOR)
  -tape <n>    Tape size for run and repl (or set BB_TAPE_SIZE)
`, versionString)
	return nil
}
