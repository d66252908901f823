// Completion: 100% - CLI entry point complete, all flags working
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/tebeka/atexit"
	"github.com/xyproto/env/v2"
)

// A tiny compiler from BrainBang, an indentation-structured instruction
// language, to the eight-token tape machine alphabet.

const versionString = "bb 1.0.0"

func main() {
	var (
		showVersion = flag.Bool("version", false, "print version and exit")
		verbose     = flag.Bool("v", env.Bool("BB_VERBOSE"), "verbose output")
		outputPath  = flag.String("o", "", "output file path")
		noColor     = flag.Bool("no-color", env.Has("NO_COLOR"), "disable colored diagnostics")
		tapeSize    = flag.Int("tape", env.Int("BB_TAPE_SIZE", defaultTapeSize), "tape size for run and repl")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(versionString)
		atexit.Exit(0)
	}

	ctx := &CommandContext{
		Args:       flag.Args(),
		Verbose:    *verbose,
		UseColor:   !*noColor,
		TapeSize:   *tapeSize,
		OutputPath: *outputPath,
	}

	if err := RunCLI(ctx); err != nil {
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(os.Stderr, err)
			atexit.Exit(2)
		}
		printDiagnostic(ctx, err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
