/*
File   : lumen/cmd/lumen/main.go

Package main is the entry point for the Lumen interpreter. It provides two
modes of operation:

 1. REPL mode (default): interactive read-eval-print loop (spec.md §6).
 2. File mode: parse and evaluate a single source file, printing the final
    result the same way the REPL would.

Grounded on the teacher's main/main.go: same --help/--version/file/REPL
dispatch shape and colored CLI output, with the teacher's server/TCP mode
dropped (spec.md's external interfaces are REPL-only; no network).
*/
package main

import (
	"fmt"
	"os"

	"github.com/adaeze-chen/lumen/eval"
	"github.com/adaeze-chen/lumen/object"
	"github.com/adaeze-chen/lumen/parser"
	"github.com/adaeze-chen/lumen/repl"
	"github.com/adaeze-chen/lumen/scope"
	"github.com/fatih/color"
)

const (
	version = "v0.1.0"
	prompt  = "lumen >> "
)

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		default:
			runFile(arg)
			return
		}
	}

	repl.New(version, prompt).Start(os.Stdout)
}

func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "lumen: %s\n", err)
		os.Exit(1)
	}

	p := parser.New(string(src))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			redColor.Fprintf(os.Stderr, "Error: %s\n", msg)
		}
		os.Exit(1)
	}

	result := eval.Eval(program, scope.New())
	if result == nil {
		return
	}
	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintln(os.Stdout, result.Inspect())
		os.Exit(1)
	}
	yellowColor.Fprintln(os.Stdout, result.Inspect())
}

func showHelp() {
	cyanColor.Println("Lumen - a small dynamically-typed interpreted language")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  lumen                 Start the interactive REPL")
	fmt.Println("  lumen <path>          Evaluate a Lumen source file")
	fmt.Println("  lumen --help          Show this help message")
	fmt.Println("  lumen --version       Show version information")
}

func showVersion() {
	fmt.Printf("Lumen %s\n", version)
}
