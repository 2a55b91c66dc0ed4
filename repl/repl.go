/*
File   : lumen/repl/repl.go

Package repl implements Lumen's external REPL surface (spec.md §6): reads
one line, treats it as a whole program, prints inspect(result) on success or
"Error: <message>" on parse failure. Typing `exit` ends the session with
status 0.

Grounded on the teacher's repl/repl.go: same readline + fatih/color shape
(colored banner, colored error/result output, in-session line history; the
prompt is plain and history is not saved to a file),
adapted to spec.md's plain `exit` command (the teacher uses `.exit`) and its
exact print contract (no teacher-style "[RUNTIME ERROR]" panic wrapper, since
Lumen's evaluator never panics — every failure is a first-class Error value).
*/
package repl

import (
	"io"
	"strings"

	"github.com/adaeze-chen/lumen/eval"
	"github.com/adaeze-chen/lumen/object"
	"github.com/adaeze-chen/lumen/parser"
	"github.com/adaeze-chen/lumen/scope"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
  _
 | |    _   _ _ __ ___   ___ _ __
 | |   | | | | '_ ' _ \ / _ \ '_ \
 | |___| |_| | | | | | |  __/ | | |
 |_____|\__,_|_| |_| |_|\___|_| |_|
`

// Repl is a readline-backed read-eval-print session over a persistent
// Environment, so that `let` bindings survive across lines (spec.md §5).
type Repl struct {
	Version string
	Prompt  string
}

// New creates a Repl with the given version banner and prompt string.
func New(version, prompt string) *Repl {
	return &Repl{Version: version, Prompt: prompt}
}

func (r *Repl) printBanner(writer io.Writer) {
	greenColor.Fprintf(writer, "%s\n", banner)
	blueColor.Fprintln(writer, strings.Repeat("-", 50))
	yellowColor.Fprintf(writer, "Lumen %s\n", r.Version)
	cyanColor.Fprintln(writer, "Type a program and press enter. Type 'exit' to quit.")
	blueColor.Fprintln(writer, strings.Repeat("-", 50))
}

// Start runs the loop until the user types `exit` or sends EOF.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := scope.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			return
		}
		rl.SaveHistory(line)

		r.evalLine(writer, line, env)
	}
}

func (r *Repl) evalLine(writer io.Writer, line string, env *scope.Environment) {
	p := parser.New(line)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			redColor.Fprintf(writer, "Error: %s\n", msg)
		}
		return
	}

	result := eval.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintln(writer, result.Inspect())
		return
	}
	yellowColor.Fprintln(writer, result.Inspect())
}
