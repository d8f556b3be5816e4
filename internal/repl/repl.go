// Package repl implements the interactive read-eval-print loop:
// prompt `> `, one line per form, errors printed and swallowed so the
// loop continues with the same accumulated definitions. Line editing
// and history are provided by github.com/chzyer/readline.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/vellum-lang/vellum/internal/eval"
	"github.com/vellum-lang/vellum/internal/reader"
	"github.com/vellum-lang/vellum/internal/trace"
)

const prompt = "> "

// Options configures a REPL session.
type Options struct {
	HistoryFile string // empty disables persistent history
	Stdout      io.Writer
}

// lineReader is the seam Run reads lines through — satisfied by
// *readline.Instance, and by a fake in tests, so the interrupt/EOF
// exit paths can be exercised without a real terminal.
type lineReader interface {
	Readline() (string, error)
}

// Run drives an interactive session against evaluator until
// end-of-input or an interrupt; either one exits the loop cleanly,
// per spec.md §6 and the `Interrupted => break` / `Eof => break`
// symmetry in original_source's run_repl. Evaluation errors are
// printed and do not terminate the loop.
//
// Two bare commands are recognized before a line is handed to the
// reader: ":trace on" and ":trace off", which toggle the global trace
// session without affecting the accumulated definitions.
func Run(ev *eval.Evaluator, opts Options) error {
	rlConfig := &readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}
	if opts.HistoryFile != "" {
		rlConfig.HistoryFile = opts.HistoryFile
	}

	rl, err := readline.NewEx(rlConfig)
	if err != nil {
		return err
	}
	defer rl.Close()

	out := opts.Stdout
	if out == nil {
		out = rl.Stdout()
	}

	return runLoop(ev, rl, out)
}

// runLoop is Run's body, taking the line source as an interface so
// tests can drive it with a fake.
func runLoop(ev *eval.Evaluator, rl lineReader, out io.Writer) error {
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		if handled := handleCommand(line, out); handled {
			continue
		}

		form, err := reader.Read(line)
		if err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
			continue
		}
		result, err := ev.Eval(form)
		if err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
			continue
		}
		fmt.Fprintln(out, result.String())
	}
}

// handleCommand recognizes the bare ":trace on" / ":trace off"
// commands, reporting true if line was one of them.
func handleCommand(line string, out io.Writer) bool {
	switch strings.TrimSpace(line) {
	case ":trace on":
		if trace.Global == nil {
			trace.Init("")
		}
		trace.Global.Enable()
		fmt.Fprintln(out, "trace enabled")
		return true
	case ":trace off":
		if trace.Global != nil {
			trace.Global.Disable()
		}
		fmt.Fprintln(out, "trace disabled")
		return true
	default:
		return false
	}
}
