package main

import (
	"fmt"
	"os"

	"github.com/vellum-lang/vellum/internal/prelude"
	"github.com/vellum-lang/vellum/internal/reader"
	"github.com/vellum-lang/vellum/internal/repl"
)

// runFile implements the one-path-argument CLI surface: read the file
// as UTF-8 text, evaluate it once, exit 0 on success or 1 on any read
// or eval error.
func runFile(path string, cfg *config) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return 1
	}

	ev, err := prelude.NewEvaluator(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return 1
	}

	form, err := reader.Read(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return 1
	}

	if _, err := ev.Eval(form); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return 1
	}
	return 0
}

// runREPL implements the no-argument CLI surface.
func runREPL(cfg *config) int {
	ev, err := prelude.NewEvaluator(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return 1
	}

	opts := repl.Options{HistoryFile: cfg.HistoryFile, Stdout: os.Stdout}
	if err := repl.Run(ev, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return 1
	}
	return 0
}
