// Command vellum is the CLI front-end for the interpreter: no
// argument drops into a REPL; one path argument loads, evaluates, and
// exits.
package main

import (
	"fmt"
	"os"

	"github.com/vellum-lang/vellum/internal/trace"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(2)
	}

	trace.Init(cfg.TraceFile)
	if cfg.TraceFile != "" {
		trace.Global.Enable()
	}
	defer trace.Global.Close()

	var code int
	if cfg.ScriptPath != "" {
		code = runFile(cfg.ScriptPath, cfg)
	} else {
		code = runREPL(cfg)
	}
	os.Exit(code)
}
