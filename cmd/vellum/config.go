package main

import (
	"flag"
	"os"
)

// config holds the parsed CLI surface: no argument runs the REPL, one
// positional path argument loads and evaluates a file once. --trace
// (which also enables tracing) and --history-file layer on top.
type config struct {
	ScriptPath  string
	TraceFile   string
	HistoryFile string
	NoHistory   bool
}

func parseConfig(args []string) (*config, error) {
	fs := flag.NewFlagSet("vellum", flag.ContinueOnError)
	traceFile := fs.String("trace", "", "enable evaluation tracing, writing events to this file")
	historyFile := fs.String("history-file", defaultHistoryFile(), "REPL history file path")
	noHistory := fs.Bool("no-history", false, "disable REPL history persistence")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &config{
		TraceFile:   *traceFile,
		HistoryFile: *historyFile,
		NoHistory:   *noHistory,
	}
	if cfg.NoHistory {
		cfg.HistoryFile = ""
	}
	if fs.NArg() > 0 {
		cfg.ScriptPath = fs.Arg(0)
	}
	return cfg, nil
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return home + "/.vellum_history"
}
