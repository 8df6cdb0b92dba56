package main

import (
	"flag"
	"fmt"
	"io"
)

type config struct {
	debug      bool
	transcript string
}

// parseFlags returns flag.ErrHelp if help was requested; usage has been printed to output by then, as it has
// for any other error.
func parseFlags(args []string, output io.Writer) (*config, error) {
	var cfg config
	fs := flag.NewFlagSet("tasks", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		_, _ = fmt.Fprint(output, "Usage: tasks [-debug] [-transcript file]\n")
		fs.PrintDefaults()
	}
	fs.BoolVar(&cfg.debug, "debug", false, "log every command to standard error")
	fs.StringVar(&cfg.transcript, "transcript", "", "append a JSON line per command to `file`")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		err := fmt.Errorf("unexpected arguments: %q", fs.Args())
		_, _ = fmt.Fprintln(output, err)
		fs.Usage()
		return nil, err
	}
	return &cfg, nil
}
