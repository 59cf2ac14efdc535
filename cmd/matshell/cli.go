// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/matshell/config"
)

// ExitError is an error that carries a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// cliOptions holds the parsed command line. Only flags the user actually
// set override the loaded configuration.
type cliOptions struct {
	configPath string
	set        map[string]bool

	capacity     int
	dataDir      string
	prompt       string
	seed         int64
	logLevel     string
	logFormat    string
	noSeedMatrix bool
}

// parseArgs processes command-line arguments. It reports shouldExit for
// -h, and returns an *ExitError with code 2 for bad usage.
func parseArgs(args []string, output io.Writer) (*cliOptions, bool, error) {
	defaults := config.Default()
	opts := &cliOptions{set: make(map[string]bool)}

	flagSet := flag.NewFlagSet("matshell", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
matshell - an interactive shell for named unsigned-integer matrices.

Usage:
  matshell [options]

Commands are read from standard input, one per line; type 'help' inside
the shell for the list.

Options:
`)
		flagSet.PrintDefaults()
	}

	flagSet.StringVar(&opts.configPath, "config", "", "Path to a TOML config file. Defaults to ./"+config.DefaultFile+" when present.")
	flagSet.IntVar(&opts.capacity, "capacity", defaults.Capacity, "Number of registry slots.")
	flagSet.StringVar(&opts.dataDir, "data-dir", defaults.DataDir, "Directory 'write' saves into and relative 'read' paths resolve against.")
	flagSet.StringVar(&opts.prompt, "prompt", defaults.Prompt, "Prompt shown on interactive terminals.")
	flagSet.Int64Var(&opts.seed, "seed", defaults.Seed, "Random seed for 'random'. 0 seeds from the clock.")
	flagSet.StringVar(&opts.logLevel, "log-level", defaults.Log.Level, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.StringVar(&opts.logFormat, "log-format", defaults.Log.Format, "Log output format. Options: 'text' or 'json'.")
	flagSet.BoolVar(&opts.noSeedMatrix, "no-seed-matrix", false, "Skip creating and writing the startup matrix.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}
	flagSet.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	return opts, false, nil
}

// apply overlays the explicitly set flags onto cfg.
func (o *cliOptions) apply(cfg *config.Config) {
	if o.set["capacity"] {
		cfg.Capacity = o.capacity
	}
	if o.set["data-dir"] {
		cfg.DataDir = o.dataDir
	}
	if o.set["prompt"] {
		cfg.Prompt = o.prompt
	}
	if o.set["seed"] {
		cfg.Seed = o.seed
	}
	if o.set["log-level"] {
		cfg.Log.Level = o.logLevel
	}
	if o.set["log-format"] {
		cfg.Log.Format = o.logFormat
	}
	if o.noSeedMatrix {
		cfg.SeedMatrix.Enabled = false
	}
}
