// SPDX-License-Identifier: MIT

// Command matshell is an interactive shell over a fixed-capacity registry of
// named uint32 matrices.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/matshell/config"
	"github.com/katalvlaran/matshell/matrix"
	"github.com/katalvlaran/matshell/registry"
	"github.com/katalvlaran/matshell/shell"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run wires configuration, logging, the registry and the shell, then reads
// commands until exit or end of input. Console output goes to stdout,
// diagnostics to stderr. ctx is cancelled by SIGINT when input is piped; on
// a terminal in raw mode Ctrl-C is read as a key and ends the session
// through the line editor instead.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, shouldExit, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	opts.apply(cfg)
	if err = cfg.Validate(); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	logger := cfg.Logger(stderr)
	logger.Debug("configuration resolved", "capacity", cfg.Capacity, "data_dir", cfg.DataDir, "seed", cfg.Seed)

	reg, err := registry.New(cfg.Capacity, registry.WithLogger(logger))
	if err != nil {
		return err
	}
	defer func() {
		n := reg.DestroyAll()
		logger.Debug("registry released", "matrices", n)
	}()

	var randOpts []matrix.RandOption
	if cfg.Seed != 0 {
		randOpts = append(randOpts, matrix.WithSeed(cfg.Seed))
	}

	lines, out, closeConsole, err := openConsole(stdin, stdout, cfg.Prompt)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeConsole(); cerr != nil {
			logger.Warn("restoring terminal failed", "err", cerr)
		}
	}()

	sh, err := shell.New(reg,
		shell.WithOutput(out),
		shell.WithLogger(logger),
		shell.WithRand(matrix.NewRand(randOpts...)),
		shell.WithDataDir(cfg.DataDir),
		shell.WithPrompt(cfg.Prompt),
	)
	if err != nil {
		return err
	}

	if cfg.SeedMatrix.Enabled {
		sm := cfg.SeedMatrix
		err = sh.Seed(shell.SeedSpec{Name: sm.Name, Rows: sm.Rows, Cols: sm.Cols, Low: sm.Low, High: sm.High})
		if err != nil {
			return errors.New(shell.Describe(err))
		}
	}

	if _, interactive := out.(*shell.Terminal); interactive {
		fmt.Fprintf(out, "matshell: %d slots, files in %s. Type 'help' for commands, 'exit' to quit.\n", cfg.Capacity, cfg.DataDir)
	}

	return sh.Run(ctx, lines)
}

// openConsole uses line editing when stdin and stdout are both terminals
// and plain line reading otherwise.
func openConsole(stdin io.Reader, stdout io.Writer, prompt string) (shell.LineReader, io.Writer, func() error, error) {
	inFile, inOK := stdin.(*os.File)
	outFile, outOK := stdout.(*os.File)
	if inOK && outOK && shell.IsTerminal(int(inFile.Fd())) && shell.IsTerminal(int(outFile.Fd())) {
		rw := struct {
			io.Reader
			io.Writer
		}{stdin, stdout}
		t, err := shell.OpenTerminal(int(inFile.Fd()), rw, prompt)
		if err != nil {
			return nil, nil, nil, err
		}
		return t, t, t.Close, nil
	}

	return shell.NewLineReader(stdin), stdout, func() error { return nil }, nil
}
