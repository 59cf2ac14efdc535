// SPDX-License-Identifier: MIT

package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/katalvlaran/matshell/codec"
	"github.com/katalvlaran/matshell/matrix"
)

// LineReader yields one command line per call and io.EOF at end of input.
type LineReader interface {
	ReadLine() (string, error)
}

// scanReader reads newline-terminated lines from a pipe or file.
type scanReader struct {
	sc *bufio.Scanner
}

// NewLineReader reads lines from r without echo or editing.
func NewLineReader(r io.Reader) LineReader {
	return &scanReader{sc: bufio.NewScanner(r)}
}

func (r *scanReader) ReadLine() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Terminal is a raw-mode terminal with line editing and history. It is both
// the LineReader and the console writer of an interactive session.
//
// Raw mode turns off signal generation, so Ctrl-C arrives as a keystroke
// rather than SIGINT. ReadLine reports it, like Ctrl-D on an empty line, as
// io.EOF, which ends Run the same way as end of input.
type Terminal struct {
	fd    int
	state *term.State
	t     *term.Terminal
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool { return term.IsTerminal(fd) }

// OpenTerminal puts fd into raw mode and edits lines read from rw.
// Close restores the previous mode.
func OpenTerminal(fd int, rw io.ReadWriter, prompt string) (*Terminal, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("shell: raw mode: %w", err)
	}
	t := newTerminal(rw, prompt)
	t.fd, t.state = fd, state

	return t, nil
}

// newTerminal edits lines from rw without touching any terminal mode.
func newTerminal(rw io.ReadWriter, prompt string) *Terminal {
	return &Terminal{fd: -1, t: term.NewTerminal(rw, prompt)}
}

// ReadLine returns the next edited line. Ctrl-C, and Ctrl-D on an empty
// line, yield io.EOF.
func (t *Terminal) ReadLine() (string, error) { return t.t.ReadLine() }

// Write prints above the prompt, translating newlines for raw mode.
func (t *Terminal) Write(p []byte) (int, error) { return t.t.Write(p) }

// Close restores the terminal.
func (t *Terminal) Close() error {
	if t.state == nil {
		return nil
	}
	return term.Restore(t.fd, t.state)
}

// Run reads and executes lines until exit, end of input or ctx is done.
// Command errors are printed and the loop continues; only a read failure
// or ctx cancellation is returned.
func (s *Shell) Run(ctx context.Context, lines LineReader) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := lines.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("shell: read line: %w", err)
		}

		done, err := s.ExecLine(line)
		if err != nil {
			fmt.Fprintln(s.out, Describe(err))
		}
		if done {
			return nil
		}
	}
}

// SeedSpec describes the matrix prepared before the first prompt.
type SeedSpec struct {
	Name       string
	Rows, Cols uint32
	Low, High  uint32
}

// Seed creates spec's matrix, fills it from [Low, High], writes it to the
// data directory and inserts it. Nothing is inserted if any step fails.
func (s *Shell) Seed(spec SeedSpec) error {
	m, err := matrix.New(spec.Name, spec.Rows, spec.Cols)
	if err != nil {
		return fmt.Errorf("shell: seed: %w", err)
	}
	if err = m.Randomize(s.rng, spec.Low, spec.High); err != nil {
		return fmt.Errorf("shell: seed: %w", err)
	}
	path, err := s.fileFor(m.Name())
	if err != nil {
		return fmt.Errorf("shell: seed: %w", err)
	}
	if err = codec.WriteFile(path, m); err != nil {
		return fmt.Errorf("shell: seed: %w", err)
	}
	if err = s.insert(m); err != nil {
		return fmt.Errorf("shell: seed: %w", err)
	}
	s.logger.Info("seed matrix ready", "name", m.Name(), "rows", m.Rows(), "cols", m.Cols(), "path", path)

	return nil
}
