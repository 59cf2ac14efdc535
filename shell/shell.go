// SPDX-License-Identifier: MIT

// Package shell parses matshell command lines and executes them against a
// registry.
//
// Every command looks up and validates its inputs, and computes any new
// matrix, before it touches the registry. A failed command therefore leaves
// the registry exactly as it found it.
package shell

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/matshell/codec"
	"github.com/katalvlaran/matshell/matrix"
	"github.com/katalvlaran/matshell/registry"
)

// Shell executes Commands. It is not safe for concurrent use.
type Shell struct {
	reg     *registry.Registry
	rng     *rand.Rand
	out     io.Writer
	logger  *slog.Logger
	dataDir string
	prompt  string
}

// Option configures a Shell.
type Option func(*Shell)

// WithOutput sets the console writer. Panics on nil.
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic("shell: WithOutput(nil)")
	}
	return func(s *Shell) { s.out = w }
}

// WithLogger sets the diagnostic logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("shell: WithLogger(nil)")
	}
	return func(s *Shell) { s.logger = l }
}

// WithRand sets the generator used by random. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("shell: WithRand(nil)")
	}
	return func(s *Shell) { s.rng = r }
}

// WithDataDir sets the directory write saves into and relative read paths
// resolve against.
func WithDataDir(dir string) Option {
	return func(s *Shell) { s.dataDir = dir }
}

// WithPrompt sets the prompt shown by interactive terminals.
func WithPrompt(p string) Option {
	return func(s *Shell) { s.prompt = p }
}

// New returns a Shell over reg. Defaults: output discarded, logs discarded,
// a clock-seeded generator, the current directory, prompt "> ".
func New(reg *registry.Registry, opts ...Option) (*Shell, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	s := &Shell{
		reg:     reg,
		out:     io.Discard,
		dataDir: ".",
		prompt:  "> ",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = matrix.NewRand()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return s, nil
}

// Registry returns the registry the shell operates on.
func (s *Shell) Registry() *registry.Registry { return s.reg }

// Prompt returns the configured prompt.
func (s *Shell) Prompt() string { return s.prompt }

// ExecLine tokenizes, parses and executes one line. done reports an exit
// command. Blank lines do nothing.
func (s *Shell) ExecLine(line string) (done bool, err error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return false, err
	}
	cmd, err := Parse(tokens)
	if err != nil || cmd == nil {
		return false, err
	}
	if _, ok := cmd.(Exit); ok {
		return true, nil
	}

	return false, s.Execute(cmd)
}

// Execute runs cmd. Errors come back wrapped in *CommandError.
func (s *Shell) Execute(cmd Command) error {
	if cmd == nil {
		return nil
	}
	if err := s.execute(cmd); err != nil {
		s.logger.Debug("command failed", "verb", cmd.Verb(), "err", err)
		return &CommandError{Verb: cmd.Verb(), Err: err}
	}
	s.logger.Debug("command done", "verb", cmd.Verb())

	return nil
}

func (s *Shell) execute(cmd Command) error {
	switch c := cmd.(type) {
	case Display:
		m, err := s.reg.Lookup(c.Matrix)
		if err != nil {
			return err
		}
		return m.Display(s.out)

	case Create:
		m, err := matrix.New(c.Matrix, c.Rows, c.Cols)
		if err != nil {
			return err
		}
		if err = s.insert(m); err != nil {
			return err
		}
		s.printf("Created Matrix (%s,%d,%d)\n", m.Name(), m.Rows(), m.Cols())

	case Random:
		m, err := s.reg.Lookup(c.Matrix)
		if err != nil {
			return err
		}
		if err = m.Randomize(s.rng, c.Low, c.High); err != nil {
			return err
		}
		s.printf("Matrix (%s) is randomized between %d %d\n", m.Name(), c.Low, c.High)

	case Shift:
		m, err := s.reg.Lookup(c.Matrix)
		if err != nil {
			return err
		}
		if err = m.Shift(c.Dir, c.Amount); err != nil {
			return err
		}
		s.printf("Matrix (%s) has been shifted %s by %d\n", m.Name(), c.Dir, c.Amount)

	case Add:
		a, err := s.reg.Lookup(c.Left)
		if err != nil {
			return err
		}
		b, err := s.reg.Lookup(c.Right)
		if err != nil {
			return err
		}
		sum, err := matrix.New(c.Result, a.Rows(), a.Cols())
		if err != nil {
			return err
		}
		if err = matrix.Add(a, b, sum); err != nil {
			return err
		}
		if err = s.insert(sum); err != nil {
			return err
		}
		s.printf("Matrix (%s) = %s + %s\n", sum.Name(), a.Name(), b.Name())

	case Duplicate:
		src, err := s.reg.Lookup(c.Source)
		if err != nil {
			return err
		}
		dest, err := matrix.New(c.Dest, src.Rows(), src.Cols())
		if err != nil {
			return err
		}
		if err = matrix.Duplicate(src, dest); err != nil {
			return err
		}
		if err = s.insert(dest); err != nil {
			return err
		}
		s.printf("Duplication of %s into %s finished\n", src.Name(), dest.Name())

	case Equal:
		a, err := s.reg.Lookup(c.Left)
		if err != nil {
			return err
		}
		b, err := s.reg.Lookup(c.Right)
		if err != nil {
			return err
		}
		same, err := matrix.Equal(a, b)
		if err != nil {
			return err
		}
		if same {
			s.printf("SAME DATA IN BOTH\n")
		} else {
			s.printf("DIFFERENT DATA IN BOTH\n")
		}

	case Read:
		path := s.resolve(c.Path)
		m, err := codec.ReadFile(path)
		if err != nil {
			return err
		}
		if err = s.insert(m); err != nil {
			return err
		}
		s.printf("Matrix (%s) is read from %s\n", m.Name(), path)

	case Write:
		m, err := s.reg.Lookup(c.Matrix)
		if err != nil {
			return err
		}
		path, err := s.fileFor(m.Name())
		if err != nil {
			return err
		}
		if err = codec.WriteFile(path, m); err != nil {
			return err
		}
		s.printf("Matrix (%s) is written to %s\n", m.Name(), path)

	case List:
		entries := s.reg.Entries()
		if len(entries) == 0 {
			s.printf("No matrices\n")
			return nil
		}
		for _, e := range entries {
			s.printf("slot %d: %s (%d,%d)\n", e.Slot, e.Name, e.Rows, e.Cols)
		}

	case Help:
		s.printf("%s", HelpText())

	case Exit:
		// handled by ExecLine and Run

	default:
		return fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}

	return nil
}

// insert places a freshly built matrix in the registry and logs evictions.
func (s *Shell) insert(m *matrix.Matrix) error {
	slot, evicted, err := s.reg.Insert(m)
	if err != nil {
		return err
	}
	if evicted != "" {
		s.logger.Info("slot reused", "slot", slot, "evicted", evicted, "by", m.Name())
	}

	return nil
}

// resolve anchors relative paths at the data directory.
func (s *Shell) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.dataDir, path)
}

// fileFor maps a matrix name to its file in the data directory. Names that
// would escape the directory are refused.
func (s *Shell) fileFor(name string) (string, error) {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrBadFileName, name)
	}
	return filepath.Join(s.dataDir, name), nil
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// HelpText lists every command with its usage.
func HelpText() string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, g := range grammars {
		fmt.Fprintf(&b, "  %-34s %s\n", g.Usage(), g.about)
	}
	b.WriteString("  quit is accepted for exit\n")

	return b.String()
}
