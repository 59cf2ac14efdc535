// SPDX-License-Identifier: MIT

package shell

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/matshell/matrix"
)

// Command is a parsed, arity-checked command line. The concrete types
// below form a closed set; Execute switches on them.
type Command interface {
	Verb() string
}

type (
	// Display prints a matrix grid.
	Display struct{ Matrix string }
	// Add stores Left+Right in a new matrix named Result.
	Add struct{ Left, Right, Result string }
	// Duplicate copies Source into a new matrix named Dest.
	Duplicate struct{ Source, Dest string }
	// Equal compares two matrices of the same shape.
	Equal struct{ Left, Right string }
	// Shift bit-shifts every element of Matrix.
	Shift struct {
		Matrix string
		Dir    matrix.Direction
		Amount uint32
	}
	// Read loads a matrix file into the registry.
	Read struct{ Path string }
	// Write saves a matrix to <data_dir>/<name>.
	Write struct{ Matrix string }
	// Create makes a zero matrix.
	Create struct {
		Matrix     string
		Rows, Cols uint32
	}
	// Random fills a matrix uniformly from [Low, High].
	Random struct {
		Matrix    string
		Low, High uint32
	}
	// List prints the occupied slots.
	List struct{}
	// Help prints the command summary.
	Help struct{}
	// Exit ends the session.
	Exit struct{}
)

func (Display) Verb() string   { return "display" }
func (Add) Verb() string       { return "add" }
func (Duplicate) Verb() string { return "duplicate" }
func (Equal) Verb() string     { return "equal" }
func (Shift) Verb() string     { return "shift" }
func (Read) Verb() string      { return "read" }
func (Write) Verb() string     { return "write" }
func (Create) Verb() string    { return "create" }
func (Random) Verb() string    { return "random" }
func (List) Verb() string      { return "list" }
func (Help) Verb() string      { return "help" }
func (Exit) Verb() string      { return "exit" }

// grammar describes one verb: its argument names, a summary and the
// constructor that runs once arity is known to be right.
type grammar struct {
	verb  string
	args  []string
	about string
	build func(args []string) (Command, error)
}

// Usage returns "verb <arg> <arg>".
func (g grammar) Usage() string {
	u := g.verb
	for _, a := range g.args {
		u += " <" + a + ">"
	}
	return u
}

// grammars is ordered as printed by help.
var grammars = []grammar{
	{"create", []string{"name", "rows", "cols"}, "create a zero matrix", func(a []string) (Command, error) {
		rows, err := parseUint32("rows", a[1])
		if err != nil {
			return nil, err
		}
		cols, err := parseUint32("cols", a[2])
		if err != nil {
			return nil, err
		}
		return Create{Matrix: a[0], Rows: rows, Cols: cols}, nil
	}},
	{"display", []string{"name"}, "print a matrix", func(a []string) (Command, error) {
		return Display{Matrix: a[0]}, nil
	}},
	{"random", []string{"name", "low", "high"}, "fill with uniform values in [low, high]", func(a []string) (Command, error) {
		low, err := parseUint32("low", a[1])
		if err != nil {
			return nil, err
		}
		high, err := parseUint32("high", a[2])
		if err != nil {
			return nil, err
		}
		return Random{Matrix: a[0], Low: low, High: high}, nil
	}},
	{"shift", []string{"name", "l|r", "amount"}, "bit-shift every element", func(a []string) (Command, error) {
		dir, err := matrix.ParseDirection(a[1])
		if err != nil {
			return nil, err
		}
		amount, err := parseUint32("amount", a[2])
		if err != nil {
			return nil, err
		}
		return Shift{Matrix: a[0], Dir: dir, Amount: amount}, nil
	}},
	{"add", []string{"name1", "name2", "result_name"}, "add two matrices into a new one", func(a []string) (Command, error) {
		return Add{Left: a[0], Right: a[1], Result: a[2]}, nil
	}},
	{"duplicate", []string{"name", "new_name"}, "copy a matrix under a new name", func(a []string) (Command, error) {
		return Duplicate{Source: a[0], Dest: a[1]}, nil
	}},
	{"equal", []string{"name1", "name2"}, "compare two matrices", func(a []string) (Command, error) {
		return Equal{Left: a[0], Right: a[1]}, nil
	}},
	{"read", []string{"path"}, "load a matrix file", func(a []string) (Command, error) {
		return Read{Path: a[0]}, nil
	}},
	{"write", []string{"name"}, "save a matrix to a file named after it", func(a []string) (Command, error) {
		return Write{Matrix: a[0]}, nil
	}},
	{"list", nil, "show occupied slots", func([]string) (Command, error) { return List{}, nil }},
	{"help", nil, "show this summary", func([]string) (Command, error) { return Help{}, nil }},
	{"exit", nil, "leave the shell", func([]string) (Command, error) { return Exit{}, nil }},
}

// aliases maps alternative spellings onto a verb.
var aliases = map[string]string{"quit": "exit"}

func lookupGrammar(verb string) (grammar, bool) {
	if v, ok := aliases[verb]; ok {
		verb = v
	}
	for _, g := range grammars {
		if g.verb == verb {
			return g, true
		}
	}
	return grammar{}, false
}

// Parse turns tokens into a Command. An empty token list yields (nil, nil).
func Parse(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	g, ok := lookupGrammar(tokens[0])
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, tokens[0])
	}
	args := tokens[1:]
	if len(args) != len(g.args) {
		return nil, &CommandError{
			Verb: g.verb,
			Err:  fmt.Errorf("%w: usage: %s", ErrArity, g.Usage()),
		}
	}
	cmd, err := g.build(args)
	if err != nil {
		return nil, &CommandError{Verb: g.verb, Err: err}
	}

	return cmd, nil
}

func parseUint32(arg, s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s = %q", ErrBadNumber, arg, s)
	}
	return uint32(v), nil
}
