package shell_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matshell/matrix"
	"github.com/katalvlaran/matshell/shell"
)

func TestTokenize(t *testing.T) {
	tokens, err := shell.Tokenize(`read "my dir/a b"  x\ y 'z'`)
	require.NoError(t, err)
	require.Equal(t, []string{"read", "my dir/a b", "x y", "z"}, tokens)

	tokens, err = shell.Tokenize("  \t ")
	require.NoError(t, err)
	require.Empty(t, tokens)
}

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		line string
		want shell.Command
	}{
		{"display A", shell.Display{Matrix: "A"}},
		{"add A B C", shell.Add{Left: "A", Right: "B", Result: "C"}},
		{"duplicate A B", shell.Duplicate{Source: "A", Dest: "B"}},
		{"equal A B", shell.Equal{Left: "A", Right: "B"}},
		{"shift A l 3", shell.Shift{Matrix: "A", Dir: matrix.Left, Amount: 3}},
		{"shift A Right 31", shell.Shift{Matrix: "A", Dir: matrix.Right, Amount: 31}},
		{"read /tmp/A", shell.Read{Path: "/tmp/A"}},
		{"write A", shell.Write{Matrix: "A"}},
		{"create A 4294967295 1", shell.Create{Matrix: "A", Rows: 4294967295, Cols: 1}},
		{"random A 0 15", shell.Random{Matrix: "A", Low: 0, High: 15}},
		{"list", shell.List{}},
		{"help", shell.Help{}},
		{"exit", shell.Exit{}},
		{"quit", shell.Exit{}},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			tokens, err := shell.Tokenize(tc.line)
			require.NoError(t, err)
			got, err := shell.Parse(tokens)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	cmd, err := shell.Parse(nil)
	require.NoError(t, err)
	require.Nil(t, cmd)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		tokens []string
		target error
		msg    string
	}{
		{"Unknown", []string{"multiply", "A"}, shell.ErrUnknownCommand, `"multiply"`},
		{"CaseSensitive", []string{"Display", "A"}, shell.ErrUnknownCommand, "not a command"},
		{"TooFew", []string{"add", "A", "B"}, shell.ErrArity, "usage: add <name1> <name2> <result_name>"},
		{"TooMany", []string{"display", "A", "B"}, shell.ErrArity, "usage: display <name>"},
		{"ExitWithArgs", []string{"exit", "now"}, shell.ErrArity, "usage: exit"},
		{"Negative", []string{"create", "A", "-1", "2"}, shell.ErrBadNumber, `rows = "-1"`},
		{"Overflow", []string{"random", "A", "0", "4294967296"}, shell.ErrBadNumber, "high"},
		{"NotDecimal", []string{"shift", "A", "l", "0x10"}, shell.ErrBadNumber, "amount"},
		{"Direction", []string{"shift", "A", "up", "1"}, matrix.ErrBadDirection, "shift failed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := shell.Parse(tc.tokens)
			require.ErrorIs(t, err, tc.target)
			require.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestDescribe(t *testing.T) {
	_, err := shell.Parse([]string{"display"})
	require.Equal(t, "error: display failed: shell: wrong number of arguments: usage: display <name>", shell.Describe(err))

	_, err = shell.Parse([]string{"nope"})
	require.Equal(t, `error: shell: not a command in this application: "nope"`, shell.Describe(err))
}
