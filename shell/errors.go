// SPDX-License-Identifier: MIT

package shell

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matshell/codec"
)

var (
	// ErrUnknownCommand indicates a verb outside the command set.
	ErrUnknownCommand = errors.New("shell: not a command in this application")
	// ErrArity indicates a wrong number of arguments for a known verb.
	ErrArity = errors.New("shell: wrong number of arguments")
	// ErrBadNumber indicates an argument that is not a base-10 uint32.
	ErrBadNumber = errors.New("shell: not an unsigned 32-bit number")
	// ErrBadFileName indicates a matrix name that cannot be used as a file
	// name inside the data directory.
	ErrBadFileName = errors.New("shell: matrix name is not a plain file name")
	// ErrNilRegistry indicates New was called without a registry.
	ErrNilRegistry = errors.New("shell: nil registry")
)

// CommandError ties a failure to the verb that produced it.
type CommandError struct {
	Verb string
	Err  error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return e.Verb + " failed: " + e.Err.Error()
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *CommandError) Unwrap() error { return e.Err }

// Describe renders err for the console. It is the only place errors are
// turned into user text; file errors lead with their Kind.
func Describe(err error) string {
	verb := ""
	var ce *CommandError
	if errors.As(err, &ce) {
		verb = ce.Verb + " failed: "
	}

	var fe *codec.Error
	if errors.As(err, &fe) {
		where := fe.Path
		if fe.Stage != "" {
			where += " at " + fe.Stage
		}
		return fmt.Sprintf("error: %s%s (%s %s: %v)", verb, fe.Kind, fe.Op, where, fe.Err)
	}
	if ce != nil {
		return "error: " + verb + ce.Err.Error()
	}

	return "error: " + err.Error()
}
