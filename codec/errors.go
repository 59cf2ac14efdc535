// SPDX-License-Identifier: MIT
// Package codec: sentinel errors and the structured I/O error.
//
// Every failure leaving this package is a *Error carrying a Kind. The
// kinds exist only for diagnostics; to the caller every kind is the same
// single failure, and nothing here retries.

package codec

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"syscall"
)

var (
	// ErrNameLength indicates a stored name length of 0 or above matrix.MaxNameLen+1.
	ErrNameLength = errors.New("codec: name length out of range")

	// ErrUnterminatedName indicates a stored name whose last byte is not NUL.
	ErrUnterminatedName = errors.New("codec: name not NUL-terminated")
)

// Kind classifies a codec failure for reporting.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNotFound
	KindPermission
	KindExists
	KindBadDescriptor
	KindShortRead
	KindShortWrite
	KindFormat
)

var kindNames = [...]string{
	KindUnknown:       "i/o error",
	KindNotFound:      "file not found",
	KindPermission:    "permission denied",
	KindExists:        "file already exists",
	KindBadDescriptor: "bad file descriptor",
	KindShortRead:     "short read",
	KindShortWrite:    "short write",
	KindFormat:        "malformed matrix file",
}

// String returns a human-readable label for k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindUnknown]
}

// Error describes a failed codec operation.
//   - Op is the operation: "open", "read", "write", "close", "encode", "decode".
//   - Path is empty for stream operations.
//   - Stage names the record field being processed, when known.
type Error struct {
	Op    string
	Path  string
	Stage string
	Kind  Kind
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := "codec: " + e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Stage != "" {
		msg += " (" + e.Stage + ")"
	}

	return fmt.Sprintf("%s: %s: %v", msg, e.Kind, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of the first *Error in err's chain, or
// KindUnknown when there is none.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

// classify maps an OS or stream error onto a Kind.
func classify(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, fs.ErrExist):
		return KindExists
	case errors.Is(err, fs.ErrClosed), errors.Is(err, syscall.EBADF):
		return KindBadDescriptor
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return KindShortRead
	case errors.Is(err, io.ErrShortWrite):
		return KindShortWrite
	default:
		return KindUnknown
	}
}

// ioError builds an *Error whose Kind is derived from err.
func ioError(op, path, stage string, err error) *Error {
	return &Error{Op: op, Path: path, Stage: stage, Kind: classify(err), Err: err}
}

// formatError builds a KindFormat *Error.
func formatError(op, path, stage string, err error) *Error {
	return &Error{Op: op, Path: path, Stage: stage, Kind: KindFormat, Err: err}
}
