// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (optionally wrapped with a call
// site tag) and tests check them via errors.Is. No operation panics on a
// user-triggered error condition.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Call sites wrap with matrixErrorf("Tag", ErrX); callers still match with
// errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil/released -> name -> shape -> argument range.

var (
	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrReleased indicates use of a matrix whose buffer was already released.
	ErrReleased = errors.New("matrix: matrix already released")

	// ErrInvalidDimensions indicates that a requested dimension is zero.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrTooLarge indicates rows*cols exceeds MaxElements.
	ErrTooLarge = errors.New("matrix: too many elements")

	// ErrEmptyName indicates an empty or whitespace-only name.
	ErrEmptyName = errors.New("matrix: name is empty")

	// ErrNameTooLong indicates a name longer than MaxNameLen bytes.
	ErrNameTooLong = errors.New("matrix: name too long")

	// ErrInvalidName indicates a name that cannot be stored NUL-terminated.
	ErrInvalidName = errors.New("matrix: name contains NUL byte")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// or a data slice whose length differs from rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrVerifyFailed indicates that a copy did not compare equal to its source.
	ErrVerifyFailed = errors.New("matrix: copy verification failed")

	// ErrZeroShift indicates a bitwise shift by zero positions.
	ErrZeroShift = errors.New("matrix: shift amount must be > 0")

	// ErrBadDirection indicates a shift direction other than left or right.
	ErrBadDirection = errors.New("matrix: shift direction must be left or right")

	// ErrInvertedRange indicates a random range whose low bound exceeds high.
	ErrInvertedRange = errors.New("matrix: low bound greater than high bound")

	// ErrNilRand indicates that no random source was supplied.
	ErrNilRand = errors.New("matrix: nil random source")
)
