// SPDX-License-Identifier: MIT

// Package matrix: domain types and limits.
// This file contains ONLY the Matrix type, the shift Direction and the
// package limits. Errors live in errors.go, validation in validators.go.
package matrix

import "strings"

const (
	// MaxNameLen is the longest name in bytes. The on-disk form adds a NUL,
	// so a stored name never needs more than MaxNameLen+1 bytes.
	MaxNameLen = 49

	// MaxElements caps rows*cols. Matrices are small and dense; the cap keeps
	// a corrupt file header from requesting an absurd allocation.
	MaxElements = 1 << 24
)

// Matrix is a named, dense, row-major matrix of uint32 values.
//   - rows,cols are fixed at construction (both > 0).
//   - data is a flat buffer of length rows*cols (offset = i*cols + j).
//   - data == nil marks a released matrix.
//
// A Matrix is not safe for concurrent mutation.
type Matrix struct {
	name string
	rows uint32
	cols uint32
	data []uint32
}

// Direction selects the bitwise shift direction.
type Direction uint8

const (
	// Left shifts every element towards the most significant bit.
	Left Direction = iota + 1
	// Right shifts every element towards the least significant bit (logical, zero fill).
	Right
)

// String returns "left" or "right".
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps "l", "left", "r", "right" (any case) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "l", "left":
		return Left, nil
	case "r", "right":
		return Right, nil
	default:
		return 0, matrixErrorf("ParseDirection", ErrBadDirection)
	}
}
