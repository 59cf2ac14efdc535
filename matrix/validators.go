// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for the guard checks every operation
//     runs before touching a buffer.
//   - Return plain sentinel errors (wrapped with the validator tag) so call
//     sites can wrap uniformly with their own tag.
//
// Note:
//   - Composite validators follow a fixed order: NotNil → Live → Shape.
//   - Every validator is pure and allocates nothing on the success path.

package matrix

import (
	"fmt"
	"strings"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// matrixErrorf wraps an error with an operation tag, e.g. "Add: matrix: ...".
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateLive ensures m is non-nil and still owns its buffer.
// Returns ErrNilMatrix or ErrReleased.
func ValidateLive(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateLive", ErrNilMatrix)
	}
	if m.data == nil {
		return validatorErrorf("ValidateLive", ErrReleased)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal rows AND equal cols.
// A difference in either dimension is a mismatch.
// Assumes a and b are live (caller must ensure).
func ValidateSameShape(a, b *Matrix) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateName checks the naming contract: non-blank, at most MaxNameLen
// bytes, no NUL (the codec stores names NUL-terminated).
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return validatorErrorf("ValidateName", ErrEmptyName)
	}
	if len(name) > MaxNameLen {
		return validatorErrorf("ValidateName", ErrNameTooLong)
	}
	if strings.IndexByte(name, 0) >= 0 {
		return validatorErrorf("ValidateName", ErrInvalidName)
	}

	return nil
}

// ValidateShape checks rows>0, cols>0 and rows*cols <= MaxElements.
func ValidateShape(rows, cols uint32) error {
	if rows == 0 || cols == 0 {
		return validatorErrorf("ValidateShape", ErrInvalidDimensions)
	}
	if uint64(rows)*uint64(cols) > MaxElements {
		return validatorErrorf("ValidateShape", ErrTooLarge)
	}

	return nil
}
