// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matshell/matrix"
)

// MustNew allocates a named r×c matrix or fails the test.
func MustNew(t *testing.T, name string, r, c uint32) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(name, r, c)
	require.NoError(t, err)

	return m
}

// NewFilled allocates a named r×c matrix and loads data (row-major).
func NewFilled(t *testing.T, name string, r, c uint32, data []uint32) *matrix.Matrix {
	t.Helper()
	m := MustNew(t, name, r, c)
	require.NoError(t, m.Load(data))

	return m
}

// MustEqual runs matrix.Equal and fails on error.
func MustEqual(t *testing.T, a, b *matrix.Matrix) bool {
	t.Helper()
	ok, err := matrix.Equal(a, b)
	require.NoError(t, err)

	return ok
}

// seeded returns a deterministic RNG for Randomize tests.
func seeded() matrix.RandOption { return matrix.WithSeed(42) }
