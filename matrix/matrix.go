// SPDX-License-Identifier: MIT

// Package matrix - row-major storage, construction & safe accessors.
//
// Purpose:
//   - Own a flat uint32 buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Make release explicit so an evicted matrix fails loudly instead of
//     silently aliasing a buffer someone else now owns.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone/Data/Load: O(r*c); Release: O(1).

package matrix

// ---------- error context tags ----------

const (
	ctxNew     = "New"
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxLoad    = "Load"
	ctxRelease = "Release"
	ctxClone   = "Clone"
)

// New creates a rows×cols zero matrix called name.
//
// Implementation:
//   - Stage 1: validate the name (ValidateName).
//   - Stage 2: validate the shape (ValidateShape).
//   - Stage 3: allocate the zero-filled buffer; ownership passes to the caller.
//
// Errors:
//   - ErrEmptyName, ErrNameTooLong, ErrInvalidName (name contract).
//   - ErrInvalidDimensions, ErrTooLarge (shape contract).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(name string, rows, cols uint32) (*Matrix, error) {
	if err := ValidateName(name); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	return &Matrix{
		name: name,
		rows: rows,
		cols: cols,
		data: make([]uint32, int(rows)*int(cols)),
	}, nil
}

// Name returns the matrix name, or "" for a nil matrix.
func (m *Matrix) Name() string {
	if m == nil {
		return ""
	}
	return m.name
}

// Rows returns the number of rows, or 0 for a nil matrix.
func (m *Matrix) Rows() uint32 {
	if m == nil {
		return 0
	}
	return m.rows
}

// Cols returns the number of columns, or 0 for a nil matrix.
func (m *Matrix) Cols() uint32 {
	if m == nil {
		return 0
	}
	return m.cols
}

// Len returns rows*cols, the number of stored elements.
func (m *Matrix) Len() int { return int(m.Rows()) * int(m.Cols()) }

// Released reports whether the buffer has been dropped. A nil matrix
// counts as released.
func (m *Matrix) Released() bool { return m == nil || m.data == nil }

// indexOf computes the flat offset for (row, col) or returns ErrOutOfRange.
func (m *Matrix) indexOf(tag string, row, col uint32) (int, error) {
	if row >= m.rows || col >= m.cols {
		return 0, matrixErrorf(tag, ErrOutOfRange)
	}

	return int(row)*int(m.cols) + int(col), nil
}

// At returns the element at (row, col).
func (m *Matrix) At(row, col uint32) (uint32, error) {
	if err := ValidateLive(m); err != nil {
		return 0, matrixErrorf(ctxAt, err)
	}
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Matrix) Set(row, col, v uint32) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(ctxSet, err)
	}
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Data returns a row-major copy of the elements.
// Mutating the result does not affect m.
func (m *Matrix) Data() []uint32 {
	if m == nil || m.data == nil {
		return nil
	}
	out := make([]uint32, len(m.data))
	copy(out, m.data)

	return out
}

// Load replaces the contents of m with data (row-major).
// len(data) must equal rows*cols; on error m is unchanged.
func (m *Matrix) Load(data []uint32) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(ctxLoad, err)
	}
	if len(data) != len(m.data) {
		return matrixErrorf(ctxLoad, ErrDimensionMismatch)
	}
	copy(m.data, data)

	return nil
}

// Clone returns an independent deep copy of m under the same name.
func (m *Matrix) Clone() (*Matrix, error) {
	if err := ValidateLive(m); err != nil {
		return nil, matrixErrorf(ctxClone, err)
	}

	return &Matrix{name: m.name, rows: m.rows, cols: m.cols, data: m.Data()}, nil
}

// Release drops the buffer. Further use of m reports ErrReleased.
// Releasing a nil or already released matrix is reported, never a panic.
func (m *Matrix) Release() error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(ctxRelease, err)
	}
	m.data = nil

	return nil
}
