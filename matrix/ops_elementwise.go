// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - In-place and into-destination element-wise kernels: Shift and Add.
//   - All loops run flat over the row-major buffer (0..n-1), deterministic.
//
// Determinism & Performance:
//   - No allocation; O(r*c) time.
//   - Unsigned arithmetic: Add wraps modulo 2^32, Right is a logical shift.

package matrix

// Shift moves every element of m by amount bits in direction dir.
//
// Behavior highlights:
//   - amount == 0 is rejected with ErrZeroShift; m is untouched.
//   - Bits shifted out are lost; Left then Right restores m only when no set
//     bit crossed the edge.
//   - amount >= 32 clears every element (Go defines over-wide shifts as 0).
//
// Complexity: O(r*c).
func (m *Matrix) Shift(dir Direction, amount uint32) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf("Shift", err)
	}
	if amount == 0 {
		return matrixErrorf("Shift", ErrZeroShift)
	}

	switch dir {
	case Left:
		for i := range m.data {
			m.data[i] <<= amount
		}
	case Right:
		for i := range m.data {
			m.data[i] >>= amount
		}
	default:
		return matrixErrorf("Shift", ErrBadDirection)
	}

	return nil
}

// Add writes the element-wise sum a+b into into.
//
// Behavior highlights:
//   - a and b must agree in rows AND in cols; a difference in either is
//     ErrDimensionMismatch.
//   - into must have the same shape as a. It may alias a or b.
//   - Overflow wraps (uint32 arithmetic), no error.
//
// Complexity: O(r*c).
func Add(a, b, into *Matrix) error {
	for _, m := range [...]*Matrix{a, b, into} {
		if err := ValidateLive(m); err != nil {
			return matrixErrorf("Add", err)
		}
	}
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf("Add", err)
	}
	if err := ValidateSameShape(a, into); err != nil {
		return matrixErrorf("Add", err)
	}

	for i := range a.data {
		into.data[i] = a.data[i] + b.data[i]
	}

	return nil
}
