// SPDX-License-Identifier: MIT

package matrix

// Equal reports whether a and b hold identical elements.
//
// Implementation:
//   - Stage 1 (Validate): both live; shapes must match. Comparing matrices of
//     different shape is a caller error and reported as ErrDimensionMismatch,
//     not answered with false.
//   - Stage 2 (Execute): compare the flat buffers over a's extent.
//
// Complexity: O(r*c).
func Equal(a, b *Matrix) (bool, error) {
	if err := ValidateLive(a); err != nil {
		return false, matrixErrorf("Equal", err)
	}
	if err := ValidateLive(b); err != nil {
		return false, matrixErrorf("Equal", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("Equal", err)
	}

	n := a.Len()
	for i := 0; i < n; i++ {
		if a.data[i] != b.data[i] {
			return false, nil
		}
	}

	return true, nil
}

// Duplicate copies the elements of src into dest, which must already exist
// with the same shape, then verifies the copy with Equal.
// ErrVerifyFailed is a self-check, there is nothing to recover.
//
// Complexity: O(r*c).
func Duplicate(src, dest *Matrix) error {
	if err := ValidateLive(src); err != nil {
		return matrixErrorf("Duplicate", err)
	}
	if err := ValidateLive(dest); err != nil {
		return matrixErrorf("Duplicate", err)
	}
	if err := ValidateSameShape(src, dest); err != nil {
		return matrixErrorf("Duplicate", err)
	}

	copy(dest.data, src.data[:src.Len()])

	ok, err := Equal(src, dest)
	if err != nil {
		return matrixErrorf("Duplicate", err)
	}
	if !ok {
		return matrixErrorf("Duplicate", ErrVerifyFailed)
	}

	return nil
}
