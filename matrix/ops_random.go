// SPDX-License-Identifier: MIT

package matrix

import "math/rand"

// Randomize fills m with values drawn uniformly from [low, high] inclusive.
//
// Behavior highlights:
//   - low > high is rejected with ErrInvertedRange before any write.
//   - low == high fills every element with low.
//   - The span high-low+1 can reach 2^32, so draws use Int63n.
//
// Complexity: O(r*c).
func (m *Matrix) Randomize(rng *rand.Rand, low, high uint32) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf("Randomize", err)
	}
	if rng == nil {
		return matrixErrorf("Randomize", ErrNilRand)
	}
	if low > high {
		return matrixErrorf("Randomize", ErrInvertedRange)
	}

	span := int64(high) - int64(low) + 1
	for i := range m.data {
		m.data[i] = low + uint32(rng.Int63n(span))
	}

	return nil
}
