// Package matrix provides the named, dense uint32 matrix managed by matshell.
//
// The matrix package provides:
//
//   - Matrix, a row-major buffer with a name and fixed dimensions, created
//     only through New so a zero-sized or unnamed matrix never exists.
//   - In-place transforms: Shift (logical bit shift), Randomize (uniform
//     fill), Load (bulk replace).
//   - Comparisons and copies with strict shape contracts: Equal, Duplicate,
//     Add. Mismatched shapes are reported, never silently tolerated.
//   - Explicit Release so an evicted matrix fails loudly on reuse.
//
// All failures are sentinel errors from errors.go; match them with
// errors.Is. Nothing here is safe for concurrent mutation.
package matrix
