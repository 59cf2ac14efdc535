// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtHeader = "\nMatrix Contents (%s):\n"
	_fmtDim    = "DIM = (%d,%d)\n"
	_fmtSep    = " "
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// Display writes the display grid of m to w:
//
//	<blank line>
//	Matrix Contents (name):
//	DIM = (rows,cols)
//	v v v
//	...
//	<blank line>
//
// Every value is followed by a single space, including the last in a row.
func (m *Matrix) Display(w io.Writer) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf("Display", err)
	}
	_, err := io.WriteString(w, m.String())

	return err
}

// String renders the display grid. Nil and released matrices render a
// short marker instead of failing.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil matrix>"
	}
	if m.data == nil {
		return fmt.Sprintf("<released matrix %s>", m.name)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, _fmtHeader, m.name)
	fmt.Fprintf(&sb, _fmtDim, m.rows, m.cols)
	c := int(m.cols)
	for i := 0; i < int(m.rows); i++ {
		base := i * c
		for j := 0; j < c; j++ {
			sb.WriteString(strconv.FormatUint(uint64(m.data[base+j]), 10))
			sb.WriteString(_fmtSep)
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	return sb.String()
}
