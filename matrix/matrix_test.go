// SPDX-License-Identifier: MIT

package matrix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matshell/matrix"
)

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name       string
		matName    string
		rows, cols uint32
		err        error
	}{
		{"ZeroRows", "A", 0, 3, matrix.ErrInvalidDimensions},
		{"ZeroCols", "A", 3, 0, matrix.ErrInvalidDimensions},
		{"EmptyName", "", 2, 2, matrix.ErrEmptyName},
		{"BlankName", " \t\n", 2, 2, matrix.ErrEmptyName},
		{"LongName", strings.Repeat("x", matrix.MaxNameLen+1), 2, 2, matrix.ErrNameTooLong},
		{"NulName", "a\x00b", 2, 2, matrix.ErrInvalidName},
		{"TooLarge", "big", 1 << 13, 1<<11 + 1, matrix.ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.New(tc.matName, tc.rows, tc.cols)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, m)
		})
	}
}

func TestNew_NameAtLimit(t *testing.T) {
	name := strings.Repeat("n", matrix.MaxNameLen)
	m := MustNew(t, name, 1, 1)
	require.Equal(t, name, m.Name())
}

func TestNew_ZeroFilledAndEqualToItself(t *testing.T) {
	shapes := [][2]uint32{{1, 1}, {1, 7}, {7, 1}, {3, 4}, {16, 16}}
	for _, s := range shapes {
		m := MustNew(t, "z", s[0], s[1])
		require.Equal(t, s[0], m.Rows())
		require.Equal(t, s[1], m.Cols())
		require.Equal(t, int(s[0]*s[1]), m.Len())
		for _, v := range m.Data() {
			require.Zero(t, v)
		}
		require.True(t, MustEqual(t, m, m))
	}
}

func TestAtSet_RowMajorAndBounds(t *testing.T) {
	m := MustNew(t, "m", 2, 3)
	require.NoError(t, m.Set(1, 2, 9))
	require.NoError(t, m.Set(0, 1, 4))
	require.Equal(t, []uint32{0, 4, 0, 0, 0, 9}, m.Data())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, uint32(9), v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
}

func TestData_IsACopy(t *testing.T) {
	m := NewFilled(t, "m", 1, 2, []uint32{1, 2})
	d := m.Data()
	d[0] = 100
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(1), v)
}

func TestLoad_LengthMismatchLeavesMatrix(t *testing.T) {
	m := NewFilled(t, "m", 2, 2, []uint32{1, 2, 3, 4})
	require.ErrorIs(t, m.Load([]uint32{9, 9, 9}), matrix.ErrDimensionMismatch)
	require.Equal(t, []uint32{1, 2, 3, 4}, m.Data())
}

func TestClone_Independent(t *testing.T) {
	m := NewFilled(t, "m", 1, 3, []uint32{5, 6, 7})
	c, err := m.Clone()
	require.NoError(t, err)
	require.Equal(t, m.Name(), c.Name())
	require.NoError(t, c.Set(0, 0, 0))
	require.Equal(t, []uint32{5, 6, 7}, m.Data())
}

func TestRelease(t *testing.T) {
	m := MustNew(t, "m", 2, 2)
	require.NoError(t, m.Release())
	require.True(t, m.Released())

	// A second release and any further use are reported, not panics.
	require.ErrorIs(t, m.Release(), matrix.ErrReleased)
	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrReleased)
	require.ErrorIs(t, m.Shift(matrix.Left, 1), matrix.ErrReleased)
	require.Nil(t, m.Data())

	var nilM *matrix.Matrix
	require.ErrorIs(t, nilM.Release(), matrix.ErrNilMatrix)
}

func TestAccessors_NilMatrix(t *testing.T) {
	var m *matrix.Matrix
	assert.NotPanics(t, func() {
		assert.Equal(t, "", m.Name())
		assert.Zero(t, m.Rows())
		assert.Zero(t, m.Cols())
		assert.Zero(t, m.Len())
		assert.True(t, m.Released())
		assert.Nil(t, m.Data())
		assert.Equal(t, "<nil matrix>", m.String())
	})
	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDisplay_Grid(t *testing.T) {
	m := NewFilled(t, "A", 2, 3, []uint32{1, 2, 3, 40, 50, 4294967295})
	var sb strings.Builder
	require.NoError(t, m.Display(&sb))

	want := "\nMatrix Contents (A):\n" +
		"DIM = (2,3)\n" +
		"1 2 3 \n" +
		"40 50 4294967295 \n" +
		"\n"
	assert.Equal(t, want, sb.String())
	assert.Equal(t, want, m.String())
}

func TestDisplay_Released(t *testing.T) {
	m := MustNew(t, "gone", 1, 1)
	require.NoError(t, m.Release())
	var sb strings.Builder
	require.ErrorIs(t, m.Display(&sb), matrix.ErrReleased)
	assert.Equal(t, "<released matrix gone>", m.String())
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]matrix.Direction{
		"l": matrix.Left, "LEFT": matrix.Left, "r": matrix.Right, "Right": matrix.Right,
	} {
		got, err := matrix.ParseDirection(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := matrix.ParseDirection("up")
	require.ErrorIs(t, err, matrix.ErrBadDirection)
	require.Equal(t, "left", matrix.Left.String())
	require.Equal(t, "right", matrix.Right.String())
}
