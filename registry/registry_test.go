package registry_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matshell/matrix"
	"github.com/katalvlaran/matshell/registry"
)

func newMatrix(t *testing.T, name string) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(name, 2, 2)
	require.NoError(t, err)
	return m
}

func TestNew_Capacity(t *testing.T) {
	_, err := registry.New(-1)
	require.ErrorIs(t, err, registry.ErrBadCapacity)

	r, err := registry.New(0)
	require.NoError(t, err)
	_, _, err = r.Insert(newMatrix(t, "a"))
	require.ErrorIs(t, err, registry.ErrNoCapacity)
	require.Zero(t, r.Counter())
}

func TestInsert_Rejects(t *testing.T) {
	r, err := registry.New(3)
	require.NoError(t, err)

	_, _, err = r.Insert(nil)
	require.ErrorIs(t, err, registry.ErrNilMatrix)

	released := newMatrix(t, "gone")
	require.NoError(t, released.Release())
	_, _, err = r.Insert(released)
	require.ErrorIs(t, err, matrix.ErrReleased)

	m := newMatrix(t, "a")
	_, _, err = r.Insert(m)
	require.NoError(t, err)
	_, _, err = r.Insert(m)
	require.ErrorIs(t, err, registry.ErrAlreadyHeld)
	require.Equal(t, uint64(1), r.Counter(), "failed inserts do not advance the counter")
}

func TestInsert_RoundRobinEvictsOldest(t *testing.T) {
	const capacity = 4
	r, err := registry.New(capacity)
	require.NoError(t, err)

	inserted := make([]*matrix.Matrix, 0, capacity+1)
	for i := 0; i < capacity; i++ {
		m := newMatrix(t, fmt.Sprintf("m%d", i))
		slot, evicted, err := r.Insert(m)
		require.NoError(t, err)
		require.Equal(t, i, slot)
		require.Empty(t, evicted, "first pass fills empty slots")
		inserted = append(inserted, m)
	}
	require.Equal(t, capacity, r.Len())

	first, err := r.At(0)
	require.NoError(t, err)
	require.Same(t, inserted[0], first)

	extra := newMatrix(t, "extra")
	slot, evicted, err := r.Insert(extra)
	require.NoError(t, err)
	require.Equal(t, 0, slot)
	require.Equal(t, "m0", evicted)

	occupant, err := r.At(0)
	require.NoError(t, err)
	require.Same(t, extra, occupant)
	require.True(t, inserted[0].Released(), "evicted matrix is released")
	for _, m := range inserted[1:] {
		require.False(t, m.Released())
	}
	_, found := r.FindByName("m0")
	require.False(t, found)
	require.Equal(t, uint64(capacity+1), r.Counter())
}

func TestInsert_EvictsUnrelatedName(t *testing.T) {
	r, err := registry.New(1)
	require.NoError(t, err)
	_, _, err = r.Insert(newMatrix(t, "keep"))
	require.NoError(t, err)
	_, _, err = r.Insert(newMatrix(t, "other"))
	require.NoError(t, err)

	_, err = r.Lookup("keep")
	require.ErrorIs(t, err, registry.ErrNotFound)
}

func TestFindByName_ExactMatchOnly(t *testing.T) {
	r, err := registry.New(4)
	require.NoError(t, err)
	_, _, err = r.Insert(newMatrix(t, "temp_mat"))
	require.NoError(t, err)

	slot, ok := r.FindByName("temp_mat")
	require.True(t, ok)
	require.Equal(t, 0, slot)

	// Neither extensions nor prefixes of a stored name match.
	for _, name := range []string{"temp_mat2", "temp", "", "TEMP_MAT"} {
		_, ok := r.FindByName(name)
		assert.False(t, ok, name)
	}
}

func TestFindByName_LowestSlotWins(t *testing.T) {
	r, err := registry.New(3)
	require.NoError(t, err)
	_, _, err = r.Insert(newMatrix(t, "x"))
	require.NoError(t, err)
	_, _, err = r.Insert(newMatrix(t, "dup"))
	require.NoError(t, err)
	_, _, err = r.Insert(newMatrix(t, "dup"))
	require.NoError(t, err)

	slot, ok := r.FindByName("dup")
	require.True(t, ok)
	require.Equal(t, 1, slot)
}

func TestAt_Bounds(t *testing.T) {
	r, err := registry.New(2)
	require.NoError(t, err)
	m, err := r.At(1)
	require.NoError(t, err)
	require.Nil(t, m)
	_, err = r.At(2)
	require.ErrorIs(t, err, registry.ErrSlotIndex)
	_, err = r.At(-1)
	require.ErrorIs(t, err, registry.ErrSlotIndex)
}

func TestEntries_SlotOrder(t *testing.T) {
	r, err := registry.New(3)
	require.NoError(t, err)
	a, err := matrix.New("a", 1, 2)
	require.NoError(t, err)
	b, err := matrix.New("b", 3, 4)
	require.NoError(t, err)
	_, _, err = r.Insert(a)
	require.NoError(t, err)
	_, _, err = r.Insert(b)
	require.NoError(t, err)

	require.Equal(t, []registry.Entry{
		{Slot: 0, Name: "a", Rows: 1, Cols: 2},
		{Slot: 1, Name: "b", Rows: 3, Cols: 4},
	}, r.Entries())
}

func TestDestroyAll(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r, err := registry.New(3, registry.WithLogger(logger))
	require.NoError(t, err)

	held := []*matrix.Matrix{newMatrix(t, "a"), newMatrix(t, "b")}
	for _, m := range held {
		_, _, err := r.Insert(m)
		require.NoError(t, err)
	}

	require.Equal(t, 2, r.DestroyAll())
	require.Zero(t, r.Len())
	for _, m := range held {
		require.True(t, m.Released())
	}
	require.Equal(t, uint64(2), r.Counter())
	require.Zero(t, r.DestroyAll(), "second teardown finds nothing")
	require.Contains(t, logs.String(), "registry cleared")
}

func TestWithLogger_NilPanics(t *testing.T) {
	require.Panics(t, func() { _ = registry.WithLogger(nil) })
}
