// SPDX-License-Identifier: MIT

// Package registry keeps a fixed number of named matrices in slots.
//
// Insertion is round-robin: the next slot is always counter mod capacity,
// and whatever occupies it is released, even when its name is unrelated.
// Name lookup is a linear scan in slot order comparing whole names.
//
// A Registry is not safe for concurrent use.
package registry

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/matshell/matrix"
)

// Registry owns up to Capacity() matrices, one per slot.
type Registry struct {
	slots   []*matrix.Matrix
	counter uint64
	logger  *slog.Logger
}

// Entry is one occupied slot in a snapshot.
type Entry struct {
	Slot int
	Name string
	Rows uint32
	Cols uint32
}

// Option customizes New.
type Option func(*Registry)

// WithLogger routes eviction and teardown diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("registry: WithLogger(nil)")
	}
	return func(r *Registry) {
		r.logger = l
	}
}

// New returns an empty registry with capacity slots. Zero slots is legal
// but every Insert will fail with ErrNoCapacity.
func New(capacity int, opts ...Option) (*Registry, error) {
	if capacity < 0 {
		return nil, ErrBadCapacity
	}
	r := &Registry{
		slots:  make([]*matrix.Matrix, capacity),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Capacity returns the fixed slot count.
func (r *Registry) Capacity() int { return len(r.slots) }

// Counter returns the number of successful inserts so far.
func (r *Registry) Counter() uint64 { return r.counter }

// Len returns the number of occupied slots.
func (r *Registry) Len() int {
	n := 0
	for _, m := range r.slots {
		if m != nil {
			n++
		}
	}
	return n
}

// Insert stores m in slot counter mod capacity and returns that slot
// together with the name of the matrix it displaced ("" for an empty slot).
// The displaced matrix is released. Ownership of m passes to the registry;
// a matrix already held in any slot is refused so no two slots ever share
// one.
func (r *Registry) Insert(m *matrix.Matrix) (slot int, evicted string, err error) {
	if len(r.slots) == 0 {
		return -1, "", ErrNoCapacity
	}
	if m == nil {
		return -1, "", ErrNilMatrix
	}
	if err = matrix.ValidateLive(m); err != nil {
		return -1, "", fmt.Errorf("Insert: %w", err)
	}
	for _, held := range r.slots {
		if held == m {
			return -1, "", ErrAlreadyHeld
		}
	}

	slot = int(r.counter % uint64(len(r.slots)))
	if old := r.slots[slot]; old != nil {
		evicted = old.Name()
		_ = old.Release()
	}
	r.slots[slot] = m
	r.counter++

	return slot, evicted, nil
}

// FindByName returns the lowest slot whose matrix is named exactly name.
func (r *Registry) FindByName(name string) (int, bool) {
	for i, m := range r.slots {
		if m != nil && m.Name() == name {
			return i, true
		}
	}
	return -1, false
}

// Lookup returns the matrix named name or ErrNotFound.
func (r *Registry) Lookup(name string) (*matrix.Matrix, error) {
	slot, ok := r.FindByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return r.slots[slot], nil
}

// At returns the occupant of slot, which may be nil.
func (r *Registry) At(slot int) (*matrix.Matrix, error) {
	if slot < 0 || slot >= len(r.slots) {
		return nil, ErrSlotIndex
	}
	return r.slots[slot], nil
}

// Entries returns a snapshot of the occupied slots in slot order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.slots))
	for i, m := range r.slots {
		if m == nil {
			continue
		}
		out = append(out, Entry{Slot: i, Name: m.Name(), Rows: m.Rows(), Cols: m.Cols()})
	}
	return out
}

// DestroyAll releases every occupant and empties all slots. It returns the
// number of matrices released. The insertion counter is kept.
func (r *Registry) DestroyAll() int {
	n := 0
	for i, m := range r.slots {
		if m == nil {
			continue
		}
		if err := m.Release(); err != nil {
			r.logger.Warn("release failed", "slot", i, "name", m.Name(), "err", err)
		} else {
			n++
		}
		r.slots[i] = nil
	}
	r.logger.Debug("registry cleared", "released", n)

	return n
}
