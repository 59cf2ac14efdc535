// SPDX-License-Identifier: MIT

package registry

import "errors"

var (
	// ErrBadCapacity indicates a negative slot count.
	ErrBadCapacity = errors.New("registry: capacity must be >= 0")
	// ErrNoCapacity indicates an insert into a registry with zero slots.
	ErrNoCapacity = errors.New("registry: no slots available")
	// ErrNilMatrix indicates an insert of a nil matrix.
	ErrNilMatrix = errors.New("registry: nil matrix")
	// ErrAlreadyHeld indicates an insert of a matrix some slot already owns.
	ErrAlreadyHeld = errors.New("registry: matrix already held by a slot")
	// ErrNotFound indicates that no slot holds a matrix with the requested name.
	ErrNotFound = errors.New("registry: matrix not found")
	// ErrSlotIndex indicates a slot index outside [0, capacity).
	ErrSlotIndex = errors.New("registry: slot index out of range")
)
