package core

import (
	"errors"
)

var (
	// The driver refused to create a resource.
	ErrAllocation = errors.New("driver allocation failed")
	// A lock is already outstanding on the buffer.
	ErrAlreadyLocked = errors.New("buffer already locked")
	// Unlock was called on a buffer without an outstanding lock.
	ErrNotLocked = errors.New("buffer not locked")
	// The requested access conflicts with the buffer usage.
	ErrInvalidAccess = errors.New("invalid buffer access")
	// A range falls outside the buffer.
	ErrOutOfRange = errors.New("range outside buffer")
	// A fixed-size pool (light slots, texture units) is exhausted.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// The referenced object was never registered.
	ErrNotFound = errors.New("not found")
)
