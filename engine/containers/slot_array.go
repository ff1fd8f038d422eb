package containers

// SlotArray is a fixed capacity arena. Acquire hands out the lowest free
// slot and a slot keeps its occupant until it is released.
type SlotArray[T any] struct {
	items    []T
	occupied []bool
	used     int
}

func NewSlotArray[T any](capacity int) *SlotArray[T] {
	return &SlotArray[T]{
		items:    make([]T, capacity),
		occupied: make([]bool, capacity),
	}
}

// Acquire stores item in the first free slot. It returns false when every
// slot is taken.
func (s *SlotArray[T]) Acquire(item T) (int, bool) {
	for i := range s.occupied {
		// Existing free spot. Take it.
		if !s.occupied[i] {
			s.items[i] = item
			s.occupied[i] = true
			s.used++
			return i, true
		}
	}
	return -1, false
}

func (s *SlotArray[T]) Set(index int, item T) bool {
	if index < 0 || index >= len(s.items) || !s.occupied[index] {
		return false
	}
	s.items[index] = item
	return true
}

func (s *SlotArray[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(s.items) || !s.occupied[index] {
		return zero, false
	}
	return s.items[index], true
}

// Release empties the slot. Releasing a free slot is a no-op.
func (s *SlotArray[T]) Release(index int) bool {
	if index < 0 || index >= len(s.items) || !s.occupied[index] {
		return false
	}
	var zero T
	s.items[index] = zero
	s.occupied[index] = false
	s.used--
	return true
}

// Find returns the first occupied slot matching the predicate.
func (s *SlotArray[T]) Find(match func(T) bool) (int, bool) {
	for i, item := range s.items {
		if s.occupied[i] && match(item) {
			return i, true
		}
	}
	return -1, false
}

// Each visits the occupied slots in index order.
func (s *SlotArray[T]) Each(fn func(index int, item T)) {
	for i, item := range s.items {
		if s.occupied[i] {
			fn(i, item)
		}
	}
}

func (s *SlotArray[T]) Len() int {
	return s.used
}

func (s *SlotArray[T]) Cap() int {
	return len(s.items)
}

func (s *SlotArray[T]) IsFull() bool {
	return s.used == len(s.items)
}
