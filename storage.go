package blenlib

// storageMode identifies which of a Vector's two storage variants is
// active. Checking the mode tag, rather than comparing the data pointer
// against the embedded buffer's address, keeps the inline/heap distinction
// explicit and rules out aliasing mistakes in the comparison.
type storageMode uint8

const (
	// modeInline: elements live in the embedded buffer. Zero value of a
	// Vector, so a declared Vector is immediately usable.
	modeInline storageMode = iota

	// modeHeap: elements live in an owned heap slice whose length is the
	// vector's capacity. Entered on first growth, never left.
	modeHeap

	// modeEmptied: storage was transferred away by MoveFrom. The vector
	// may only be reassigned, Reset, or discarded.
	modeEmptied
)

// capacity returns the number of element slots in the active storage.
func (v *Vector[T]) capacity() int {
	switch v.mode {
	case modeInline:
		return InlineCapacity
	case modeHeap:
		return len(v.heap)
	default:
		return 0
	}
}

// storage returns the full active slot range, live and dead slots alike.
func (v *Vector[T]) storage() []T {
	switch v.mode {
	case modeInline:
		return v.inline[:]
	case modeHeap:
		return v.heap
	default:
		return nil
	}
}

// live returns the slots holding elements, [0, length).
func (v *Vector[T]) live() []T {
	return v.storage()[:v.length]
}

// grow ensures capacity for at least minCap elements. The fresh buffer is
// fully populated before the old storage is retired, so the vector stays
// valid at every point: allocate, relocate in index order, zero the old
// live slots, adopt. Growth always targets a heap buffer, even when the
// vector is still inline.
func (v *Vector[T]) grow(minCap int) {
	if v.capacity() >= minCap {
		return
	}
	fresh := make([]T, minCap)
	old := v.live()
	copy(fresh, old)
	// Zero the retired slots so the old storage no longer keeps the
	// relocated elements reachable. For an inline vector the embedded
	// buffer stays part of the struct forever; stale copies there would
	// pin element referents past their removal.
	clear(old)
	v.heap = fresh
	v.mode = modeHeap
}

// ensureSpaceForOne makes room for a single additional element, doubling
// the capacity when the vector is full. Append relies on this running
// before the new element is written so the element lands directly in its
// final storage.
func (v *Vector[T]) ensureSpaceForOne() {
	if v.length == v.capacity() {
		v.grow(max(2*v.capacity(), 1))
	}
}

// release drops all live elements and any heap buffer, returning the value
// to a blank inline state. Inline slots are zeroed rather than freed.
func (v *Vector[T]) release() {
	clear(v.live())
	v.heap = nil
	v.length = 0
	v.mode = modeInline
}

// adoptCopyOf deep-copies other's elements into fresh storage of the same
// mode and capacity as other's. The receiver must hold no storage.
func (v *Vector[T]) adoptCopyOf(other *Vector[T]) {
	if other.mode == modeHeap {
		v.heap = make([]T, len(other.heap))
		copy(v.heap, other.live())
		v.mode = modeHeap
	} else {
		copy(v.inline[:], other.live())
		v.mode = modeInline
	}
	v.length = other.length
}
