package blenlib

import "iter"

// InlineCapacity is the number of element slots embedded directly in a
// Vector value. A vector whose length never exceeds InlineCapacity performs
// no heap allocation for element storage.
const InlineCapacity = 4

// Vector is a growable sequence of T with a small embedded buffer.
//
// The zero value is an empty, ready-to-use vector in inline mode. Vectors
// carry their inline elements inside the struct, so they must be shared by
// pointer; to duplicate one, use Clone rather than assignment. Capacity
// only ever grows: once a vector has migrated to heap storage it stays
// there, even if removals bring its length back under InlineCapacity.
//
// Slices and iterators obtained from a vector are views into its current
// storage. Any operation that grows the vector, removes elements, or moves
// it invalidates them; respecting that is the caller's responsibility.
type Vector[T any] struct {
	mode   storageMode
	length int
	inline [InlineCapacity]T
	heap   []T
}

// New returns a new empty vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithLen returns a vector holding n zero-valued elements. Capacity is
// reserved up front, so n larger than InlineCapacity migrates immediately
// to heap storage.
func NewWithLen[T any](n int) *Vector[T] {
	assertf(n >= 0, "NewWithLen: negative length %d", n)
	v := &Vector[T]{}
	v.Reserve(n)
	var zero T
	for i := 0; i < n; i++ {
		v.Append(zero)
	}
	return v
}

// Of returns a vector holding the given values in order.
func Of[T any](values ...T) *Vector[T] {
	v := &Vector[T]{}
	v.Reserve(len(values))
	for _, value := range values {
		v.Append(value)
	}
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.length
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.length == 0
}

// Cap returns the number of element slots in the current storage.
func (v *Vector[T]) Cap() int {
	return v.capacity()
}

// IsInline reports whether elements still live in the embedded buffer.
func (v *Vector[T]) IsInline() bool {
	return v.mode == modeInline
}

// Reserve ensures capacity for at least minCap elements. Unlike the
// automatic growth in Append, Reserve targets exactly minCap, letting
// callers pre-size without doubling overshoot. It never shrinks.
func (v *Vector[T]) Reserve(minCap int) {
	v.mustBeUsable("Reserve")
	v.grow(minCap)
}

// Append adds value at the end of the vector, doubling the capacity first
// if the vector is full.
func (v *Vector[T]) Append(value T) {
	v.mustBeUsable("Append")
	v.ensureSpaceForOne()
	v.storage()[v.length] = value
	v.length++
}

// Extend appends every element of other to v, in order. Extending a vector
// with itself appends a snapshot of its own elements.
func (v *Vector[T]) Extend(other *Vector[T]) {
	v.mustBeUsable("Extend")
	other.mustBeUsable("Extend")
	// Read through storage() each round: when other == v, growth inside
	// Append retires the buffer a captured slice would still point at.
	n := other.length
	for i := 0; i < n; i++ {
		v.Append(other.storage()[i])
	}
}

// Fill assigns value to every live slot. Length and capacity are
// unchanged; dead slots are not touched.
func (v *Vector[T]) Fill(value T) {
	v.mustBeUsable("Fill")
	live := v.live()
	for i := range live {
		live[i] = value
	}
}

// RemoveLast removes the final element. The vacated slot is zeroed so the
// vector does not keep the removed element reachable. Panics on an empty
// vector.
func (v *Vector[T]) RemoveLast() {
	v.mustBeUsable("RemoveLast")
	assertf(v.length > 0, "RemoveLast on an empty vector")
	var zero T
	v.storage()[v.length-1] = zero
	v.length--
}

// RemoveAndReorder removes the element at index in O(1) by moving the last
// element into its slot. Relative order of the remaining elements is not
// preserved; callers that need stable order must not use this. Panics on
// an out-of-range index.
func (v *Vector[T]) RemoveAndReorder(index int) {
	v.mustBeUsable("RemoveAndReorder")
	assertf(index >= 0 && index < v.length,
		"RemoveAndReorder index %d out of range [0, %d)", index, v.length)
	s := v.storage()
	last := v.length - 1
	if index < last {
		s[index] = s[last]
	}
	var zero T
	s[last] = zero
	v.length--
}

// Get returns the element at index. Panics on an out-of-range index.
func (v *Vector[T]) Get(index int) T {
	v.mustBeUsable("Get")
	assertf(index >= 0 && index < v.length,
		"Get index %d out of range [0, %d)", index, v.length)
	return v.storage()[index]
}

// Set assigns value to the live slot at index. Panics on an out-of-range
// index; Set never extends the vector.
func (v *Vector[T]) Set(index int, value T) {
	v.mustBeUsable("Set")
	assertf(index >= 0 && index < v.length,
		"Set index %d out of range [0, %d)", index, v.length)
	v.storage()[index] = value
}

// Slice returns the live elements as a mutable view into the vector's
// current storage. See the Vector documentation for when views are
// invalidated.
func (v *Vector[T]) Slice() []T {
	v.mustBeUsable("Slice")
	return v.live()
}

// All returns an iterator over index/element pairs of the live range. The
// vector must not be mutated during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	v.mustBeUsable("All")
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.storage()[i]) {
				return
			}
		}
	}
}

// Clone returns a deep, independent copy with the same storage mode and
// capacity as v.
func (v *Vector[T]) Clone() *Vector[T] {
	v.mustBeUsable("Clone")
	out := &Vector[T]{}
	out.adoptCopyOf(v)
	return out
}

// CopyFrom replaces v's contents with a deep copy of other, first
// releasing v's own elements and storage. Copy-assigning a vector to
// itself is a no-op. CopyFrom is valid on a moved-from vector and revives
// it.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	other.mustBeUsable("CopyFrom")
	if v == other {
		return
	}
	v.release()
	v.adoptCopyOf(other)
}

// MoveFrom transfers other's elements and storage into v, first releasing
// v's own. A heap-mode source hands over its buffer in O(1) with no
// element copies; an inline source has its elements copied into v's own
// embedded buffer, since that buffer cannot change owner. In both cases
// other is left emptied: it may only be reassigned, Reset, or discarded,
// and every other operation on it panics. Moving a vector into itself is a
// no-op; moving from an already-emptied vector panics.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	other.mustBeUsable("MoveFrom")
	if v == other {
		return
	}
	v.release()
	if other.mode == modeHeap {
		v.heap = other.heap
		v.mode = modeHeap
	} else {
		copy(v.inline[:], other.live())
		v.mode = modeInline
	}
	v.length = other.length

	other.heap = nil
	other.length = 0
	clear(other.inline[:])
	other.mode = modeEmptied
}

// Reset discards all elements and storage, leaving a valid empty inline
// vector. Reset also revives a moved-from vector.
func (v *Vector[T]) Reset() {
	v.release()
}

// mustBeUsable rejects operations on a moved-from vector.
func (v *Vector[T]) mustBeUsable(op string) {
	assertf(v.mode != modeEmptied, "%s on a moved-from vector", op)
}
