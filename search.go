package blenlib

// Index returns the position of the first element of v equal to value, or
// -1 if no element matches. The scan is linear.
//
// Index and Equal are free functions because Vector's element type is not
// constrained to comparable; they follow the slices.Index and slices.Equal
// naming.
func Index[T comparable](v *Vector[T], value T) int {
	v.mustBeUsable("Index")
	for i, elem := range v.live() {
		if elem == value {
			return i
		}
	}
	return -1
}

// Equal reports whether a and b hold equal elements in the same order,
// after a length fast path. Capacity and storage mode do not participate.
func Equal[T comparable](a, b *Vector[T]) bool {
	a.mustBeUsable("Equal")
	b.mustBeUsable("Equal")
	if a.length != b.length {
		return false
	}
	bs := b.live()
	for i, elem := range a.live() {
		if elem != bs[i] {
			return false
		}
	}
	return true
}
