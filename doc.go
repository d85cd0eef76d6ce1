// Package blenlib provides Go ports of container utilities from Blender's
// C++ "blenlib" (BLI) support library.
//
// The centerpiece is Vector, a growable sequence with a small embedded
// buffer: sequences of at most InlineCapacity elements live entirely inside
// the Vector value and never touch the heap. Once a vector outgrows its
// embedded buffer it migrates to a heap buffer and grows by doubling, like
// an ordinary dynamic array. Short sequences dominate in systems code, so
// the common case pays no allocation cost at all.
//
// Vectors are plain values with no internal locking. A single vector must
// not be mutated concurrently, nor read while another goroutine mutates it.
// Independent copies made with Clone are safe to use from separate
// goroutines.
//
//go:generate go test ./... -race
package blenlib
