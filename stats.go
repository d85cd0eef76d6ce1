package blenlib

import (
	"fmt"
	"io"
	"unsafe"
)

// Stats is a point-in-time diagnostic snapshot of a vector's storage
// state. It exists for debugging; neither the struct nor its String output
// is a stable format.
type Stats struct {
	Len       int     // live elements
	Cap       int     // slots in the active storage
	InlineCap int     // slots embedded in the vector value
	Heap      bool    // storage has migrated to a heap buffer
	Emptied   bool    // vector is a moved-from shell
	Footprint uintptr // size of the vector value itself, in bytes
}

// Stats reports the vector's current storage state. Unlike most
// operations, Stats is valid on a moved-from vector so that diagnostics
// can observe the emptied state.
func (v *Vector[T]) Stats() Stats {
	return Stats{
		Len:       v.length,
		Cap:       v.capacity(),
		InlineCap: InlineCapacity,
		Heap:      v.mode == modeHeap,
		Emptied:   v.mode == modeEmptied,
		Footprint: unsafe.Sizeof(*v),
	}
}

func (s Stats) String() string {
	switch {
	case s.Emptied:
		return "vector[moved-from]"
	case s.Heap:
		return fmt.Sprintf("vector[len=%d cap=%d heap]", s.Len, s.Cap)
	default:
		return fmt.Sprintf("vector[len=%d cap=%d inline]", s.Len, s.Cap)
	}
}

// DebugDump writes a human-readable report of the vector's storage state
// to w.
func (v *Vector[T]) DebugDump(w io.Writer) {
	s := v.Stats()
	fmt.Fprintf(w, "Vector at %p:\n", v)
	fmt.Fprintf(w, "  Elements: %d\n", s.Len)
	fmt.Fprintf(w, "  Capacity: %d\n", s.Cap)
	fmt.Fprintf(w, "  Inline Slots: %d  Footprint: %d bytes\n", s.InlineCap, s.Footprint)
	if s.Emptied {
		fmt.Fprintf(w, "  Moved-From: true\n")
	}
}
