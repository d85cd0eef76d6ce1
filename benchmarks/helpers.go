// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"github.com/SIDD017/blenlib"
)

// GenInts creates a vector holding n sequential ints.
func GenInts(n int) *blenlib.Vector[int] {
	v := blenlib.New[int]()
	for i := 0; i < n; i++ {
		v.Append(i)
	}
	return v
}

// GenStrings creates a vector holding n short distinct strings.
func GenStrings(n int) *blenlib.Vector[string] {
	v := blenlib.New[string]()
	for i := 0; i < n; i++ {
		v.Append(string(rune('a' + i%26)))
	}
	return v
}

// Payload is a plausibly-sized element for footprint measurements: a
// few words of data rather than a bare int.
type Payload struct {
	ID     int64
	Weight float64
	Label  string
}

// GenPayloads creates a vector of n Payload elements.
func GenPayloads(n int) *blenlib.Vector[Payload] {
	v := blenlib.New[Payload]()
	for i := 0; i < n; i++ {
		v.Append(Payload{ID: int64(i), Weight: float64(i) * 0.5, Label: "item"})
	}
	return v
}
