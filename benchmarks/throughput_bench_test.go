// Package benchmarks provides append and search throughput benchmarks.
package benchmarks

import (
	"fmt"
	"testing"

	"github.com/SIDD017/blenlib"
)

func BenchmarkFillVector(b *testing.B) {
	for _, n := range []int{blenlib.InlineCapacity, 32, 1024} {
		b.Run(fmt.Sprintf("elems=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var v blenlib.Vector[int]
				for j := 0; j < n; j++ {
					v.Append(j)
				}
			}
		})
	}
}

func BenchmarkExtend(b *testing.B) {
	src := GenInts(256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v blenlib.Vector[int]
		v.Extend(src)
	}
}

func BenchmarkRemoveAndReorderDrain(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		v := GenInts(1024)
		b.StartTimer()
		for !v.IsEmpty() {
			v.RemoveAndReorder(0)
		}
	}
}

func BenchmarkIndexStrings(b *testing.B) {
	v := GenStrings(512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		blenlib.Index(v, "zzz") // worst case: full scan, no match
	}
}
