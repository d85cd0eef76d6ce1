package blenlib

import (
	"fmt"
	"testing"
)

func BenchmarkAppendWithinInlineBuffer(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var v Vector[int]
		for j := 0; j < InlineCapacity; j++ {
			v.Append(j)
		}
	}
}

func BenchmarkAppendThroughGrowth(b *testing.B) {
	for _, n := range []int{8, 64, 1024} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var v Vector[int]
				for j := 0; j < n; j++ {
					v.Append(j)
				}
			}
		})
	}
}

func BenchmarkAppendPreReserved(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var v Vector[int]
		v.Reserve(1024)
		for j := 0; j < 1024; j++ {
			v.Append(j)
		}
	}
}

func BenchmarkIndex(b *testing.B) {
	v := New[int]()
	for i := 0; i < 1024; i++ {
		v.Append(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if Index(v, 1023) != 1023 {
			b.Fatal("unexpected index")
		}
	}
}

func BenchmarkClone(b *testing.B) {
	v := New[int]()
	for i := 0; i < 256; i++ {
		v.Append(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Clone()
	}
}
