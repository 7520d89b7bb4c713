package arena_test

import (
	"fmt"
	"testing"

	"github.com/bumparena/memarena"
)

type vec3 struct{ X, Y, Z float64 }

func BenchmarkFixedArenaAllocValue(b *testing.B) {
	a := arena.NewFixedArena(64<<20, 8)
	defer a.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := arena.AllocValue(a, vec3{X: 1, Y: 2, Z: 3}); err != nil {
			a.Reset()
			i--
		}
	}
}

func BenchmarkFixedArenaVsBuiltin(b *testing.B) {
	b.Run("arena", func(b *testing.B) {
		a := arena.NewFixedArena(64<<20, 8)
		defer a.Release()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := arena.AllocValue(a, vec3{}); err != nil {
				a.Reset()
			}
		}
	})

	b.Run("builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = new(vec3)
		}
	})
}

func BenchmarkFixedArenaAllocArray(b *testing.B) {
	sizes := []int{16, 256, 4096}
	for _, n := range sizes {
		n := n
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := arena.NewFixedArena(64<<20, 8)
			defer a.Release()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := arena.AllocArrayUninitialized[vec3](a, n); err != nil {
					a.Reset()
					i--
				}
			}
		})
	}
}

func BenchmarkDynamicArenaAllocValue(b *testing.B) {
	a := arena.NewDynamicArena(0, 1<<30)
	defer a.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := arena.AllocValue(a, vec3{X: 1, Y: 2, Z: 3}); err != nil {
			a.ResetAndShrink(0)
			i--
		}
	}
}

func BenchmarkDynamicArenaResetAndShrink(b *testing.B) {
	a := arena.NewDynamicArena(1<<16, 1<<24)
	defer a.Release()

	for i := 0; i < b.N; i++ {
		for {
			if _, err := arena.AllocValue(a, byte(1)); err != nil {
				break
			}
		}
		a.ResetAndShrink(1 << 16)
	}
}
