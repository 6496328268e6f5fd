package quicksort

import (
	"fmt"
	"slices"
	"testing"
)

func BenchmarkSort(b *testing.B) {
	for _, size := range []int{1000, 10000, 100000} {
		data, err := GenerateRandom(size, WithRand(NewRand(42)))
		if err != nil {
			b.Fatal(err)
		}

		for _, strategy := range Strategies() {
			b.Run(fmt.Sprintf("%s/%d", strategy, size), func(b *testing.B) {
				work := make([]int, size)
				rng := NewRand(1)
				b.ResetTimer()
				for range b.N {
					b.StopTimer()
					copy(work, data)
					b.StartTimer()
					if _, err := Sort(work, strategy, WithRand(rng)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}

		b.Run(fmt.Sprintf("stdlib/%d", size), func(b *testing.B) {
			work := make([]int, size)
			b.ResetTimer()
			for range b.N {
				b.StopTimer()
				copy(work, data)
				b.StartTimer()
				slices.Sort(work)
			}
		})
	}
}
