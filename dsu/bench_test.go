package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/routetree-dev/routetree/dsu"
)

// BenchmarkUnionFind measures random Union/Find pressure on a 100k-element
// universe. With path compression and union by rank each operation is
// amortized near O(1).
func BenchmarkUnionFind(b *testing.B) {
	const n = 100_000
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := dsu.New(n)
		for _, p := range pairs {
			d.Union(p[0], p[1])
		}
		_ = d.Done()
	}
}
