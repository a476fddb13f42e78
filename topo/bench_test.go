package topo_test

import (
	"io"
	"testing"

	"github.com/routetree-dev/routetree/geom"
	"github.com/routetree-dev/routetree/topo"
)

// combLayout builds a comb-shaped net: a spine of n segments along row 0
// with a tooth hanging off every spine junction. 2(n+1) junctions, 2n+1
// links, no redundancy.
func combLayout(n int) (pins map[int]geom.Pair[int], ids []int, segments []geom.Route[int]) {
	pins = map[int]geom.Pair[int]{}
	for i := 0; i <= n; i++ {
		spine := geom.Point[int]{Row: 0, Col: i, Lay: 1}
		if i < n {
			segments = append(segments, geom.Route[int]{
				Source: spine,
				Target: geom.Point[int]{Row: 0, Col: i + 1, Lay: 1},
			})
		}
		segments = append(segments, geom.Route[int]{
			Source: spine,
			Target: geom.Point[int]{Row: 3, Col: i, Lay: 1},
		})
		pins[i] = geom.Pair[int]{X: 3, Y: i}
		ids = append(ids, i)
	}

	return pins, ids, segments
}

// BenchmarkNewTree measures construction over a 2002-junction comb.
func BenchmarkNewTree(b *testing.B) {
	pins, ids, segments := combLayout(1000)
	pos := func(pin int) (geom.Pair[int], bool) { p, ok := pins[pin]; return p, ok }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := topo.NewTree(ids, segments, pos); err != nil {
			b.Fatalf("NewTree failed: %v", err)
		}
	}
}

// BenchmarkWriteTo measures serialization of the same comb.
func BenchmarkWriteTo(b *testing.B) {
	pins, ids, segments := combLayout(1000)
	pos := func(pin int) (geom.Pair[int], bool) { p, ok := pins[pin]; return p, ok }
	net, err := topo.NewNet(0, 0, ids, segments, pos, topo.WithSortedJunctions())
	if err != nil {
		b.Fatalf("setup NewNet failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := net.WriteTo(io.Discard); err != nil {
			b.Fatalf("WriteTo failed: %v", err)
		}
	}
}
