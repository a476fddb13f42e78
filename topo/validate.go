package topo

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/routetree-dev/routetree/geom"
)

// Validate re-checks the structural invariants of a built tree: junction
// positions must be distinct, every link must have a reciprocal inverse link
// on the same layer, the link graph must reach every junction from junction
// 0, and the link count must be exactly len−1 (connected and acyclic). It is advisory: construction already
// guarantees these properties for well-formed input, and nothing calls
// Validate implicitly.
//
// Complexity: O(J) time and memory over J junctions.
func (t *Tree) Validate() error {
	n := len(t.junctions)
	if n == 0 {
		return nil
	}

	seenPos := make(map[geom.Pair[int]]int, n)
	for i := range t.junctions {
		p := t.junctions[i].Position
		if prev, dup := seenPos[p]; dup {
			return fmt.Errorf("%w: junctions %d and %d both at %v", ErrDuplicatePosition, prev, i, p)
		}
		seenPos[p] = i
	}

	links := 0
	for i := range t.junctions {
		j := &t.junctions[i]
		for _, d := range []geom.Towards{geom.Up, geom.Down, geom.Left, geom.Right} {
			p := j.Link(d)
			if p == nil {
				continue
			}
			links++
			if p.Index < 0 || p.Index >= n {
				return fmt.Errorf("%w: junction %d links out of range (%d)", ErrUnknownEndpoint, i, p.Index)
			}
			back := t.junctions[p.Index].Link(d.Inv())
			if back == nil || back.Index != i || back.Layer != p.Layer {
				return fmt.Errorf("topo: junction %d: %v link to %d has no reciprocal", i, d, p.Index)
			}
		}
	}
	// Each tree edge is stored twice (once per endpoint).
	if links != 2*(n-1) {
		return fmt.Errorf("%w: %d links for %d junctions", ErrRedundancyCount, links/2, n)
	}

	// BFS from junction 0 over the directional links.
	seen := bitset.New(uint(n))
	seen.Set(0)
	queue := []int{0}
	for qi := 0; qi < len(queue); qi++ {
		j := &t.junctions[queue[qi]]
		for _, p := range j.links() {
			if p == nil || seen.Test(uint(p.Index)) {
				continue
			}
			seen.Set(uint(p.Index))
			queue = append(queue, p.Index)
		}
	}
	if got := seen.Count(); got != uint(n) {
		return fmt.Errorf("%w: reached %d of %d junctions", ErrDisconnected, got, n)
	}

	return nil
}
