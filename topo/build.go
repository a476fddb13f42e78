package topo

import (
	"fmt"
	"sort"

	"github.com/routetree-dev/routetree/dsu"
	"github.com/routetree-dev/routetree/geom"
)

// NewTree builds the junction tree of one net from its connected pins and
// routed segments.
//
// Steps:
//
//  1. Collect candidate positions: every segment endpoint flattened to 2D
//     (untagged), then every connected pin's looked-up position (tagged
//     with the pin id). Deduplicate by position; the last write wins, so a
//     pin tag overrides a bare endpoint at the same position.
//  2. Materialize one junction per distinct position and build the
//     position → index lookup.
//  3. Size a disjoint-set structure to the junction count.
//  4. Union the endpoints of every planar segment. A failed union marks the
//     segment redundant and drops it; a successful one records a
//     bidirectional link carrying the segment's layer. Layer-axis segments
//     never produce links.
//
// Under WithStrictChecks the structural invariants are enforced: at most
// one redundant segment while scanning and exactly one when done, and full
// connectivity at the end. Without it the
// router's output is trusted and only ErrPinNotFound, ErrUnknownEndpoint,
// and segment-classification errors are reported.
//
// Complexity: O(S·α(J)) over S segments and J junctions; O(J log J) extra
// with WithSortedJunctions.
func NewTree(pins []int, segments []geom.Route[int], pos PinPositionFunc, opts ...Option) (*Tree, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Deduplicate positions. Endpoints first, pins second: the later
	//    write carries the tag, so a pin always overrides an endpoint.
	tags := make(map[geom.Pair[int]]*int, 2*len(segments)+len(pins))
	for _, seg := range segments {
		tags[seg.Source.Flatten()] = nil
		tags[seg.Target.Flatten()] = nil
	}
	for _, pin := range pins {
		p, ok := pos(pin)
		if !ok {
			return nil, fmt.Errorf("%w: pin %d", ErrPinNotFound, pin)
		}
		id := pin
		tags[p] = &id
	}

	// 2. Materialize junctions and the position → index lookup.
	positions := make([]geom.Pair[int], 0, len(tags))
	for p := range tags {
		positions = append(positions, p)
	}
	if o.Sorted {
		sort.Slice(positions, func(i, j int) bool {
			if positions[i].X != positions[j].X {
				return positions[i].X < positions[j].X
			}
			return positions[i].Y < positions[j].Y
		})
	}

	junctions := make([]Junction, len(positions))
	posIdx := make(map[geom.Pair[int]]int, len(positions))
	for i, p := range positions {
		junctions[i] = Junction{Pin: tags[p], Position: p}
		posIdx[p] = i
	}
	tree := &Tree{junctions: junctions}

	// 3. One disjoint set per junction.
	uf := dsu.New(len(junctions))

	// 4. Wire planar segments, dropping redundant ones.
	redundant := 0
	for _, seg := range segments {
		towards, err := seg.Towards()
		if err != nil {
			return nil, fmt.Errorf("segment %v: %w", seg, err)
		}
		if !towards.Planar() {
			// Pure layer change: no stored link. The layers involved
			// resurface through Junction.Span at the shared position.
			continue
		}

		srcIdx, ok := posIdx[seg.Source.Flatten()]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownEndpoint, seg.Source)
		}
		tgtIdx, ok := posIdx[seg.Target.Flatten()]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownEndpoint, seg.Target)
		}

		if !uf.Union(srcIdx, tgtIdx) {
			redundant++
			if o.Strict && redundant > 1 {
				return nil, fmt.Errorf("%w: segment %v", ErrExtraRedundancy, seg)
			}
			continue
		}

		// A planar segment keeps one layer end to end.
		tree.connect(srcIdx, tgtIdx, seg.Source.Lay, towards)
	}

	if o.Strict {
		if !uf.Done() {
			return nil, fmt.Errorf("%w: %d components remain", ErrDisconnected, uf.Sets())
		}
		if redundant != 1 {
			return nil, fmt.Errorf("%w: counted %d", ErrRedundancyCount, redundant)
		}
	}

	return tree, nil
}

// connect records the bidirectional link between two junctions: the source
// gets a pointer in the segment's direction, the target the inverse pointer
// back, both carrying the shared layer.
func (t *Tree) connect(srcIdx, tgtIdx, layer int, towards geom.Towards) {
	t.junctions[srcIdx].setLink(towards, &Pointer{Index: tgtIdx, Layer: layer})
	t.junctions[tgtIdx].setLink(towards.Inv(), &Pointer{Index: srcIdx, Layer: layer})
}

// NewNet builds the junction tree and wraps it with the net's identifier
// and minimum-layer constraint. See NewTree for the construction contract.
func NewNet(id, minLayer int, pins []int, segments []geom.Route[int], pos PinPositionFunc, opts ...Option) (*Net, error) {
	tree, err := NewTree(pins, segments, pos, opts...)
	if err != nil {
		return nil, err
	}

	return &Net{ID: id, MinLayer: minLayer, Tree: tree}, nil
}
