package topo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routetree-dev/routetree/geom"
	"github.com/routetree-dev/routetree/topo"
)

// TestWriteTo_EndToEnd pins the exact serialization of the canonical
// two-pin net: P1 at (0,0) and P2 at (0,3), one segment on layer 1.
// Both junctions are zero-span, so each emits two identical via lines,
// followed by the single edge line.
func TestWriteTo_EndToEnd(t *testing.T) {
	pins := map[int]geom.Pair[int]{
		0: {X: 0, Y: 0},
		1: {X: 0, Y: 3},
	}
	segments := []geom.Route[int]{seg(pt(0, 0, 1), pt(0, 3, 1))}

	net, err := topo.NewNet(0, 0, []int{0, 1}, segments, lookup(pins), topo.WithSortedJunctions())
	require.NoError(t, err)
	require.Equal(t, 2, net.Tree.Len())

	// P1's junction links Right to P2's, P2's links Left back, both layer 1.
	j0, j1 := net.Tree.Junction(0), net.Tree.Junction(1)
	require.NotNil(t, j0.Right)
	assert.Equal(t, topo.Pointer{Index: 1, Layer: 1}, *j0.Right)
	require.NotNil(t, j1.Left)
	assert.Equal(t, topo.Pointer{Index: 0, Layer: 1}, *j1.Left)

	want := "" +
		"0 0 1 N1\n" +
		"0 0 1 N1\n" +
		"0 3 1 N1\n" +
		"0 3 1 N1\n" +
		"0 0 1 0 3 1 N1\n"
	assert.Equal(t, want, net.String())
	assert.Equal(t, 5, net.Lines())
}

// TestWriteTo_EdgeLinesOncePerLink walks a branched net and checks every
// link appears exactly once, with both endpoints on the link's layer.
//
// Geometry:
//
//	(0,0)P1 ──1── (0,2) ──1── (0,4)P2
//	                │2
//	              (3,2)P3
func TestWriteTo_EdgeLinesOncePerLink(t *testing.T) {
	pins := map[int]geom.Pair[int]{
		0: {X: 0, Y: 0},
		1: {X: 0, Y: 4},
		2: {X: 3, Y: 2},
	}
	segments := []geom.Route[int]{
		seg(pt(0, 0, 1), pt(0, 2, 1)),
		seg(pt(0, 2, 1), pt(0, 4, 1)),
		seg(pt(0, 2, 2), pt(3, 2, 2)),
	}

	net, err := topo.NewNet(0, 0, []int{0, 1, 2}, segments, lookup(pins), topo.WithSortedJunctions())
	require.NoError(t, err)
	require.Equal(t, 4, net.Tree.Len())

	out := net.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, net.Lines())

	var edges []string
	for _, ln := range lines {
		if len(strings.Fields(ln)) == 7 {
			edges = append(edges, ln)
		}
	}
	require.Len(t, edges, 3, "three links, three edge lines")

	wantEdges := map[string]bool{
		"0 0 1 0 2 1 N1": false, // emitted from whichever endpoint is reached first
		"0 2 1 0 0 1 N1": false,
		"0 2 1 0 4 1 N1": false,
		"0 4 1 0 2 1 N1": false,
		"0 2 2 3 2 2 N1": false,
		"3 2 2 0 2 2 N1": false,
	}
	for _, e := range edges {
		_, known := wantEdges[e]
		require.True(t, known, "unexpected edge line %q", e)
		require.False(t, wantEdges[e], "edge line %q emitted twice", e)
		wantEdges[e] = true
		// Its reverse orientation must not also appear.
		f := strings.Fields(e)
		rev := strings.Join([]string{f[3], f[4], f[5], f[0], f[1], f[2], f[6]}, " ")
		assert.False(t, wantEdges[rev], "link emitted in both orientations: %q", e)
	}

	// The branch junction at (0,2) spans layers 1..2.
	assert.Contains(t, out, "0 2 1 N1\n")
	assert.Contains(t, out, "0 2 2 N1\n")
}

// TestWriteTo_SingleJunction: a pin-only net has no edges, just the
// sentinel-span via lines of its lone junction.
func TestWriteTo_SingleJunction(t *testing.T) {
	pins := map[int]geom.Pair[int]{0: {X: 7, Y: 8}}
	net, err := topo.NewNet(2, 0, []int{0}, nil, lookup(pins))
	require.NoError(t, err)

	out := net.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	for _, ln := range lines {
		assert.True(t, strings.HasPrefix(ln, "7 8 "), "via line %q keeps the position", ln)
		assert.True(t, strings.HasSuffix(ln, " N3"), "via line %q carries the net name", ln)
	}
}

// TestWriteTo_ByteCount checks the io.WriterTo contract: the returned count
// matches the bytes actually written.
func TestWriteTo_ByteCount(t *testing.T) {
	pins := map[int]geom.Pair[int]{0: {X: 0, Y: 0}, 1: {X: 0, Y: 3}}
	segments := []geom.Route[int]{seg(pt(0, 0, 1), pt(0, 3, 1))}
	net, err := topo.NewNet(0, 0, []int{0, 1}, segments, lookup(pins), topo.WithSortedJunctions())
	require.NoError(t, err)

	var sb strings.Builder
	written, err := net.WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(t, int64(sb.Len()), written)
}
