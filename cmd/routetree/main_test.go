package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routetree-dev/routetree/geom"
	"github.com/routetree-dev/routetree/topo"
)

// TestWriteOutput checks the output framing: the moved-cell header, the
// total line count, then each net's serialization.
func TestWriteOutput(t *testing.T) {
	positions := map[int]geom.Pair[int]{0: {X: 0, Y: 0}, 1: {X: 0, Y: 3}}
	net, err := topo.NewNet(0, 0, []int{0, 1},
		[]geom.Route[int]{{
			Source: geom.Point[int]{Row: 0, Col: 0, Lay: 1},
			Target: geom.Point[int]{Row: 0, Col: 3, Lay: 1},
		}},
		func(pin int) (geom.Pair[int], bool) { p, ok := positions[pin]; return p, ok },
		topo.WithSortedJunctions(),
	)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, writeOutput(&sb, []*topo.Net{net}, net.Lines()))

	want := "NumMovedCellInst 0\n" +
		"NumRoutes 5\n" +
		"0 0 1 N1\n" +
		"0 0 1 N1\n" +
		"0 3 1 N1\n" +
		"0 3 1 N1\n" +
		"0 0 1 0 3 1 N1\n"
	assert.Equal(t, want, sb.String())
}

// TestRootCmd_Flags confirms the flag surface stays stable.
func TestRootCmd_Flags(t *testing.T) {
	cmd := rootCmd()
	for _, name := range []string{"input", "output", "strict", "sorted", "verbose"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag --%s", name)
	}
	sorted, err := cmd.Flags().GetBool("sorted")
	require.NoError(t, err)
	assert.True(t, sorted, "output is reproducible by default")
}
