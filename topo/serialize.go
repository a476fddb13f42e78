package topo

import (
	"fmt"
	"io"
	"strings"

	"github.com/routetree-dev/routetree/geom"
	"github.com/routetree-dev/routetree/ident"
)

// walkOrder fixes the direction sequence of the serialization traversal.
var walkOrder = [4]geom.Towards{geom.Up, geom.Down, geom.Left, geom.Right}

// Name returns the net's display name ("N" + 1-based number).
func (n *Net) Name() string {
	return ident.Net.Name(n.ID)
}

// Lines reports how many records WriteTo emits: two via lines per junction
// plus one edge line per stored link pair.
func (n *Net) Lines() int {
	links := 0
	for i := range n.Tree.junctions {
		links += n.Tree.junctions[i].Degree()
	}

	return 2*n.Tree.Len() + links/2
}

// WriteTo serializes the net in the canonical routing grammar.
//
// For each junction, in collection order, two via lines are emitted:
//
//	<row> <col> <min-span-layer> <net-name>
//	<row> <col> <max-span-layer> <net-name>
//
// A zero-span junction emits two identical lines, signaling that no
// physical via is needed there. Then, rooted at the first junction, the
// tree is walked once per direction and one edge line is emitted per link:
//
//	<src-row> <src-col> <layer> <tgt-row> <tgt-col> <layer> <net-name>
//
// Construction guarantees the link graph is a tree, so the walk visits each
// link exactly once and needs no visited set.
func (n *Net) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	name := n.Name()

	for i := range n.Tree.junctions {
		j := &n.Tree.junctions[i]
		min, max := j.Span()
		if _, err := fmt.Fprintf(cw, "%d %d %d %s\n", j.Position.X, j.Position.Y, min, name); err != nil {
			return cw.n, err
		}
		if _, err := fmt.Fprintf(cw, "%d %d %d %s\n", j.Position.X, j.Position.Y, max, name); err != nil {
			return cw.n, err
		}
	}

	if n.Tree.Len() > 0 {
		for _, dir := range walkOrder {
			if err := n.writeBranch(cw, name, 0, dir); err != nil {
				return cw.n, err
			}
		}
	}

	return cw.n, nil
}

// writeBranch follows the single link of junction idx in direction dir, if
// present: it emits the edge line and hands the neighbor to writeSubtree.
func (n *Net) writeBranch(w io.Writer, name string, idx int, dir geom.Towards) error {
	j := &n.Tree.junctions[idx]
	p := j.Link(dir)
	if p == nil {
		return nil
	}

	if err := n.writeEdge(w, name, j, p); err != nil {
		return err
	}

	return n.writeSubtree(w, name, p.Index, dir)
}

// writeSubtree continues the walk at junction idx, reached by moving in
// direction arrived. Every present link except the reverse of arrived is
// emitted and recursed into.
func (n *Net) writeSubtree(w io.Writer, name string, idx int, arrived geom.Towards) error {
	j := &n.Tree.junctions[idx]
	for _, dir := range walkOrder {
		if dir == arrived.Inv() {
			continue
		}
		p := j.Link(dir)
		if p == nil {
			continue
		}

		if err := n.writeEdge(w, name, j, p); err != nil {
			return err
		}
		if err := n.writeSubtree(w, name, p.Index, dir); err != nil {
			return err
		}
	}

	return nil
}

// writeEdge emits one edge line: both endpoints lifted onto the link's layer.
func (n *Net) writeEdge(w io.Writer, name string, j *Junction, p *Pointer) error {
	src := j.Position.With(p.Layer)
	tgt := n.Tree.junctions[p.Index].Position.With(p.Layer)
	_, err := fmt.Fprintf(w, "%s %s %s\n", src, tgt, name)

	return err
}

// String renders the full serialization in memory.
func (n *Net) String() string {
	var sb strings.Builder
	_, _ = n.WriteTo(&sb)

	return sb.String()
}

// countWriter tracks bytes written for the io.WriterTo contract.
type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (int, error) {
	m, err := cw.w.Write(p)
	cw.n += int64(m)

	return m, err
}
