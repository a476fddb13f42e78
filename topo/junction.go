package topo

import "github.com/routetree-dev/routetree/geom"

// PinID returns the tagged pin identifier, if any.
func (j *Junction) PinID() (int, bool) {
	if j.Pin == nil {
		return 0, false
	}

	return *j.Pin, true
}

// Link returns the junction's link in the given planar direction, or nil.
// Layer-axis directions have no stored links and always return nil.
func (j *Junction) Link(t geom.Towards) *Pointer {
	switch t {
	case geom.Up:
		return j.Up
	case geom.Down:
		return j.Down
	case geom.Left:
		return j.Left
	case geom.Right:
		return j.Right
	default:
		return nil
	}
}

// links lists the four directional link slots in serialization order.
func (j *Junction) links() [4]*Pointer {
	return [4]*Pointer{j.Up, j.Down, j.Left, j.Right}
}

// setLink stores a link in the given planar direction.
func (j *Junction) setLink(t geom.Towards, p *Pointer) {
	switch t {
	case geom.Up:
		j.Up = p
	case geom.Down:
		j.Down = p
	case geom.Left:
		j.Left = p
	case geom.Right:
		j.Right = p
	}
}

// Span derives the vertical via extent at this junction: the minimum and
// maximum layer among its present links. An isolated junction reports the
// (SpanMin, SpanMax) sentinel, meaning no via is needed here.
func (j *Junction) Span() (min, max int) {
	min, max = SpanMin, SpanMax
	for _, p := range j.links() {
		if p == nil {
			continue
		}
		if p.Layer < min {
			min = p.Layer
		}
		if p.Layer > max {
			max = p.Layer
		}
	}

	return min, max
}

// Degree counts the junction's present links.
func (j *Junction) Degree() int {
	d := 0
	for _, p := range j.links() {
		if p != nil {
			d++
		}
	}

	return d
}

// Len returns the number of junctions in the tree.
func (t *Tree) Len() int {
	return len(t.junctions)
}

// Junction returns the junction at index i.
func (t *Tree) Junction(i int) *Junction {
	return &t.junctions[i]
}

// Junctions exposes the owned junction slice for read-only iteration.
// Callers must not mutate it.
func (t *Tree) Junctions() []Junction {
	return t.junctions
}
