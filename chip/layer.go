package chip

import (
	"fmt"

	"github.com/routetree-dev/routetree/geom"
)

// Layer is one metal layer: its routing direction and a row-major grid of
// remaining routing capacity. Dim.X is the row count, Dim.Y the column
// count; cell (row, col) lives at index row·Dim.Y + col.
type Layer struct {
	ID       int
	Dir      Direction
	Dim      geom.Pair[int]
	Capacity []int
}

// NewLayer builds a layer with every grid at the uniform default supply.
func NewLayer(id int, dir Direction, dim geom.Pair[int], supply int) *Layer {
	capacity := make([]int, dim.Size())
	for i := range capacity {
		capacity[i] = supply
	}

	return &Layer{ID: id, Dir: dir, Dim: dim, Capacity: capacity}
}

// index maps (row, col) to the flat grid index, or reports false when the
// coordinate falls outside the grid.
func (l *Layer) index(row, col int) (int, bool) {
	if row < 0 || row >= l.Dim.X || col < 0 || col >= l.Dim.Y {
		return 0, false
	}

	return row*l.Dim.Y + col, true
}

// CapacityAt returns the remaining capacity of grid (row, col).
func (l *Layer) CapacityAt(row, col int) (int, error) {
	i, ok := l.index(row, col)
	if !ok {
		return 0, fmt.Errorf("%w: (%d, %d) on %s", ErrOutOfGrid, row, col, l.Name())
	}

	return l.Capacity[i], nil
}

// SetCapacity overwrites the capacity of grid (row, col).
func (l *Layer) SetCapacity(row, col, capacity int) error {
	i, ok := l.index(row, col)
	if !ok {
		return fmt.Errorf("%w: (%d, %d) on %s", ErrOutOfGrid, row, col, l.Name())
	}
	l.Capacity[i] = capacity

	return nil
}

// AddDemand charges delta capacity at grid (row, col); negative delta
// releases demand. The remaining capacity is clamped at zero.
func (l *Layer) AddDemand(row, col, delta int) error {
	i, ok := l.index(row, col)
	if !ok {
		return fmt.Errorf("%w: (%d, %d) on %s", ErrOutOfGrid, row, col, l.Name())
	}
	l.Capacity[i] -= delta
	if l.Capacity[i] < 0 {
		l.Capacity[i] = 0
	}

	return nil
}
