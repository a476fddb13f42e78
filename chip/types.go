package chip

import (
	"errors"

	"github.com/routetree-dev/routetree/geom"
)

// Sentinel errors for database operations.
var (
	// ErrOutOfGrid indicates a coordinate outside a layer's grid.
	ErrOutOfGrid = errors.New("chip: grid coordinate out of range")

	// ErrUnknownMaster indicates a cell referencing a non-existent master cell.
	ErrUnknownMaster = errors.New("chip: unknown master cell")
)

// Direction is the preferred routing direction of a metal layer.
type Direction int

const (
	// Horizontal layers route along the column axis.
	Horizontal Direction = iota
	// Vertical layers route along the row axis.
	Vertical
)

// String names the direction with the input format's single-letter code.
func (d Direction) String() string {
	if d == Horizontal {
		return "H"
	}

	return "V"
}

// CellKind reports whether a placed cell may be moved.
type CellKind int

const (
	// Movable cells may be relocated by the optimizer.
	Movable CellKind = iota
	// Fixed cells must stay where placed.
	Fixed
)

// ConflictKind distinguishes the two extra-demand conditions between
// master-cell types placed too close together.
type ConflictKind int

const (
	// AdjHGGrid applies when the cells sit on horizontally adjacent grids.
	AdjHGGrid ConflictKind = iota
	// SameGGrid applies when the cells share one grid.
	SameGGrid
)

// MasterPin is one pin of a master cell, bound to a metal layer.
type MasterPin struct {
	ID    int
	Layer int
}

// Blockage is a routing blockage of a master cell: it costs Demand
// capacity on Layer at whatever grid the cell lands on.
type Blockage struct {
	ID     int
	Layer  int
	Demand int
}

// MasterCell is a cell type: its pins and blockages.
type MasterCell struct {
	ID    int
	Pins  []MasterPin
	Blkgs []Blockage
}

// Conflict is an extra demand charged when certain master-cell types are
// placed too close for comfort. ID names the other master cell.
type Conflict struct {
	Kind   ConflictKind
	ID     int
	Layer  int
	Demand int
}

// Cell is a placed instance of a master cell.
type Cell struct {
	ID       int
	Kind     CellKind
	Master   int
	Position geom.Pair[int]
}

// PinInst is one placed pin: the flat identifier net construction uses,
// plus the cell it belongs to and the master pin it instantiates.
type PinInst struct {
	ID     int
	Cell   int
	Master int
}
