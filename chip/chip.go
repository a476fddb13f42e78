package chip

import (
	"fmt"

	"github.com/routetree-dev/routetree/geom"
	"github.com/routetree-dev/routetree/ident"
)

// Name returns the layer's display name ("M" + 1-based number).
func (l *Layer) Name() string { return ident.Layer.Name(l.ID) }

// Name returns the master pin's display name ("P" + 1-based number).
func (p MasterPin) Name() string { return ident.Pin.Name(p.ID) }

// Name returns the blockage's display name ("B" + 1-based number).
func (b Blockage) Name() string { return ident.Blockage.Name(b.ID) }

// Name returns the master cell's display name ("MC" + 1-based number).
func (m *MasterCell) Name() string { return ident.MasterCell.Name(m.ID) }

// Name returns the cell instance's display name ("C" + 1-based number).
func (c *Cell) Name() string { return ident.Cell.Name(c.ID) }

// Chip aggregates the routing database: grid dimensions, metal layers,
// master-cell library, placed cells, and the flat pin-instance table that
// net construction resolves positions against.
type Chip struct {
	Dim     geom.Pair[int]
	Layers  []*Layer
	Masters []MasterCell
	Cells   []Cell
	Pins    []PinInst

	// Conflicts maps a master-cell id to the extra-demand conflicts charged
	// when incompatible master types are placed too close together.
	Conflicts map[int][]Conflict
}

// ConflictsOf returns the extra-demand conflicts registered for a master
// cell, or nil when there are none.
func (c *Chip) ConflictsOf(master int) []Conflict {
	return c.Conflicts[master]
}

// PinPosition looks up the 2D position of a placed pin: the position of
// the cell the pin instance belongs to. It satisfies topo.PinPositionFunc.
func (c *Chip) PinPosition(pin int) (geom.Pair[int], bool) {
	if pin < 0 || pin >= len(c.Pins) {
		return geom.Pair[int]{}, false
	}
	cell := c.Pins[pin].Cell
	if cell < 0 || cell >= len(c.Cells) {
		return geom.Pair[int]{}, false
	}

	return c.Cells[cell].Position, true
}

// PinLayer returns the metal layer of a placed pin, taken from its master
// pin definition.
func (c *Chip) PinLayer(pin int) (int, error) {
	if pin < 0 || pin >= len(c.Pins) {
		return 0, fmt.Errorf("chip: pin %d out of range", pin)
	}
	inst := c.Pins[pin]
	if inst.Cell < 0 || inst.Cell >= len(c.Cells) {
		return 0, fmt.Errorf("chip: pin %d references cell %d out of range", pin, inst.Cell)
	}
	master := c.Cells[inst.Cell].Master
	if master < 0 || master >= len(c.Masters) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownMaster, master)
	}
	mc := &c.Masters[master]
	if inst.Master < 0 || inst.Master >= len(mc.Pins) {
		return 0, fmt.Errorf("chip: pin %d references master pin %d of %s out of range",
			pin, inst.Master, mc.Name())
	}

	return mc.Pins[inst.Master].Layer, nil
}

// ApplyBlockages charges every placed cell's master blockages against the
// capacity grids at the cell's position. Out-of-grid cell placements and
// dangling master references are reported, not skipped.
func (c *Chip) ApplyBlockages() error {
	for i := range c.Cells {
		cell := &c.Cells[i]
		if cell.Master < 0 || cell.Master >= len(c.Masters) {
			return fmt.Errorf("%w: cell %s references master %d",
				ErrUnknownMaster, cell.Name(), cell.Master)
		}
		for _, blkg := range c.Masters[cell.Master].Blkgs {
			if blkg.Layer < 0 || blkg.Layer >= len(c.Layers) {
				return fmt.Errorf("chip: blockage %s references layer %d out of range",
					blkg.Name(), blkg.Layer)
			}
			layer := c.Layers[blkg.Layer]
			if err := layer.AddDemand(cell.Position.X, cell.Position.Y, blkg.Demand); err != nil {
				return fmt.Errorf("cell %s: %w", cell.Name(), err)
			}
		}
	}

	return nil
}
