package parse

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/routetree-dev/routetree/chip"
	"github.com/routetree-dev/routetree/geom"
	"github.com/routetree-dev/routetree/ident"
)

// Parse reads a complete global-routing input from r.
//
// Sections are read in the fixed order documented in the package comment.
// Grid coordinates are rebased by the boundary offsets and display names
// become 0-based internal identifiers; route-line layer numbers pass
// through untouched.
func Parse(r io.Reader, opts ...Option) (*Problem, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Log == nil {
		o.Log = discardLogger
	}

	rd := &reader{sc: bufio.NewScanner(r), log: o.Log}
	rd.sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	prob, err := rd.parse()
	if err != nil {
		return nil, err
	}

	return prob, nil
}

// reader carries the scanner state and the grid rebasing offsets.
type reader struct {
	sc   *bufio.Scanner
	line int
	log  *slog.Logger

	rowOff, colOff int
}

func (rd *reader) parse() (*Problem, error) {
	c := &chip.Chip{Conflicts: map[int][]chip.Conflict{}}
	prob := &Problem{Chip: c}

	// MaxCellMove
	f, err := rd.expect("MaxCellMove", 2)
	if err != nil {
		return nil, err
	}
	if prob.MaxCellMove, err = rd.atoi(f[1]); err != nil {
		return nil, err
	}

	// GGridBoundaryIdx
	if err := rd.parseBoundary(c); err != nil {
		return nil, err
	}
	if err := rd.parseLayers(c); err != nil {
		return nil, err
	}
	if err := rd.parseSupplyOverrides(c); err != nil {
		return nil, err
	}
	if err := rd.parseMasters(c); err != nil {
		return nil, err
	}
	if err := rd.parseConflicts(c); err != nil {
		return nil, err
	}
	if err := rd.parseCells(c); err != nil {
		return nil, err
	}
	if err := rd.parseNets(prob); err != nil {
		return nil, err
	}
	if err := rd.parseRoutes(prob); err != nil {
		return nil, err
	}

	// Anything after the routes section is unexpected.
	if f, err := rd.next(); err == nil {
		return nil, rd.errf(ErrUnknownKeyword, "%s", f[0])
	}

	return prob, nil
}

func (rd *reader) parseBoundary(c *chip.Chip) error {
	f, err := rd.expect("GGridBoundaryIdx", 5)
	if err != nil {
		return err
	}
	vals := make([]int, 4)
	for i, s := range f[1:] {
		if vals[i], err = rd.atoi(s); err != nil {
			return err
		}
	}
	rd.rowOff, rd.colOff = vals[0], vals[1]
	c.Dim = geom.Pair[int]{X: vals[2] - vals[0] + 1, Y: vals[3] - vals[1] + 1}
	if c.Dim.X <= 0 || c.Dim.Y <= 0 {
		return rd.errf(ErrSyntax, "empty grid boundary")
	}

	return nil
}

func (rd *reader) parseLayers(c *chip.Chip) error {
	n, err := rd.count("NumLayer")
	if err != nil {
		return err
	}
	c.Layers = make([]*chip.Layer, n)
	for i := 0; i < n; i++ {
		f, err := rd.section("Lay", 5)
		if err != nil {
			return err
		}
		id, err := ident.Layer.Parse(f[1])
		if err != nil {
			return rd.wrap(err)
		}
		idx, err := rd.atoi(f[2])
		if err != nil {
			return err
		}
		if idx-1 != id || id < 0 || id >= n {
			return rd.errf(ErrSyntax, "layer %s numbered %d", f[1], idx)
		}
		var dir chip.Direction
		switch f[3] {
		case "H":
			dir = chip.Horizontal
		case "V":
			dir = chip.Vertical
		default:
			return rd.errf(ErrSyntax, "layer direction %q", f[3])
		}
		supply, err := rd.atoi(f[4])
		if err != nil {
			return err
		}
		c.Layers[id] = chip.NewLayer(id, dir, c.Dim, supply)
	}
	rd.log.Debug("parsed layers", "count", n)

	return nil
}

func (rd *reader) parseSupplyOverrides(c *chip.Chip) error {
	n, err := rd.count("NumNonDefaultSupplyGGrid")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		f, err := rd.body(4)
		if err != nil {
			return err
		}
		vals := make([]int, 4)
		for j, s := range f {
			if vals[j], err = rd.atoi(s); err != nil {
				return err
			}
		}
		lay := vals[2] - 1
		if lay < 0 || lay >= len(c.Layers) {
			return rd.errf(ErrSyntax, "layer %d out of range", vals[2])
		}
		// The offset adds to (or subtracts from) the default supply.
		if err := c.Layers[lay].AddDemand(vals[0]-rd.rowOff, vals[1]-rd.colOff, -vals[3]); err != nil {
			return rd.wrap(err)
		}
	}
	rd.log.Debug("parsed supply overrides", "count", n)

	return nil
}

func (rd *reader) parseMasters(c *chip.Chip) error {
	n, err := rd.count("NumMasterCell")
	if err != nil {
		return err
	}
	c.Masters = make([]chip.MasterCell, n)
	for i := 0; i < n; i++ {
		f, err := rd.section("MasterCell", 4)
		if err != nil {
			return err
		}
		id, err := ident.MasterCell.Parse(f[1])
		if err != nil {
			return rd.wrap(err)
		}
		if id < 0 || id >= n {
			return rd.errf(ErrSyntax, "master cell %s out of range", f[1])
		}
		numPins, err := rd.atoi(f[2])
		if err != nil {
			return err
		}
		numBlkgs, err := rd.atoi(f[3])
		if err != nil {
			return err
		}

		mc := chip.MasterCell{ID: id}
		for p := 0; p < numPins; p++ {
			pf, err := rd.section("Pin", 3)
			if err != nil {
				return err
			}
			pinID, err := ident.Pin.Parse(pf[1])
			if err != nil {
				return rd.wrap(err)
			}
			lay, err := ident.Layer.Parse(pf[2])
			if err != nil {
				return rd.wrap(err)
			}
			mc.Pins = append(mc.Pins, chip.MasterPin{ID: pinID, Layer: lay})
		}
		for b := 0; b < numBlkgs; b++ {
			bf, err := rd.section("Blkg", 4)
			if err != nil {
				return err
			}
			blkgID, err := ident.Blockage.Parse(bf[1])
			if err != nil {
				return rd.wrap(err)
			}
			lay, err := ident.Layer.Parse(bf[2])
			if err != nil {
				return rd.wrap(err)
			}
			demand, err := rd.atoi(bf[3])
			if err != nil {
				return err
			}
			mc.Blkgs = append(mc.Blkgs, chip.Blockage{ID: blkgID, Layer: lay, Demand: demand})
		}
		c.Masters[id] = mc
	}
	rd.log.Debug("parsed master cells", "count", n)

	return nil
}

func (rd *reader) parseConflicts(c *chip.Chip) error {
	n, err := rd.count("NumNeighborCellExtraDemand")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		f, err := rd.body(5)
		if err != nil {
			return err
		}
		var kind chip.ConflictKind
		switch f[0] {
		case "sameGGrid":
			kind = chip.SameGGrid
		case "adjHGGrid":
			kind = chip.AdjHGGrid
		default:
			return rd.errf(ErrSyntax, "conflict kind %q", f[0])
		}
		a, err := ident.MasterCell.Parse(f[1])
		if err != nil {
			return rd.wrap(err)
		}
		b, err := ident.MasterCell.Parse(f[2])
		if err != nil {
			return rd.wrap(err)
		}
		lay, err := ident.Layer.Parse(f[3])
		if err != nil {
			return rd.wrap(err)
		}
		demand, err := rd.atoi(f[4])
		if err != nil {
			return err
		}

		c.Conflicts[a] = append(c.Conflicts[a], chip.Conflict{Kind: kind, ID: b, Layer: lay, Demand: demand})
		if a != b {
			c.Conflicts[b] = append(c.Conflicts[b], chip.Conflict{Kind: kind, ID: a, Layer: lay, Demand: demand})
		}
	}
	rd.log.Debug("parsed conflicts", "count", n)

	return nil
}

func (rd *reader) parseCells(c *chip.Chip) error {
	n, err := rd.count("NumCellInst")
	if err != nil {
		return err
	}
	c.Cells = make([]chip.Cell, n)
	for i := 0; i < n; i++ {
		f, err := rd.section("CellInst", 6)
		if err != nil {
			return err
		}
		id, err := ident.Cell.Parse(f[1])
		if err != nil {
			return rd.wrap(err)
		}
		if id < 0 || id >= n {
			return rd.errf(ErrSyntax, "cell %s out of range", f[1])
		}
		master, err := ident.MasterCell.Parse(f[2])
		if err != nil {
			return rd.wrap(err)
		}
		if master < 0 || master >= len(c.Masters) {
			return rd.errf(ErrSyntax, "cell %s references unknown master %s", f[1], f[2])
		}
		row, err := rd.atoi(f[3])
		if err != nil {
			return err
		}
		col, err := rd.atoi(f[4])
		if err != nil {
			return err
		}
		var kind chip.CellKind
		switch f[5] {
		case "Movable":
			kind = chip.Movable
		case "Fixed":
			kind = chip.Fixed
		default:
			return rd.errf(ErrSyntax, "cell kind %q", f[5])
		}
		c.Cells[id] = chip.Cell{
			ID:       id,
			Kind:     kind,
			Master:   master,
			Position: geom.Pair[int]{X: row - rd.rowOff, Y: col - rd.colOff},
		}
	}

	// Flatten every cell's master pins into the global pin-instance table.
	for id := range c.Cells {
		for m := range c.Masters[c.Cells[id].Master].Pins {
			c.Pins = append(c.Pins, chip.PinInst{ID: len(c.Pins), Cell: id, Master: m})
		}
	}
	rd.log.Debug("parsed cells", "count", n, "pins", len(c.Pins))

	return nil
}

func (rd *reader) parseNets(prob *Problem) error {
	n, err := rd.count("NumNets")
	if err != nil {
		return err
	}
	c := prob.Chip

	// Pin instances were appended in cell order; record each cell's base.
	base := make([]int, len(c.Cells)+1)
	for i := range c.Cells {
		base[i+1] = base[i] + len(c.Masters[c.Cells[i].Master].Pins)
	}

	prob.Nets = make([]NetSpec, n)
	for i := 0; i < n; i++ {
		f, err := rd.section("Net", 4)
		if err != nil {
			return err
		}
		id, err := ident.Net.Parse(f[1])
		if err != nil {
			return rd.wrap(err)
		}
		if id < 0 || id >= n {
			return rd.errf(ErrSyntax, "net %s out of range", f[1])
		}
		numPins, err := rd.atoi(f[2])
		if err != nil {
			return err
		}
		minLayer, err := ident.Layer.Parse(f[3])
		if err != nil {
			return rd.wrap(err)
		}

		spec := NetSpec{ID: id, MinLayer: minLayer}
		for p := 0; p < numPins; p++ {
			pf, err := rd.section("Pin", 2)
			if err != nil {
				return err
			}
			cellName, pinName, ok := strings.Cut(pf[1], "/")
			if !ok {
				return rd.errf(ErrSyntax, "net pin %q", pf[1])
			}
			cell, err := ident.Cell.Parse(cellName)
			if err != nil {
				return rd.wrap(err)
			}
			if cell < 0 || cell >= len(c.Cells) {
				return rd.errf(ErrSyntax, "net pin %q references unknown cell", pf[1])
			}
			pinID, err := ident.Pin.Parse(pinName)
			if err != nil {
				return rd.wrap(err)
			}
			pins := c.Masters[c.Cells[cell].Master].Pins
			idx := -1
			for m := range pins {
				if pins[m].ID == pinID {
					idx = m
					break
				}
			}
			if idx < 0 {
				return rd.errf(ErrSyntax, "net pin %q not on master cell", pf[1])
			}
			spec.Pins = append(spec.Pins, base[cell]+idx)
		}
		prob.Nets[id] = spec
	}
	rd.log.Debug("parsed nets", "count", n)

	return nil
}

func (rd *reader) parseRoutes(prob *Problem) error {
	n, err := rd.count("NumRoutes")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		f, err := rd.body(7)
		if err != nil {
			return err
		}
		vals := make([]int, 6)
		for j, s := range f[:6] {
			if vals[j], err = rd.atoi(s); err != nil {
				return err
			}
		}
		id, err := ident.Net.Parse(f[6])
		if err != nil {
			return rd.wrap(err)
		}
		if id < 0 || id >= len(prob.Nets) {
			return rd.errf(ErrSyntax, "route names unknown net %s", f[6])
		}
		// Rows and columns are rebased onto the internal grid; layer numbers
		// pass through untouched so serialized output keeps the file's
		// numbering.
		seg := geom.Route[int]{
			Source: geom.Point[int]{Row: vals[0] - rd.rowOff, Col: vals[1] - rd.colOff, Lay: vals[2]},
			Target: geom.Point[int]{Row: vals[3] - rd.rowOff, Col: vals[4] - rd.colOff, Lay: vals[5]},
		}
		prob.Nets[id].Segments = append(prob.Nets[id].Segments, seg)
	}
	rd.log.Debug("parsed routes", "count", n)

	return nil
}

// next returns the fields of the next non-blank line.
func (rd *reader) next() ([]string, error) {
	for rd.sc.Scan() {
		rd.line++
		f := strings.Fields(rd.sc.Text())
		if len(f) > 0 {
			return f, nil
		}
	}
	if err := rd.sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: line %d: %w", rd.line, err)
	}

	return nil, io.EOF
}

// expect reads the next line and requires the given keyword and field count.
func (rd *reader) expect(keyword string, fields int) ([]string, error) {
	f, err := rd.next()
	if err != nil {
		return nil, rd.errf(ErrSyntax, "expected %s section", keyword)
	}
	if f[0] != keyword {
		return nil, rd.errf(ErrUnknownKeyword, "%s (expected %s)", f[0], keyword)
	}
	if len(f) != fields {
		return nil, rd.errf(ErrSyntax, "%s takes %d fields, got %d", keyword, fields-1, len(f)-1)
	}

	return f, nil
}

// section reads one body line of a counted section led by a keyword.
// A different keyword means the body ended before the announced count.
func (rd *reader) section(keyword string, fields int) ([]string, error) {
	f, err := rd.next()
	if err != nil {
		return nil, rd.errf(ErrCount, "%s section ended early", keyword)
	}
	if f[0] != keyword {
		return nil, rd.errf(ErrCount, "expected %s, got %s", keyword, f[0])
	}
	if len(f) != fields {
		return nil, rd.errf(ErrSyntax, "%s takes %d fields, got %d", keyword, fields-1, len(f)-1)
	}

	return f, nil
}

// body reads one bare (keyword-less) body line of a counted section.
func (rd *reader) body(fields int) ([]string, error) {
	f, err := rd.next()
	if err != nil {
		return nil, rd.errf(ErrCount, "section ended early")
	}
	if len(f) != fields {
		return nil, rd.errf(ErrSyntax, "expected %d fields, got %d", fields, len(f))
	}

	return f, nil
}

// count reads a "<keyword> <n>" header and returns n.
func (rd *reader) count(keyword string) (int, error) {
	f, err := rd.expect(keyword, 2)
	if err != nil {
		return 0, err
	}
	n, err := rd.atoi(f[1])
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, rd.errf(ErrSyntax, "%s is negative", keyword)
	}

	return n, nil
}

// atoi parses a decimal field, wrapping failures as syntax errors.
func (rd *reader) atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, rd.errf(ErrSyntax, "number %q", s)
	}

	return n, nil
}

// errf builds a line-tagged error wrapping the given sentinel.
func (rd *reader) errf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s", rd.line, sentinel, fmt.Sprintf(format, args...))
}

// wrap tags an error from a collaborating package with the current line.
func (rd *reader) wrap(err error) error {
	return fmt.Errorf("line %d: %w", rd.line, err)
}
