package geom

import "errors"

// Sentinel errors for route classification.
var (
	// ErrZeroRoute indicates a degenerate segment whose source and target coincide.
	ErrZeroRoute = errors.New("geom: zero-length route has no direction")

	// ErrSkewRoute indicates a segment differing on more than one axis.
	ErrSkewRoute = errors.New("geom: route is not axis-aligned")
)

// Number bounds the coordinate kinds a Pair, Point, or Route may carry.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Towards encodes the signed axis of an axis-aligned displacement.
// Up/Down run along the row axis, Left/Right along the column axis,
// Top/Bottom along the layer axis.
type Towards int

const (
	// Up is a positive row displacement.
	Up Towards = iota
	// Down is a negative row displacement.
	Down
	// Left is a negative column displacement.
	Left
	// Right is a positive column displacement.
	Right
	// Top is a positive layer displacement.
	Top
	// Bottom is a negative layer displacement.
	Bottom
)

// Pair is a 2D grid coordinate (X = row count axis, Y = column count axis).
type Pair[T Number] struct {
	X, Y T
}

// Point is a 3D routed coordinate: grid row, grid column, metal layer.
type Point[T Number] struct {
	Row, Col, Lay T
}

// Route is one axis-aligned wire segment from Source to Target.
// A well-formed Route differs from Source to Target on exactly one axis.
type Route[T Number] struct {
	Source, Target Point[T]
}
