package geom

import "fmt"

// Size returns X·Y, the number of grid cells a Pair spans when read as
// grid dimensions.
func (p Pair[T]) Size() T {
	return p.X * p.Y
}

// With lifts a 2D Pair onto the given layer, producing a Point.
func (p Pair[T]) With(lay T) Point[T] {
	return Point[T]{Row: p.X, Col: p.Y, Lay: lay}
}

// String renders the pair as "x y".
func (p Pair[T]) String() string {
	return fmt.Sprintf("%v %v", p.X, p.Y)
}

// Flatten drops the layer coordinate, projecting the Point onto the 2D grid.
func (p Point[T]) Flatten() Pair[T] {
	return Pair[T]{X: p.Row, Y: p.Col}
}

// String renders the point as "row col lay", the field order used by the
// routing text format.
func (p Point[T]) String() string {
	return fmt.Sprintf("%v %v %v", p.Row, p.Col, p.Lay)
}

// String renders the route as "srow scol slay trow tcol tlay".
func (r Route[T]) String() string {
	return fmt.Sprintf("%v %v", r.Source, r.Target)
}

// Towards classifies the displacement Target − Source.
//
// Contract: exactly one of {row, col, lay} may differ, and that difference
// must be non-zero. A zero displacement yields ErrZeroRoute; a displacement
// on two or more axes yields ErrSkewRoute. The sign of the single non-zero
// axis selects the direction: positive row ⇒ Up, negative row ⇒ Down,
// positive col ⇒ Right, negative col ⇒ Left, positive lay ⇒ Top,
// negative lay ⇒ Bottom.
func (r Route[T]) Towards() (Towards, error) {
	dRow := r.Target.Row - r.Source.Row
	dCol := r.Target.Col - r.Source.Col
	dLay := r.Target.Lay - r.Source.Lay

	var zero T
	axes := 0
	if dRow != zero {
		axes++
	}
	if dCol != zero {
		axes++
	}
	if dLay != zero {
		axes++
	}
	switch {
	case axes == 0:
		return 0, ErrZeroRoute
	case axes > 1:
		return 0, ErrSkewRoute
	}

	switch {
	case dRow > zero:
		return Up, nil
	case dRow < zero:
		return Down, nil
	case dCol > zero:
		return Right, nil
	case dCol < zero:
		return Left, nil
	case dLay > zero:
		return Top, nil
	default:
		return Bottom, nil
	}
}

// Inv returns the opposite direction. Inv is an involution:
// t.Inv().Inv() == t for every t.
func (t Towards) Inv() Towards {
	switch t {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case Top:
		return Bottom
	default:
		return Top
	}
}

// Planar reports whether t runs inside the routing plane (row or column
// axis). Top and Bottom are layer-axis directions and never become stored
// tree links.
func (t Towards) Planar() bool {
	switch t {
	case Up, Down, Left, Right:
		return true
	default:
		return false
	}
}

// String names the direction for logs and diagnostics.
func (t Towards) String() string {
	switch t {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("towards(%d)", int(t))
	}
}
