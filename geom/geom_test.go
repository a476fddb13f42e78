// File: geom/geom_test.go
package geom

import (
	"errors"
	"testing"
)

// TestTowards_SingleAxis verifies classification of every signed axis.
func TestTowards_SingleAxis(t *testing.T) {
	cases := []struct {
		name  string
		route Route[int]
		want  Towards
	}{
		{"up", Route[int]{Point[int]{0, 0, 0}, Point[int]{3, 0, 0}}, Up},
		{"down", Route[int]{Point[int]{3, 0, 0}, Point[int]{0, 0, 0}}, Down},
		{"right", Route[int]{Point[int]{0, 0, 0}, Point[int]{0, 2, 0}}, Right},
		{"left", Route[int]{Point[int]{0, 2, 0}, Point[int]{0, 0, 0}}, Left},
		{"top", Route[int]{Point[int]{0, 0, 1}, Point[int]{0, 0, 4}}, Top},
		{"bottom", Route[int]{Point[int]{0, 0, 4}, Point[int]{0, 0, 1}}, Bottom},
	}
	for _, tc := range cases {
		got, err := tc.route.Towards()
		if err != nil {
			t.Fatalf("%s: Towards failed: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %v; want %v", tc.name, got, tc.want)
		}
	}
}

// TestTowards_Malformed ensures degenerate and skew routes fail
// classification instead of returning an arbitrary direction.
func TestTowards_Malformed(t *testing.T) {
	zero := Route[int]{Point[int]{1, 2, 3}, Point[int]{1, 2, 3}}
	if _, err := zero.Towards(); !errors.Is(err, ErrZeroRoute) {
		t.Errorf("zero route: got %v; want ErrZeroRoute", err)
	}

	diag := Route[int]{Point[int]{0, 0, 0}, Point[int]{1, 1, 0}}
	if _, err := diag.Towards(); !errors.Is(err, ErrSkewRoute) {
		t.Errorf("diagonal route: got %v; want ErrSkewRoute", err)
	}

	skew3 := Route[int]{Point[int]{0, 0, 0}, Point[int]{1, 1, 1}}
	if _, err := skew3.Towards(); !errors.Is(err, ErrSkewRoute) {
		t.Errorf("three-axis route: got %v; want ErrSkewRoute", err)
	}
}

// TestTowards_InverseProperty checks that reversing a route inverts its
// direction: Route(s,t).Towards().Inv() == Route(t,s).Towards().
func TestTowards_InverseProperty(t *testing.T) {
	routes := []Route[int]{
		{Point[int]{0, 0, 1}, Point[int]{5, 0, 1}},
		{Point[int]{2, 7, 1}, Point[int]{2, 1, 1}},
		{Point[int]{4, 4, 2}, Point[int]{4, 4, 6}},
	}
	for _, r := range routes {
		fwd, err := r.Towards()
		if err != nil {
			t.Fatalf("forward Towards failed: %v", err)
		}
		rev, err := (Route[int]{Source: r.Target, Target: r.Source}).Towards()
		if err != nil {
			t.Fatalf("reverse Towards failed: %v", err)
		}
		if fwd.Inv() != rev {
			t.Errorf("route %v: fwd.Inv() = %v; reverse = %v", r, fwd.Inv(), rev)
		}
	}
}

// TestInv_Involution checks Inv is its own inverse on all six directions.
func TestInv_Involution(t *testing.T) {
	for _, d := range []Towards{Up, Down, Left, Right, Top, Bottom} {
		if d.Inv().Inv() != d {
			t.Errorf("%v: Inv not an involution", d)
		}
		if d.Inv() == d {
			t.Errorf("%v: Inv must not be identity", d)
		}
	}
}

// TestPlanar partitions the six directions into plane and layer axes.
func TestPlanar(t *testing.T) {
	planar := map[Towards]bool{
		Up: true, Down: true, Left: true, Right: true,
		Top: false, Bottom: false,
	}
	for d, want := range planar {
		if got := d.Planar(); got != want {
			t.Errorf("%v.Planar() = %v; want %v", d, got, want)
		}
	}
}

// TestPairPoint_Conversions covers Size, With and Flatten round-trips.
func TestPairPoint_Conversions(t *testing.T) {
	p := Pair[int]{X: 3, Y: 4}
	if got := p.Size(); got != 12 {
		t.Errorf("Size = %d; want 12", got)
	}

	pt := p.With(2)
	if pt != (Point[int]{Row: 3, Col: 4, Lay: 2}) {
		t.Errorf("With = %+v; want {3 4 2}", pt)
	}
	if pt.Flatten() != p {
		t.Errorf("Flatten = %+v; want %+v", pt.Flatten(), p)
	}
}

// TestString_Formats pins down the space-separated text layout consumed by
// the routing writers.
func TestString_Formats(t *testing.T) {
	pt := Point[int]{Row: 1, Col: 2, Lay: 3}
	if got := pt.String(); got != "1 2 3" {
		t.Errorf("Point.String = %q; want %q", got, "1 2 3")
	}
	r := Route[int]{pt, Point[int]{Row: 1, Col: 5, Lay: 3}}
	if got := r.String(); got != "1 2 3 1 5 3" {
		t.Errorf("Route.String = %q; want %q", got, "1 2 3 1 5 3")
	}
}
