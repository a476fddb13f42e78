// Package geom provides the coordinate primitives for routing topology:
// 2D grid pairs, 3D routed points, axis-aligned route segments, and the
// six-valued Towards direction that classifies a segment's displacement.
//
// What:
//
//   - Pair[T]  — (x, y) grid coordinate; Size() = x·y; With(lay) lifts to 3D.
//   - Point[T] — (row, col, lay); Flatten() drops the layer back to a Pair.
//   - Route[T] — a source and a target Point forming one axis-aligned wire
//     segment; Towards() classifies its single non-zero axis.
//   - Towards  — Up/Down (row axis), Left/Right (col axis), Top/Bottom
//     (layer axis); Inv() pairs each direction with its opposite.
//
// Why:
//
//   - Net topology assembly needs cheap value-type coordinates with exact
//     equality, usable as map keys for positional deduplication.
//   - Direction classification is the sole gate deciding whether a segment
//     becomes a planar tree link or an implicit vertical via.
//
// Errors:
//
//   - ErrZeroRoute: source and target coincide; no direction exists.
//   - ErrSkewRoute: more than one axis differs; the segment is not
//     axis-aligned and must not be silently misclassified.
//
// Complexity: every operation is O(1).
package geom
