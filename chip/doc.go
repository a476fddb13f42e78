// Package chip holds the routing database records surrounding the net
// topology core: metal layers with per-grid capacity, master cells with
// pins and blockages, placed cell instances, and extra-demand conflicts.
//
// What:
//
//   - Layer wraps a row-major capacity grid for one metal layer, with
//     bounds-checked reads and clamped demand adjustments.
//   - MasterPin / Blockage / MasterCell / Conflict / Cell / PinInst are
//     flat attribute records; they carry no algorithm of their own and
//     exist as inputs to capacity accounting and net construction.
//   - Chip aggregates the records and answers the pin-position lookup that
//     topo.NewTree consumes.
//
// Why:
//
//   - Net construction needs exactly one thing from the database: pin id →
//     2D position. Chip supplies it without exposing storage details.
//   - Capacity bookkeeping (default supply, non-default grids, blockage
//     demand) lives here so the topology core can stay pure.
//
// Errors:
//
//   - ErrOutOfGrid: a (row, col) coordinate outside the layer's grid.
//   - ErrUnknownMaster: a cell instance references a master cell that does
//     not exist.
//
// Complexity: all record accessors are O(1); ApplyBlockages is O(cells ×
// blockages per master).
package chip
