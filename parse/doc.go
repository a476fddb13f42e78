// Package parse reads the global-routing input format and produces the
// chip database plus the per-net pin and segment lists that net
// construction consumes.
//
// The format is line-oriented, whitespace-separated, keyword-led. Counted
// sections announce their body size:
//
//	MaxCellMove <n>
//	GGridBoundaryIdx <rowBeg> <colBeg> <rowEnd> <colEnd>
//	NumLayer <n>
//	Lay <name> <idx> <H|V> <defaultSupply>
//	NumNonDefaultSupplyGGrid <n>
//	<row> <col> <layer> <offset>
//	NumMasterCell <n>
//	MasterCell <name> <numPins> <numBlockages>
//	Pin <name> <layerName>
//	Blkg <name> <layerName> <demand>
//	NumNeighborCellExtraDemand <n>
//	<sameGGrid|adjHGGrid> <masterA> <masterB> <layerName> <demand>
//	NumCellInst <n>
//	CellInst <name> <masterName> <row> <col> <Movable|Fixed>
//	NumNets <n>
//	Net <name> <numPins> <minLayerName>
//	Pin <cellName>/<pinName>
//	NumRoutes <n>
//	<row> <col> <lay> <row> <col> <lay> <netName>
//
// Grid coordinates and layer numbers in the file are 1-based; the boundary
// line fixes the grid origin. Rows, columns, and named entities are rebased
// to 0-based internal identifiers on the way in. The layer field of a route
// line passes through untouched: the topology core treats it as opaque
// payload, so serialized output keeps the file's layer numbering.
//
// Errors:
//
//   - ErrSyntax: a line that does not match its section's shape.
//   - ErrUnknownKeyword: a line led by an unexpected keyword.
//   - ErrCount: a counted section whose body disagrees with its header.
//
// All errors carry the 1-based line number of the offending input.
package parse
