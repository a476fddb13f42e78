// Package routetree models the physical routing topology of
// integrated-circuit nets: named electrical connections whose geometry
// arrives as an unordered bag of axis-aligned 3D wire segments and pin
// endpoints, and leaves as a single connected, cycle-free tree of routing
// junctions ready for analysis and text serialization.
//
// 🚀 What is routetree?
//
//	A focused library that brings together:
//		• Geometry primitives: grid pairs, routed points, axis-aligned segments
//		• Disjoint-set tree assembly: dedup, union, redundancy accounting
//		• Junction trees: four-directional links, derived via spans
//		• Canonical serialization: via and edge lines in routing grammar
//		• Database records: layers with capacity grids, cells, pins, blockages
//		• An input-format reader and a CLI that ties it all together
//
// ✨ Why choose routetree?
//
//   - Honest validation – structural invariants checked where you ask for them
//   - Immutable trees – construct once, serialize and analyze freely
//   - Pure core – no I/O inside the topology packages
//   - Per-net independence – parallelize across nets with no shared state
//
// Under the hood, everything is organized per concern:
//
//	geom/  — Pair, Point, Route, Towards direction classification
//	dsu/   — union-find over a fixed universe
//	ident/ — prefix-based display names ("M1", "N42") and their inverse
//	topo/  — junction-tree construction, validation, serialization
//	chip/  — layers, capacity grids, master cells, placed cells, conflicts
//	parse/ — the global-routing input format reader
//	cmd/   — the routetree command-line tool
//
// Quick ASCII example — one net, two pins, one segment:
//
//	P1 (0,0) ────layer 1──── P2 (0,3)
//
//	becomes two zero-span junctions joined by a Right/Left link pair,
//	serialized as four via lines and one edge line.
//
// routetree assembles and validates topologies; it never routes. The
// segment sets it consumes must come from a router.
package routetree
