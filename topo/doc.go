// Package topo assembles the routed geometry of a net into a validated
// spanning tree of junctions and serializes that tree back into routing
// text.
//
// What:
//
//   - Junction — a deduplicated 2D position, optionally tagged with a pin,
//     holding up to four directional links (Up/Down/Left/Right). Each link
//     carries the index of the neighboring junction and the layer the wire
//     runs on. A junction's vertical via extent is not stored: Span()
//     derives it from the layers of the present links.
//   - Tree — the owning, indexed collection of one net's junctions. Links
//     are indices into the collection, never references, so the mutual
//     up/down/left/right pointers cannot form ownership cycles.
//   - Net — a net id and minimum-layer constraint paired with its Tree;
//     implements io.WriterTo, emitting the canonical via and edge lines.
//
// Construction (NewTree / NewNet):
//
//  1. Deduplicate the flattened endpoints of every segment and the looked-up
//     position of every connected pin into one junction per distinct
//     position (last-written pin tag wins on collision).
//  2. Size a disjoint-set structure to the junction count.
//  3. For every planar segment (Up/Down/Left/Right), union its endpoint
//     junctions; a failed union marks the segment redundant and drops it,
//     a successful one records a bidirectional link on the segment's layer.
//     Layer-axis segments (Top/Bottom) never become links; their vertical
//     information resurfaces through Span().
//
// The tree is immutable after construction. Validate() is an advisory
// re-check (connectivity, link reciprocity, acyclicity) for diagnostics;
// nothing calls it implicitly.
//
// Errors:
//
//   - ErrPinNotFound: a connected pin has no known position.
//   - ErrUnknownEndpoint: a segment endpoint resolves to no junction.
//   - ErrExtraRedundancy, ErrRedundancyCount, ErrDisconnected:
//     structural-invariant violations, reported during construction only
//     under WithStrictChecks (the router that produced the segment set is
//     trusted by default).
//   - ErrDuplicatePosition: reported by Validate when two junctions share a
//     position.
//
// Complexity: construction is O(S·α(J)) over S segments and J junctions;
// serialization is O(J).
package topo
