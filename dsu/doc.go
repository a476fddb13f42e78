// Package dsu implements a disjoint-set (union-find) structure over a fixed
// universe of integer elements 0..n-1.
//
// What:
//
//   - New(n) starts with every element in its own singleton set.
//   - Union(a, b) merges two sets and reports whether a merge happened;
//     false means the edge (a, b) was redundant.
//   - Find(a) returns the current set representative.
//   - Done() reports whether everything has collapsed into a single set.
//
// Why:
//
//   - Spanning-tree assembly needs exactly two connectivity answers per
//     candidate edge: "would this edge close a cycle?" (Union result) and
//     "is the whole net connected yet?" (Done).
//
// Path compression and union by rank give near-constant amortized cost per
// operation (inverse Ackermann). Correctness does not depend on either
// optimization, only on accurate connectivity reporting.
//
// Element indices outside [0, n) panic the way an out-of-range slice index
// would; callers own bounds discipline.
package dsu
