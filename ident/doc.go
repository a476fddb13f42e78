// Package ident implements the naming scheme shared by every identified
// entity in the routing database: layers, pins, blockages, master cells,
// cell instances, and nets.
//
// A display name is a per-type prefix followed by a 1-based decimal number;
// the internal identifier is 0-based. "M1" names layer 0, "N42" names
// net 41.
//
// What:
//
//   - Prefix — the per-type string constant ("M", "P", "B", "MC", "C", "N").
//   - Prefix.Name(id)    — internal id → display name (id + 1).
//   - Prefix.Parse(name) — display name → internal id (number − 1).
//
// Parse strips exactly len(prefix) bytes and parses the remainder as an
// unsigned decimal. It does not verify that the stripped bytes match the
// prefix — routing a name to the correct Prefix is the caller's job, the
// same way the input-format reader dispatches on section keywords.
//
// Errors:
//
//   - ErrBadName: the suffix is empty, non-numeric, or zero (external
//     numbering starts at 1).
package ident
