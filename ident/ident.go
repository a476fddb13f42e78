package ident

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrBadName indicates a display name whose numeric suffix is empty,
// non-numeric, or zero.
var ErrBadName = errors.New("ident: malformed name suffix")

// Prefix is the per-type leading string of a display name.
type Prefix string

// The prefixes used by the routing text format.
const (
	Layer      Prefix = "M"
	Pin        Prefix = "P"
	Blockage   Prefix = "B"
	MasterCell Prefix = "MC"
	Cell       Prefix = "C"
	Net        Prefix = "N"
)

// Name formats the 0-based internal id as its 1-based display name.
func (p Prefix) Name(id int) string {
	return string(p) + strconv.Itoa(id+1)
}

// Parse inverts Name: it strips len(p) bytes, parses the remainder as an
// unsigned decimal, and subtracts 1. The stripped bytes are not compared
// against p. Returns ErrBadName (wrapped with the offending name) when the
// suffix is missing, non-numeric, or zero.
func (p Prefix) Parse(name string) (int, error) {
	if len(name) < len(p) {
		return 0, fmt.Errorf("%w: %q", ErrBadName, name)
	}
	suffix := name[len(p):]

	n, err := strconv.ParseUint(suffix, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadName, name)
	}
	if n == 0 {
		// External numbering is 1-based; there is no entity number 0.
		return 0, fmt.Errorf("%w: %q", ErrBadName, name)
	}

	return int(n) - 1, nil
}
