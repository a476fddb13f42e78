package topo

import (
	"errors"
	"math"

	"github.com/routetree-dev/routetree/geom"
)

// Sentinel errors for tree construction.
var (
	// ErrPinNotFound indicates a connected pin with no known position.
	ErrPinNotFound = errors.New("topo: pin not found in database")

	// ErrUnknownEndpoint indicates a segment endpoint that resolves to no
	// junction; the segment set is malformed.
	ErrUnknownEndpoint = errors.New("topo: segment endpoint has no junction")

	// ErrDuplicatePosition indicates two junctions sharing one position;
	// reported by Validate when the deduplication invariant is broken.
	ErrDuplicatePosition = errors.New("topo: duplicate junction position")

	// ErrExtraRedundancy indicates a second cycle-closing segment; at most
	// one redundant segment is tolerated per net.
	ErrExtraRedundancy = errors.New("topo: more than one redundant segment")

	// ErrRedundancyCount indicates the redundancy counter did not end at
	// exactly one (the exact-count contract of well-formed router output).
	ErrRedundancyCount = errors.New("topo: redundant segment count is not one")

	// ErrDisconnected indicates the segments did not connect every junction.
	ErrDisconnected = errors.New("topo: net is not fully connected")
)

// Intact junctions with no links report this sentinel span, read as
// "no via needed here".
const (
	SpanMin = math.MaxInt
	SpanMax = math.MinInt
)

// PinPositionFunc looks up the 2D position of a pin by identifier.
// The second result reports whether the pin is known.
type PinPositionFunc func(pin int) (geom.Pair[int], bool)

// Pointer is one directional link: the index of the neighboring junction in
// the owning Tree and the layer the connecting wire runs on.
type Pointer struct {
	Index int
	Layer int
}

// Junction is a deduplicated position in a net's routing plane.
// Pin is nil for a synthetic bend/via junction introduced only by segment
// geometry. The four link fields are nil when no neighbor lies that way;
// layer-axis directions are never stored as links.
type Junction struct {
	Pin      *int
	Position geom.Pair[int]

	Up, Down, Left, Right *Pointer
}

// Tree is the owning, indexed collection of one net's junctions.
// It is immutable once NewTree returns.
type Tree struct {
	junctions []Junction
}

// Net pairs a net identifier and its minimum usable layer with the junction
// tree. MinLayer is a constraint consumed by external capacity accounting;
// the core's own algorithms do not read it.
type Net struct {
	ID       int
	MinLayer int
	Tree     *Tree
}

// Options configures tree construction. The zero value reproduces release
// behavior: trust the router, keep the dedup map's iteration order.
type Options struct {
	// Strict enables the structural-invariant checks (redundancy bounds,
	// full-connectivity requirement) that are otherwise skipped.
	Strict bool

	// Sorted orders junctions by position (row, then column) before index
	// assignment, making serialization byte-reproducible across runs.
	Sorted bool
}

// Option mutates Options.
type Option func(*Options)

// WithStrictChecks enables the structural-invariant validation during
// construction. Intended for development and diagnostics; production input
// from a trusted router may skip it.
func WithStrictChecks() Option {
	return func(o *Options) { o.Strict = true }
}

// WithSortedJunctions sorts junction positions before assigning indices,
// pinning the collection order (and therefore the serialized line sequence)
// across runs.
func WithSortedJunctions() Option {
	return func(o *Options) { o.Sorted = true }
}
