package parse

import (
	"errors"
	"io"
	"log/slog"

	"github.com/routetree-dev/routetree/chip"
	"github.com/routetree-dev/routetree/geom"
)

// Sentinel errors for input reading.
var (
	// ErrSyntax indicates a line that does not match its section's shape.
	ErrSyntax = errors.New("parse: malformed line")

	// ErrUnknownKeyword indicates a line led by an unexpected keyword.
	ErrUnknownKeyword = errors.New("parse: unknown keyword")

	// ErrCount indicates a counted section whose body disagrees with the
	// announced count.
	ErrCount = errors.New("parse: section count mismatch")
)

// NetSpec is one net as read from the input: its identifier, minimum usable
// layer, connected pin instances, and routed segments.
type NetSpec struct {
	ID       int
	MinLayer int
	Pins     []int
	Segments []geom.Route[int]
}

// Problem is the full parsed input.
type Problem struct {
	MaxCellMove int
	Chip        *chip.Chip
	Nets        []NetSpec
}

// Options configures the reader.
type Options struct {
	// Log receives per-section debug records. Nil disables logging.
	Log *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLogger attaches a logger for per-section debug output.
func WithLogger(log *slog.Logger) Option {
	return func(o *Options) { o.Log = log }
}

// discardLogger backs the nil-logger default.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
