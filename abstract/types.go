package abstract

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/allrgb/gridgraph"
	"github.com/katalvlaran/allrgb/palette"
	"github.com/katalvlaran/allrgb/rgb"
)

// ErrOptionViolation indicates that an Option carried an invalid value.
var ErrOptionViolation = errors.New("abstract: invalid option value")

// Options configures Generate.
//
//   - Seed:           RNG seed; 0 selects the fixed default seed.
//   - Order:          traversal used to linearize the spanning tree.
//   - Symmetry:       cube symmetry applied to the palette, unless RandomSymmetry.
//   - RandomSymmetry: draw the symmetry from a stream derived from Seed.
//   - Logger:         receives Debug events per phase.
type Options struct {
	Seed           int64
	Order          gridgraph.Order
	Symmetry       palette.Symmetry
	RandomSymmetry bool
	Logger         zerolog.Logger
}

// Option represents a functional option for configuring Generate.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given.
//
// Defaults:
//   - Seed:           0 (resolved to the default seed 1).
//   - Order:          gridgraph.ShortestFirstDFS.
//   - Symmetry:       palette.Identity.
//   - RandomSymmetry: false.
//   - Logger:         zerolog.Nop().
func DefaultOptions() Options {
	return Options{
		Order:    gridgraph.ShortestFirstDFS,
		Symmetry: palette.Identity,
		Logger:   zerolog.Nop(),
	}
}

// WithSeed sets the RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithOrder selects the tree traversal.
// Unknown orders are reported by Generate as ErrOptionViolation.
func WithOrder(order gridgraph.Order) Option {
	return func(o *Options) {
		o.Order = order
	}
}

// WithSymmetry fixes the palette symmetry and disables the random draw.
// An invalid symmetry is reported by Generate as ErrOptionViolation.
func WithSymmetry(s palette.Symmetry) Option {
	return func(o *Options) {
		o.Symmetry = s
		o.RandomSymmetry = false
	}
}

// WithRandomSymmetry draws one of the 48 cube symmetries from the seed.
func WithRandomSymmetry() Option {
	return func(o *Options) {
		o.RandomSymmetry = true
	}
}

// WithLogger routes Generate's Debug events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Result is the outcome of Generate.
//
// Seed is the effective seed after the zero-seed policy; passing it back via
// WithSeed, with the same Order and Symmetry, reproduces Raster exactly.
type Result struct {
	Raster   *rgb.Raster
	Seed     int64
	Order    gridgraph.Order
	Symmetry palette.Symmetry
	Root     int
}

// HasAllColors reports whether the raster holds each 24-bit color once.
// Complexity: O(N) time, 2 MiB bitmap.
func (r *Result) HasAllColors() bool {
	return palette.HasAllColors(r.Raster.Pix)
}
