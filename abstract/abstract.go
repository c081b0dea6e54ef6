package abstract

import (
	"fmt"
	"time"

	"github.com/katalvlaran/allrgb/gridgraph"
	"github.com/katalvlaran/allrgb/palette"
	"github.com/katalvlaran/allrgb/rgb"
)

// Generate renders a rows×cols abstract image.
//
// Steps:
//  1. Resolve options and the seed.
//  2. Allocate the grid (validates rows and cols).
//  3. Sample rows·cols colors along the curve and apply the symmetry.
//  4. Span the grid with the seed's RNG.
//  5. Traverse the tree and assign palette[i] to pixel order[i].
//
// Returns ErrOptionViolation, gridgraph.ErrInvalidDimensions or
// palette.ErrPaletteTooSmall.
func Generate(rows, cols int, opts ...Option) (*Result, error) {
	// 1. Options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	seed := resolveSeed(o.Seed)
	log := o.Logger.With().Int("rows", rows).Int("cols", cols).Int64("seed", seed).Logger()

	// 2. Grid
	g, err := gridgraph.New(rows, cols)
	if err != nil {
		return nil, err
	}

	// 3. Palette
	start := time.Now()
	p, err := palette.Build(g.Len())
	if err != nil {
		return nil, err
	}
	sym := o.Symmetry
	if o.RandomSymmetry {
		sym = palette.RandomSymmetry(deriveRNG(seed, streamSymmetry))
	}
	palette.ApplySymmetry(p, sym)
	log.Debug().
		Int("colors", len(p)).
		Stringer("symmetry", sym).
		Dur("elapsed", time.Since(start)).
		Msg("palette built")

	// 4. Spanning tree
	start = time.Now()
	if err = g.Span(rngFromSeed(seed)); err != nil {
		return nil, err
	}
	log.Debug().
		Int("root", g.Root()).
		Dur("elapsed", time.Since(start)).
		Msg("spanning tree built")

	// 5. Traversal and assignment
	start = time.Now()
	order, err := g.Traverse(o.Order)
	if err != nil {
		return nil, err
	}
	raster, err := rgb.NewRaster(rows, cols)
	if err != nil {
		return nil, err
	}
	Assign(p, order, raster)
	log.Debug().
		Stringer("order", o.Order).
		Dur("elapsed", time.Since(start)).
		Msg("pixels assigned")

	return &Result{
		Raster:   raster,
		Seed:     seed,
		Order:    o.Order,
		Symmetry: sym,
		Root:     g.Root(),
	}, nil
}

// Assign writes p[i] to dst.Pix[order[i]] for every i.
//
// Panics if len(p), len(order) and dst.Len() differ.
// Complexity: O(N).
func Assign(p []rgb.Color, order []int, dst *rgb.Raster) {
	if len(p) != len(order) || len(order) != dst.Len() {
		panic(fmt.Sprintf("abstract: Assign: palette %d, order %d, raster %d", len(p), len(order), dst.Len()))
	}
	for i, idx := range order {
		dst.Pix[idx] = p[i]
	}
}

func (o *Options) validate() error {
	switch o.Order {
	case gridgraph.ShortestFirstDFS, gridgraph.PreorderDFS, gridgraph.BreadthFirst:
	default:
		return fmt.Errorf("%w: order %v", ErrOptionViolation, o.Order)
	}
	if !o.RandomSymmetry {
		if err := o.Symmetry.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrOptionViolation, err)
		}
	}
	return nil
}
