// Package rgb defines the 8-bit-per-channel color value shared by every
// allrgb package, plus a row-major raster of such colors.
//
// Colors convert to and from the packed web form 0xRRGGBB, which doubles as a
// dense index into the 2^24-entry color space.
package rgb

import (
	"errors"
	"fmt"
)

// NumColors is the number of distinct 24-bit RGB colors.
const NumColors = 1 << 24

// ErrInvalidDimensions is returned by NewRaster for non-positive sizes.
var ErrInvalidDimensions = errors.New("rgb: rows and cols must be positive")

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// FromUint32 converts a packed 0xRRGGBB value to a Color.
// Bits above the low 24 are ignored.
func FromUint32(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Uint32 packs the color as 0xRRGGBB.
func (c Color) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// String formats the color as a web hex code, e.g. "#ff0000".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Raster presents a flat slice of colors as a row-major 2D array.
// Pix[row*Cols+col] holds the color at (row, col).
type Raster struct {
	Rows, Cols int
	Pix        []Color
}

// NewRaster allocates a rows×cols raster filled with black.
// Complexity: O(rows·cols) time and memory.
func NewRaster(rows, cols int) (*Raster, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, rows, cols)
	}
	return &Raster{Rows: rows, Cols: cols, Pix: make([]Color, rows*cols)}, nil
}

// Len returns the number of cells.
func (r *Raster) Len() int {
	return len(r.Pix)
}

// At returns the color at (row, col).
func (r *Raster) At(row, col int) Color {
	return r.Pix[row*r.Cols+col]
}

// Set stores c at (row, col).
func (r *Raster) Set(row, col int, c Color) {
	r.Pix[row*r.Cols+col] = c
}
