// Package imageio moves rgb.Raster values in and out of image files.
// Supports PNG, TIFF and BMP; the format is chosen from the file extension
// when saving and sniffed from the content when loading.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/allrgb/rgb"
)

// ErrUnsupportedFormat indicates a file extension or format name with no encoder.
var ErrUnsupportedFormat = errors.New("imageio: unsupported image format")

// Format names an image encoding.
type Format string

const (
	PNG  Format = "png"
	TIFF Format = "tiff"
	BMP  Format = "bmp"
)

// FormatFromPath maps ".png", ".tif", ".tiff" and ".bmp" (any case) to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".bmp":
		return BMP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// ToImage copies r into an opaque *image.NRGBA.
// Complexity: O(N).
func ToImage(r *rgb.Raster) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Cols, r.Rows))
	for i, c := range r.Pix {
		o := 4 * i
		img.Pix[o] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = 0xff
	}
	return img
}

// FromImage converts any image to a raster, dropping alpha after
// un-premultiplying. NRGBA and opaque RGBA images take a direct copy.
// Complexity: O(N).
func FromImage(img image.Image) *rgb.Raster {
	b := img.Bounds()
	r := &rgb.Raster{Rows: b.Dy(), Cols: b.Dx(), Pix: make([]rgb.Color, b.Dx()*b.Dy())}

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < r.Rows; y++ {
			row := src.Pix[y*src.Stride:]
			for x := 0; x < r.Cols; x++ {
				r.Pix[y*r.Cols+x] = rgb.Color{R: row[4*x], G: row[4*x+1], B: row[4*x+2]}
			}
		}
		return r
	case *image.RGBA:
		if src.Opaque() {
			for y := 0; y < r.Rows; y++ {
				row := src.Pix[y*src.Stride:]
				for x := 0; x < r.Cols; x++ {
					r.Pix[y*r.Cols+x] = rgb.Color{R: row[4*x], G: row[4*x+1], B: row[4*x+2]}
				}
			}
			return r
		}
	}

	for y := 0; y < r.Rows; y++ {
		for x := 0; x < r.Cols; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			r.Pix[y*r.Cols+x] = rgb.Color{R: c.R, G: c.G, B: c.B}
		}
	}
	return r
}

// Encode writes r to w in the given format. TIFF output is Deflate-compressed.
func Encode(w io.Writer, r *rgb.Raster, f Format) error {
	img := ToImage(r)

	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case BMP:
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", f, err)
	}
	return nil
}

// Save writes r to path, choosing the format from the extension.
func Save(path string, r *rgb.Raster) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: failed to create file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("imageio: failed to close file: %w", cerr)
		}
	}()

	return Encode(out, r, f)
}

// Decode reads a PNG, TIFF or BMP image from rd.
func Decode(rd io.Reader) (*rgb.Raster, error) {
	img, _, err := image.Decode(rd)
	if err != nil {
		return nil, fmt.Errorf("imageio: failed to decode image: %w", err)
	}
	return FromImage(img), nil
}

// Load opens and decodes the image at path.
func Load(path string) (*rgb.Raster, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: failed to open image: %w", err)
	}
	defer in.Close()

	return Decode(in)
}
