package palette

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/allrgb/rgb"
)

// Symmetry maps the color cube onto itself.
//
// Input channel i is first complemented if Invert[i] is set; output channel j
// then takes input channel Axes[j]. The zero value is not valid: use Identity
// or SymmetryFromIndex.
type Symmetry struct {
	Axes   [3]uint8
	Invert [3]bool
}

// Identity leaves every color unchanged.
var Identity = Symmetry{Axes: [3]uint8{0, 1, 2}}

// axisOrders lists the 6 permutations in lexicographic order.
var axisOrders = [6][3]uint8{
	{0, 1, 2},
	{0, 2, 1},
	{1, 0, 2},
	{1, 2, 0},
	{2, 0, 1},
	{2, 1, 0},
}

// SymmetryFromIndex returns symmetry i in a fixed enumeration: i/8 selects the
// axis order, bits 0..2 of i%8 complement R, G, B. Index 0 is Identity.
func SymmetryFromIndex(i int) (Symmetry, error) {
	if i < 0 || i >= NumSymmetries {
		return Symmetry{}, fmt.Errorf("%w: got %d", ErrSymmetryIndex, i)
	}
	mask := i % 8
	return Symmetry{
		Axes:   axisOrders[i/8],
		Invert: [3]bool{mask&1 != 0, mask&2 != 0, mask&4 != 0},
	}, nil
}

// AllSymmetries returns the 48 symmetries in index order.
func AllSymmetries() []Symmetry {
	out := make([]Symmetry, NumSymmetries)
	for i := range out {
		out[i], _ = SymmetryFromIndex(i)
	}
	return out
}

// RandomSymmetry draws one of the 48 symmetries uniformly with a single
// r.Intn(48).
func RandomSymmetry(r Rand) Symmetry {
	s, _ := SymmetryFromIndex(r.Intn(NumSymmetries))
	return s
}

// Validate returns ErrInvalidSymmetry unless Axes is a permutation.
func (s Symmetry) Validate() error {
	var seen [3]bool
	for _, a := range s.Axes {
		if a > 2 || seen[a] {
			return fmt.Errorf("%w: got %v", ErrInvalidSymmetry, s.Axes)
		}
		seen[a] = true
	}
	return nil
}

// Index returns the position of s in the SymmetryFromIndex enumeration,
// or -1 if s is invalid.
func (s Symmetry) Index() int {
	if s.Validate() != nil {
		return -1
	}
	for p, axes := range axisOrders {
		if axes != s.Axes {
			continue
		}
		mask := 0
		for i, inv := range s.Invert {
			if inv {
				mask |= 1 << i
			}
		}
		return p*8 + mask
	}
	return -1
}

// Apply maps a single color through s.
func (s Symmetry) Apply(c rgb.Color) rgb.Color {
	in := [3]uint8{c.R, c.G, c.B}
	for i, inv := range s.Invert {
		if inv {
			in[i] = ^in[i]
		}
	}
	return rgb.Color{R: in[s.Axes[0]], G: in[s.Axes[1]], B: in[s.Axes[2]]}
}

// String describes the output channels in terms of the input, e.g. "(B, ~R, G)".
func (s Symmetry) String() string {
	if s.Validate() != nil {
		return fmt.Sprintf("invalid(%v, %v)", s.Axes, s.Invert)
	}
	const names = "RGB"
	parts := make([]string, 3)
	for j, a := range s.Axes {
		p := names[a : a+1]
		if s.Invert[a] {
			p = "~" + p
		}
		parts[j] = p
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ApplySymmetry maps every entry of p through s in place.
func ApplySymmetry(p []rgb.Color, s Symmetry) {
	for i, c := range p {
		p[i] = s.Apply(c)
	}
}
