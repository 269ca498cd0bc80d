package plot

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// A PointCloud is a scatter collection of marker points. Sizes, colors and
// alphas are stored either as a single shared value (length 1) or one value
// per point; offsets are always per point. The element count is fixed at
// construction.
type PointCloud struct {
	offsets []Point
	sizes   []float64
	colors  []colorful.Color
	alphas  []float64
}

// NewPointCloud creates a PointCloud with one shared default size, color
// and alpha across all points.
func NewPointCloud(offsets []Point) *PointCloud {
	c := new(PointCloud)
	c.offsets = append([]Point(nil), offsets...)
	c.sizes = []float64{36}
	base, _ := colorful.Hex("#1f77b4")
	c.colors = []colorful.Color{base}
	c.alphas = []float64{1}
	return c
}

// NewScatter creates a PointCloud from separate x and y slices with the
// given shared marker size.
func NewScatter(xs, ys []float64, size float64) (*PointCloud, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values for %d y values", ErrLengthMismatch, len(xs), len(ys))
	}
	offsets := make([]Point, len(xs))
	for i := range xs {
		offsets[i] = Point{X: xs[i], Y: ys[i]}
	}
	c := NewPointCloud(offsets)
	c.sizes = []float64{size}
	return c, nil
}

func (c *PointCloud) Kind() Kind {
	return KindPointCloud
}

func (c *PointCloud) Len() int {
	return len(c.offsets)
}

// Offsets returns a copy of the per-point positions.
func (c *PointCloud) Offsets() []Point {
	return append([]Point(nil), c.offsets...)
}

// SetOffsets replaces all point positions. The slice length must equal the
// element count.
func (c *PointCloud) SetOffsets(offsets []Point) error {
	if len(offsets) != len(c.offsets) {
		return fmt.Errorf("%w: %d offsets for %d points", ErrLengthMismatch, len(offsets), len(c.offsets))
	}
	copy(c.offsets, offsets)
	return nil
}

// Sizes returns a copy of the marker sizes; length 1 means one shared size.
func (c *PointCloud) Sizes() []float64 {
	return append([]float64(nil), c.sizes...)
}

// SetSizes replaces the marker sizes with either a single shared value or
// one value per point.
func (c *PointCloud) SetSizes(sizes []float64) error {
	if len(sizes) != 1 && len(sizes) != len(c.offsets) {
		return fmt.Errorf("%w: %d sizes for %d points", ErrLengthMismatch, len(sizes), len(c.offsets))
	}
	c.sizes = append([]float64(nil), sizes...)
	return nil
}

// Colors returns a copy of the base colors; length 1 means one shared color.
func (c *PointCloud) Colors() []colorful.Color {
	return append([]colorful.Color(nil), c.colors...)
}

// SetColors replaces the base colors with either a single shared value or
// one value per point.
func (c *PointCloud) SetColors(colors []colorful.Color) error {
	if len(colors) != 1 && len(colors) != len(c.offsets) {
		return fmt.Errorf("%w: %d colors for %d points", ErrLengthMismatch, len(colors), len(c.offsets))
	}
	c.colors = append([]colorful.Color(nil), colors...)
	return nil
}

// Alphas returns a copy of the opacities; length 1 means one shared alpha.
func (c *PointCloud) Alphas() []float64 {
	return append([]float64(nil), c.alphas...)
}

// SetAlphas replaces the opacities with either a single shared value or one
// value per point.
func (c *PointCloud) SetAlphas(alphas []float64) error {
	if len(alphas) != 1 && len(alphas) != len(c.offsets) {
		return fmt.Errorf("%w: %d alphas for %d points", ErrLengthMismatch, len(alphas), len(c.offsets))
	}
	c.alphas = append([]float64(nil), alphas...)
	return nil
}
