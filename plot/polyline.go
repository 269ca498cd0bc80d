package plot

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// A Polyline is a connected line through an ordered sequence of vertices.
// Color, alpha, line width and marker size are shared by the whole line;
// a polyline cannot style individual vertices.
type Polyline struct {
	xs         []float64
	ys         []float64
	color      colorful.Color
	alpha      float64
	lineWidth  float64
	markerSize float64
}

// NewPolyline creates a Polyline through the given vertices with default
// style values.
func NewPolyline(xs, ys []float64) (*Polyline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values for %d y values", ErrLengthMismatch, len(xs), len(ys))
	}
	l := new(Polyline)
	l.xs = append([]float64(nil), xs...)
	l.ys = append([]float64(nil), ys...)
	l.color, _ = colorful.Hex("#1f77b4")
	l.alpha = 1
	l.lineWidth = 1.5
	l.markerSize = 6
	return l, nil
}

func (l *Polyline) Kind() Kind {
	return KindPolyline
}

func (l *Polyline) Len() int {
	return len(l.xs)
}

// XY returns copies of the x and y coordinate slices.
func (l *Polyline) XY() ([]float64, []float64) {
	return append([]float64(nil), l.xs...), append([]float64(nil), l.ys...)
}

// SetXY replaces all vertex coordinates. Both slices must match the
// element count.
func (l *Polyline) SetXY(xs, ys []float64) error {
	if len(xs) != len(l.xs) || len(ys) != len(l.ys) {
		return fmt.Errorf("%w: %d/%d coordinates for %d vertices", ErrLengthMismatch, len(xs), len(ys), len(l.xs))
	}
	copy(l.xs, xs)
	copy(l.ys, ys)
	return nil
}

func (l *Polyline) Color() colorful.Color {
	return l.color
}

func (l *Polyline) SetColor(c colorful.Color) {
	l.color = c
}

func (l *Polyline) Alpha() float64 {
	return l.alpha
}

func (l *Polyline) SetAlpha(alpha float64) {
	l.alpha = alpha
}

func (l *Polyline) LineWidth() float64 {
	return l.lineWidth
}

func (l *Polyline) SetLineWidth(width float64) {
	l.lineWidth = width
}

func (l *Polyline) MarkerSize() float64 {
	return l.markerSize
}

func (l *Polyline) SetMarkerSize(size float64) {
	l.markerSize = size
}
