package plot

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// A Bar is one rectangle of a bar chart. The xy position is the
// bottom-left corner.
type Bar struct {
	x      float64
	y      float64
	width  float64
	height float64
	color  colorful.Color
	alpha  float64
}

// NewBar creates a Bar with the default color and full opacity.
func NewBar(x, y, width, height float64) *Bar {
	b := new(Bar)
	b.x = x
	b.y = y
	b.width = width
	b.height = height
	b.color, _ = colorful.Hex("#1f77b4")
	b.alpha = 1
	return b
}

// XY returns the bottom-left corner of the bar.
func (b *Bar) XY() (float64, float64) {
	return b.x, b.y
}

// SetXY moves the bottom-left corner of the bar.
func (b *Bar) SetXY(x, y float64) {
	b.x = x
	b.y = y
}

func (b *Bar) Width() float64 {
	return b.width
}

func (b *Bar) SetWidth(width float64) {
	b.width = width
}

func (b *Bar) Height() float64 {
	return b.height
}

func (b *Bar) SetHeight(height float64) {
	b.height = height
}

func (b *Bar) Color() colorful.Color {
	return b.color
}

func (b *Bar) SetColor(c colorful.Color) {
	b.color = c
}

func (b *Bar) Alpha() float64 {
	return b.alpha
}

func (b *Bar) SetAlpha(alpha float64) {
	b.alpha = alpha
}

// A BarGroup is an ordered collection of bars backing one bar chart.
type BarGroup struct {
	bars []*Bar
}

// NewBarGroup creates a BarGroup from the given bars.
func NewBarGroup(bars ...*Bar) *BarGroup {
	g := new(BarGroup)
	g.bars = bars
	return g
}

// NewBarChart creates one vertical bar per x/height pair, each barWidth
// wide and centered on its x position with its base at y=0.
func NewBarChart(xs, heights []float64, barWidth float64) (*BarGroup, error) {
	if len(xs) != len(heights) {
		return nil, fmt.Errorf("%w: %d x positions for %d heights", ErrLengthMismatch, len(xs), len(heights))
	}
	bars := make([]*Bar, len(xs))
	for i := range xs {
		bars[i] = NewBar(xs[i]-barWidth/2, 0, barWidth, heights[i])
	}
	return NewBarGroup(bars...), nil
}

func (g *BarGroup) Kind() Kind {
	return KindBarGroup
}

func (g *BarGroup) Len() int {
	return len(g.bars)
}

// Bar returns the i-th bar in the group.
func (g *BarGroup) Bar(i int) *Bar {
	return g.bars[i]
}

// Bars returns the backing slice of bars, in order.
func (g *BarGroup) Bars() []*Bar {
	return g.bars
}
