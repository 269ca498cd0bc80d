// Package anim animates plot artifacts over a shared timeline. It adapts
// each artifact into per-element accessors, eases element values between a
// start and an end state on every tick, and flushes the edited state back
// into the artifact's bulk representation.
package anim

import (
	"math"

	"github.com/patmalcolm91/PresiPlot/plot"
)

// An Element is the uniform per-item view over one renderable unit of an
// artifact. Animations drive elements exclusively through this interface,
// so they never need to know which artifact type is underneath.
//
// Data is the element's semantic payload: the extruded dimension of a bar,
// or the moving-axis coordinate of a point or line vertex. Scale is a
// multiplicative size factor relative to reference geometry captured when
// the element was built; repeated SetScale calls never compound.
type Element interface {
	Alpha() float64
	SetAlpha(alpha float64)
	Data() float64
	SetData(data float64)
	Scale() float64
	SetScale(scale float64)
}

// clampAlpha forces alpha into [0, 1], warning when the input was outside.
func clampAlpha(alpha float64) float64 {
	if alpha < 0 || alpha > 1 {
		clamped := math.Min(math.Max(alpha, 0), 1)
		warnf("alpha %v outside [0, 1], clamped to %v", alpha, clamped)
		return clamped
	}
	return alpha
}

// A BarElement adapts one bar. Every set call writes straight through to
// the bar, so a bar series needs no flush.
type BarElement struct {
	bar        *plot.Bar
	horizontal bool
	refWidth   float64
	refHeight  float64
	centroidX  float64
	centroidY  float64
	scale      float64
}

// NewBarElement wraps a bar, capturing its current width, height and
// centroid as the fixed reference geometry for scaling.
func NewBarElement(bar *plot.Bar, horizontal bool) *BarElement {
	e := new(BarElement)
	e.bar = bar
	e.horizontal = horizontal
	e.refWidth = bar.Width()
	e.refHeight = bar.Height()
	x, y := bar.XY()
	e.centroidX = x + e.refWidth/2
	e.centroidY = y + e.refHeight/2
	e.scale = 1
	return e
}

func (e *BarElement) Alpha() float64 {
	return e.bar.Alpha()
}

func (e *BarElement) SetAlpha(alpha float64) {
	e.bar.SetAlpha(clampAlpha(alpha))
}

// Data is the bar's extruded dimension: width when horizontal, height
// otherwise.
func (e *BarElement) Data() float64 {
	if e.horizontal {
		return e.bar.Width()
	}
	return e.bar.Height()
}

func (e *BarElement) SetData(data float64) {
	if e.horizontal {
		e.bar.SetWidth(data)
	} else {
		e.bar.SetHeight(data)
	}
}

func (e *BarElement) Scale() float64 {
	return e.scale
}

// SetScale resizes the bar about its reference centroid, recomputing the
// corner and both dimensions from the reference geometry.
func (e *BarElement) SetScale(scale float64) {
	x := e.centroidX - scale*e.refWidth/2
	y := e.centroidY - scale*e.refHeight/2
	e.bar.SetXY(x, y)
	e.bar.SetWidth(scale * e.refWidth)
	e.bar.SetHeight(scale * e.refHeight)
	e.scale = scale
}

// A PointElement adapts one scatter point. It is a pure in-memory holder;
// nothing reaches the point cloud until the owning series flushes.
type PointElement struct {
	x          float64
	y          float64
	horizontal bool
	alpha      float64
	scale      float64
	refSize    float64
}

// NewPointElement creates a point element seeded from the point's current
// position, marker size and alpha. The seeded size is the fixed reference
// that scale multiplies.
func NewPointElement(x, y, size, alpha float64, horizontal bool) *PointElement {
	e := new(PointElement)
	e.x = x
	e.y = y
	e.refSize = size
	e.alpha = alpha
	e.horizontal = horizontal
	e.scale = 1
	return e
}

func (e *PointElement) Alpha() float64 {
	return e.alpha
}

func (e *PointElement) SetAlpha(alpha float64) {
	e.alpha = clampAlpha(alpha)
}

// Data is the moving-axis coordinate: x when horizontal, y otherwise. The
// other coordinate stays fixed.
func (e *PointElement) Data() float64 {
	if e.horizontal {
		return e.x
	}
	return e.y
}

func (e *PointElement) SetData(data float64) {
	if e.horizontal {
		e.x = data
	} else {
		e.y = data
	}
}

func (e *PointElement) Scale() float64 {
	return e.scale
}

func (e *PointElement) SetScale(scale float64) {
	e.scale = scale
}

// Offset returns the point's buffered position on both axes.
func (e *PointElement) Offset() plot.Point {
	return plot.Point{X: e.x, Y: e.y}
}

// Size returns the buffered marker size, the reference size times the
// current scale.
func (e *PointElement) Size() float64 {
	return e.scale * e.refSize
}

// A VertexElement adapts one polyline vertex. Like a point element it only
// buffers state; alpha and scale are recorded per vertex even though the
// polyline can only represent one shared value for the whole line.
type VertexElement struct {
	x          float64
	y          float64
	horizontal bool
	alpha      float64
	scale      float64
}

// NewVertexElement creates a vertex element seeded from the vertex's
// current coordinates and the line's shared alpha.
func NewVertexElement(x, y, alpha float64, horizontal bool) *VertexElement {
	e := new(VertexElement)
	e.x = x
	e.y = y
	e.alpha = alpha
	e.horizontal = horizontal
	e.scale = 1
	return e
}

func (e *VertexElement) Alpha() float64 {
	return e.alpha
}

func (e *VertexElement) SetAlpha(alpha float64) {
	e.alpha = clampAlpha(alpha)
}

// Data is the moving-axis coordinate: x when horizontal, y otherwise.
func (e *VertexElement) Data() float64 {
	if e.horizontal {
		return e.x
	}
	return e.y
}

func (e *VertexElement) SetData(data float64) {
	if e.horizontal {
		e.x = data
	} else {
		e.y = data
	}
}

func (e *VertexElement) Scale() float64 {
	return e.scale
}

func (e *VertexElement) SetScale(scale float64) {
	e.scale = scale
}
