package anim

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/patmalcolm91/PresiPlot/plot"
)

// A Series is the ordered collection of elements backing one artifact. The
// batched setters take either exactly one value, broadcast to every
// element, or one value per element; any other count fails with
// ErrLengthMismatch and modifies nothing.
//
// Flush writes all buffered per-element state back into the artifact's
// bulk representation. Series built over write-through elements treat it
// as a no-op.
type Series interface {
	Len() int
	Element(i int) Element

	Alphas() []float64
	SetAlphas(values ...float64) error
	Data() []float64
	SetData(values ...float64) error
	Scales() []float64
	SetScales(values ...float64) error

	Flush()
	Artifacts() []plot.Artifact
}

// NewSeries adapts an artifact into a Series, selecting the adapter by the
// artifact's concrete type. Unknown types fail with ErrUnsupportedArtifact.
// The horizontal flag fixes which axis element data refers to.
func NewSeries(artifact plot.Artifact, horizontal bool) (Series, error) {
	switch a := artifact.(type) {
	case *plot.BarGroup:
		return newBarSeries(a, horizontal), nil
	case *plot.PointCloud:
		return newPointSeries(a, horizontal), nil
	case *plot.Polyline:
		return newLineSeries(a, horizontal), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedArtifact, artifact)
	}
}

// baseSeries carries the element list and the broadcast machinery shared
// by every concrete series.
type baseSeries struct {
	elements []Element
}

func (s *baseSeries) Len() int {
	return len(s.elements)
}

func (s *baseSeries) Element(i int) Element {
	return s.elements[i]
}

// resolve expands a single value to series length and validates a
// per-element list, so setters can apply without partial effects.
func (s *baseSeries) resolve(values []float64) ([]float64, error) {
	if len(values) == 1 {
		expanded := make([]float64, len(s.elements))
		for i := range expanded {
			expanded[i] = values[0]
		}
		return expanded, nil
	}
	if len(values) != len(s.elements) {
		return nil, fmt.Errorf("%w: %d values for %d elements", ErrLengthMismatch, len(values), len(s.elements))
	}
	return values, nil
}

func (s *baseSeries) setEach(values []float64, set func(Element, float64)) error {
	resolved, err := s.resolve(values)
	if err != nil {
		return err
	}
	for i, v := range resolved {
		set(s.elements[i], v)
	}
	return nil
}

func (s *baseSeries) Alphas() []float64 {
	out := make([]float64, len(s.elements))
	for i, e := range s.elements {
		out[i] = e.Alpha()
	}
	return out
}

func (s *baseSeries) SetAlphas(values ...float64) error {
	return s.setEach(values, Element.SetAlpha)
}

func (s *baseSeries) Data() []float64 {
	out := make([]float64, len(s.elements))
	for i, e := range s.elements {
		out[i] = e.Data()
	}
	return out
}

func (s *baseSeries) SetData(values ...float64) error {
	return s.setEach(values, Element.SetData)
}

func (s *baseSeries) Scales() []float64 {
	out := make([]float64, len(s.elements))
	for i, e := range s.elements {
		out[i] = e.Scale()
	}
	return out
}

func (s *baseSeries) SetScales(values ...float64) error {
	return s.setEach(values, Element.SetScale)
}

// barSeries adapts a bar group. Bar elements write through synchronously,
// so flushing has nothing left to do.
type barSeries struct {
	baseSeries
	group *plot.BarGroup
}

func newBarSeries(group *plot.BarGroup, horizontal bool) *barSeries {
	s := new(barSeries)
	s.group = group
	s.elements = make([]Element, group.Len())
	for i, bar := range group.Bars() {
		s.elements[i] = NewBarElement(bar, horizontal)
	}
	return s
}

func (s *barSeries) Flush() {}

func (s *barSeries) Artifacts() []plot.Artifact {
	return []plot.Artifact{s.group}
}

// pointSeries adapts a point cloud. Elements buffer offsets, sizes and
// alphas in memory; Flush rebuilds the cloud's full bulk arrays.
type pointSeries struct {
	baseSeries
	cloud  *plot.PointCloud
	points []*PointElement
}

// shared reads index i from a value list that may hold one shared value
// for all points.
func shared(values []float64, i int) float64 {
	if len(values) == 1 {
		return values[0]
	}
	return values[i]
}

func newPointSeries(cloud *plot.PointCloud, horizontal bool) *pointSeries {
	s := new(pointSeries)
	s.cloud = cloud

	offsets := cloud.Offsets()
	sizes := cloud.Sizes()
	alphas := cloud.Alphas()
	s.points = make([]*PointElement, len(offsets))
	s.elements = make([]Element, len(offsets))
	for i, o := range offsets {
		p := NewPointElement(o.X, o.Y, shared(sizes, i), shared(alphas, i), horizontal)
		s.points[i] = p
		s.elements[i] = p
	}
	return s
}

// sharedForm keeps a shared length-1 representation when the cloud
// already stored one and every element still agrees; once the values
// diverge the full per-point form is written instead.
func sharedForm(values, stored []float64) []float64 {
	if len(stored) != 1 || len(values) == 0 {
		return values
	}
	for _, v := range values[1:] {
		if v != values[0] {
			return values
		}
	}
	return values[:1]
}

// Flush rebuilds the cloud's offsets from the elements' buffered
// positions, the sizes from their scales, and the per-point colors by
// pairing the cloud's existing base color with each element's alpha.
// Attributes the cloud stores as one shared value keep that form while
// the elements agree, so an unmutated flush reproduces the cloud's bulk
// state exactly.
func (s *pointSeries) Flush() {
	n := len(s.points)
	offsets := make([]plot.Point, n)
	sizes := make([]float64, n)
	alphas := make([]float64, n)
	for i, p := range s.points {
		offsets[i] = p.Offset()
		sizes[i] = p.Size()
		alphas[i] = p.Alpha()
	}
	alphas = sharedForm(alphas, s.cloud.Alphas())

	// A shared base color is expanded to per-point form only once the
	// alphas themselves are per-point, keeping each point's color/alpha
	// pair explicit.
	colors := s.cloud.Colors()
	if len(colors) == 1 && len(alphas) > 1 {
		base := colors[0]
		colors = make([]colorful.Color, n)
		for i := range colors {
			colors[i] = base
		}
	}

	// Lengths are pinned to the cloud's fixed element count, so the bulk
	// setters cannot fail here.
	_ = s.cloud.SetOffsets(offsets)
	_ = s.cloud.SetSizes(sharedForm(sizes, s.cloud.Sizes()))
	_ = s.cloud.SetColors(colors)
	_ = s.cloud.SetAlphas(alphas)
}

func (s *pointSeries) Artifacts() []plot.Artifact {
	return []plot.Artifact{s.cloud}
}

// lineSeries adapts a polyline. Vertex elements buffer coordinates; alpha,
// marker size and line width exist only line-wide, so their references are
// captured once at construction.
type lineSeries struct {
	baseSeries
	line          *plot.Polyline
	vertices      []*VertexElement
	refMarkerSize float64
	refLineWidth  float64
}

func newLineSeries(line *plot.Polyline, horizontal bool) *lineSeries {
	s := new(lineSeries)
	s.line = line
	s.refMarkerSize = line.MarkerSize()
	s.refLineWidth = line.LineWidth()

	xs, ys := line.XY()
	alpha := line.Alpha()
	s.vertices = make([]*VertexElement, len(xs))
	s.elements = make([]Element, len(xs))
	for i := range xs {
		v := NewVertexElement(xs[i], ys[i], alpha, horizontal)
		s.vertices[i] = v
		s.elements[i] = v
	}
	return s
}

// representative picks the line-wide value for a per-vertex attribute: the
// first element's value in series order. When the vertices disagree the
// polyline cannot represent them, so it warns and proceeds with that value.
func (s *lineSeries) representative(values []float64, attribute string) float64 {
	first := values[0]
	for _, v := range values[1:] {
		if v != first {
			warnf("polyline cannot represent per-vertex %s values, using the first element's (%v)", attribute, first)
			break
		}
	}
	return first
}

// Flush transposes the buffered vertex pairs back into the line's x/y
// slices and applies the representative alpha and scale line-wide, scaling
// marker size and line width from their captured references.
func (s *lineSeries) Flush() {
	if len(s.vertices) == 0 {
		return
	}
	xs := make([]float64, len(s.vertices))
	ys := make([]float64, len(s.vertices))
	for i, v := range s.vertices {
		xs[i] = v.x
		ys[i] = v.y
	}
	// The vertex count is pinned to the line's, so SetXY cannot fail here.
	_ = s.line.SetXY(xs, ys)

	alpha := s.representative(s.Alphas(), "alpha")
	scale := s.representative(s.Scales(), "scale")
	s.line.SetAlpha(clampAlpha(alpha))
	s.line.SetMarkerSize(scale * s.refMarkerSize)
	s.line.SetLineWidth(scale * s.refLineWidth)
}

func (s *lineSeries) Artifacts() []plot.Artifact {
	return []plot.Artifact{s.line}
}
