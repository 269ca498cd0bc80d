package anim

import (
	"fmt"

	"github.com/fogleman/ease"

	"github.com/patmalcolm91/PresiPlot/plot"
)

// A Builder constructs the per-element animation for one element of a
// series, given that element's resolved start time, duration and easer.
type Builder func(element Element, start, duration float64, easer Easer) Animation

// Interpolate builds data animations between fixed value endpoints.
func Interpolate(startValue, endValue float64) Builder {
	return func(element Element, start, duration float64, easer Easer) Animation {
		return NewDataAnimation(element, start, duration, startValue, endValue, easer, true)
	}
}

// GrowFrom builds grow animations from a fixed start value up to each
// element's data value at construction time.
func GrowFrom(startValue float64) Builder {
	return func(element Element, start, duration float64, easer Easer) Animation {
		return NewDataAnimation(element, start, duration, startValue, element.Data(), easer, true)
	}
}

// Fade builds alpha animations between fixed opacity endpoints.
func Fade(startAlpha, endAlpha float64) Builder {
	return func(element Element, start, duration float64, easer Easer) Animation {
		return NewAlphaAnimation(element, start, duration, startAlpha, endAlpha, easer, true)
	}
}

// FadeFrom builds fade animations from a fixed opacity up to each
// element's alpha at construction time.
func FadeFrom(startAlpha float64) Builder {
	return func(element Element, start, duration float64, easer Easer) Animation {
		return NewAlphaAnimation(element, start, duration, startAlpha, element.Alpha(), easer, true)
	}
}

// Rescale builds scale animations between fixed scale endpoints.
func Rescale(startScale, endScale float64) Builder {
	return func(element Element, start, duration float64, easer Easer) Animation {
		return NewScaleAnimation(element, start, duration, startScale, endScale, easer, true)
	}
}

// A SeriesAnimation fans one animation out per element of a series and
// drives them together on each timeline tick.
type SeriesAnimation struct {
	series     Series
	animations []Animation
}

// NewSeriesAnimation builds one animation per series element. Start times,
// durations and easers are consumed one value per element in series order,
// so a Fixed or FixedEaser sequence broadcasts a single value and a
// Stagger cascades the starts. Nil sequences default to Fixed(0) and a
// linear easer. A finite sequence shorter than the series fails with
// ErrSequenceExhausted.
func NewSeriesAnimation(series Series, start, duration FloatSeq, easers EaserSeq, build Builder) (*SeriesAnimation, error) {
	if start == nil {
		start = Fixed(0)
	}
	if duration == nil {
		duration = Fixed(0)
	}
	if easers == nil {
		easers = FixedEaser(ease.Linear)
	}

	sa := new(SeriesAnimation)
	sa.series = series
	sa.animations = make([]Animation, 0, series.Len())
	for i := 0; i < series.Len(); i++ {
		st, ok := start.Next()
		if !ok {
			return nil, fmt.Errorf("%w: start times ended at element %d of %d", ErrSequenceExhausted, i, series.Len())
		}
		d, ok := duration.Next()
		if !ok {
			return nil, fmt.Errorf("%w: durations ended at element %d of %d", ErrSequenceExhausted, i, series.Len())
		}
		e, ok := easers.Next()
		if !ok {
			return nil, fmt.Errorf("%w: easers ended at element %d of %d", ErrSequenceExhausted, i, series.Len())
		}
		sa.animations = append(sa.animations, build(series.Element(i), st, d, e))
	}
	return sa, nil
}

// Series returns the element series this animation drives.
func (sa *SeriesAnimation) Series() Series {
	return sa.series
}

// Tick advances every per-element animation to timestamp t, flushes the
// series back into its artifact, and returns the mutated artifact handles
// for the caller's redraw step.
func (sa *SeriesAnimation) Tick(t float64) []plot.Artifact {
	for _, a := range sa.animations {
		a.Tick(t)
	}
	sa.series.Flush()
	return sa.series.Artifacts()
}
