package anim

import "github.com/fogleman/ease"

// An Easer maps normalized progress in [0, 1] to eased progress, shaping
// the interpolation curve. Any function from fogleman/ease qualifies. For
// a clean landing on the end value the easer must return exactly 1 at 1.
type Easer func(t float64) float64

// An Animation advances the state of one bound element at a timestamp.
// Tick must be a no-op outside the animation's active window, so redundant
// frame calls after settling are side-effect free.
type Animation interface {
	Tick(t float64)
}

// span is the shared interpolation state: a closed time window, the value
// endpoints and the easing curve. Immutable after construction.
type span struct {
	startTime  float64
	duration   float64
	endTime    float64
	startValue float64
	endValue   float64
	easer      Easer
}

func newSpan(start, duration, startValue, endValue float64, easer Easer) span {
	if easer == nil {
		easer = ease.Linear
	}
	return span{
		startTime:  start,
		duration:   duration,
		endTime:    start + duration,
		startValue: startValue,
		endValue:   endValue,
		easer:      easer,
	}
}

// active reports whether t falls strictly inside (startTime, endTime].
// Ticks before the window leave the initialize-time value in place; ticks
// after it leave the last interpolated value in place.
func (s *span) active(t float64) bool {
	return s.startTime < t && t <= s.endTime
}

func (s *span) valueAt(t float64) float64 {
	alpha := s.easer((t - s.startTime) / s.duration)
	return s.startValue + alpha*(s.endValue-s.startValue)
}

// A DataAnimation eases an element's data value across a time window.
type DataAnimation struct {
	element Element
	span
}

// NewDataAnimation binds an element to an interpolation of its data value
// over [start, start+duration]. A nil easer means linear. When initialize
// is true the start value is applied immediately.
func NewDataAnimation(element Element, start, duration, startValue, endValue float64, easer Easer, initialize bool) *DataAnimation {
	a := new(DataAnimation)
	a.element = element
	a.span = newSpan(start, duration, startValue, endValue, easer)
	if initialize {
		element.SetData(startValue)
	}
	return a
}

func (a *DataAnimation) Tick(t float64) {
	if a.active(t) {
		a.element.SetData(a.valueAt(t))
	}
}

// An AlphaAnimation eases an element's opacity across a time window.
type AlphaAnimation struct {
	element Element
	span
}

// NewAlphaAnimation binds an element to an interpolation of its alpha over
// [start, start+duration]. A nil easer means linear. When initialize is
// true the start value is applied immediately.
func NewAlphaAnimation(element Element, start, duration, startValue, endValue float64, easer Easer, initialize bool) *AlphaAnimation {
	a := new(AlphaAnimation)
	a.element = element
	a.span = newSpan(start, duration, startValue, endValue, easer)
	if initialize {
		element.SetAlpha(startValue)
	}
	return a
}

func (a *AlphaAnimation) Tick(t float64) {
	if a.active(t) {
		a.element.SetAlpha(a.valueAt(t))
	}
}

// A ScaleAnimation eases an element's scale factor across a time window.
type ScaleAnimation struct {
	element Element
	span
}

// NewScaleAnimation binds an element to an interpolation of its scale over
// [start, start+duration]. A nil easer means linear. When initialize is
// true the start value is applied immediately.
func NewScaleAnimation(element Element, start, duration, startValue, endValue float64, easer Easer, initialize bool) *ScaleAnimation {
	a := new(ScaleAnimation)
	a.element = element
	a.span = newSpan(start, duration, startValue, endValue, easer)
	if initialize {
		element.SetScale(startValue)
	}
	return a
}

func (a *ScaleAnimation) Tick(t float64) {
	if a.active(t) {
		a.element.SetScale(a.valueAt(t))
	}
}

// NewGrow builds a DataAnimation from zero up to the element's data value
// as it stands right now, immediately applying the zero. Construct it
// before any other data mutation of the same element in the same frame;
// the end value is captured here and a prior mutation would be captured
// instead of the true resting value.
func NewGrow(element Element, start, duration float64, easer Easer) *DataAnimation {
	return NewDataAnimation(element, start, duration, 0, element.Data(), easer, true)
}

// NewFadeIn builds an AlphaAnimation from fully transparent up to the
// element's alpha as it stands right now, immediately applying the zero.
// The same construction-order caveat as NewGrow applies.
func NewFadeIn(element Element, start, duration float64, easer Easer) *AlphaAnimation {
	return NewAlphaAnimation(element, start, duration, 0, element.Alpha(), easer, true)
}
