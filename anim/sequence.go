package anim

// A FloatSeq is a lazy sequence of float64 values, consumed one value per
// element when fanning an animation out across a series. Next reports
// false once a finite sequence is exhausted.
type FloatSeq interface {
	Next() (float64, bool)
}

type fixedSeq struct {
	value float64
}

// Fixed returns an infinite sequence repeating a single value, the scalar
// broadcast case.
func Fixed(value float64) FloatSeq {
	return &fixedSeq{value: value}
}

func (s *fixedSeq) Next() (float64, bool) {
	return s.value, true
}

type sliceSeq struct {
	values []float64
	next   int
}

// Sequence returns a finite sequence yielding the given values in order.
func Sequence(values ...float64) FloatSeq {
	return &sliceSeq{values: values}
}

func (s *sliceSeq) Next() (float64, bool) {
	if s.next >= len(s.values) {
		return 0, false
	}
	v := s.values[s.next]
	s.next++
	return v, true
}

// A Stagger is a lazy infinite sequence of start times spaced by a fixed
// interval, used to cascade animation starts across a series. Consuming a
// value advances it permanently; it cannot be rewound.
type Stagger struct {
	next     float64
	interval float64
}

// NewStagger creates a Stagger counting up from start by interval.
func NewStagger(start, interval float64) *Stagger {
	s := new(Stagger)
	s.next = start
	s.interval = interval
	return s
}

func (s *Stagger) Next() (float64, bool) {
	v := s.next
	s.next += s.interval
	return v, true
}

// An EaserSeq is a lazy sequence of easing functions, mirroring FloatSeq
// for the easer parameter.
type EaserSeq interface {
	Next() (Easer, bool)
}

type fixedEaserSeq struct {
	easer Easer
}

// FixedEaser returns an infinite sequence repeating a single easer.
func FixedEaser(easer Easer) EaserSeq {
	return &fixedEaserSeq{easer: easer}
}

func (s *fixedEaserSeq) Next() (Easer, bool) {
	return s.easer, true
}

type easerSliceSeq struct {
	easers []Easer
	next   int
}

// Easers returns a finite sequence yielding the given easers in order.
func Easers(easers ...Easer) EaserSeq {
	return &easerSliceSeq{easers: easers}
}

func (s *easerSliceSeq) Next() (Easer, bool) {
	if s.next >= len(s.easers) {
		return nil, false
	}
	e := s.easers[s.next]
	s.next++
	return e, true
}
