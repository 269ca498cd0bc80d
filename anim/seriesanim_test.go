package anim

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/fogleman/ease"
)

func TestSeriesAnimationGrowScenario(t *testing.T) {
	group := testBarGroup(t)
	s, err := NewSeries(group, false)
	if err != nil {
		t.Fatalf("NewSeries: %v", err)
	}
	sa, err := NewSeriesAnimation(s, Fixed(0), Fixed(100), FixedEaser(ease.Linear), GrowFrom(0))
	if err != nil {
		t.Fatalf("NewSeriesAnimation: %v", err)
	}

	// Construction zeroes every bar via the grow start value.
	if got := s.Data(); !reflect.DeepEqual(got, []float64{0, 0, 0, 0}) {
		t.Fatalf("heights after construction = %v, want all zero", got)
	}

	sa.Tick(50)
	if got := s.Data(); !reflect.DeepEqual(got, []float64{1.5, 1, 2.5, 4}) {
		t.Errorf("heights at t=50 = %v, want half of [3 2 5 8]", got)
	}

	sa.Tick(100)
	if got := s.Data(); !reflect.DeepEqual(got, []float64{3, 2, 5, 8}) {
		t.Errorf("heights at t=100 = %v, want the originals exactly", got)
	}

	sa.Tick(150)
	if got := s.Data(); !reflect.DeepEqual(got, []float64{3, 2, 5, 8}) {
		t.Errorf("heights at t=150 = %v, want settled at the t=100 values", got)
	}
}

func TestSeriesAnimationStaggeredScatter(t *testing.T) {
	cloud := testPointCloud(t)
	s, err := NewSeries(cloud, false)
	if err != nil {
		t.Fatalf("NewSeries: %v", err)
	}
	sa, err := NewSeriesAnimation(s, NewStagger(0, 20), Fixed(100), FixedEaser(ease.Linear), GrowFrom(0))
	if err != nil {
		t.Fatalf("NewSeriesAnimation: %v", err)
	}

	artifacts := sa.Tick(10)

	// Only the first point (start time 0) has begun easing; the other
	// three are still at their grow-from-zero state.
	got := s.Data()
	if math.Abs(got[0]-0.3) > 1e-12 {
		t.Errorf("first point data at t=10 = %v, want 0.3 (progress 0.1 of height 3)", got[0])
	}
	if !reflect.DeepEqual(got[1:], []float64{0, 0, 0}) {
		t.Errorf("later point data at t=10 = %v, want still at zero", got[1:])
	}

	// Tick flushed the series, so the cloud reflects the same state.
	offsets := cloud.Offsets()
	for i, o := range offsets {
		if o.Y != got[i] {
			t.Errorf("offset %d y = %v, want flushed element value %v", i, o.Y, got[i])
		}
		if o.X != float64(i+1) {
			t.Errorf("offset %d x = %v, want fixed %v", i, o.X, float64(i+1))
		}
	}
	if len(artifacts) != 1 || artifacts[0] != cloud {
		t.Errorf("Tick returned %v, want the mutated cloud", artifacts)
	}
}

func TestSeriesAnimationPerElementSequences(t *testing.T) {
	group := testBarGroup(t)
	s, err := NewSeries(group, false)
	if err != nil {
		t.Fatalf("NewSeries: %v", err)
	}
	sa, err := NewSeriesAnimation(s,
		Sequence(0, 10, 20, 30),
		Sequence(40, 40, 40, 40),
		Easers(ease.Linear, ease.Linear, ease.Linear, ease.Linear),
		GrowFrom(0))
	if err != nil {
		t.Fatalf("NewSeriesAnimation: %v", err)
	}

	sa.Tick(30)
	// Element starts 0/10/20/30 with duration 40: progress 0.75/0.5/0.25/0.
	if got := s.Data(); !reflect.DeepEqual(got, []float64{2.25, 1, 1.25, 0}) {
		t.Errorf("heights at t=30 = %v, want [2.25 1 1.25 0]", got)
	}
}

func TestSeriesAnimationSequenceExhausted(t *testing.T) {
	s, err := NewSeries(testBarGroup(t), false)
	if err != nil {
		t.Fatalf("NewSeries: %v", err)
	}

	_, err = NewSeriesAnimation(s, Sequence(0, 20), Fixed(100), nil, GrowFrom(0))
	if !errors.Is(err, ErrSequenceExhausted) {
		t.Fatalf("error = %v, want ErrSequenceExhausted", err)
	}
}

func TestSeriesAnimationNilDefaults(t *testing.T) {
	s, err := NewSeries(testBarGroup(t), false)
	if err != nil {
		t.Fatalf("NewSeries: %v", err)
	}
	sa, err := NewSeriesAnimation(s, nil, Fixed(100), nil, GrowFrom(0))
	if err != nil {
		t.Fatalf("NewSeriesAnimation: %v", err)
	}

	sa.Tick(50)
	if got := s.Data(); !reflect.DeepEqual(got, []float64{1.5, 1, 2.5, 4}) {
		t.Errorf("heights = %v, want linear easing from t=0 by default", got)
	}
}
