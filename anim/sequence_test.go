package anim

import (
	"testing"

	"github.com/fogleman/ease"
)

func TestStaggerProgression(t *testing.T) {
	s := NewStagger(0, 20)
	want := []float64{0, 20, 40, 60}
	for i, w := range want {
		got, ok := s.Next()
		if !ok {
			t.Fatalf("Next() #%d not ok, stagger must be infinite", i)
		}
		if got != w {
			t.Errorf("Next() #%d = %v, want %v", i, got, w)
		}
	}
}

func TestStaggerNegativeInterval(t *testing.T) {
	s := NewStagger(100, -25)
	for i, w := range []float64{100, 75, 50} {
		got, _ := s.Next()
		if got != w {
			t.Errorf("Next() #%d = %v, want %v", i, got, w)
		}
	}
}

func TestFixedRepeats(t *testing.T) {
	s := Fixed(7)
	for i := 0; i < 5; i++ {
		got, ok := s.Next()
		if !ok || got != 7 {
			t.Fatalf("Next() #%d = (%v, %v), want (7, true)", i, got, ok)
		}
	}
}

func TestSequenceExhausts(t *testing.T) {
	s := Sequence(1, 2)
	for i, w := range []float64{1, 2} {
		got, ok := s.Next()
		if !ok || got != w {
			t.Fatalf("Next() #%d = (%v, %v), want (%v, true)", i, got, ok, w)
		}
	}
	if _, ok := s.Next(); ok {
		t.Error("Next() past the end reported ok, want exhausted")
	}
}

func TestEasersExhaust(t *testing.T) {
	s := Easers(ease.Linear)
	if _, ok := s.Next(); !ok {
		t.Fatal("Next() #0 not ok")
	}
	if _, ok := s.Next(); ok {
		t.Error("Next() past the end reported ok, want exhausted")
	}
}

func TestFixedEaserRepeats(t *testing.T) {
	s := FixedEaser(ease.OutQuad)
	for i := 0; i < 3; i++ {
		e, ok := s.Next()
		if !ok || e == nil {
			t.Fatalf("Next() #%d = (%v, %v), want an easer forever", i, e, ok)
		}
	}
}
