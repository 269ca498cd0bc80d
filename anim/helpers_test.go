package anim

import (
	"fmt"
	"testing"
)

// captureWarnings redirects the package warning hook into a slice for the
// duration of the test.
func captureWarnings(t *testing.T) *[]string {
	t.Helper()
	var msgs []string
	orig := warnf
	warnf = func(format string, v ...interface{}) {
		msgs = append(msgs, fmt.Sprintf(format, v...))
	}
	t.Cleanup(func() { warnf = orig })
	return &msgs
}

// memElement is a free-standing element for driving animations in tests.
// It records every write so no-op windows can be asserted.
type memElement struct {
	alpha  float64
	data   float64
	scale  float64
	writes int
}

func (e *memElement) Alpha() float64 {
	return e.alpha
}

func (e *memElement) SetAlpha(alpha float64) {
	e.alpha = alpha
	e.writes++
}

func (e *memElement) Data() float64 {
	return e.data
}

func (e *memElement) SetData(data float64) {
	e.data = data
	e.writes++
}

func (e *memElement) Scale() float64 {
	return e.scale
}

func (e *memElement) SetScale(scale float64) {
	e.scale = scale
	e.writes++
}
