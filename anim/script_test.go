package anim

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

const staggerGrowScript = `
cues:
  - kind: grow
    stagger: {start: 0, interval: 20}
    duration: 100
    easer: out-elastic
  - kind: fade
    start: 50
    duration: 60
    easer: linear
`

func TestLoadScript(t *testing.T) {
	script, err := LoadScript(strings.NewReader(staggerGrowScript))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if len(script.Cues) != 2 {
		t.Fatalf("got %d cues, want 2", len(script.Cues))
	}

	grow := script.Cues[0]
	if grow.Kind != "grow" || grow.Duration != 100 || grow.Easer != "out-elastic" {
		t.Errorf("grow cue = %+v, want kind/duration/easer from the document", grow)
	}
	if grow.Stagger == nil || grow.Stagger.Interval != 20 {
		t.Errorf("grow stagger = %+v, want interval 20", grow.Stagger)
	}

	fade := script.Cues[1]
	if fade.Kind != "fade" || fade.Start != 50 || fade.Stagger != nil {
		t.Errorf("fade cue = %+v, want scalar start 50 and no stagger", fade)
	}
}

func TestLoadScriptRejectsBadYAML(t *testing.T) {
	if _, err := LoadScript(strings.NewReader("cues: {not a list}")); err == nil {
		t.Fatal("LoadScript accepted a malformed document")
	}
}

func TestCueBindDrivesSeries(t *testing.T) {
	s, err := NewSeries(testBarGroup(t), false)
	if err != nil {
		t.Fatalf("NewSeries: %v", err)
	}
	cue := Cue{
		Kind:     "grow",
		Stagger:  &StaggerConfig{Start: 0, Interval: 20},
		Duration: 100,
		Easer:    "linear",
	}

	sa, err := cue.Bind(s)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	sa.Tick(20)
	// Starts cascade 0/20/40/60: only the first element has progressed.
	got := s.Data()
	if math.Abs(got[0]-0.6) > 1e-12 {
		t.Errorf("first height at t=20 = %v, want 0.6 (progress 0.2 of height 3)", got[0])
	}
	if !reflect.DeepEqual(got[1:], []float64{0, 0, 0}) {
		t.Errorf("later heights at t=20 = %v, want still at zero", got[1:])
	}
}

func TestCueBuilderBounds(t *testing.T) {
	from := 0.5
	to := 2.0
	tests := []struct {
		name     string
		cue      Cue
		tick     float64
		wantData float64
		wantAttr func(el *memElement) float64
	}{
		{
			name:     "data cue interpolates fixed bounds",
			cue:      Cue{Kind: "data", From: &from, To: &to, Duration: 100},
			tick:     100,
			wantData: 2,
			wantAttr: func(el *memElement) float64 { return el.data },
		},
		{
			name:     "scale cue defaults to zero to one",
			cue:      Cue{Kind: "scale", Duration: 100},
			tick:     50,
			wantData: 0.5,
			wantAttr: func(el *memElement) float64 { return el.scale },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := &memElement{data: 9, alpha: 1, scale: 1}
			build, err := tt.cue.builder()
			if err != nil {
				t.Fatalf("builder: %v", err)
			}

			a := build(el, 0, tt.cue.Duration, nil)
			a.Tick(tt.tick)
			if got := tt.wantAttr(el); got != tt.wantData {
				t.Errorf("animated value = %v, want %v", got, tt.wantData)
			}
		})
	}
}

func TestCueBindErrors(t *testing.T) {
	tests := []struct {
		name    string
		cue     Cue
		wantErr error
	}{
		{"unknown easer", Cue{Kind: "grow", Easer: "zigzag", Duration: 100}, ErrUnknownEaser},
		{"unknown kind", Cue{Kind: "teleport", Duration: 100}, ErrUnknownCue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSeries(testBarGroup(t), false)
			if err != nil {
				t.Fatalf("NewSeries: %v", err)
			}
			if _, err := tt.cue.Bind(s); !errors.Is(err, tt.wantErr) {
				t.Errorf("Bind error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDataCueRequiresTo(t *testing.T) {
	cue := Cue{Kind: "data", Duration: 100}
	if _, err := cue.builder(); !errors.Is(err, ErrIncompleteCue) {
		t.Fatalf("data cue without a to value: error = %v, want ErrIncompleteCue", err)
	}
}

func TestEaserByName(t *testing.T) {
	tests := []struct {
		name    string
		lookup  string
		wantErr bool
	}{
		{"linear", "linear", false},
		{"out elastic", "out-elastic", false},
		{"case insensitive", "In-Out-Cubic", false},
		{"unknown", "zigzag", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := EaserByName(tt.lookup)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownEaser) {
					t.Errorf("error = %v, want ErrUnknownEaser", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("EaserByName(%q): %v", tt.lookup, err)
			}
			if e == nil {
				t.Errorf("EaserByName(%q) returned a nil easer", tt.lookup)
			}
		})
	}
}
