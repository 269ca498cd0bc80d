package anim

import (
	"fmt"
	"io"

	"github.com/fogleman/ease"
	"gopkg.in/yaml.v2"
)

// A Script is a declarative list of animation cues, typically loaded from
// a YAML document.
type Script struct {
	Cues []Cue `yaml:"cues"`
}

// A Cue describes one series animation: what kind of property to animate,
// when and for how long, with which easing curve. From and To bound the
// interpolated value; when To is omitted, grow and fade cues capture each
// element's current value as the end state.
type Cue struct {
	Kind     string         `yaml:"kind"`
	Start    float64        `yaml:"start"`
	Stagger  *StaggerConfig `yaml:"stagger"`
	Duration float64        `yaml:"duration"`
	Easer    string         `yaml:"easer"`
	From     *float64       `yaml:"from"`
	To       *float64       `yaml:"to"`
}

// A StaggerConfig cascades a cue's start times across the series. When
// present it takes precedence over the cue's scalar start.
type StaggerConfig struct {
	Start    float64 `yaml:"start"`
	Interval float64 `yaml:"interval"`
}

// LoadScript decodes a YAML script.
func LoadScript(r io.Reader) (*Script, error) {
	script := new(Script)
	if err := yaml.NewDecoder(r).Decode(script); err != nil {
		return nil, fmt.Errorf("decoding script: %w", err)
	}
	return script, nil
}

// Bind resolves the cue against a series: easer by registry name, start
// times from the stagger or the scalar start, and the builder from the cue
// kind. An empty easer name means linear.
func (c Cue) Bind(series Series) (*SeriesAnimation, error) {
	easer := Easer(ease.Linear)
	if c.Easer != "" {
		var err error
		easer, err = EaserByName(c.Easer)
		if err != nil {
			return nil, err
		}
	}

	var start FloatSeq = Fixed(c.Start)
	if c.Stagger != nil {
		start = NewStagger(c.Stagger.Start, c.Stagger.Interval)
	}

	build, err := c.builder()
	if err != nil {
		return nil, err
	}
	return NewSeriesAnimation(series, start, Fixed(c.Duration), FixedEaser(easer), build)
}

func (c Cue) builder() (Builder, error) {
	from := 0.0
	if c.From != nil {
		from = *c.From
	}
	switch c.Kind {
	case "grow":
		if c.To != nil {
			return Interpolate(from, *c.To), nil
		}
		return GrowFrom(from), nil
	case "data":
		if c.To == nil {
			return nil, fmt.Errorf("%w: data cue requires a to value", ErrIncompleteCue)
		}
		return Interpolate(from, *c.To), nil
	case "fade":
		if c.To != nil {
			return Fade(from, *c.To), nil
		}
		return FadeFrom(from), nil
	case "scale":
		to := 1.0
		if c.To != nil {
			to = *c.To
		}
		return Rescale(from, to), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCue, c.Kind)
	}
}
