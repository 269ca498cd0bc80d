// Command presiplot runs a terminal demo of the animation core: it builds
// a small chart artifact, binds an animation cue to it, and drives the
// tick loop once per rendered frame.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"

	"github.com/patmalcolm91/PresiPlot/anim"
	"github.com/patmalcolm91/PresiPlot/plot"
)

const clearScreen = "\033[2J\033[H"

// samplesPerBar widens each bar or point into a flat run of samples so the
// terminal plot reads as columns rather than a single spike.
const samplesPerBar = 12

func defaultCue() anim.Cue {
	return anim.Cue{
		Kind:     "grow",
		Stagger:  &anim.StaggerConfig{Start: 0, Interval: 20},
		Duration: 100,
		Easer:    "out-elastic",
	}
}

func readCue(scriptPath string) anim.Cue {
	if scriptPath == "" {
		return defaultCue()
	}
	f, err := os.Open(scriptPath)
	if err != nil {
		log.Fatalf("opening script: %v", err)
	}
	defer f.Close()

	script, err := anim.LoadScript(f)
	if err != nil {
		log.Fatalf("reading script: %v", err)
	}
	if len(script.Cues) == 0 {
		log.Fatal("script has no cues")
	}
	return script.Cues[0]
}

func buildArtifact(mode string) plot.Artifact {
	xs := []float64{1, 2, 3, 4}
	heights := []float64{3, 2, 5, 8}
	switch mode {
	case "bars":
		group, err := plot.NewBarChart(xs, heights, 0.8)
		if err != nil {
			log.Fatalf("building bars: %v", err)
		}
		return group
	case "scatter":
		cloud, err := plot.NewScatter(xs, heights, 20)
		if err != nil {
			log.Fatalf("building scatter: %v", err)
		}
		return cloud
	case "line":
		n := 60
		lineXs := make([]float64, n)
		lineYs := make([]float64, n)
		for i := 0; i < n; i++ {
			lineXs[i] = float64(i)
			lineYs[i] = 4 + 3*math.Sin(float64(i)/6)
		}
		line, err := plot.NewPolyline(lineXs, lineYs)
		if err != nil {
			log.Fatalf("building line: %v", err)
		}
		return line
	default:
		log.Fatalf("unknown mode %q (want bars, scatter or line)", mode)
		return nil
	}
}

// frameInterval converts a frame rate into the ticker period, rejecting
// rates that cannot pace a loop.
func frameInterval(fps int) (time.Duration, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("fps must be positive, got %d", fps)
	}
	return time.Second / time.Duration(fps), nil
}

// renderData flattens an artifact's current geometry into the sample
// series asciigraph draws.
func renderData(artifact plot.Artifact) []float64 {
	switch a := artifact.(type) {
	case *plot.BarGroup:
		data := make([]float64, 0, a.Len()*samplesPerBar)
		for _, bar := range a.Bars() {
			for i := 0; i < samplesPerBar; i++ {
				data = append(data, bar.Height())
			}
		}
		return data
	case *plot.PointCloud:
		offsets := a.Offsets()
		data := make([]float64, 0, len(offsets)*samplesPerBar)
		for _, o := range offsets {
			for i := 0; i < samplesPerBar; i++ {
				data = append(data, o.Y)
			}
		}
		return data
	case *plot.Polyline:
		_, ys := a.XY()
		return ys
	default:
		return nil
	}
}

func main() {
	scriptPath := flag.String("script", "", "YAML animation script; the first cue is played.")
	mode := flag.String("mode", "bars", "Artifact to animate: bars, scatter or line.")
	fps := flag.Int("fps", 30, "Frames rendered per second.")
	frames := flag.Int("frames", 180, "Total frames to run; the timestamp advances one unit per frame.")
	flag.Parse()

	interval, err := frameInterval(*fps)
	if err != nil {
		log.Fatal(err)
	}
	cue := readCue(*scriptPath)
	artifact := buildArtifact(*mode)

	series, err := anim.NewSeries(artifact, false)
	if err != nil {
		log.Fatalf("adapting artifact: %v", err)
	}
	seriesAnim, err := cue.Bind(series)
	if err != nil {
		log.Fatalf("binding cue: %v", err)
	}

	frameTimer := time.NewTicker(interval)
	defer frameTimer.Stop()
	for frame := 0; frame <= *frames; frame++ {
		<-frameTimer.C
		artifacts := seriesAnim.Tick(float64(frame))

		fmt.Print(clearScreen)
		for _, a := range artifacts {
			graph := asciigraph.Plot(renderData(a),
				asciigraph.Height(15),
				asciigraph.Width(70),
				asciigraph.Caption(fmt.Sprintf("%s cue on %s, t=%d", cue.Kind, a.Kind(), frame)),
			)
			fmt.Println(graph)
		}
	}
}
