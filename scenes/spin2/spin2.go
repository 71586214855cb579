// Package spin2 visualizes a massive spin-2 field two ways: a ring of test
// particles breathing under a gravitational-wave strain (plus or cross
// polarization), and the scale factor of a toy universe evolving under the
// field's energy density. G switches views; the slider sets the field mass.
package spin2

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/vitrine"
)

const (
	ringCount   = 48
	traceCap    = 600
	strainScale = 0.35 // visual exaggeration of h(t)
)

// View selection.
const (
	viewRing = iota
	viewCosmos
	viewCount
)

var viewNames = [viewCount]string{"ring", "cosmos"}

func init() {
	vitrine.Register("spin2", func() vitrine.Scene { return &Scene{} })
}

// Scene owns both toy systems and a shared strain/scale trace.
type Scene struct {
	w, h     int
	settings vitrine.Settings
	view     int

	wave   *waveField
	cosmos [3]*cosmos // open, flat, closed
	cross  bool       // cross polarization instead of plus
	mass   float64
	h0     float64

	trace  []float64
	traces [3][]float64

	massSlider *vitrine.Slider
	ampSlider  *vitrine.Slider
}

// Init starts the wave at unit strain and the universe at rest.
func (s *Scene) Init(ctx vitrine.Context) error {
	s.w, s.h = ctx.Width, ctx.Height
	s.settings = ctx.Settings
	s.mass = 1.2
	s.h0 = 1
	s.rebuild()
	return nil
}

// rebuild recreates every system for the current mass and amplitude. The
// three universes bracket the critical density mass^2/2: under it expands,
// at it holds, over it recollapses.
func (s *Scene) rebuild() {
	s.wave = newWaveField(s.mass, s.h0)
	crit := s.mass * s.mass / 2
	s.cosmos[0] = newCosmos(s.mass, crit*0.1)
	s.cosmos[1] = newCosmos(s.mass, crit)
	s.cosmos[2] = newCosmos(s.mass, crit*1.9)
	s.trace = s.trace[:0]
	for i := range s.traces {
		s.traces[i] = s.traces[i][:0]
	}
}

// Controls exposes the field mass, strain amplitude, polarization, and a
// restart.
func (s *Scene) Controls() []vitrine.Control {
	s.massSlider = vitrine.NewSlider("mass", 0.2, 4, 0.05, s.mass)
	s.massSlider.OnChange = func(v float64) {
		s.mass = v
		s.rebuild()
	}
	s.ampSlider = vitrine.NewSlider("amplitude", 0.1, 1, 0.05, s.h0)
	s.ampSlider.OnChange = func(v float64) {
		s.h0 = v
		s.rebuild()
	}
	return []vitrine.Control{
		s.massSlider,
		s.ampSlider,
		vitrine.NewButton("polarization", func() { s.cross = !s.cross }),
		vitrine.NewButton("view", func() { s.cycleView() }),
		vitrine.NewButton("restart", func() { s.rebuild() }),
	}
}

func (s *Scene) cycleView() {
	s.view = (s.view + 1) % viewCount
	s.trace = s.trace[:0]
}

// View reports the active view.
func (s *Scene) View() string { return viewNames[s.view] }

// UpdateSettings stores the merged settings for the next frame.
func (s *Scene) UpdateSettings(set vitrine.Settings) { s.settings = set }

// Cleanup drops every system.
func (s *Scene) Cleanup() {
	s.wave = nil
	s.cosmos = [3]*cosmos{}
	s.trace = nil
	s.traces = [3][]float64{}
}

// Animate steps the active system and renders it with its trace.
func (s *Scene) Animate(dt float64, in *vitrine.Input, cv vitrine.Canvas) {
	if in.KeyJustPressed(ebiten.KeyG) {
		s.cycleView()
	}
	if in.KeyJustPressed(ebiten.KeyP) {
		s.cross = !s.cross
	}
	switch s.view {
	case viewRing:
		s.wave.step(dt)
		s.pushTrace(s.wave.amplitude())
		s.renderRing(cv)
	case viewCosmos:
		for i, c := range s.cosmos {
			c.step(dt * 0.5)
			s.traces[i] = append(s.traces[i], c.scale())
			if len(s.traces[i]) > traceCap {
				s.traces[i] = s.traces[i][len(s.traces[i])-traceCap:]
			}
		}
		s.renderCosmos(cv)
	}
}

func (s *Scene) pushTrace(v float64) {
	s.trace = append(s.trace, v)
	if len(s.trace) > traceCap {
		s.trace = s.trace[len(s.trace)-traceCap:]
	}
}

// ringPoint returns the distorted position of the ring particle at angle
// theta for strain h. Plus polarization stretches x while squeezing y;
// cross does the same along the diagonals.
func ringPoint(theta, h float64, cross bool, cx, cy, r float64) (float64, float64) {
	x := math.Cos(theta)
	y := math.Sin(theta)
	var dx, dy float64
	if cross {
		dx = 0.5 * h * y
		dy = 0.5 * h * x
	} else {
		dx = 0.5 * h * x
		dy = -0.5 * h * y
	}
	return cx + r*(x+dx), cy + r*(y+dy)
}

func (s *Scene) renderRing(cv vitrine.Canvas) {
	cv.Clear(vitrine.Color{R: 0.03, G: 0.03, B: 0.06, A: 1})
	cx, cy := float64(s.w)/2, float64(s.h)*0.42
	r := float64(s.h) * 0.26
	h := s.wave.amplitude() * strainScale * (0.4 + 1.2*s.settings.Intensity)

	ref := vitrine.Color{R: 0.25, G: 0.25, B: 0.35, A: 1}
	cv.StrokeCircle(cx, cy, r, 1, ref)

	dot := vitrine.Color{R: 0.4, G: 0.85, B: 0.95, A: 1}
	for i := 0; i < ringCount; i++ {
		theta := 2 * math.Pi * float64(i) / ringCount
		px, py := ringPoint(theta, h, s.cross, cx, cy, r)
		cv.FillCircle(px, py, 3, dot)
	}

	s.plotSeries(cv, s.trace, vitrine.Color{R: 0.95, G: 0.6, B: 0.2, A: 1})
	pol := "plus"
	if s.cross {
		pol = "cross"
	}
	cv.Text(12, 18, fmt.Sprintf("mass %.2f  %s  h %.3f", s.mass, pol, s.wave.amplitude()),
		vitrine.Color{R: 0.7, G: 0.7, B: 0.8, A: 1})
}

var cosmosColors = [3]vitrine.Color{
	{R: 0.35, G: 0.85, B: 0.55, A: 1}, // open
	{R: 0.55, G: 0.45, B: 0.95, A: 1}, // flat
	{R: 0.95, G: 0.4, B: 0.35, A: 1},  // closed
}

func (s *Scene) renderCosmos(cv vitrine.Canvas) {
	cv.Clear(vitrine.Color{R: 0.03, G: 0.03, B: 0.06, A: 1})
	cx, cy := float64(s.w)/2, float64(s.h)*0.42

	for i, c := range s.cosmos {
		r := math.Abs(c.scale()) * float64(s.h) * 0.2
		cv.StrokeCircle(cx, cy, math.Max(r, 1), 2, cosmosColors[i])
		s.plotSeries(cv, s.traces[i], cosmosColors[i])
	}
	cv.FillCircle(cx, cy, 3, vitrine.Color{R: 1, G: 1, B: 1, A: 1})

	cv.Text(12, 18, fmt.Sprintf("mass %.2f  a open %.2f flat %.2f closed %.2f",
		s.mass, s.cosmos[0].scale(), s.cosmos[1].scale(), s.cosmos[2].scale()),
		vitrine.Color{R: 0.7, G: 0.7, B: 0.8, A: 1})
}

// plotSeries draws one recorded series along the bottom of the screen,
// normalized to its observed extent.
func (s *Scene) plotSeries(cv vitrine.Canvas, series []float64, c vitrine.Color) {
	if len(series) < 2 {
		return
	}
	lo, hi := series[0], series[0]
	for _, v := range series {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span < 1e-12 {
		span = 1
	}
	top := float64(s.h) * 0.78
	height := float64(s.h) * 0.16
	for i := 1; i < len(series); i++ {
		x0 := float64(s.w) * float64(i-1) / float64(traceCap-1)
		x1 := float64(s.w) * float64(i) / float64(traceCap-1)
		y0 := top + height*(1-(series[i-1]-lo)/span)
		y1 := top + height*(1-(series[i]-lo)/span)
		cv.Line(x0, y0, x1, y1, 1.5, c)
	}
}
