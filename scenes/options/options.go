// Package options renders Black-Scholes pricing surfaces over strike and
// maturity as a rotatable wireframe. Drag to orbit, M cycles the surface
// between price and greeks; sliders set volatility, rate, and spot.
package options

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/vitrine"
)

const (
	gridN     = 24   // surface resolution per axis
	strikeLo  = 50.0 // strikes span strikeLo..strikeHi around spot 100
	strikeHi  = 150.0
	matLo     = 0.05 // years
	matHi     = 2.0
	orbitRate = 0.006 // radians per dragged pixel
)

// Surface selection.
const (
	surfCall = iota
	surfPut
	surfDelta
	surfGamma
	surfVega
	surfCount
)

var surfNames = [surfCount]string{"call", "put", "delta", "gamma", "vega"}

func init() {
	vitrine.Register("options", func() vitrine.Scene { return &Scene{} })
}

// Scene holds the sampled surface and camera orbit state.
type Scene struct {
	w, h     int
	settings vitrine.Settings

	spot  float64
	sigma float64
	rate  float64
	surf  int

	heights [gridN][gridN]float64
	dirty   bool

	yaw, pitch     float64
	spin           float64 // idle spin, rad/s, scaled by Speed upstream
	prevDX, prevDY float64 // drag deltas consumed so far

	volSlider  *vitrine.Slider
	rateSlider *vitrine.Slider
	spotSlider *vitrine.Slider
}

// Init samples the initial call surface.
func (s *Scene) Init(ctx vitrine.Context) error {
	s.w, s.h = ctx.Width, ctx.Height
	s.settings = ctx.Settings
	s.spot = 100
	s.sigma = 0.3
	s.rate = 0.03
	s.yaw = 0.7
	s.pitch = 0.42
	s.spin = 0.25
	s.resample()
	return nil
}

// Controls exposes the three market inputs and a surface selector.
func (s *Scene) Controls() []vitrine.Control {
	s.volSlider = vitrine.NewSlider("vol", 0.05, 1.0, 0.01, s.sigma)
	s.volSlider.OnChange = func(v float64) { s.sigma = v; s.dirty = true }
	s.rateSlider = vitrine.NewSlider("rate", 0, 0.1, 0.005, s.rate)
	s.rateSlider.OnChange = func(v float64) { s.rate = v; s.dirty = true }
	s.spotSlider = vitrine.NewSlider("spot", 60, 140, 1, s.spot)
	s.spotSlider.OnChange = func(v float64) { s.spot = v; s.dirty = true }
	return []vitrine.Control{
		s.volSlider,
		s.rateSlider,
		s.spotSlider,
		vitrine.NewButton("surface", func() { s.cycleSurface() }),
	}
}

func (s *Scene) cycleSurface() {
	s.surf = (s.surf + 1) % surfCount
	s.dirty = true
}

// Surface reports the name of the displayed surface.
func (s *Scene) Surface() string { return surfNames[s.surf] }

// resample recomputes every grid height for the current market inputs.
func (s *Scene) resample() {
	for i := 0; i < gridN; i++ {
		k := strikeLo + (strikeHi-strikeLo)*float64(i)/float64(gridN-1)
		for j := 0; j < gridN; j++ {
			t := matLo + (matHi-matLo)*float64(j)/float64(gridN-1)
			p := Params{Spot: s.spot, Strike: k, T: t, Sigma: s.sigma, R: s.rate}
			var v float64
			switch s.surf {
			case surfCall:
				v = Call(p)
			case surfPut:
				v = Put(p)
			case surfDelta:
				v = Delta(p)
			case surfGamma:
				v = Gamma(p)
			case surfVega:
				v = Vega(p)
			}
			s.heights[i][j] = v
		}
	}
	s.dirty = false
}

// UpdateSettings stores the merged settings for the next frame.
func (s *Scene) UpdateSettings(set vitrine.Settings) { s.settings = set }

// Cleanup has nothing to release; the surface is plain arrays.
func (s *Scene) Cleanup() {}

// Animate orbits the camera and draws the wireframe.
func (s *Scene) Animate(dt float64, in *vitrine.Input, cv vitrine.Canvas) {
	if in.KeyJustPressed(ebiten.KeyM) {
		s.cycleSurface()
	}
	if in.Dragging {
		s.yaw += (in.DragDX - s.prevDX) * orbitRate
		s.pitch += (in.DragDY - s.prevDY) * orbitRate
		s.pitch = vitrine.Range{Min: -1.2, Max: 1.2}.Clamp(s.pitch)
		s.prevDX, s.prevDY = in.DragDX, in.DragDY
	} else {
		s.prevDX, s.prevDY = 0, 0
		s.yaw += dt * s.spin
	}
	if s.dirty {
		s.resample()
	}
	s.render(cv)
}

// project maps normalized surface coordinates (x, z in [-1,1], y height in
// [0,1]) through the orbit rotation to screen space.
func (s *Scene) project(x, y, z float64) (float64, float64) {
	cy, sy := math.Cos(s.yaw), math.Sin(s.yaw)
	cp, sp := math.Cos(s.pitch), math.Sin(s.pitch)

	rx := x*cy + z*sy
	rz := -x*sy + z*cy
	ry := y*cp - rz*sp

	scale := float64(s.h) * 0.33
	return float64(s.w)/2 + rx*scale, float64(s.h)*0.55 - ry*scale
}

func (s *Scene) render(cv vitrine.Canvas) {
	cv.Clear(vitrine.Color{R: 0.04, G: 0.04, B: 0.07, A: 1})

	lo, hi := s.heights[0][0], s.heights[0][0]
	for i := 0; i < gridN; i++ {
		for j := 0; j < gridN; j++ {
			v := s.heights[i][j]
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	span := hi - lo
	if span < 1e-12 {
		span = 1
	}

	at := func(i, j int) (float64, float64, float64) {
		x := 2*float64(i)/float64(gridN-1) - 1
		z := 2*float64(j)/float64(gridN-1) - 1
		y := (s.heights[i][j] - lo) / span
		return x, y, z
	}

	cold := vitrine.Color{R: 0.2, G: 0.4, B: 0.9, A: 1}
	hot := vitrine.Color{R: 0.95, G: 0.55, B: 0.2, A: 1}
	for i := 0; i < gridN; i++ {
		for j := 0; j < gridN; j++ {
			x, y, z := at(i, j)
			px, py := s.project(x, y, z)
			c := cold.Lerp(hot, y)
			if i+1 < gridN {
				x2, y2, z2 := at(i+1, j)
				qx, qy := s.project(x2, y2, z2)
				cv.Line(px, py, qx, qy, 1, c)
			}
			if j+1 < gridN {
				x2, y2, z2 := at(i, j+1)
				qx, qy := s.project(x2, y2, z2)
				cv.Line(px, py, qx, qy, 1, c)
			}
		}
	}

	cv.Text(12, 18, fmt.Sprintf("%s  vol %.2f  rate %.3f  spot %.0f",
		surfNames[s.surf], s.sigma, s.rate, s.spot),
		vitrine.Color{R: 0.7, G: 0.7, B: 0.8, A: 1})
}
