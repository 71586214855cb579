// Package hopfield is an associative-memory scene. A stored gallery of
// bitmap patterns is corrupted with noise and relaxed back one unit at a
// time, with the network energy traced under the grid. Left-click toggles
// cells of the probe, R corrupts, space relaxes a step.
package hopfield

import (
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/vitrine"
	"github.com/phanxgames/vitrine/hopfield"
)

const (
	patternDim  = 10 // patterns are patternDim x patternDim bitmaps
	stepsPerSec = 40.0
	traceCap    = 240
)

func init() {
	vitrine.Register("hopfield", func() vitrine.Scene { return &Scene{} })
}

// Scene drives a Hopfield network over a small bitmap grid.
type Scene struct {
	w, h     int
	net      *hopfield.Network
	patterns [][]float64
	state    []float64
	settings vitrine.Settings
	rng      *rand.Rand

	relaxing bool
	acc      float64
	trace    []float64

	cellPx  int
	gridX   int
	gridY   int
	current int
}

// Init stores the built-in glyph patterns and starts from the first one.
func (s *Scene) Init(ctx vitrine.Context) error {
	s.w, s.h = ctx.Width, ctx.Height
	s.settings = ctx.Settings
	s.rng = rand.New(rand.NewPCG(uint64(ctx.Seed), 0x68f7))

	n := patternDim * patternDim
	s.net = hopfield.New(n)
	s.patterns = buildPatterns()
	if err := s.net.Store(s.patterns...); err != nil {
		return fmt.Errorf("hopfield: store patterns: %w", err)
	}

	s.cellPx = (minInt(s.w, s.h) * 6 / 10) / patternDim
	if s.cellPx < 4 {
		s.cellPx = 4
	}
	s.gridX = (s.w - s.cellPx*patternDim) / 2
	s.gridY = (s.h-s.cellPx*patternDim)/2 - 20

	s.state = append([]float64(nil), s.patterns[0]...)
	s.trace = s.trace[:0]
	s.pushEnergy()
	return nil
}

func buildPatterns() [][]float64 {
	rows := [][patternDim]string{
		{ // cross
			"#........#",
			".#......#.",
			"..#....#..",
			"...#..#...",
			"....##....",
			"....##....",
			"...#..#...",
			"..#....#..",
			".#......#.",
			"#........#",
		},
		{ // box
			"##########",
			"#........#",
			"#........#",
			"#........#",
			"#........#",
			"#........#",
			"#........#",
			"#........#",
			"#........#",
			"##########",
		},
		{ // stripes
			"##..##..##",
			"##..##..##",
			"##..##..##",
			"##..##..##",
			"##..##..##",
			"##..##..##",
			"##..##..##",
			"##..##..##",
			"##..##..##",
			"##..##..##",
		},
	}
	out := make([][]float64, len(rows))
	for p, glyph := range rows {
		v := make([]float64, patternDim*patternDim)
		for y, row := range glyph {
			for x := 0; x < patternDim; x++ {
				if row[x] == '#' {
					v[y*patternDim+x] = 1
				} else {
					v[y*patternDim+x] = -1
				}
			}
		}
		out[p] = v
	}
	return out
}

// Controls exposes noise corruption, relaxation, and pattern selection.
func (s *Scene) Controls() []vitrine.Control {
	return []vitrine.Control{
		vitrine.NewButton("corrupt", func() { s.corrupt() }),
		vitrine.NewButton("relax", func() { s.relaxing = !s.relaxing }),
		vitrine.NewButton("pattern", func() { s.nextPattern() }),
	}
}

func (s *Scene) corrupt() {
	p := 0.05 + 0.4*s.settings.Intensity
	s.state = hopfield.Corrupt(s.state, p, s.rng)
	s.pushEnergy()
}

func (s *Scene) nextPattern() {
	s.current = (s.current + 1) % len(s.patterns)
	s.state = append(s.state[:0], s.patterns[s.current]...)
	s.relaxing = false
	s.trace = s.trace[:0]
	s.pushEnergy()
}

// Overlap reports agreement between the live state and the selected pattern.
func (s *Scene) Overlap() float64 {
	return hopfield.Overlap(s.state, s.patterns[s.current])
}

// Relaxing reports whether the network is stepping toward a fixed point.
func (s *Scene) Relaxing() bool { return s.relaxing }

func (s *Scene) pushEnergy() {
	s.trace = append(s.trace, s.net.Energy(s.state))
	if len(s.trace) > traceCap {
		s.trace = s.trace[len(s.trace)-traceCap:]
	}
}

// UpdateSettings stores the merged settings for the next frame.
func (s *Scene) UpdateSettings(set vitrine.Settings) { s.settings = set }

// Cleanup drops the network and trace.
func (s *Scene) Cleanup() {
	s.net = nil
	s.trace = nil
	s.state = nil
}

// Animate advances relaxation and renders grid plus energy trace.
func (s *Scene) Animate(dt float64, in *vitrine.Input, cv vitrine.Canvas) {
	if in.KeyJustPressed(ebiten.KeyR) {
		s.corrupt()
	}
	if in.KeyJustPressed(ebiten.KeySpace) {
		s.relaxing = !s.relaxing
	}
	s.handleToggle(in)

	if s.relaxing {
		s.acc += dt * stepsPerSec
		for s.acc >= 1 {
			s.acc--
			flips := s.net.StepAsync(s.state, s.rng)
			s.pushEnergy()
			if flips == 0 {
				s.relaxing = false
				break
			}
		}
	}

	s.render(cv)
}

func (s *Scene) handleToggle(in *vitrine.Input) {
	if !in.JustPressed(vitrine.MouseButtonLeft) {
		return
	}
	x := (int(in.CursorX) - s.gridX) / s.cellPx
	y := (int(in.CursorY) - s.gridY) / s.cellPx
	if x < 0 || y < 0 || x >= patternDim || y >= patternDim {
		return
	}
	i := y*patternDim + x
	s.state[i] = -s.state[i]
	s.pushEnergy()
}

func (s *Scene) render(cv vitrine.Canvas) {
	cv.Clear(vitrine.Color{R: 0.05, G: 0.05, B: 0.08, A: 1})

	on := vitrine.Color{R: 0.95, G: 0.83, B: 0.3, A: 1}
	off := vitrine.Color{R: 0.14, G: 0.15, B: 0.22, A: 1}
	for y := 0; y < patternDim; y++ {
		for x := 0; x < patternDim; x++ {
			c := off
			if s.state[y*patternDim+x] > 0 {
				c = on
			}
			px := float64(s.gridX + x*s.cellPx)
			py := float64(s.gridY + y*s.cellPx)
			cv.FillRect(px+1, py+1, float64(s.cellPx-2), float64(s.cellPx-2), c)
		}
	}

	s.renderTrace(cv)
	cv.Text(float64(s.gridX), float64(s.gridY-14),
		fmt.Sprintf("overlap %.2f  stored %d", s.Overlap(), s.net.Stored()),
		vitrine.Color{R: 0.7, G: 0.7, B: 0.8, A: 1})
}

// renderTrace plots the recorded energies under the grid, scaled to the
// observed min/max so the descent is visible regardless of network size.
func (s *Scene) renderTrace(cv vitrine.Canvas) {
	if len(s.trace) < 2 {
		return
	}
	lo, hi := s.trace[0], s.trace[0]
	for _, e := range s.trace {
		if e < lo {
			lo = e
		}
		if e > hi {
			hi = e
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	top := float64(s.gridY + s.cellPx*patternDim + 16)
	height := 48.0
	width := float64(s.cellPx * patternDim)
	c := vitrine.Color{R: 0.35, G: 0.78, B: 0.62, A: 1}
	for i := 1; i < len(s.trace); i++ {
		x0 := float64(s.gridX) + width*float64(i-1)/float64(len(s.trace)-1)
		x1 := float64(s.gridX) + width*float64(i)/float64(len(s.trace)-1)
		y0 := top + height*(s.trace[i-1]-lo)/span
		y1 := top + height*(s.trace[i]-lo)/span
		cv.Line(x0, y0, x1, y1, 1.5, c)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
