// Package wave is an interference scene: point sources drive a damped 2D
// wave field, and cells caught between opposing-phase sources at high energy
// "rupture" with a flash. Click to add a source, right-click to flip the
// phase of the nearest one.
package wave

import (
	"math"

	"github.com/phanxgames/vitrine"
)

const (
	cellSize     = 4   // field cells per canvas pixel axis
	subStep      = 1.0 / 120
	waveSpeed2   = 0.25 // c² in cell units per substep
	borderDamp   = 0.88
	maxSources   = 12
	ruptureGrad  = 0.6 // gradient threshold as a multiple of drive amplitude
	ruptureEvery = 2   // sample stride for rupture detection, in cells
	maxRuptures  = 256
)

type source struct {
	gx, gy int
	phase  float64 // +1 or -1
}

// Scene is the wave-interference demo.
type Scene struct {
	w, h     int
	gw, gh   int
	cur      []float64
	prev     []float64
	next     []float64
	sources  []source
	t        float64
	acc      float64
	settings vitrine.Settings

	ruptures []vitrine.Vec2
	raster   *vitrine.Raster
	pal      vitrine.Palette
	flash    *vitrine.BurstPool

	freq *vitrine.Slider
	damp *vitrine.Slider
}

func init() {
	vitrine.Register("wave", func() vitrine.Scene { return &Scene{} })
}

// Init builds the field with two opposing-phase sources at the thirds.
func (s *Scene) Init(ctx vitrine.Context) error {
	s.w, s.h = ctx.Width, ctx.Height
	s.gw, s.gh = s.w/cellSize, s.h/cellSize
	n := s.gw * s.gh
	s.cur = make([]float64, n)
	s.prev = make([]float64, n)
	s.next = make([]float64, n)
	s.settings = ctx.Settings
	s.t = 0
	s.acc = 0

	s.sources = []source{
		{gx: s.gw / 3, gy: s.gh / 2, phase: 1},
		{gx: 2 * s.gw / 3, gy: s.gh / 2, phase: -1},
	}

	s.raster = vitrine.NewRaster(s.gw, s.gh)
	s.pal = vitrine.PaletteDiverging()
	s.flash = vitrine.NewBurstPool(vitrine.BurstConfig{
		MaxParticles: 512,
		Lifetime:     vitrine.Range{Min: 0.2, Max: 0.5},
		Speed:        vitrine.Range{Min: 20, Max: 70},
		Size:         vitrine.Range{Min: 1, Max: 2.5},
		StartColor:   vitrine.Color{1, 0.9, 0.6, 1},
		EndColor:     vitrine.Color{0.9, 0.3, 0.1, 1},
		Glow:         true,
	})

	s.freq = vitrine.NewSlider("frequency", 0.5, 4, 0, 1.5)
	s.damp = vitrine.NewSlider("damping", 0, 0.02, 0, 0.004)
	return nil
}

// Controls exposes the frequency and damping sliders and a clear button.
func (s *Scene) Controls() []vitrine.Control {
	return []vitrine.Control{
		s.freq,
		s.damp,
		vitrine.NewButton("clear", func() { s.clearField() }),
	}
}

func (s *Scene) clearField() {
	for i := range s.cur {
		s.cur[i] = 0
		s.prev[i] = 0
	}
	s.flash.Reset()
}

// UpdateSettings stores the new settings; Intensity feeds the drive
// amplitude on the next substep.
func (s *Scene) UpdateSettings(set vitrine.Settings) { s.settings = set }

// Cleanup releases the field.
func (s *Scene) Cleanup() {
	s.cur, s.prev, s.next = nil, nil, nil
	s.sources = nil
	s.ruptures = nil
	s.raster = nil
	s.flash = nil
}

// Amplitude returns the current drive amplitude derived from Intensity.
func (s *Scene) Amplitude() float64 {
	return 2.5 * s.settings.Intensity
}

// Ruptures returns the rupture locations detected on the last frame, in
// canvas coordinates.
func (s *Scene) Ruptures() []vitrine.Vec2 { return s.ruptures }

// SourceCount returns the number of active sources.
func (s *Scene) SourceCount() int { return len(s.sources) }

// Animate advances the field and renders it.
func (s *Scene) Animate(dt float64, in *vitrine.Input, cv vitrine.Canvas) {
	s.handlePointer(in)

	s.acc += dt
	for s.acc >= subStep {
		s.acc -= subStep
		s.step()
	}
	s.detectRuptures()
	s.flash.Update(dt)

	s.render(cv)
}

func (s *Scene) handlePointer(in *vitrine.Input) {
	gx := int(in.CursorX) / cellSize
	gy := int(in.CursorY) / cellSize
	inField := gx > 0 && gy > 0 && gx < s.gw-1 && gy < s.gh-1

	if in.JustPressed(vitrine.MouseButtonLeft) && inField && len(s.sources) < maxSources {
		s.sources = append(s.sources, source{gx: gx, gy: gy, phase: 1})
	}
	if in.JustPressed(vitrine.MouseButtonRight) && len(s.sources) > 0 {
		best, bestD := 0, math.MaxFloat64
		for i, src := range s.sources {
			dx := float64(src.gx - gx)
			dy := float64(src.gy - gy)
			if d := dx*dx + dy*dy; d < bestD {
				best, bestD = i, d
			}
		}
		s.sources[best].phase = -s.sources[best].phase
	}
}

// step advances the wave equation by one substep.
func (s *Scene) step() {
	s.t += subStep
	gw, gh := s.gw, s.gh
	damp := 1 - s.damp.Value()

	for y := 1; y < gh-1; y++ {
		row := y * gw
		for x := 1; x < gw-1; x++ {
			i := row + x
			lap := s.cur[i-1] + s.cur[i+1] + s.cur[i-gw] + s.cur[i+gw] - 4*s.cur[i]
			s.next[i] = (2*s.cur[i] - s.prev[i] + waveSpeed2*lap) * damp
		}
	}

	// Absorbing-ish borders: bleed energy instead of reflecting it.
	for x := 0; x < gw; x++ {
		s.next[x] = s.next[gw+x] * borderDamp
		s.next[(gh-1)*gw+x] = s.next[(gh-2)*gw+x] * borderDamp
	}
	for y := 0; y < gh; y++ {
		s.next[y*gw] = s.next[y*gw+1] * borderDamp
		s.next[y*gw+gw-1] = s.next[y*gw+gw-2] * borderDamp
	}

	amp := s.Amplitude()
	drive := math.Sin(2 * math.Pi * s.freq.Value() * s.t)
	for _, src := range s.sources {
		s.next[src.gy*s.gw+src.gx] = amp * drive * src.phase
	}

	s.prev, s.cur, s.next = s.cur, s.next, s.prev
}

// detectRuptures records cells whose field gradient exceeds the threshold
// while sitting between opposing-phase sources. With same-phase sources the
// list stays empty no matter the energy.
func (s *Scene) detectRuptures() {
	s.ruptures = s.ruptures[:0]
	amp := s.Amplitude()
	if amp <= 0 || !s.hasOpposingSources() {
		return
	}
	threshold := ruptureGrad * amp
	gw := s.gw

	for y := ruptureEvery; y < s.gh-ruptureEvery; y += ruptureEvery {
		for x := ruptureEvery; x < gw-ruptureEvery; x += ruptureEvery {
			i := y*gw + x
			gx := s.cur[i+1] - s.cur[i-1]
			gy := s.cur[i+gw] - s.cur[i-gw]
			if gx*gx+gy*gy < threshold*threshold {
				continue
			}
			if !s.opposedAt(x, y) {
				continue
			}
			px := float64(x*cellSize) + cellSize/2
			py := float64(y*cellSize) + cellSize/2
			s.ruptures = append(s.ruptures, vitrine.Vec2{X: px, Y: py})
			s.flash.Spawn(px, py, 2)
			if len(s.ruptures) >= maxRuptures {
				return
			}
		}
	}
}

func (s *Scene) hasOpposingSources() bool {
	var pos, neg bool
	for _, src := range s.sources {
		if src.phase > 0 {
			pos = true
		} else {
			neg = true
		}
	}
	return pos && neg
}

// opposedAt reports whether the two sources nearest to cell (x, y) have
// opposite phases.
func (s *Scene) opposedAt(x, y int) bool {
	if len(s.sources) < 2 {
		return false
	}
	d1, d2 := math.MaxFloat64, math.MaxFloat64
	var p1, p2 float64
	for _, src := range s.sources {
		dx := float64(src.gx - x)
		dy := float64(src.gy - y)
		d := dx*dx + dy*dy
		switch {
		case d < d1:
			d2, p2 = d1, p1
			d1, p1 = d, src.phase
		case d < d2:
			d2, p2 = d, src.phase
		}
	}
	return p1*p2 < 0
}

func (s *Scene) render(cv vitrine.Canvas) {
	amp := math.Max(s.Amplitude(), 0.2)
	for y := 0; y < s.gh; y++ {
		row := y * s.gw
		for x := 0; x < s.gw; x++ {
			v := s.cur[row+x] / (2 * amp)
			s.raster.Set(x, y, s.pal.At(0.5+vitrine.Range{Min: -0.5, Max: 0.5}.Clamp(v)))
		}
	}
	cv.DrawRaster(s.raster, 0, 0, cellSize)

	cinematic := s.settings.VideoMode == vitrine.VideoModeCinematic
	for _, src := range s.sources {
		px := float64(src.gx*cellSize) + cellSize/2
		py := float64(src.gy*cellSize) + cellSize/2
		c := vitrine.Color{0.3, 0.8, 1, 1}
		if src.phase < 0 {
			c = vitrine.Color{1, 0.5, 0.2, 1}
		}
		if cinematic {
			cv.RadialGradient(px, py, 18, c, c.WithAlpha(0))
		}
		cv.StrokeCircle(px, py, 6, 2, c)
	}

	s.flash.Draw(cv)
}
