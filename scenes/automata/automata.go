// Package automata is a cellular-automata scene cycling between Conway's
// Life, Brian's Brain, and an elementary-rule row scroller. Click to paint
// cells, right-click to erase; N cycles the automaton.
package automata

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/vitrine"
)

const (
	cellSize     = 4
	baseStepsSec = 18.0 // generations per second at speed 1
)

// Automaton modes.
const (
	modeLife = iota
	modeBrain
	modeElementary
	modeCount
)

var modeNames = [modeCount]string{"life", "brian's brain", "elementary"}

// Scene is the cellular-automata demo.
type Scene struct {
	w, h     int
	gw, gh   int
	mode     int
	life     *lifeGrid
	brain    *brainGrid
	elem     *elementary
	acc      float64
	settings vitrine.Settings
	rng      *rand.Rand

	raster *vitrine.Raster
	pal    vitrine.Palette

	rule *vitrine.Slider
}

func init() {
	vitrine.Register("automata", func() vitrine.Scene { return &Scene{} })
}

// Init builds randomized grids for every automaton.
func (s *Scene) Init(ctx vitrine.Context) error {
	s.w, s.h = ctx.Width, ctx.Height
	s.gw, s.gh = s.w/cellSize, s.h/cellSize
	s.settings = ctx.Settings
	s.rng = rand.New(rand.NewPCG(uint64(ctx.Seed), 1))
	s.mode = modeLife

	s.life = newLifeGrid(s.gw, s.gh)
	s.brain = newBrainGrid(s.gw, s.gh)
	s.elem = newElementary(s.gw, s.gh, 110)
	s.randomize()

	s.raster = vitrine.NewRaster(s.gw, s.gh)
	s.pal = vitrine.PaletteOcean()

	s.rule = vitrine.NewSlider("rule", 0, 255, 1, 110)
	s.rule.OnChange = func(v float64) {
		s.elem.rule = uint8(v)
	}
	return nil
}

// Controls exposes the elementary rule slider plus randomize/clear buttons.
func (s *Scene) Controls() []vitrine.Control {
	return []vitrine.Control{
		s.rule,
		vitrine.NewButton("randomize", func() { s.randomize() }),
		vitrine.NewButton("clear", func() { s.clear() }),
		vitrine.NewButton("next", func() { s.cycleMode() }),
	}
}

func (s *Scene) cycleMode() {
	s.mode = (s.mode + 1) % modeCount
}

// Mode returns the name of the active automaton.
func (s *Scene) Mode() string { return modeNames[s.mode] }

func (s *Scene) randomize() {
	for i := range s.life.cur {
		if s.rng.Float64() < 0.25 {
			s.life.cur[i] = 1
		} else {
			s.life.cur[i] = 0
		}
		if s.rng.Float64() < 0.1 {
			s.brain.cur[i] = brainFiring
		} else {
			s.brain.cur[i] = brainOff
		}
	}
	s.elem.reset(s.rng)
}

func (s *Scene) clear() {
	for i := range s.life.cur {
		s.life.cur[i] = 0
		s.brain.cur[i] = brainOff
	}
	s.elem.clear()
}

// UpdateSettings stores the new settings.
func (s *Scene) UpdateSettings(set vitrine.Settings) { s.settings = set }

// Cleanup drops all grids.
func (s *Scene) Cleanup() {
	s.life, s.brain, s.elem = nil, nil, nil
	s.raster = nil
}

// Animate paints, steps the active automaton on its timer, and renders.
func (s *Scene) Animate(dt float64, in *vitrine.Input, cv vitrine.Canvas) {
	if in.KeyJustPressed(ebiten.KeyN) {
		s.cycleMode()
	}
	s.handlePaint(in)

	// Intensity raises the generation rate on top of the global speed.
	s.acc += dt * baseStepsSec * (0.5 + 1.5*s.settings.Intensity)
	for s.acc >= 1 {
		s.acc--
		s.stepOnce()
	}

	s.render(cv)
}

func (s *Scene) stepOnce() {
	switch s.mode {
	case modeLife:
		s.life.step()
	case modeBrain:
		s.brain.step()
	case modeElementary:
		s.elem.step()
	}
}

func (s *Scene) handlePaint(in *vitrine.Input) {
	paint := in.Down(vitrine.MouseButtonLeft)
	erase := in.Down(vitrine.MouseButtonRight)
	if !paint && !erase {
		return
	}
	x := int(in.CursorX) / cellSize
	y := int(in.CursorY) / cellSize
	if x < 0 || y < 0 || x >= s.gw || y >= s.gh {
		return
	}
	i := y*s.gw + x
	switch s.mode {
	case modeLife:
		if paint {
			s.life.cur[i] = 1
		} else {
			s.life.cur[i] = 0
		}
	case modeBrain:
		if paint {
			s.brain.cur[i] = brainFiring
		} else {
			s.brain.cur[i] = brainOff
		}
	case modeElementary:
		if y == s.elem.row {
			if paint {
				s.elem.cells[i] = 1
			} else {
				s.elem.cells[i] = 0
			}
		}
	}
}

func (s *Scene) render(cv vitrine.Canvas) {
	bg := vitrine.Color{0.03, 0.03, 0.05, 1}
	switch s.mode {
	case modeLife:
		for i, v := range s.life.cur {
			c := bg
			if v == 1 {
				c = s.pal.At(0.8)
			}
			s.raster.Set(i%s.gw, i/s.gw, c)
		}
	case modeBrain:
		for i, v := range s.brain.cur {
			c := bg
			switch v {
			case brainFiring:
				c = vitrine.ColorWhite
			case brainDying:
				c = s.pal.At(0.5)
			}
			s.raster.Set(i%s.gw, i/s.gw, c)
		}
	case modeElementary:
		for i, v := range s.elem.cells {
			c := bg
			if v == 1 {
				c = s.pal.At(0.9)
			}
			s.raster.Set(i%s.gw, i/s.gw, c)
		}
	}
	cv.DrawRaster(s.raster, 0, 0, cellSize)
	cv.Text(8, float64(s.h)-52, s.Mode(), vitrine.Color{0.6, 0.6, 0.65, 1})
}
