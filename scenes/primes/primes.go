// Package primes animates two views of the integers. The pushdown view
// drops numbers into a collision grid where each prime opens a new column
// and composites stack under their smallest prime divisor. The distribution
// view projects every number into factor space as a rotating point cloud.
// N switches views; in the cloud, drag to orbit and scroll to zoom.
package primes

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/vitrine"
)

const (
	maxN          = 1000
	baseInsPerSec = 12.0
	revealPerSec  = 30.0 // cloud points revealed per second
)

// View selection.
const (
	viewPushdown = iota
	viewCloud
	viewCount
)

var viewNames = [viewCount]string{"pushdown", "distribution"}

func init() {
	vitrine.Register("primes", func() vitrine.Scene { return &Scene{} })
}

// Scene owns the pushdown grid and the precomputed point cloud.
type Scene struct {
	w, h     int
	settings vitrine.Settings
	view     int

	grid    *pushGrid
	insAcc  float64
	lastCol int
	flash   float64

	cloud          []point3
	shown          float64
	yaw, pitch     float64
	zoom           float64
	paused         bool
	prevDX, prevDY float64
}

// Init precomputes the factor-space cloud and starts an empty grid.
func (s *Scene) Init(ctx vitrine.Context) error {
	s.w, s.h = ctx.Width, ctx.Height
	s.settings = ctx.Settings
	s.grid = newPushGrid()
	s.lastCol = -1
	s.zoom = 1
	s.shown = 1
	s.pitch = 0.3

	s.cloud = make([]point3, maxN+1)
	for n := 1; n <= maxN; n++ {
		s.cloud[n] = classify(n)
	}
	return nil
}

// Controls exposes view switching and per-view actions.
func (s *Scene) Controls() []vitrine.Control {
	return []vitrine.Control{
		vitrine.NewButton("view", func() { s.cycleView() }),
		vitrine.NewButton("restart", func() { s.restart() }),
		vitrine.NewButton("pause", func() { s.paused = !s.paused }),
	}
}

func (s *Scene) cycleView() { s.view = (s.view + 1) % viewCount }

// View reports the active view.
func (s *Scene) View() string { return viewNames[s.view] }

func (s *Scene) restart() {
	s.grid.reset()
	s.lastCol = -1
	s.insAcc = 0
	s.shown = 1
}

// UpdateSettings stores the merged settings for the next frame.
func (s *Scene) UpdateSettings(set vitrine.Settings) { s.settings = set }

// Cleanup drops the grid and cloud.
func (s *Scene) Cleanup() {
	s.grid = nil
	s.cloud = nil
}

// Animate advances the active view.
func (s *Scene) Animate(dt float64, in *vitrine.Input, cv vitrine.Canvas) {
	if in.KeyJustPressed(ebiten.KeyN) {
		s.cycleView()
	}
	if in.KeyJustPressed(ebiten.KeySpace) {
		s.paused = !s.paused
	}
	switch s.view {
	case viewPushdown:
		s.animatePushdown(dt, cv)
	case viewCloud:
		s.animateCloud(dt, in, cv)
	}
}

func (s *Scene) animatePushdown(dt float64, cv vitrine.Canvas) {
	if !s.paused && s.grid.next <= maxN {
		rate := baseInsPerSec * (0.25 + 1.75*s.settings.Intensity)
		s.insAcc += dt * rate
		for s.insAcc >= 1 && s.grid.next <= maxN {
			s.insAcc--
			col, _, frontier := s.grid.insert()
			s.lastCol = col
			if frontier {
				s.flash = 1
			}
		}
	}
	s.flash = math.Max(0, s.flash-dt*3)
	s.renderPushdown(cv)
}

func (s *Scene) renderPushdown(cv vitrine.Canvas) {
	cv.Clear(vitrine.Color{R: 0.04, G: 0.04, B: 0.07, A: 1})

	cols := len(s.grid.columns)
	if cols == 0 {
		return
	}
	// Fit the frontier row across the width; cap cell size for early frames.
	cw := float64(s.w) / float64(cols+1)
	if cw > 26 {
		cw = 26
	}
	ch := cw
	top := 40.0
	maxDepth := int((float64(s.h) - top - 20) / ch)

	frontier := vitrine.Color{R: 0.95, G: 0.55, B: 0.2, A: 1}
	for ci, column := range s.grid.columns {
		x := 10 + float64(ci)*cw
		for di := range column {
			if di >= maxDepth {
				break
			}
			y := top + float64(di)*ch
			c := frontier
			if di > 0 {
				t := float64(di) / float64(maxDepth)
				c = vitrine.Color{R: 0.25 - 0.1*t, G: 0.5 - 0.3*t, B: 0.95 - 0.4*t, A: 1}
			}
			if ci == s.lastCol && di == len(column)-1 {
				c = c.Lerp(vitrine.Color{R: 1, G: 1, B: 1, A: 1}, 0.5)
			}
			cv.FillRect(x+1, y+1, cw-2, ch-2, c)
		}
	}

	if s.flash > 0 {
		cv.FillRect(0, 0, float64(s.w), 4, frontier.WithAlpha(s.flash))
	}
	cv.Text(12, 18, fmt.Sprintf("placed %d  frontiers %d", s.grid.Placed(), len(s.grid.frontiers)),
		vitrine.Color{R: 0.7, G: 0.7, B: 0.8, A: 1})
}

func (s *Scene) animateCloud(dt float64, in *vitrine.Input, cv vitrine.Canvas) {
	if in.Dragging {
		s.yaw += (in.DragDX - s.prevDX) * 0.005
		s.pitch += (in.DragDY - s.prevDY) * 0.005
		s.prevDX, s.prevDY = in.DragDX, in.DragDY
	} else {
		s.prevDX, s.prevDY = 0, 0
		s.yaw += dt * 0.15
	}
	if in.Wheel > 0 {
		s.zoom *= 1.1
	} else if in.Wheel < 0 {
		s.zoom /= 1.1
	}
	s.zoom = vitrine.Range{Min: 0.3, Max: 5}.Clamp(s.zoom)

	if !s.paused && s.shown < maxN {
		s.shown += dt * revealPerSec * (0.25 + 1.75*s.settings.Intensity)
		if s.shown > maxN {
			s.shown = maxN
		}
	}
	s.renderCloud(cv)
}

// project rotates a cloud point and applies the same zoomed perspective
// divide the distribution view has always used.
func (s *Scene) project(p point3) (float64, float64) {
	x := (p.x - 0.5) * s.zoom
	y := (p.y - 0.5) * s.zoom
	z := p.z - 0.5

	cy, sy := math.Cos(s.yaw), math.Sin(s.yaw)
	x, z = x*cy+z*sy, -x*sy+z*cy
	cp, sp := math.Cos(s.pitch), math.Sin(s.pitch)
	y, z = y*cp-z*sp, y*sp+z*cp

	scale := 300 * s.zoom
	return float64(s.w)/2 + x*scale/(z+2), float64(s.h)/2 + y*scale/(z+2)
}

var kindColors = [...]vitrine.Color{
	kindOrigin:  {R: 1, G: 1, B: 1, A: 1},
	kindPrime:   {R: 0.25, G: 0.45, B: 1, A: 1},
	kindSquare:  {R: 1, G: 0.25, B: 0.25, A: 1},
	kindCubic:   {R: 0.3, G: 1, B: 0.35, A: 1},
	kindTwinGap: {R: 1, G: 1, B: 0.25, A: 1},
	kindOther:   {R: 0.45, G: 0.45, B: 0.55, A: 0.6},
}

func (s *Scene) renderCloud(cv vitrine.Canvas) {
	cv.Clear(vitrine.Color{R: 0, G: 0, B: 0, A: 1})
	n := int(s.shown)
	for i := 1; i <= n && i < len(s.cloud); i++ {
		p := s.cloud[i]
		if p.kind == kindOther {
			continue
		}
		px, py := s.project(p)
		if px < 0 || py < 0 || px > float64(s.w) || py > float64(s.h) {
			continue
		}
		cv.FillCircle(px, py, 3, kindColors[p.kind])
	}
	cv.Text(12, 18, fmt.Sprintf("n = %d / %d", n, maxN),
		vitrine.Color{R: 0.7, G: 0.7, B: 0.8, A: 1})
}
