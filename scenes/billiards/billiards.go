// Package billiards is a collision-physics scene: elastic discs on a
// frictionless table, with a Galperin mode where the collision count between
// two blocks and a wall spells out the digits of π. Drag a ball to fling it;
// press M or the mode button to toggle modes.
package billiards

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/vitrine"
)

const (
	ballCount    = 14
	solverPasses = 3 // more passes = less clipping on simultaneous contacts
	maxSpeed     = 900.0
	wallPad      = 10.0

	// Galperin mode geometry, in canvas units.
	blockWallX   = 120.0
	smallSize    = 40.0
	bigSize      = 90.0
	galperinTime = 6.0 // seconds the block run is stretched over
)

type ball struct {
	x, y   float64
	vx, vy float64
	r      float64
	m      float64
	color  vitrine.Color
}

// Scene is the billiards demo.
type Scene struct {
	w, h     int
	balls    []ball
	sparks   *vitrine.BurstPool
	settings vitrine.Settings
	rng      *rand.Rand

	// Drag state: index of the grabbed ball, or -1.
	grabbed int

	// Galperin mode.
	piMode  bool
	run     *galperinRun
	massExp *vitrine.Slider
}

func init() {
	vitrine.Register("billiards", func() vitrine.Scene { return &Scene{} })
}

// Init scatters the balls.
func (s *Scene) Init(ctx vitrine.Context) error {
	s.w, s.h = ctx.Width, ctx.Height
	s.settings = ctx.Settings
	s.rng = rand.New(rand.NewPCG(uint64(ctx.Seed), 0))
	s.grabbed = -1
	s.piMode = false

	s.balls = make([]ball, ballCount)
	pal := vitrine.PaletteOcean()
	for i := range s.balls {
		r := 14 + s.rng.Float64()*12
		s.balls[i] = ball{
			x:     r + s.rng.Float64()*(float64(s.w)-2*r),
			y:     r + s.rng.Float64()*(float64(s.h)-2*r),
			vx:    (s.rng.Float64() - 0.5) * 300,
			vy:    (s.rng.Float64() - 0.5) * 300,
			r:     r,
			m:     r * r,
			color: pal.At(s.rng.Float64()),
		}
	}

	s.sparks = vitrine.NewBurstPool(vitrine.BurstConfig{
		MaxParticles: 384,
		Lifetime:     vitrine.Range{Min: 0.15, Max: 0.4},
		Speed:        vitrine.Range{Min: 40, Max: 140},
		Size:         vitrine.Range{Min: 1, Max: 2},
		StartColor:   vitrine.Color{1, 1, 0.8, 1},
		EndColor:     vitrine.Color{0.9, 0.4, 0.1, 1},
	})

	s.massExp = vitrine.NewSlider("mass 100^k", 0, 3, 1, 1)
	s.massExp.OnChange = func(float64) { s.restartRun() }
	s.restartRun()
	return nil
}

// Controls exposes the mode toggle and the Galperin mass-ratio slider.
func (s *Scene) Controls() []vitrine.Control {
	return []vitrine.Control{
		vitrine.NewButton("mode", func() { s.toggleMode() }),
		vitrine.NewButton("restart", func() { s.restartRun() }),
		s.massExp,
	}
}

func (s *Scene) toggleMode() {
	s.piMode = !s.piMode
	if s.piMode {
		s.restartRun()
	}
}

func (s *Scene) restartRun() {
	ratio := math.Pow(100, s.massExp.Value())
	s.run = newGalperinRun(ratio, float64(s.w))
}

// UpdateSettings stores the new settings.
func (s *Scene) UpdateSettings(set vitrine.Settings) { s.settings = set }

// Cleanup drops the table state.
func (s *Scene) Cleanup() {
	s.balls = nil
	s.sparks = nil
	s.run = nil
}

// CollisionCount returns the Galperin collision counter for the current run.
func (s *Scene) CollisionCount() int { return s.run.count }

// Animate advances the active mode.
func (s *Scene) Animate(dt float64, in *vitrine.Input, cv vitrine.Canvas) {
	if in.KeyJustPressed(ebiten.KeyM) {
		s.toggleMode()
	}
	if s.piMode {
		s.run.advance(dt)
		s.drawGalperin(cv)
		return
	}

	s.handleDrag(in)
	s.stepTable(dt)
	s.sparks.Update(dt)
	s.drawTable(cv)
}

func (s *Scene) handleDrag(in *vitrine.Input) {
	if in.JustPressed(vitrine.MouseButtonLeft) {
		s.grabbed = -1
		for i := range s.balls {
			b := &s.balls[i]
			dx, dy := in.CursorX-b.x, in.CursorY-b.y
			if dx*dx+dy*dy <= b.r*b.r {
				s.grabbed = i
				break
			}
		}
	}
	if s.grabbed >= 0 && in.DragEnded {
		b := &s.balls[s.grabbed]
		// Fling along the drag vector, scaled by intensity.
		scale := 3 * (0.5 + s.settings.Intensity)
		b.vx = (in.DragEndX - in.DragStartX) * scale
		b.vy = (in.DragEndY - in.DragStartY) * scale
		s.grabbed = -1
	}
	if !in.Down(vitrine.MouseButtonLeft) && !in.DragEnded {
		s.grabbed = -1
	}
}

// stepTable integrates and resolves wall and pairwise collisions.
func (s *Scene) stepTable(dt float64) {
	w, h := float64(s.w), float64(s.h)
	for i := range s.balls {
		b := &s.balls[i]
		b.x += b.vx * dt
		b.y += b.vy * dt

		if b.x < wallPad+b.r {
			b.x = wallPad + b.r
			b.vx = -b.vx
		} else if b.x > w-wallPad-b.r {
			b.x = w - wallPad - b.r
			b.vx = -b.vx
		}
		if b.y < wallPad+b.r {
			b.y = wallPad + b.r
			b.vy = -b.vy
		} else if b.y > h-wallPad-b.r {
			b.y = h - wallPad - b.r
			b.vy = -b.vy
		}

		if v := math.Hypot(b.vx, b.vy); v > maxSpeed {
			b.vx *= maxSpeed / v
			b.vy *= maxSpeed / v
		}
	}

	for pass := 0; pass < solverPasses; pass++ {
		for i := range s.balls {
			for j := i + 1; j < len(s.balls); j++ {
				s.collide(&s.balls[i], &s.balls[j], pass == 0)
			}
		}
	}
}

// collide resolves an elastic collision between a and b, separating overlap
// and exchanging momentum along the contact normal.
func (s *Scene) collide(a, b *ball, spark bool) {
	dx, dy := b.x-a.x, b.y-a.y
	dist := math.Hypot(dx, dy)
	minDist := a.r + b.r
	if dist >= minDist || dist == 0 {
		return
	}

	nx, ny := dx/dist, dy/dist
	overlap := minDist - dist
	total := a.m + b.m
	a.x -= nx * overlap * (b.m / total)
	a.y -= ny * overlap * (b.m / total)
	b.x += nx * overlap * (a.m / total)
	b.y += ny * overlap * (a.m / total)

	// Relative velocity along the normal; skip if separating.
	rvn := (b.vx-a.vx)*nx + (b.vy-a.vy)*ny
	if rvn >= 0 {
		return
	}
	impulse := 2 * rvn / total
	a.vx += impulse * b.m * nx
	a.vy += impulse * b.m * ny
	b.vx -= impulse * a.m * nx
	b.vy -= impulse * a.m * ny

	if spark && -rvn > 120 {
		cx := a.x + nx*a.r
		cy := a.y + ny*a.r
		s.sparks.Spawn(cx, cy, 6)
	}
}

func (s *Scene) drawTable(cv vitrine.Canvas) {
	cv.Clear(vitrine.Color{0.04, 0.1, 0.06, 1})
	w, h := float64(s.w), float64(s.h)
	cv.StrokeRect(wallPad, wallPad, w-2*wallPad, h-2*wallPad, 3, vitrine.Color{0.35, 0.25, 0.12, 1})

	cinematic := s.settings.VideoMode == vitrine.VideoModeCinematic
	for i := range s.balls {
		b := &s.balls[i]
		if cinematic {
			cv.RadialGradient(b.x, b.y, b.r*1.8, b.color.WithAlpha(0.5), b.color.WithAlpha(0))
		}
		cv.FillCircle(b.x, b.y, b.r, b.color)
		cv.FillCircle(b.x-b.r*0.3, b.y-b.r*0.3, b.r*0.25, vitrine.ColorWhite.WithAlpha(0.6))
	}
	s.sparks.Draw(cv)
}

func (s *Scene) drawGalperin(cv vitrine.Canvas) {
	cv.Clear(vitrine.Color{0.05, 0.05, 0.08, 1})
	w, h := float64(s.w), float64(s.h)
	floor := h * 0.7

	cv.Line(0, floor, w, floor, 2, vitrine.Color{0.4, 0.4, 0.45, 1})
	cv.FillRect(blockWallX-8, floor-220, 8, 220, vitrine.Color{0.4, 0.4, 0.45, 1})

	sx, bx := s.run.positions()
	cv.FillRect(sx, floor-smallSize, smallSize, smallSize, vitrine.Color{0.36, 0.62, 0.92, 1})
	cv.FillRect(bx, floor-bigSize, bigSize, bigSize, vitrine.Color{0.9, 0.45, 0.2, 1})

	cv.Text(w/2-60, 60, fmt.Sprintf("collisions: %d", s.run.count), vitrine.ColorWhite)
	cv.Text(w/2-60, 80, fmt.Sprintf("mass ratio: %.0f", s.run.ratio), vitrine.Color{0.6, 0.6, 0.65, 1})
	if s.run.done() {
		digits := int(s.massExp.Value()) + 1
		cv.Text(w/2-60, 100, fmt.Sprintf("first %d digits of pi", digits), vitrine.Color{0.36, 0.62, 0.92, 1})
	}
}
