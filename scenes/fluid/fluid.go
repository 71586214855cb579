// Package fluid is a smoothed-particle-hydrodynamics scene. Particles carry
// density and pressure computed from poly6/spiky kernels over a uniform
// spatial hash; the mouse attracts with the left button and repels with the
// right. Intensity scales the interaction force.
package fluid

import (
	"math"
	"math/rand/v2"

	"github.com/phanxgames/vitrine"
)

const (
	particleCount = 420
	smoothingH    = 18.0
	restDensity   = 1.2
	stiffness     = 1800.0
	viscosity     = 28.0
	particleMass  = 1.0
	gravity       = 420.0
	boundDamp     = -0.45
	maxSubStep    = 1.0 / 120
	mouseRadius   = 90.0
	mouseForce    = 2400.0
)

func init() {
	vitrine.Register("fluid", func() vitrine.Scene { return &Scene{} })
}

type particle struct {
	pos, vel vitrine.Vec2
	force    vitrine.Vec2
	density  float64
	pressure float64
}

// Scene simulates a box of liquid particles.
type Scene struct {
	w, h     int
	parts    []particle
	grid     *spatialHash
	settings vitrine.Settings
	rng      *rand.Rand

	// kernel constants, precomputed from smoothingH
	poly6K  float64
	spikyK  float64
	viscK   float64
	neigh  []int
	gravOn bool
}

// Init drops a block of particles into the upper half of the box.
func (s *Scene) Init(ctx vitrine.Context) error {
	s.w, s.h = ctx.Width, ctx.Height
	s.settings = ctx.Settings
	s.rng = rand.New(rand.NewPCG(uint64(ctx.Seed), 0x51b))
	s.gravOn = true

	h := smoothingH
	s.poly6K = 4 / (math.Pi * math.Pow(h, 8))
	s.spikyK = -10 / (math.Pi * math.Pow(h, 5))
	s.viscK = 40 / (math.Pi * math.Pow(h, 5))

	s.grid = newSpatialHash(smoothingH)
	s.parts = make([]particle, 0, particleCount)
	s.seed()
	return nil
}

// seed places particles in a jittered block so the first frames splash.
func (s *Scene) seed() {
	s.parts = s.parts[:0]
	spacing := smoothingH * 0.55
	cols := int(float64(s.w) * 0.5 / spacing)
	x0 := float64(s.w) * 0.25
	y := float64(s.h) * 0.08
	for len(s.parts) < particleCount {
		for c := 0; c < cols && len(s.parts) < particleCount; c++ {
			jx := (s.rng.Float64() - 0.5) * spacing * 0.2
			s.parts = append(s.parts, particle{
				pos: vitrine.Vec2{X: x0 + float64(c)*spacing + jx, Y: y},
			})
		}
		y += spacing
	}
}

// Controls exposes a reset and a gravity toggle.
func (s *Scene) Controls() []vitrine.Control {
	return []vitrine.Control{
		vitrine.NewButton("reset", func() { s.seed() }),
		vitrine.NewButton("gravity", func() { s.gravOn = !s.gravOn }),
	}
}

// UpdateSettings stores the merged settings for the next frame.
func (s *Scene) UpdateSettings(set vitrine.Settings) { s.settings = set }

// Cleanup releases the particle pool.
func (s *Scene) Cleanup() {
	s.parts = nil
	s.grid = nil
}

// Animate advances the solver in fixed sub-steps and draws the particles
// colored by local density.
func (s *Scene) Animate(dt float64, in *vitrine.Input, cv vitrine.Canvas) {
	if dt > 0.1 {
		dt = 0.1
	}
	for dt > 0 {
		step := math.Min(dt, maxSubStep)
		s.update(step, in)
		dt -= step
	}
	s.render(cv)
}

func (s *Scene) update(dt float64, in *vitrine.Input) {
	s.grid.rebuild(s.parts)
	s.computeDensity()
	s.computeForces(in)
	s.integrate(dt)
}

func (s *Scene) computeDensity() {
	h2 := smoothingH * smoothingH
	for i := range s.parts {
		p := &s.parts[i]
		p.density = 0
		s.neigh = s.grid.query(p.pos, s.neigh[:0])
		for _, j := range s.neigh {
			d := s.parts[j].pos
			dx, dy := d.X-p.pos.X, d.Y-p.pos.Y
			r2 := dx*dx + dy*dy
			if r2 < h2 {
				w := h2 - r2
				p.density += particleMass * s.poly6K * w * w * w
			}
		}
		if p.density < 1e-9 {
			p.density = 1e-9
		}
		p.pressure = stiffness * (p.density - restDensity)
		if p.pressure < 0 {
			p.pressure = 0
		}
	}
}

func (s *Scene) computeForces(in *vitrine.Input) {
	for i := range s.parts {
		p := &s.parts[i]
		var fx, fy float64
		s.neigh = s.grid.query(p.pos, s.neigh[:0])
		for _, j := range s.neigh {
			if j == i {
				continue
			}
			q := &s.parts[j]
			dx, dy := q.pos.X-p.pos.X, q.pos.Y-p.pos.Y
			r := math.Hypot(dx, dy)
			if r >= smoothingH || r < 1e-9 {
				continue
			}
			// Pressure: spiky kernel gradient along the pair axis.
			shared := (p.pressure + q.pressure) / (2 * q.density)
			grad := s.spikyK * (smoothingH - r) * (smoothingH - r)
			fx += particleMass * shared * grad * dx / r
			fy += particleMass * shared * grad * dy / r
			// Viscosity: pull velocities together.
			lap := s.viscK * (smoothingH - r)
			fx += viscosity * particleMass * (q.vel.X - p.vel.X) / q.density * lap
			fy += viscosity * particleMass * (q.vel.Y - p.vel.Y) / q.density * lap
		}
		if s.gravOn {
			fy += gravity * p.density
		}
		mfx, mfy := s.mouseForce(p.pos, in)
		fx += mfx * p.density
		fy += mfy * p.density
		p.force = vitrine.Vec2{X: fx, Y: fy}
	}
}

func (s *Scene) mouseForce(pos vitrine.Vec2, in *vitrine.Input) (float64, float64) {
	attract := in.Down(vitrine.MouseButtonLeft)
	repel := in.Down(vitrine.MouseButtonRight)
	if !attract && !repel {
		return 0, 0
	}
	dx, dy := in.CursorX-pos.X, in.CursorY-pos.Y
	r := math.Hypot(dx, dy)
	if r > mouseRadius || r < 1e-6 {
		return 0, 0
	}
	mag := mouseForce * (1 - r/mouseRadius) * (0.2 + s.settings.Intensity)
	if repel {
		mag = -mag
	}
	return mag * dx / r, mag * dy / r
}

func (s *Scene) integrate(dt float64) {
	w, h := float64(s.w), float64(s.h)
	for i := range s.parts {
		p := &s.parts[i]
		p.vel.X += dt * p.force.X / p.density
		p.vel.Y += dt * p.force.Y / p.density
		p.pos.X += dt * p.vel.X
		p.pos.Y += dt * p.vel.Y

		if p.pos.X < 0 {
			p.pos.X = 0
			p.vel.X *= boundDamp
		} else if p.pos.X > w {
			p.pos.X = w
			p.vel.X *= boundDamp
		}
		if p.pos.Y < 0 {
			p.pos.Y = 0
			p.vel.Y *= boundDamp
		} else if p.pos.Y > h {
			p.pos.Y = h
			p.vel.Y *= boundDamp
		}
	}
}

func (s *Scene) render(cv vitrine.Canvas) {
	cv.Clear(vitrine.Color{R: 0.03, G: 0.05, B: 0.09, A: 1})
	for i := range s.parts {
		p := &s.parts[i]
		t := vitrine.Range{Min: 0, Max: 1}.Clamp((p.density - restDensity*0.5) / (restDensity * 1.5))
		c := vitrine.Color{R: 0.2 + 0.5*t, G: 0.5 + 0.3*t, B: 1, A: 1}
		cv.FillCircle(p.pos.X, p.pos.Y, 3.2, c)
	}
}
