package vitrine

import "math"

// burstParticle holds per-particle simulation state. Unexported; managed by
// BurstPool.
type burstParticle struct {
	x, y    float64
	vx, vy  float64
	life    float64 // remaining lifetime in seconds
	maxLife float64 // initial lifetime (for computing t)
	size    float64
	color   Color
	start   Color
	end     Color
	alpha   float64
}

// BurstConfig controls how burst particles behave.
type BurstConfig struct {
	// MaxParticles is the pool size. Spawns are silently dropped when full.
	MaxParticles int
	// Lifetime is the range of particle lifetimes in seconds.
	Lifetime Range
	// Speed is the range of initial particle speeds in pixels per second.
	Speed Range
	// Angle is the range of emission angles in radians. The zero value
	// means a full circle.
	Angle Range
	// Size is the range of particle radii in pixels.
	Size Range
	// Gravity is the constant acceleration applied to all particles.
	Gravity Vec2
	// Drag is the per-second velocity decay factor (0 = none).
	Drag float64
	// StartColor is the tint at birth, interpolated to EndColor over
	// lifetime. Alpha fades to zero at death regardless.
	StartColor Color
	// EndColor is the tint at death.
	EndColor Color
	// Glow renders each particle as a radial gradient instead of a disc.
	Glow bool
}

// BurstPool manages one-shot particle effects: collision sparks, rupture
// flashes, measurement pops. Unlike a continuous emitter there is no emit
// rate; scenes call Spawn at the moment of an event.
type BurstPool struct {
	config    BurstConfig
	particles []burstParticle
	alive     int
}

// NewBurstPool creates a pool with a preallocated particle buffer.
func NewBurstPool(cfg BurstConfig) *BurstPool {
	max := cfg.MaxParticles
	if max <= 0 {
		max = 256
	}
	if cfg.Angle.Min == 0 && cfg.Angle.Max == 0 {
		cfg.Angle = Range{Min: 0, Max: 2 * math.Pi}
	}
	if cfg.Size.Max <= 0 {
		cfg.Size = Range{Min: 1.5, Max: 3}
	}
	if cfg.StartColor == (Color{}) {
		cfg.StartColor = ColorWhite
	}
	if cfg.EndColor == (Color{}) {
		cfg.EndColor = cfg.StartColor
	}
	return &BurstPool{
		config:    cfg,
		particles: make([]burstParticle, max),
	}
}

// Spawn emits n particles at (x, y). Spawns beyond the pool size are dropped.
func (p *BurstPool) Spawn(x, y float64, n int) {
	for i := 0; i < n && p.alive < len(p.particles); i++ {
		pt := &p.particles[p.alive]
		p.alive++

		angle := p.config.Angle.Random()
		speed := p.config.Speed.Random()
		pt.x, pt.y = x, y
		pt.vx = math.Cos(angle) * speed
		pt.vy = math.Sin(angle) * speed
		pt.maxLife = p.config.Lifetime.Random()
		if pt.maxLife <= 0 {
			pt.maxLife = 0.5
		}
		pt.life = pt.maxLife
		pt.size = p.config.Size.Random()
		pt.start = p.config.StartColor
		pt.end = p.config.EndColor
		pt.color = pt.start
		pt.alpha = pt.start.A
	}
}

// Alive returns the number of live particles.
func (p *BurstPool) Alive() int {
	return p.alive
}

// Reset kills all live particles.
func (p *BurstPool) Reset() {
	p.alive = 0
}

// Update advances particle simulation by dt seconds.
func (p *BurstPool) Update(dt float64) {
	gx := p.config.Gravity.X * dt
	gy := p.config.Gravity.Y * dt
	decay := 1.0
	if p.config.Drag > 0 {
		decay = math.Max(0, 1-p.config.Drag*dt)
	}

	// Update live particles, swap-remove dead ones.
	i := 0
	for i < p.alive {
		pt := &p.particles[i]
		pt.life -= dt
		if pt.life <= 0 {
			p.alive--
			p.particles[i] = p.particles[p.alive]
			continue
		}

		pt.vx = (pt.vx + gx) * decay
		pt.vy = (pt.vy + gy) * decay
		pt.x += pt.vx * dt
		pt.y += pt.vy * dt

		t := 1 - pt.life/pt.maxLife
		pt.color = pt.start.Lerp(pt.end, t)
		pt.alpha = pt.start.A * (1 - t)
		i++
	}
}

// Draw renders live particles to the canvas.
func (p *BurstPool) Draw(cv Canvas) {
	for i := 0; i < p.alive; i++ {
		pt := &p.particles[i]
		c := pt.color.WithAlpha(pt.alpha)
		if p.config.Glow {
			cv.RadialGradient(pt.x, pt.y, pt.size*3, c, c.WithAlpha(0))
		} else {
			cv.FillCircle(pt.x, pt.y, pt.size, c)
		}
	}
}
