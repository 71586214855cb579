package vitrine

import "testing"

func TestBurstSpawnAndExpire(t *testing.T) {
	p := NewBurstPool(BurstConfig{
		MaxParticles: 64,
		Lifetime:     Range{Min: 0.5, Max: 0.5},
		Speed:        Range{Min: 10, Max: 20},
	})
	p.Spawn(100, 100, 10)
	if got := p.Alive(); got != 10 {
		t.Fatalf("Alive = %d, want 10", got)
	}

	// Half the lifetime: all still alive.
	for i := 0; i < 15; i++ {
		p.Update(1.0 / 60)
	}
	if got := p.Alive(); got != 10 {
		t.Errorf("Alive after 0.25s = %d, want 10", got)
	}

	// Past the lifetime: all dead.
	for i := 0; i < 20; i++ {
		p.Update(1.0 / 60)
	}
	if got := p.Alive(); got != 0 {
		t.Errorf("Alive after 0.58s = %d, want 0", got)
	}
}

func TestBurstPoolCap(t *testing.T) {
	p := NewBurstPool(BurstConfig{MaxParticles: 5, Lifetime: Range{Min: 1, Max: 1}})
	p.Spawn(0, 0, 100)
	if got := p.Alive(); got != 5 {
		t.Errorf("Alive = %d, want cap of 5", got)
	}
}

func TestBurstReset(t *testing.T) {
	p := NewBurstPool(BurstConfig{MaxParticles: 8, Lifetime: Range{Min: 1, Max: 1}})
	p.Spawn(0, 0, 8)
	p.Reset()
	if got := p.Alive(); got != 0 {
		t.Errorf("Alive after Reset = %d, want 0", got)
	}
}

func TestBurstGravityMovesParticles(t *testing.T) {
	p := NewBurstPool(BurstConfig{
		MaxParticles: 1,
		Lifetime:     Range{Min: 10, Max: 10},
		Speed:        Range{Min: 0, Max: 0},
		Gravity:      Vec2{Y: 100},
	})
	p.Spawn(50, 50, 1)
	for i := 0; i < 60; i++ {
		p.Update(1.0 / 60)
	}
	if p.particles[0].y <= 50 {
		t.Errorf("y = %v, want fallen below 50", p.particles[0].y)
	}
}

func TestBurstDrawUsesCanvas(t *testing.T) {
	p := NewBurstPool(BurstConfig{MaxParticles: 4, Lifetime: Range{Min: 1, Max: 1}})
	p.Spawn(10, 10, 4)
	cv := &NullCanvas{W: 100, H: 100}
	p.Draw(cv)
	if cv.Ops != 4 {
		t.Errorf("Ops = %d, want 4", cv.Ops)
	}
}
