package fluid

import (
	"math"
	"testing"

	"github.com/phanxgames/vitrine"
)

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	s := &Scene{}
	ctx := vitrine.Context{Width: 400, Height: 300, Settings: vitrine.DefaultSettings(), Seed: 11}
	if err := s.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return s
}

func TestSceneSmoke(t *testing.T) {
	s := newTestScene(t)
	defer s.Cleanup()
	cv := &vitrine.NullCanvas{W: 400, H: 300}
	in := &vitrine.Input{}
	for i := 0; i < 120; i++ {
		s.Animate(1.0/60, in, cv)
	}
	for i := range s.parts {
		p := &s.parts[i]
		if math.IsNaN(p.pos.X) || math.IsNaN(p.pos.Y) {
			t.Fatalf("particle %d position is NaN", i)
		}
		if p.pos.X < 0 || p.pos.X > 400 || p.pos.Y < 0 || p.pos.Y > 300 {
			t.Fatalf("particle %d escaped bounds: %+v", i, p.pos)
		}
	}
}

func TestGravityPullsDown(t *testing.T) {
	s := newTestScene(t)
	defer s.Cleanup()
	cv := &vitrine.NullCanvas{W: 400, H: 300}
	in := &vitrine.Input{}

	var before float64
	for i := range s.parts {
		before += s.parts[i].pos.Y
	}
	for i := 0; i < 30; i++ {
		s.Animate(1.0/60, in, cv)
	}
	var after float64
	for i := range s.parts {
		after += s.parts[i].pos.Y
	}
	if after <= before {
		t.Errorf("mean y did not increase under gravity: %v -> %v", before/float64(len(s.parts)), after/float64(len(s.parts)))
	}
}

func TestDensityPositiveAtRest(t *testing.T) {
	s := newTestScene(t)
	defer s.Cleanup()
	s.grid.rebuild(s.parts)
	s.computeDensity()
	for i := range s.parts {
		if s.parts[i].density <= 0 {
			t.Fatalf("particle %d density = %v, want > 0", i, s.parts[i].density)
		}
	}
}

func TestMouseAttractsNearbyParticles(t *testing.T) {
	s := newTestScene(t)
	defer s.Cleanup()
	cv := &vitrine.NullCanvas{W: 400, H: 300}
	s.gravOn = false

	// Let the block settle a little without gravity.
	for i := 0; i < 10; i++ {
		s.Animate(1.0/60, &vitrine.Input{}, cv)
	}

	// Pull toward a point left of the block.
	target := vitrine.Vec2{X: 40, Y: 60}
	in := &vitrine.Input{CursorX: target.X, CursorY: target.Y}
	in.SetPressed(vitrine.MouseButtonLeft, true, false)

	nearest := -1
	best := math.Inf(1)
	for i := range s.parts {
		d := math.Hypot(s.parts[i].pos.X-target.X, s.parts[i].pos.Y-target.Y)
		if d < best && d < mouseRadius {
			best, nearest = d, i
		}
	}
	if nearest < 0 {
		t.Skip("no particle within mouse radius for this seed")
	}
	for i := 0; i < 30; i++ {
		s.Animate(1.0/60, in, cv)
	}
	after := math.Hypot(s.parts[nearest].pos.X-target.X, s.parts[nearest].pos.Y-target.Y)
	if after >= best {
		t.Errorf("nearest particle moved away from cursor: %v -> %v", best, after)
	}
}

func TestSpatialHashFindsNeighbors(t *testing.T) {
	g := newSpatialHash(10)
	parts := []particle{
		{pos: vitrine.Vec2{X: 5, Y: 5}},
		{pos: vitrine.Vec2{X: 12, Y: 5}},  // adjacent cell
		{pos: vitrine.Vec2{X: 95, Y: 95}}, // far away
	}
	g.rebuild(parts)
	got := g.query(parts[0].pos, nil)
	want := map[int]bool{0: true, 1: true}
	if len(got) != 2 {
		t.Fatalf("query returned %v, want indices 0 and 1", got)
	}
	for _, i := range got {
		if !want[i] {
			t.Errorf("unexpected index %d in %v", i, got)
		}
	}
}

func TestResetRestoresParticleCount(t *testing.T) {
	s := newTestScene(t)
	defer s.Cleanup()
	s.parts = s.parts[:10]
	s.seed()
	if len(s.parts) != particleCount {
		t.Errorf("len(parts) = %d, want %d", len(s.parts), particleCount)
	}
}
