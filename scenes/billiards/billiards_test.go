package billiards

import (
	"math"
	"testing"

	"github.com/phanxgames/vitrine"
)

func initScene(t *testing.T) *Scene {
	t.Helper()
	s := &Scene{}
	ctx := vitrine.Context{
		Width:    640,
		Height:   480,
		Settings: vitrine.DefaultSettings(),
		Seed:     7,
	}
	if err := s.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return s
}

func TestSmoke(t *testing.T) {
	s := initScene(t)
	cv := &vitrine.NullCanvas{W: 640, H: 480}
	in := &vitrine.Input{}
	for i := 0; i < 60; i++ {
		s.Animate(1.0/60, in, cv)
	}
	if cv.Ops == 0 {
		t.Error("scene drew nothing")
	}
	s.Cleanup()
}

func TestGalperinCounts(t *testing.T) {
	cases := []struct {
		ratio float64
		want  int
	}{
		{1, 3},
		{100, 31},
		{10000, 314},
	}
	for _, c := range cases {
		if got := galperinCount(c.ratio); got != c.want {
			t.Errorf("galperinCount(%v) = %d, want %d", c.ratio, got, c.want)
		}
	}
}

func TestGalperinPlaybackReachesTotal(t *testing.T) {
	run := newGalperinRun(100, 640)
	for i := 0; i < int(galperinTime*60)+120; i++ {
		run.advance(1.0 / 60)
	}
	if !run.done() {
		t.Fatal("playback should finish after the stretched duration")
	}
	if run.count != 31 {
		t.Errorf("count = %d, want 31", run.count)
	}
}

func TestGalperinPositionsOrdered(t *testing.T) {
	run := newGalperinRun(100, 640)
	for i := 0; i < 600; i++ {
		run.advance(galperinTime / 600)
		sx, bx := run.positions()
		if sx < blockWallX-1e-9 {
			t.Fatalf("step %d: small block at %v crossed the wall", i, sx)
		}
		if bx < sx+smallSize-1e-6 {
			t.Fatalf("step %d: heavy block at %v overlaps small at %v", i, bx, sx)
		}
	}
}

// TestCollisionConservation checks momentum and kinetic energy across a
// head-on elastic collision far from any wall.
func TestCollisionConservation(t *testing.T) {
	s := initScene(t)
	s.balls = []ball{
		{x: 280, y: 240, vx: 120, vy: 0, r: 15, m: 225, color: vitrine.ColorWhite},
		{x: 360, y: 240, vx: -80, vy: 0, r: 20, m: 400, color: vitrine.ColorWhite},
	}

	momentum := func() (px, py float64) {
		for _, b := range s.balls {
			px += b.m * b.vx
			py += b.m * b.vy
		}
		return px, py
	}
	energy := func() (e float64) {
		for _, b := range s.balls {
			e += 0.5 * b.m * (b.vx*b.vx + b.vy*b.vy)
		}
		return e
	}

	px0, py0 := momentum()
	e0 := energy()
	for i := 0; i < 60; i++ {
		s.stepTable(1.0 / 60)
	}
	px1, py1 := momentum()
	e1 := energy()

	if math.Abs(px1-px0) > 1e-6*math.Abs(px0)+1e-6 {
		t.Errorf("momentum x: %v -> %v", px0, px1)
	}
	if math.Abs(py1-py0) > 1e-6 {
		t.Errorf("momentum y: %v -> %v", py0, py1)
	}
	if math.Abs(e1-e0) > 1e-6*e0 {
		t.Errorf("kinetic energy: %v -> %v", e0, e1)
	}
}

func TestDragFlingsBall(t *testing.T) {
	s := initScene(t)
	s.balls = []ball{{x: 300, y: 200, r: 20, m: 400, color: vitrine.ColorWhite}}
	cv := &vitrine.NullCanvas{W: 640, H: 480}

	// Grab frame.
	in := &vitrine.Input{CursorX: 300, CursorY: 200}
	in.SetPressed(vitrine.MouseButtonLeft, true, true)
	s.Animate(1.0/60, in, cv)
	if s.grabbed != 0 {
		t.Fatal("ball should be grabbed")
	}

	// Release with a completed drag.
	in = &vitrine.Input{
		CursorX: 400, CursorY: 200,
		DragEnded: true,
		DragStartX: 300, DragStartY: 200,
		DragEndX: 400, DragEndY: 200,
	}
	in.SetPressed(vitrine.MouseButtonLeft, false, true)
	s.Animate(1.0/60, in, cv)

	if s.balls[0].vx <= 0 {
		t.Errorf("vx = %v, want flung to the right", s.balls[0].vx)
	}
}

func TestModeToggle(t *testing.T) {
	s := initScene(t)
	s.toggleMode()
	if !s.piMode {
		t.Error("toggle should enter pi mode")
	}
	cv := &vitrine.NullCanvas{W: 640, H: 480}
	s.Animate(1.0/60, &vitrine.Input{}, cv)
	if s.CollisionCount() < 0 {
		t.Error("collision count should be defined in pi mode")
	}
	s.toggleMode()
	if s.piMode {
		t.Error("second toggle should leave pi mode")
	}
}
