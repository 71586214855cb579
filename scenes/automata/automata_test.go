package automata

import (
	"math/rand/v2"
	"testing"

	"github.com/phanxgames/vitrine"
)

func TestLifeBlinkerOscillates(t *testing.T) {
	g := newLifeGrid(8, 8)
	// Horizontal blinker at row 4.
	for _, x := range []int{2, 3, 4} {
		g.cur[4*8+x] = 1
	}
	start := append([]uint8(nil), g.cur...)

	g.step()
	// Vertical phase: column 3, rows 3-5.
	for _, y := range []int{3, 4, 5} {
		if g.cur[y*8+3] != 1 {
			t.Fatalf("after 1 step, cell (3,%d) = %d, want 1", y, g.cur[y*8+3])
		}
	}

	g.step()
	for i := range start {
		if g.cur[i] != start[i] {
			t.Fatalf("blinker did not return to start at index %d", i)
		}
	}
}

func TestLifeToroidalWrap(t *testing.T) {
	g := newLifeGrid(5, 5)
	// Blinker across the horizontal seam.
	for _, x := range []int{4, 0, 1} {
		g.cur[2*5+x] = 1
	}
	g.step()
	for _, y := range []int{1, 2, 3} {
		if g.cur[y*5+0] != 1 {
			t.Fatalf("wrap blinker: cell (0,%d) = %d, want 1", y, g.cur[y*5+0])
		}
	}
}

func TestBrainLifecycle(t *testing.T) {
	g := newBrainGrid(6, 6)
	g.cur[2*6+2] = brainFiring
	g.step()
	if g.cur[2*6+2] != brainDying {
		t.Errorf("firing cell = %d after step, want dying", g.cur[2*6+2])
	}
	g.step()
	if g.cur[2*6+2] != brainOff {
		t.Errorf("dying cell = %d after step, want off", g.cur[2*6+2])
	}
}

func TestBrainBirthOnTwoFiring(t *testing.T) {
	g := newBrainGrid(6, 6)
	g.cur[2*6+1] = brainFiring
	g.cur[2*6+3] = brainFiring
	g.step()
	if g.cur[2*6+2] != brainFiring {
		t.Errorf("cell between two firing = %d, want firing", g.cur[2*6+2])
	}
}

func TestElementaryRule110(t *testing.T) {
	src := []uint8{0, 0, 1, 0, 0}
	dst := make([]uint8, 5)
	nextRow(110, src, dst)
	want := []uint8{0, 1, 1, 0, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("rule 110 row = %v, want %v", dst, want)
		}
	}
}

func TestElementaryRule0ClearsRow(t *testing.T) {
	src := []uint8{1, 1, 1, 1}
	dst := make([]uint8, 4)
	nextRow(0, src, dst)
	for i, v := range dst {
		if v != 0 {
			t.Fatalf("rule 0 produced live cell at %d", i)
		}
	}
}

func TestElementaryScrolls(t *testing.T) {
	e := newElementary(8, 3, 110)
	e.reset(rand.New(rand.NewPCG(1, 0)))
	for i := 0; i < 10; i++ {
		e.step()
	}
	if e.row != 2 {
		t.Errorf("row = %d, want pinned at bottom (2)", e.row)
	}
}

func TestSceneSmokeAllModes(t *testing.T) {
	s := &Scene{}
	ctx := vitrine.Context{Width: 320, Height: 240, Settings: vitrine.DefaultSettings(), Seed: 3}
	if err := s.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	cv := &vitrine.NullCanvas{W: 320, H: 240}
	in := &vitrine.Input{}
	for mode := 0; mode < modeCount; mode++ {
		for i := 0; i < 30; i++ {
			s.Animate(1.0/60, in, cv)
		}
		s.cycleMode()
	}
	s.Cleanup()
}

func TestPaintCell(t *testing.T) {
	s := &Scene{}
	ctx := vitrine.Context{Width: 320, Height: 240, Settings: vitrine.DefaultSettings(), Seed: 3}
	if err := s.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.clear()

	in := &vitrine.Input{CursorX: 100, CursorY: 100}
	in.SetPressed(vitrine.MouseButtonLeft, true, true)
	s.handlePaint(in)

	x, y := 100/cellSize, 100/cellSize
	if s.life.cur[y*s.gw+x] != 1 {
		t.Error("painted cell should be alive")
	}
}
