package primes

import (
	"testing"

	"github.com/phanxgames/vitrine"
)

func TestFrontiersArePrimes(t *testing.T) {
	g := newPushGrid()
	for g.next <= 30 {
		g.insert()
	}
	want := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	got := g.Frontiers()
	if len(got) != len(want) {
		t.Fatalf("frontiers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frontiers = %v, want %v", got, want)
		}
	}
}

func TestCompositeStacksUnderSmallestFactor(t *testing.T) {
	g := newPushGrid()
	for g.next <= 12 {
		col, _, frontier := g.insert()
		switch g.next - 1 {
		case 12: // smallest prime factor 2, column 0
			if frontier || col != 0 {
				t.Errorf("12: col = %d frontier = %v, want col 0", col, frontier)
			}
		case 9: // smallest prime factor 3, column 1
			if frontier || col != 1 {
				t.Errorf("9: col = %d frontier = %v, want col 1", col, frontier)
			}
		}
	}
}

func TestPushGridReset(t *testing.T) {
	g := newPushGrid()
	for i := 0; i < 20; i++ {
		g.insert()
	}
	g.reset()
	if g.Placed() != 0 || len(g.Frontiers()) != 0 {
		t.Errorf("after reset: placed %d, frontiers %d", g.Placed(), len(g.Frontiers()))
	}
}

func TestClassifyKinds(t *testing.T) {
	cases := []struct {
		n    int
		kind int
	}{
		{1, kindOrigin},
		{2, kindPrime},
		{13, kindPrime},
		{9, kindSquare},
		{25, kindSquare},
		{8, kindCubic},
		{64, kindCubic},
		{4, kindSquare}, // squares win over cubes at 4
		{12, kindTwinGap},
		{30, kindTwinGap},
		{15, kindOther},
	}
	for _, tc := range cases {
		if got := classify(tc.n).kind; got != tc.kind {
			t.Errorf("classify(%d).kind = %d, want %d", tc.n, got, tc.kind)
		}
	}
}

func TestPrimePointsOnXAxis(t *testing.T) {
	p := classify(7)
	if p.y != 0 || p.z != 0 {
		t.Errorf("prime point off x axis: %+v", p)
	}
	if p.x != 7.0/factorScale {
		t.Errorf("prime x = %v, want %v", p.x, 7.0/factorScale)
	}
}

func TestSceneSmokeBothViews(t *testing.T) {
	s := &Scene{}
	ctx := vitrine.Context{Width: 400, Height: 300, Settings: vitrine.DefaultSettings(), Seed: 2}
	if err := s.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer s.Cleanup()
	cv := &vitrine.NullCanvas{W: 400, H: 300}
	in := &vitrine.Input{}
	for v := 0; v < viewCount; v++ {
		for i := 0; i < 90; i++ {
			s.Animate(1.0/60, in, cv)
		}
		s.cycleView()
	}
	if s.grid.Placed() == 0 {
		t.Error("pushdown never placed a number")
	}
}

func TestRestartClearsProgress(t *testing.T) {
	s := &Scene{}
	ctx := vitrine.Context{Width: 400, Height: 300, Settings: vitrine.DefaultSettings(), Seed: 2}
	if err := s.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer s.Cleanup()
	cv := &vitrine.NullCanvas{W: 400, H: 300}
	for i := 0; i < 60; i++ {
		s.Animate(1.0/60, &vitrine.Input{}, cv)
	}
	s.restart()
	if s.grid.Placed() != 0 {
		t.Errorf("placed = %d after restart, want 0", s.grid.Placed())
	}
}
