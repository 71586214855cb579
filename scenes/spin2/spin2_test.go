package spin2

import (
	"math"
	"testing"

	"github.com/phanxgames/vitrine"
)

func TestWaveMatchesAnalyticCosine(t *testing.T) {
	m := 2.0
	w := newWaveField(m, 1)
	dt := 1.0 / 240
	for i := 0; i < 240; i++ {
		w.step(dt)
	}
	want := math.Cos(m * w.t)
	if math.Abs(w.amplitude()-want) > 1e-6 {
		t.Errorf("h(%v) = %v, want %v", w.t, w.amplitude(), want)
	}
}

func TestWaveEnergyConserved(t *testing.T) {
	m := 1.5
	w := newWaveField(m, 1)
	energy := func() float64 {
		return 0.5*w.y[1]*w.y[1] + 0.5*m*m*w.y[0]*w.y[0]
	}
	e0 := energy()
	for i := 0; i < 2000; i++ {
		w.step(1.0 / 120)
	}
	if math.Abs(energy()-e0) > 1e-6*e0 {
		t.Errorf("energy drifted: %v -> %v", e0, energy())
	}
}

func TestCosmosDensityBracketsExpansion(t *testing.T) {
	m := 1.2
	crit := m * m / 2
	open := newCosmos(m, crit*0.1)
	closed := newCosmos(m, crit*1.9)
	for i := 0; i < 60; i++ {
		open.step(1.0 / 60)
		closed.step(1.0 / 60)
	}
	// Sub-critical density: t00 < 0 at rest, so a'' > 0 and a grows.
	if open.scale() <= 1 {
		t.Errorf("open universe scale = %v, want > 1", open.scale())
	}
	if closed.scale() >= 1 {
		t.Errorf("closed universe scale = %v, want < 1", closed.scale())
	}
}

func TestCosmosResetRestoresInitialState(t *testing.T) {
	c := newCosmos(1, 0.1)
	for i := 0; i < 100; i++ {
		c.step(1.0 / 60)
	}
	c.reset()
	if c.scale() != 1 || c.y[1] != 0 || c.t != 0 {
		t.Errorf("reset state = %+v, want a=1 at rest", c.y)
	}
}

func TestRingPointPlusStretchesXSqueezesY(t *testing.T) {
	// theta=0 particle sits on +x; positive strain pushes it outward.
	x, _ := ringPoint(0, 0.2, false, 0, 0, 100)
	if x <= 100 {
		t.Errorf("plus polarization x = %v, want > 100", x)
	}
	// theta=pi/2 particle sits on +y; positive strain pulls it inward.
	_, y := ringPoint(math.Pi/2, 0.2, false, 0, 0, 100)
	if y >= 100 {
		t.Errorf("plus polarization y = %v, want < 100", y)
	}
}

func TestRingPointCrossMovesDiagonal(t *testing.T) {
	// Cross polarization leaves the +x particle's x untouched but shears y.
	x, y := ringPoint(0, 0.2, true, 0, 0, 100)
	if x != 100 {
		t.Errorf("cross x = %v, want 100", x)
	}
	if y == 0 {
		t.Error("cross polarization did not shear the +x particle")
	}
}

func TestSceneSmokeBothViews(t *testing.T) {
	s := &Scene{}
	ctx := vitrine.Context{Width: 400, Height: 300, Settings: vitrine.DefaultSettings(), Seed: 4}
	if err := s.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer s.Cleanup()
	cv := &vitrine.NullCanvas{W: 400, H: 300}
	in := &vitrine.Input{}
	for v := 0; v < viewCount; v++ {
		for i := 0; i < 120; i++ {
			s.Animate(1.0/60, in, cv)
		}
		s.cycleView()
	}
	if cv.Ops == 0 {
		t.Error("no canvas operations recorded")
	}
}

func TestMassChangeRebuildsSystems(t *testing.T) {
	s := &Scene{}
	ctx := vitrine.Context{Width: 400, Height: 300, Settings: vitrine.DefaultSettings(), Seed: 4}
	if err := s.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer s.Cleanup()
	s.Controls()
	cv := &vitrine.NullCanvas{W: 400, H: 300}
	for i := 0; i < 60; i++ {
		s.Animate(1.0/60, &vitrine.Input{}, cv)
	}
	s.massSlider.SetValue(3)
	if s.wave.t != 0 {
		t.Errorf("wave time = %v after mass change, want fresh system", s.wave.t)
	}
	if s.wave.mass != 3 {
		t.Errorf("wave mass = %v, want 3", s.wave.mass)
	}
	s.ampSlider.SetValue(0.5)
	if s.wave.amplitude() != 0.5 {
		t.Errorf("initial strain = %v after amplitude change, want 0.5", s.wave.amplitude())
	}
}
