package options

import (
	"math"
	"testing"

	"github.com/phanxgames/vitrine"
)

var atm = Params{Spot: 100, Strike: 100, T: 1, Sigma: 0.3, R: 0.03}

func TestPutCallParity(t *testing.T) {
	cases := []Params{
		atm,
		{Spot: 100, Strike: 80, T: 0.5, Sigma: 0.2, R: 0.05},
		{Spot: 100, Strike: 130, T: 2, Sigma: 0.5, R: 0},
	}
	for _, p := range cases {
		lhs := Call(p) - Put(p)
		rhs := p.Spot - p.Strike*math.Exp(-p.R*p.T)
		if math.Abs(lhs-rhs) > 1e-9 {
			t.Errorf("parity violated for %+v: C-P = %v, S-Ke^-rT = %v", p, lhs, rhs)
		}
	}
}

func TestCallExpiryIsIntrinsic(t *testing.T) {
	p := Params{Spot: 120, Strike: 100, T: 0, Sigma: 0.3, R: 0.03}
	if got := Call(p); got != 20 {
		t.Errorf("Call at expiry = %v, want 20", got)
	}
	p.Spot = 80
	if got := Call(p); got != 0 {
		t.Errorf("OTM call at expiry = %v, want 0", got)
	}
}

func TestBinomialConvergesToBlackScholes(t *testing.T) {
	want := Call(atm)
	got := BinomialCall(atm, 1000)
	if math.Abs(got-want) > 0.02 {
		t.Errorf("binomial(1000) = %v, Black-Scholes = %v", got, want)
	}
	coarse := math.Abs(BinomialCall(atm, 50) - want)
	fine := math.Abs(got - want)
	if fine > coarse {
		t.Errorf("error grew with steps: 50 -> %v, 1000 -> %v", coarse, fine)
	}
}

func TestGreeksSanity(t *testing.T) {
	d := Delta(atm)
	if d <= 0 || d >= 1 {
		t.Errorf("call delta = %v, want in (0, 1)", d)
	}
	if Gamma(atm) <= 0 {
		t.Errorf("gamma = %v, want > 0", Gamma(atm))
	}
	if Vega(atm) <= 0 {
		t.Errorf("vega = %v, want > 0", Vega(atm))
	}

	// Delta by bump agrees with the closed form.
	eps := 0.01
	up, dn := atm, atm
	up.Spot += eps
	dn.Spot -= eps
	bump := (Call(up) - Call(dn)) / (2 * eps)
	if math.Abs(bump-d) > 1e-4 {
		t.Errorf("bumped delta = %v, closed form = %v", bump, d)
	}
}

func TestDeepITMDeltaNearOne(t *testing.T) {
	p := Params{Spot: 300, Strike: 100, T: 0.5, Sigma: 0.2, R: 0.03}
	if d := Delta(p); d < 0.99 {
		t.Errorf("deep ITM delta = %v, want >= 0.99", d)
	}
}

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	s := &Scene{}
	ctx := vitrine.Context{Width: 400, Height: 300, Settings: vitrine.DefaultSettings(), Seed: 1}
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
	for i := 0; i < 60; i++ {
		s.Animate(1.0/60, in, cv)
	}
	if cv.Ops == 0 {
		t.Error("no canvas operations recorded")
	}
}

func TestSurfaceCycles(t *testing.T) {
	s := newTestScene(t)
	defer s.Cleanup()
	if s.Surface() != "call" {
		t.Fatalf("initial surface = %q, want call", s.Surface())
	}
	for i := 0; i < surfCount; i++ {
		s.cycleSurface()
	}
	if s.Surface() != "call" {
		t.Errorf("surface after full cycle = %q, want call", s.Surface())
	}
}

func TestSliderChangeResamples(t *testing.T) {
	s := newTestScene(t)
	defer s.Cleanup()
	controls := s.Controls()
	if len(controls) != 4 {
		t.Fatalf("len(controls) = %d, want 4", len(controls))
	}
	before := s.heights[gridN/2][gridN/2]
	s.volSlider.SetValue(0.8)
	if !s.dirty {
		t.Fatal("vol change did not mark surface dirty")
	}
	cv := &vitrine.NullCanvas{W: 400, H: 300}
	s.Animate(1.0/60, &vitrine.Input{}, cv)
	after := s.heights[gridN/2][gridN/2]
	if after <= before {
		t.Errorf("ATM call price did not rise with volatility: %v -> %v", before, after)
	}
}
