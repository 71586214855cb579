// Package quantum bundles two quantum-inspired toys: a bit-state analyzer
// whose Grover sweeps pile probability onto a marked state, and a Fourier
// harmonics view with a live magnitude spectrum. Q switches between them;
// clicking a QBSA bar marks that basis state.
package quantum

import (
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/vitrine"
)

const (
	qubits       = 4
	sweepsPerSec = 2.0
)

// View selection.
const (
	viewQBSA = iota
	viewQFH
	viewCount
)

var viewNames = [viewCount]string{"qbsa", "qfh"}

func init() {
	vitrine.Register("quantum", func() vitrine.Scene { return &Scene{} })
}

// Scene owns both toys and switches views between them.
type Scene struct {
	w, h     int
	settings vitrine.Settings
	rng      *rand.Rand
	view     int

	reg       *register
	sweepAcc  float64
	sweepsRun int
	measured  int

	harm  *harmonics
	phase float64

	fund *vitrine.Slider
	over *vitrine.Slider
}

// Init builds the register in uniform superposition and a two-overtone
// waveform.
func (s *Scene) Init(ctx vitrine.Context) error {
	s.w, s.h = ctx.Width, ctx.Height
	s.settings = ctx.Settings
	s.rng = rand.New(rand.NewPCG(uint64(ctx.Seed), 0x9b1))
	s.measured = -1

	s.reg = newRegister(qubits, s.rng.IntN(1<<qubits))
	s.harm = newHarmonics(6, 3)
	s.harm.synthesize(0)
	return nil
}

// Controls exposes the waveform shape plus restart/measure actions.
func (s *Scene) Controls() []vitrine.Control {
	s.fund = vitrine.NewSlider("freq", 1, 24, 1, s.harm.fundamental)
	s.fund.OnChange = func(v float64) { s.harm.fundamental = v }
	s.over = vitrine.NewSlider("overtones", 1, 8, 1, float64(s.harm.count))
	s.over.OnChange = func(v float64) { s.harm.count = int(v) }
	return []vitrine.Control{
		s.fund,
		s.over,
		vitrine.NewButton("view", func() { s.cycleView() }),
		vitrine.NewButton("restart", func() { s.restart() }),
		vitrine.NewButton("measure", func() { s.measured = s.reg.measure(s.rng) }),
	}
}

func (s *Scene) cycleView() { s.view = (s.view + 1) % viewCount }

// View reports the active toy.
func (s *Scene) View() string { return viewNames[s.view] }

// restart re-prepares the superposition with a fresh random target.
func (s *Scene) restart() {
	s.reg.reset(s.rng.IntN(len(s.reg.amps)))
	s.sweepsRun = 0
	s.sweepAcc = 0
	s.measured = -1
}

// UpdateSettings stores the merged settings for the next frame.
func (s *Scene) UpdateSettings(set vitrine.Settings) { s.settings = set }

// Cleanup drops both toys.
func (s *Scene) Cleanup() {
	s.reg = nil
	s.harm = nil
}

// Animate advances the active toy and renders it.
func (s *Scene) Animate(dt float64, in *vitrine.Input, cv vitrine.Canvas) {
	if in.KeyJustPressed(ebiten.KeyQ) {
		s.cycleView()
	}
	switch s.view {
	case viewQBSA:
		s.animateQBSA(dt, in, cv)
	case viewQFH:
		s.animateQFH(dt, cv)
	}
}

func (s *Scene) animateQBSA(dt float64, in *vitrine.Input, cv vitrine.Canvas) {
	s.handleBarClick(in)

	// Sweep up to the optimum, then hold so the peak stays visible.
	rate := sweepsPerSec * (0.5 + 1.5*s.settings.Intensity)
	if s.sweepsRun < s.reg.optimalSweeps() {
		s.sweepAcc += dt * rate
		for s.sweepAcc >= 1 && s.sweepsRun < s.reg.optimalSweeps() {
			s.sweepAcc--
			s.reg.sweep()
			s.sweepsRun++
		}
	}
	s.renderBars(cv)
}

func (s *Scene) handleBarClick(in *vitrine.Input) {
	if !in.JustPressed(vitrine.MouseButtonLeft) {
		return
	}
	i := s.barAt(in.CursorX)
	if i < 0 {
		return
	}
	s.reg.reset(i)
	s.sweepsRun = 0
	s.sweepAcc = 0
	s.measured = -1
}

func (s *Scene) barAt(x float64) int {
	n := len(s.reg.amps)
	bw := float64(s.w) / float64(n)
	i := int(x / bw)
	if i < 0 || i >= n {
		return -1
	}
	return i
}

func (s *Scene) renderBars(cv vitrine.Canvas) {
	cv.Clear(vitrine.Color{R: 0.04, G: 0.04, B: 0.08, A: 1})
	n := len(s.reg.amps)
	bw := float64(s.w) / float64(n)
	base := float64(s.h) * 0.85
	maxH := float64(s.h) * 0.7

	plain := vitrine.Color{R: 0.3, G: 0.55, B: 0.9, A: 1}
	marked := vitrine.Color{R: 0.95, G: 0.6, B: 0.2, A: 1}
	hit := vitrine.Color{R: 0.4, G: 0.9, B: 0.5, A: 1}
	for i := 0; i < n; i++ {
		p := s.reg.probability(i)
		c := plain
		if i == s.reg.target {
			c = marked
		}
		if i == s.measured {
			c = hit
		}
		bh := p * maxH
		cv.FillRect(float64(i)*bw+2, base-bh, bw-4, bh, c)
	}

	label := fmt.Sprintf("target %0*b  sweeps %d/%d  P %.3f",
		qubits, s.reg.target, s.sweepsRun, s.reg.optimalSweeps(),
		s.reg.probability(s.reg.target))
	if s.measured >= 0 {
		label += fmt.Sprintf("  measured %0*b", qubits, s.measured)
	}
	cv.Text(12, 18, label, vitrine.Color{R: 0.7, G: 0.7, B: 0.8, A: 1})
}

func (s *Scene) animateQFH(dt float64, cv vitrine.Canvas) {
	s.phase += dt * 2.4
	s.harm.synthesize(s.phase)
	s.renderWaveform(cv)
}

func (s *Scene) renderWaveform(cv vitrine.Canvas) {
	cv.Clear(vitrine.Color{R: 0.04, G: 0.04, B: 0.08, A: 1})

	// Time domain across the top half.
	mid := float64(s.h) * 0.28
	amp := float64(s.h) * 0.18
	wave := vitrine.Color{R: 0.4, G: 0.85, B: 0.95, A: 1}
	for i := 1; i < fftSize; i++ {
		x0 := float64(s.w) * float64(i-1) / float64(fftSize-1)
		x1 := float64(s.w) * float64(i) / float64(fftSize-1)
		y0 := mid - s.harm.samples[i-1]*amp/2
		y1 := mid - s.harm.samples[i]*amp/2
		cv.Line(x0, y0, x1, y1, 1.5, wave)
	}

	// Spectrum bars across the bottom half.
	base := float64(s.h) * 0.9
	maxH := float64(s.h) * 0.4
	nb := len(s.harm.spectrum)
	bw := float64(s.w) / float64(nb)
	dom := s.harm.dominantBin()
	bar := vitrine.Color{R: 0.5, G: 0.4, B: 0.95, A: 1}
	peak := vitrine.Color{R: 0.95, G: 0.6, B: 0.2, A: 1}
	for i := 0; i < nb; i++ {
		c := bar
		if i == dom {
			c = peak
		}
		bh := vitrine.Range{Min: 0, Max: 1}.Clamp(s.harm.spectrum[i]) * maxH
		cv.FillRect(float64(i)*bw, base-bh, bw-1, bh, c)
	}

	cv.Text(12, 18, fmt.Sprintf("fundamental %.0f  overtones %d  dominant bin %d",
		s.harm.fundamental, s.harm.count, dom),
		vitrine.Color{R: 0.7, G: 0.7, B: 0.8, A: 1})
}
