package wave

import (
	"testing"

	"github.com/phanxgames/vitrine"
)

func initScene(t *testing.T, intensity float64) *Scene {
	t.Helper()
	s := &Scene{}
	ctx := vitrine.Context{
		Width:  320,
		Height: 240,
		Settings: vitrine.DefaultSettings().Merge(vitrine.Settings{
			Intensity: intensity,
		}),
		Seed: 1,
	}
	if err := s.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return s
}

// runFrames animates the scene and reports whether any frame produced
// ruptures.
func runFrames(s *Scene, n int) bool {
	cv := &vitrine.NullCanvas{W: 320, H: 240}
	in := &vitrine.Input{}
	any := false
	for i := 0; i < n; i++ {
		s.Animate(1.0/60, in, cv)
		if len(s.Ruptures()) > 0 {
			any = true
		}
	}
	return any
}

func TestSmoke(t *testing.T) {
	s := initScene(t, 0.5)
	cv := &vitrine.NullCanvas{W: 320, H: 240}
	in := &vitrine.Input{}
	for i := 0; i < 30; i++ {
		s.Animate(1.0/60, in, cv)
	}
	if cv.Ops == 0 {
		t.Error("scene drew nothing")
	}
	s.Cleanup()
}

func TestOpposingPhaseRuptures(t *testing.T) {
	s := initScene(t, 0.9)
	// Default sources already oppose in phase.
	if !runFrames(s, 180) {
		t.Error("opposing-phase sources at high energy should rupture")
	}
}

func TestSamePhaseNeverRuptures(t *testing.T) {
	s := initScene(t, 0.9)
	for i := range s.sources {
		s.sources[i].phase = 1
	}
	if runFrames(s, 180) {
		t.Error("same-phase sources should never rupture")
	}
}

func TestZeroAmplitudeNeverRuptures(t *testing.T) {
	s := initScene(t, 0.5)
	s.settings.Intensity = 0
	if runFrames(s, 120) {
		t.Error("zero amplitude should never rupture")
	}
}

func TestClickAddsSource(t *testing.T) {
	s := initScene(t, 0.5)
	in := &vitrine.Input{CursorX: 100, CursorY: 100}
	cv := &vitrine.NullCanvas{W: 320, H: 240}

	before := s.SourceCount()
	pressLeft(in)
	s.Animate(1.0/60, in, cv)
	if got := s.SourceCount(); got != before+1 {
		t.Errorf("SourceCount = %d, want %d", got, before+1)
	}
}

func TestSourceCap(t *testing.T) {
	s := initScene(t, 0.5)
	cv := &vitrine.NullCanvas{W: 320, H: 240}
	for i := 0; i < maxSources+5; i++ {
		in := &vitrine.Input{CursorX: float64(20 + i*10), CursorY: 100}
		pressLeft(in)
		s.Animate(1.0/60, in, cv)
	}
	if got := s.SourceCount(); got != maxSources {
		t.Errorf("SourceCount = %d, want cap %d", got, maxSources)
	}
}

func TestClearButtonZeroesField(t *testing.T) {
	s := initScene(t, 0.9)
	runFrames(s, 60)
	s.clearField()
	for i, v := range s.cur {
		if v != 0 {
			t.Fatalf("cur[%d] = %v after clear, want 0", i, v)
		}
	}
}

// pressLeft marks the left button as freshly pressed on the snapshot.
func pressLeft(in *vitrine.Input) {
	in.SetPressed(vitrine.MouseButtonLeft, true, true)
}
