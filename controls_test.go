package vitrine

import "testing"

func pressInput(x, y float64) *Input {
	in := &Input{CursorX: x, CursorY: y}
	in.down[MouseButtonLeft] = true
	in.justDown[MouseButtonLeft] = true
	return in
}

func TestSliderDragSetsValue(t *testing.T) {
	s := NewSlider("amp", 0, 10, 0, 5)
	s.setBounds(Rect{X: 100, Y: 400, Width: 200, Height: 20})

	// Press at 75% of the track.
	in := pressInput(250, 410)
	if !s.handleInput(in) {
		t.Fatal("press on track should be consumed")
	}
	if got, want := s.Value(), 7.5; got != want {
		t.Errorf("Value = %v, want %v", got, want)
	}

	// Dragging past the end clamps.
	in.justDown[MouseButtonLeft] = false
	in.CursorX = 400
	s.handleInput(in)
	if got := s.Value(); got != 10 {
		t.Errorf("Value = %v, want clamp to 10", got)
	}
}

func TestSliderStepSnaps(t *testing.T) {
	s := NewSlider("n", 0, 10, 2, 0)
	s.setBounds(Rect{X: 0, Y: 0, Width: 100, Height: 20})

	in := pressInput(53, 10)
	s.handleInput(in)
	if got := s.Value(); got != 6 {
		t.Errorf("Value = %v, want snap to 6", got)
	}
}

func TestSliderOnChange(t *testing.T) {
	s := NewSlider("x", 0, 1, 0, 0)
	var fired []float64
	s.OnChange = func(v float64) { fired = append(fired, v) }

	s.SetValue(0.25)
	s.SetValue(0.25) // no change, no callback
	if len(fired) != 1 || fired[0] != 0.25 {
		t.Errorf("OnChange calls = %v, want [0.25]", fired)
	}
}

func TestSliderSetValueEases(t *testing.T) {
	s := NewSlider("x", 0, 1, 0, 0)
	s.SetValue(1)
	if s.shown == 1 {
		t.Fatal("knob should ease, not jump")
	}
	for i := 0; i < 30; i++ {
		s.update(1.0 / 60)
	}
	if s.shown != 1 {
		t.Errorf("shown = %v, want 1 after easing", s.shown)
	}
}

func TestSliderIgnoresOutsidePress(t *testing.T) {
	s := NewSlider("x", 0, 1, 0, 0.5)
	s.setBounds(Rect{X: 0, Y: 0, Width: 100, Height: 20})
	in := pressInput(500, 500)
	if s.handleInput(in) {
		t.Error("press far from track should not be consumed")
	}
	if s.Value() != 0.5 {
		t.Errorf("Value = %v, want unchanged 0.5", s.Value())
	}
}

func TestButtonPress(t *testing.T) {
	presses := 0
	b := NewButton("reset", func() { presses++ })
	b.setBounds(Rect{X: 10, Y: 10, Width: 96, Height: 20})

	if !b.handleInput(pressInput(50, 20)) {
		t.Fatal("press inside button should be consumed")
	}
	if presses != 1 {
		t.Errorf("presses = %d, want 1", presses)
	}
	if b.handleInput(pressInput(300, 300)) {
		t.Error("press outside button should not be consumed")
	}
}

func TestButtonFlashDecays(t *testing.T) {
	b := NewButton("x", nil)
	b.setBounds(Rect{Width: 96, Height: 20})
	b.handleInput(pressInput(5, 5))
	if b.flash != 1 {
		t.Fatalf("flash = %v, want 1 after press", b.flash)
	}
	for i := 0; i < 60; i++ {
		b.update(1.0 / 60)
	}
	if b.flash != 0 {
		t.Errorf("flash = %v, want 0 after decay", b.flash)
	}
}

func TestDraggableFollowsPointer(t *testing.T) {
	d := NewDraggable("src", 100, 100, 10)
	var moved int
	d.OnMove = func(x, y float64) { moved++ }

	in := pressInput(105, 100)
	if !d.handleInput(in) {
		t.Fatal("press on marker should grab it")
	}

	in.justDown[MouseButtonLeft] = false
	in.CursorX, in.CursorY = 200, 150
	d.handleInput(in)
	if d.X != 200 || d.Y != 150 {
		t.Errorf("marker at (%v, %v), want (200, 150)", d.X, d.Y)
	}
	if moved < 2 {
		t.Errorf("OnMove calls = %d, want >= 2", moved)
	}

	// Release lets go.
	in.down[MouseButtonLeft] = false
	d.handleInput(in)
	in.CursorX = 300
	if d.handleInput(in) {
		t.Error("marker should not follow after release")
	}
}

func TestDraggableIgnoresFarPress(t *testing.T) {
	d := NewDraggable("src", 100, 100, 10)
	if d.handleInput(pressInput(150, 150)) {
		t.Error("press outside radius should not grab")
	}
}
