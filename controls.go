package vitrine

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Control is a host-rendered interactive element exposed by a scene via
// ControlProvider. The host lays controls out, routes input to them before
// the scene sees it, and draws them on top of the frame.
type Control interface {
	// Label returns the text shown next to the control.
	Label() string
	// setBounds is called by the host during layout.
	setBounds(r Rect)
	// handleInput lets the control react to this frame's input. Returning
	// true consumes the pointer for the frame (the scene still receives the
	// snapshot, but with the buttons cleared).
	handleInput(in *Input) bool
	// update advances control animations by dt seconds.
	update(dt float64)
	// draw renders the control.
	draw(cv Canvas)
}

// Control bar metrics.
const (
	controlBarHeight = 44.0
	controlPad       = 12.0
	sliderWidth      = 180.0
	buttonWidth      = 96.0
	knobRadius       = 7.0
)

var (
	controlTrackColor = Color{0.35, 0.35, 0.42, 1}
	controlFillColor  = Color{0.36, 0.62, 0.92, 1}
	controlTextColor  = Color{0.85, 0.85, 0.9, 1}
	controlBackColor  = Color{0.08, 0.08, 0.11, 0.85}
)

// Slider is a horizontal value control. Reads are always safe from the
// owning scene; writes go through SetValue so the knob eases to its new
// position.
type Slider struct {
	label    string
	min, max float64
	step     float64
	value    float64
	shown    float64 // knob position, eased toward value
	tween    *gween.Tween
	bounds   Rect
	dragging bool

	// OnChange, if set, fires whenever the value changes.
	OnChange func(v float64)
}

// NewSlider creates a slider over [min, max] starting at initial.
// step of 0 means continuous.
func NewSlider(label string, min, max, step, initial float64) *Slider {
	v := clamp(initial, min, max)
	return &Slider{label: label, min: min, max: max, step: step, value: v, shown: v}
}

// Label returns the slider's label.
func (s *Slider) Label() string { return s.label }

// Value returns the slider's current value.
func (s *Slider) Value() float64 { return s.value }

// SetValue sets the value programmatically; the knob eases to the new
// position over a short interval.
func (s *Slider) SetValue(v float64) {
	v = s.snap(clamp(v, s.min, s.max))
	if v == s.value {
		return
	}
	s.value = v
	s.tween = gween.New(float32(s.shown), float32(v), 0.18, ease.OutQuad)
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

func (s *Slider) snap(v float64) float64 {
	if s.step <= 0 {
		return v
	}
	n := int((v-s.min)/s.step + 0.5)
	return clamp(s.min+float64(n)*s.step, s.min, s.max)
}

func (s *Slider) setBounds(r Rect) { s.bounds = r }

func (s *Slider) trackRect() Rect {
	return Rect{
		X:      s.bounds.X,
		Y:      s.bounds.Y + s.bounds.Height/2 - 2,
		Width:  s.bounds.Width,
		Height: 4,
	}
}

func (s *Slider) handleInput(in *Input) bool {
	grab := s.bounds
	grab.Y -= knobRadius
	grab.Height += 2 * knobRadius
	if in.JustPressed(MouseButtonLeft) && grab.Contains(in.CursorX, in.CursorY) {
		s.dragging = true
	}
	if !in.Down(MouseButtonLeft) {
		s.dragging = false
	}
	if !s.dragging {
		return false
	}
	t := clamp((in.CursorX-s.bounds.X)/s.bounds.Width, 0, 1)
	v := s.snap(s.min + t*(s.max-s.min))
	if v != s.value {
		s.value = v
		if s.OnChange != nil {
			s.OnChange(v)
		}
	}
	// While dragging the knob follows the pointer directly.
	s.shown = v
	s.tween = nil
	return true
}

func (s *Slider) update(dt float64) {
	if s.tween == nil {
		return
	}
	v, done := s.tween.Update(float32(dt))
	s.shown = float64(v)
	if done {
		s.tween = nil
	}
}

func (s *Slider) draw(cv Canvas) {
	tr := s.trackRect()
	t := 0.0
	if s.max > s.min {
		t = (s.shown - s.min) / (s.max - s.min)
	}
	knobX := tr.X + t*tr.Width
	cv.FillRect(tr.X, tr.Y, tr.Width, tr.Height, controlTrackColor)
	cv.FillRect(tr.X, tr.Y, knobX-tr.X, tr.Height, controlFillColor)
	cv.FillCircle(knobX, tr.Y+tr.Height/2, knobRadius, controlFillColor)
	cv.Text(s.bounds.X, s.bounds.Y-4, fmt.Sprintf("%s: %.2f", s.label, s.value), controlTextColor)
}

// Button is a momentary push control.
type Button struct {
	label  string
	bounds Rect
	flash  float64

	// OnPress fires on click.
	OnPress func()
}

// NewButton creates a button with the given label and press callback.
func NewButton(label string, onPress func()) *Button {
	return &Button{label: label, OnPress: onPress}
}

// Label returns the button's label.
func (b *Button) Label() string { return b.label }

func (b *Button) setBounds(r Rect) { b.bounds = r }

func (b *Button) handleInput(in *Input) bool {
	if in.JustPressed(MouseButtonLeft) && b.bounds.Contains(in.CursorX, in.CursorY) {
		b.flash = 1
		if b.OnPress != nil {
			b.OnPress()
		}
		return true
	}
	return false
}

func (b *Button) update(dt float64) {
	b.flash = clamp(b.flash-4*dt, 0, 1)
}

func (b *Button) draw(cv Canvas) {
	bg := controlTrackColor.Lerp(controlFillColor, b.flash)
	cv.FillRect(b.bounds.X, b.bounds.Y, b.bounds.Width, b.bounds.Height, bg)
	cv.StrokeRect(b.bounds.X, b.bounds.Y, b.bounds.Width, b.bounds.Height, 1, controlFillColor)
	cv.Text(b.bounds.X+8, b.bounds.Y+b.bounds.Height/2+4, b.label, controlTextColor)
}

// Draggable is a free 2D marker the user can drag anywhere on the canvas
// (not confined to the control bar). Scenes use it for movable sources,
// pivots, and probes.
type Draggable struct {
	label  string
	X, Y   float64
	Radius float64

	dragging bool

	// OnMove fires while the marker is being dragged.
	OnMove func(x, y float64)
}

// NewDraggable creates a draggable marker at (x, y).
func NewDraggable(label string, x, y, radius float64) *Draggable {
	if radius <= 0 {
		radius = 10
	}
	return &Draggable{label: label, X: x, Y: y, Radius: radius}
}

// Label returns the marker's label.
func (d *Draggable) Label() string { return d.label }

// Draggables ignore the bar layout; they live in scene space.
func (d *Draggable) setBounds(Rect) {}

func (d *Draggable) handleInput(in *Input) bool {
	if in.JustPressed(MouseButtonLeft) {
		dx := in.CursorX - d.X
		dy := in.CursorY - d.Y
		if dx*dx+dy*dy <= d.Radius*d.Radius {
			d.dragging = true
		}
	}
	if !in.Down(MouseButtonLeft) {
		d.dragging = false
	}
	if !d.dragging {
		return false
	}
	d.X, d.Y = in.CursorX, in.CursorY
	if d.OnMove != nil {
		d.OnMove(d.X, d.Y)
	}
	return true
}

func (d *Draggable) update(float64) {}

func (d *Draggable) draw(cv Canvas) {
	cv.StrokeCircle(d.X, d.Y, d.Radius, 2, controlFillColor)
	cv.FillCircle(d.X, d.Y, 3, controlFillColor)
	if d.label != "" {
		cv.Text(d.X+d.Radius+4, d.Y+4, d.label, controlTextColor)
	}
}
