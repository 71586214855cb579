package vitrine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const defaultDragDeadZone = 4.0 // pixels

// Input is the per-frame input snapshot delivered to the active scene.
// The host fills it either from real mouse/keyboard state or from synthetic
// events queued via Host.InjectPress and friends; scenes cannot tell the
// difference.
type Input struct {
	// CursorX and CursorY are the pointer position in canvas coordinates.
	CursorX, CursorY float64
	// Wheel is the vertical scroll amount this frame.
	Wheel float64

	down     [3]bool
	justDown [3]bool
	justUp   [3]bool

	keysJust []ebiten.Key

	// Drag state for the left button.
	Dragging         bool
	DragStartX       float64
	DragStartY       float64
	DragDX, DragDY   float64
	DragEnded        bool
	DragEndX         float64
	DragEndY         float64
}

// Down reports whether the button is held this frame.
func (in *Input) Down(b MouseButton) bool {
	return in.down[b]
}

// JustPressed reports whether the button went down this frame.
func (in *Input) JustPressed(b MouseButton) bool {
	return in.justDown[b]
}

// JustReleased reports whether the button went up this frame.
func (in *Input) JustReleased(b MouseButton) bool {
	return in.justUp[b]
}

// KeyJustPressed reports whether the key went down this frame.
func (in *Input) KeyJustPressed(k ebiten.Key) bool {
	for _, key := range in.keysJust {
		if key == k {
			return true
		}
	}
	return false
}

// SetPressed writes a button's held state into the snapshot. justChanged
// marks the transition as having happened this frame. Intended for building
// synthetic snapshots in scene tests; live input goes through the host.
func (in *Input) SetPressed(b MouseButton, down, justChanged bool) {
	in.down[b] = down
	if down {
		in.justDown[b] = justChanged
	} else {
		in.justUp[b] = justChanged
	}
}

// PressKey records a synthetic key press in the snapshot.
func (in *Input) PressKey(k ebiten.Key) {
	in.keysJust = append(in.keysJust, k)
}

// reset clears the per-frame fields, keeping held-button state.
func (in *Input) reset() {
	in.justDown = [3]bool{}
	in.justUp = [3]bool{}
	in.keysJust = in.keysJust[:0]
	in.Wheel = 0
	in.DragEnded = false
}

var pollButtons = [3]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// poll refreshes the snapshot from the real mouse and keyboard.
// Only called from Host.Update inside a running game loop.
func (in *Input) poll() {
	in.reset()

	x, y := ebiten.CursorPosition()
	in.CursorX, in.CursorY = float64(x), float64(y)
	_, in.Wheel = ebiten.Wheel()

	for i, b := range pollButtons {
		in.down[i] = ebiten.IsMouseButtonPressed(b)
		in.justDown[i] = inpututil.IsMouseButtonJustPressed(b)
		in.justUp[i] = inpututil.IsMouseButtonJustReleased(b)
	}

	in.keysJust = inpututil.AppendJustPressedKeys(in.keysJust)
	in.trackDrag()
}

// trackDrag updates the drag fields from the current left-button state.
// A drag begins once the pointer moves past the dead zone while held.
func (in *Input) trackDrag() {
	switch {
	case in.justDown[MouseButtonLeft]:
		in.DragStartX, in.DragStartY = in.CursorX, in.CursorY
		in.Dragging = false
	case in.down[MouseButtonLeft]:
		dx := in.CursorX - in.DragStartX
		dy := in.CursorY - in.DragStartY
		if !in.Dragging && dx*dx+dy*dy > defaultDragDeadZone*defaultDragDeadZone {
			in.Dragging = true
		}
		if in.Dragging {
			in.DragDX, in.DragDY = dx, dy
		}
	case in.justUp[MouseButtonLeft]:
		if in.Dragging {
			in.DragEnded = true
			in.DragEndX, in.DragEndY = in.CursorX, in.CursorY
		}
		in.Dragging = false
		in.DragDX, in.DragDY = 0, 0
	}
}
