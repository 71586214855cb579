package vitrine

import "github.com/hajimehoshi/ebiten/v2"

// syntheticEvent represents a single injected input event. Coordinates are
// canvas coordinates, identical to real cursor input.
type syntheticEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
	key     ebiten.Key
	isKey   bool
}

// InjectPress queues a pointer press event at the given canvas coordinates
// (left button). The event is consumed on the next frame.
func (h *Host) InjectPress(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{
		x: x, y: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectMove queues a pointer move event at the given canvas coordinates
// with the button held down. Use this between InjectPress and InjectRelease
// to simulate a drag.
func (h *Host) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{
		x: x, y: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release event at the given canvas coordinates.
func (h *Host) InjectRelease(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{
		x: x, y: y, pressed: false, button: MouseButtonLeft,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (h *Host) InjectClick(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes `frames` frames. Minimum frames
// is 2 (press + release).
func (h *Host) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	h.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		h.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	h.InjectRelease(toX, toY)
}

// InjectKey queues a synthetic key press, delivered on the next frame.
func (h *Host) InjectKey(k ebiten.Key) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{key: k, isKey: true})
}

// InjectPending reports whether queued synthetic events remain.
func (h *Host) InjectPending() bool {
	return len(h.injectQueue) > 0
}

// applyInjected pops one event from the inject queue and folds it into the
// snapshot. Returns true if an event was consumed (real input is skipped for
// the frame).
func (h *Host) applyInjected(in *Input) bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	in.reset()

	if evt.isKey {
		in.PressKey(evt.key)
		return true
	}

	in.CursorX, in.CursorY = evt.x, evt.y
	b := evt.button
	wasDown := in.down[b]
	in.down[b] = evt.pressed
	in.justDown[b] = evt.pressed && !wasDown
	in.justUp[b] = !evt.pressed && wasDown
	in.trackDrag()
	return true
}
