package vitrine

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const sceneFadeDuration = 0.2 // seconds each way

// HostConfig configures a Host.
type HostConfig struct {
	Title         string
	Width, Height int
	// StartScene is the registered name of the scene to open first.
	// Empty picks the first registered name.
	StartScene string
	// Settings overrides merged over DefaultSettings.
	Settings Settings
	// CaptureDir receives PNG frames in capture video mode and manual
	// screenshots. Defaults to "captures".
	CaptureDir string
	// Seed for scene randomness. Zero means a fixed default seed.
	Seed int64
}

// Host owns the active scene and implements ebiten.Game. It snapshots input,
// propagates settings, routes controls, and drives the scene's Animate once
// per frame. Scene switches cross-fade through black.
type Host struct {
	cfg      HostConfig
	settings Settings

	scene     Scene
	sceneName string
	controls  []Control

	input       Input
	injectQueue []syntheticEvent
	script      *Script

	// Transition state: fade out, swap at black, fade in.
	fade      *gween.Tween
	fadeAlpha float64
	fadingOut bool
	pending   string

	shotQueue []string
	frame     int
	fps, tps  float64
	hudHidden bool
	err       error
}

// NewHost creates a host. The first scene is initialized lazily on the first
// frame so that tests can construct hosts before registering or injecting.
func NewHost(cfg HostConfig) *Host {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.CaptureDir == "" {
		cfg.CaptureDir = "captures"
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	return &Host{
		cfg:      cfg,
		settings: DefaultSettings().Merge(cfg.Settings),
	}
}

// Settings returns the host's current settings.
func (h *Host) Settings() Settings { return h.settings }

// ApplySettings merges s into the host settings and propagates the result to
// the active scene.
func (h *Host) ApplySettings(s Settings) {
	h.settings = h.settings.Merge(s)
	if h.scene != nil {
		h.scene.UpdateSettings(h.settings)
	}
}

// SceneName returns the name of the active scene, or "" before the first
// frame.
func (h *Host) SceneName() string { return h.sceneName }

// ActiveScene returns the active scene instance, or nil before the first
// frame. Useful in tests for asserting on scene state.
func (h *Host) ActiveScene() Scene { return h.scene }

// Err returns the first scene error encountered, if any.
func (h *Host) Err() error { return h.err }

// SwitchScene requests a switch to the named scene. With an active scene the
// switch cross-fades; otherwise it happens immediately on the next frame.
func (h *Host) SwitchScene(name string) error {
	if _, err := NewScene(name); err != nil {
		return err
	}
	if h.scene == nil {
		h.cfg.StartScene = name
		return nil
	}
	if name == h.sceneName || name == h.pending {
		return nil
	}
	h.pending = name
	h.fadingOut = true
	h.fade = gween.New(float32(h.fadeAlpha), 1, sceneFadeDuration, ease.InQuad)
	return nil
}

// switchNow tears down the current scene and initializes the named one.
func (h *Host) switchNow(name string) {
	if h.scene != nil {
		h.scene.Cleanup()
		h.scene = nil
		h.controls = nil
	}
	scene, err := NewScene(name)
	if err != nil {
		h.err = err
		return
	}
	ctx := Context{
		Width:    h.cfg.Width,
		Height:   h.cfg.Height,
		Settings: h.settings,
		Seed:     h.cfg.Seed,
	}
	if err := scene.Init(ctx); err != nil {
		h.err = fmt.Errorf("init scene %q: %w", name, err)
		return
	}
	h.scene = scene
	h.sceneName = name
	if cp, ok := scene.(ControlProvider); ok {
		h.controls = cp.Controls()
		h.layoutControls()
	}
}

// layoutControls packs bar controls left to right along the bottom edge.
// Draggables place themselves in scene space and are skipped.
func (h *Host) layoutControls() {
	x := controlPad
	y := float64(h.cfg.Height) - controlBarHeight + controlPad
	height := controlBarHeight - 2*controlPad
	for _, c := range h.controls {
		var w float64
		switch c.(type) {
		case *Slider:
			w = sliderWidth
		case *Button:
			w = buttonWidth
		default:
			continue
		}
		c.setBounds(Rect{X: x, Y: y, Width: w, Height: height})
		x += w + 2*controlPad
	}
}

// SetScript attaches a scripted input playback, replacing any current one.
func (h *Host) SetScript(s *Script) { h.script = s }

// Screenshot queues a labeled screenshot for the end of the current frame.
func (h *Host) Screenshot(label string) {
	h.shotQueue = append(h.shotQueue, label)
}

// Update implements ebiten.Game. It refreshes the input snapshot and
// bookkeeping; simulation and rendering both happen in Draw, since scenes
// draw and advance in a single Animate call.
func (h *Host) Update() error {
	if h.err != nil {
		return h.err
	}
	if h.script != nil {
		h.script.step(h)
	}
	if !h.InjectPending() {
		h.input.poll()
	}
	h.fps = ebiten.ActualFPS()
	h.tps = ebiten.ActualTPS()
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	dt := 1.0 / float64(ebiten.TPS())
	h.Step(dt, NewCanvas(screen))

	if h.settings.VideoMode == VideoModeCapture {
		h.Screenshot(fmt.Sprintf("frame_%05d", h.frame))
	}
	h.flushScreenshots(screen)
}

// Layout implements ebiten.Game.
func (h *Host) Layout(int, int) (int, int) {
	return h.cfg.Width, h.cfg.Height
}

// Step advances the host by one frame against the given canvas. Draw calls
// it with the real screen; tests call it directly with a NullCanvas.
func (h *Host) Step(dt float64, cv Canvas) {
	if h.err != nil {
		return
	}
	if h.scene == nil {
		name := h.cfg.StartScene
		if name == "" {
			names := SceneNames()
			if len(names) == 0 {
				h.err = fmt.Errorf("vitrine: no scenes registered")
				return
			}
			name = names[0]
		}
		h.switchNow(name)
		if h.err != nil {
			return
		}
	}

	h.applyInjected(&h.input)
	h.handleKeys()
	h.updateTransition(dt)

	consumed := false
	for _, c := range h.controls {
		if c.handleInput(&h.input) {
			consumed = true
			break
		}
	}
	for _, c := range h.controls {
		c.update(dt)
	}

	sceneIn := &h.input
	if consumed {
		// Scene still sees cursor position but not the pointer buttons.
		cp := h.input
		cp.down = [3]bool{}
		cp.justDown = [3]bool{}
		cp.justUp = [3]bool{}
		cp.Dragging = false
		cp.DragEnded = false
		sceneIn = &cp
	}

	if h.scene != nil && !h.fadingOut {
		h.scene.Animate(dt*h.settings.Speed, sceneIn, cv)
	}

	cinematic := h.settings.VideoMode == VideoModeCinematic
	if !cinematic {
		if len(h.controls) > 0 {
			w, ht := cv.Size()
			cv.FillRect(0, float64(ht)-controlBarHeight, float64(w), controlBarHeight, controlBackColor)
			for _, c := range h.controls {
				c.draw(cv)
			}
		}
		if !h.hudHidden {
			h.drawHUD(cv)
		}
	} else {
		h.drawLetterbox(cv)
	}

	if h.fadeAlpha > 0 {
		w, ht := cv.Size()
		cv.FillRect(0, 0, float64(w), float64(ht), ColorBlack.WithAlpha(h.fadeAlpha))
	}
	h.frame++
}

// updateTransition advances the cross-fade and swaps scenes at full black.
func (h *Host) updateTransition(dt float64) {
	if h.fade == nil {
		return
	}
	v, done := h.fade.Update(float32(dt))
	h.fadeAlpha = float64(v)
	if !done {
		return
	}
	h.fade = nil
	if h.fadingOut {
		h.fadingOut = false
		name := h.pending
		h.pending = ""
		h.switchNow(name)
		h.fade = gween.New(1, 0, sceneFadeDuration, ease.OutQuad)
	} else {
		h.fadeAlpha = 0
	}
}

// handleKeys applies the host's global key bindings: digits switch scenes,
// arrows adjust speed and intensity, V cycles video mode, H toggles the HUD,
// F12 takes a screenshot.
func (h *Host) handleKeys() {
	names := SceneNames()
	for i, k := range digitKeys {
		if i < len(names) && h.input.KeyJustPressed(k) {
			_ = h.SwitchScene(names[i])
		}
	}
	switch {
	case h.input.KeyJustPressed(ebiten.KeyArrowUp):
		h.ApplySettings(Settings{Speed: h.settings.Speed * 1.25})
	case h.input.KeyJustPressed(ebiten.KeyArrowDown):
		h.ApplySettings(Settings{Speed: h.settings.Speed / 1.25})
	case h.input.KeyJustPressed(ebiten.KeyArrowRight):
		h.ApplySettings(Settings{Intensity: h.settings.Intensity + 0.05})
	case h.input.KeyJustPressed(ebiten.KeyArrowLeft):
		h.ApplySettings(Settings{Intensity: h.settings.Intensity - 0.05})
	case h.input.KeyJustPressed(ebiten.KeyV):
		h.ApplySettings(Settings{VideoMode: nextVideoMode(h.settings.VideoMode)})
	case h.input.KeyJustPressed(ebiten.KeyH):
		h.hudHidden = !h.hudHidden
	case h.input.KeyJustPressed(ebiten.KeyF12):
		h.Screenshot("manual")
	}
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

func nextVideoMode(mode string) string {
	switch mode {
	case VideoModeStandard:
		return VideoModeCinematic
	case VideoModeCinematic:
		return VideoModeCapture
	default:
		return VideoModeStandard
	}
}

// Run opens a window and runs the host under ebiten's game loop.
func (h *Host) Run() error {
	ebiten.SetWindowSize(h.cfg.Width, h.cfg.Height)
	ebiten.SetWindowTitle(h.cfg.Title)
	if err := ebiten.RunGame(h); err != nil {
		return err
	}
	return h.err
}
