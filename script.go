package vitrine

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Key    string  `json:"key,omitempty"`
}

// scriptFile is the top-level JSON structure for an input script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected input events across frames for automated scene
// exercising: smoke tests, demo reels, and captures. Attach to a Host via
// SetScript.
//
// Supported actions: "click" (x, y), "drag" (fromX/fromY/toX/toY, frames),
// "key" (key name, e.g. "Space" or "R"), and "wait" (frames).
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for _, s := range file.Steps {
		switch s.Action {
		case "click", "drag", "wait":
		case "key":
			if _, ok := keyByName[s.Key]; !ok {
				return nil, fmt.Errorf("parse input script: unknown key %q", s.Key)
			}
		default:
			return nil, fmt.Errorf("parse input script: unknown action %q", s.Action)
		}
	}
	return &Script{steps: file.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *Script) Done() bool {
	return r.done
}

// step advances the script by one frame. Called from Host.Update.
func (r *Script) step(h *Host) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if h.InjectPending() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	s := r.steps[r.cursor]
	r.cursor++

	switch s.Action {
	case "click":
		h.InjectClick(s.X, s.Y)
	case "drag":
		h.InjectDrag(s.FromX, s.FromY, s.ToX, s.ToY, s.Frames)
	case "key":
		h.InjectKey(keyByName[s.Key])
	case "wait":
		r.waitCount = s.Frames
	}
	if r.cursor >= len(r.steps) && r.waitCount == 0 && !h.InjectPending() {
		r.done = true
	}
}

// keyByName maps script key names to ebiten keys. Extend as scripts need.
var keyByName = map[string]ebiten.Key{
	"Space": ebiten.KeySpace,
	"Enter": ebiten.KeyEnter,
	"Tab":   ebiten.KeyTab,
	"Up":    ebiten.KeyArrowUp,
	"Down":  ebiten.KeyArrowDown,
	"Left":  ebiten.KeyArrowLeft,
	"Right": ebiten.KeyArrowRight,
	"A":     ebiten.KeyA,
	"B":     ebiten.KeyB,
	"C":     ebiten.KeyC,
	"G":     ebiten.KeyG,
	"H":     ebiten.KeyH,
	"M":     ebiten.KeyM,
	"N":     ebiten.KeyN,
	"P":     ebiten.KeyP,
	"R":     ebiten.KeyR,
	"S":     ebiten.KeyS,
	"V":     ebiten.KeyV,
	"1":     ebiten.KeyDigit1,
	"2":     ebiten.KeyDigit2,
	"3":     ebiten.KeyDigit3,
	"4":     ebiten.KeyDigit4,
	"5":     ebiten.KeyDigit5,
	"6":     ebiten.KeyDigit6,
	"7":     ebiten.KeyDigit7,
	"8":     ebiten.KeyDigit8,
	"9":     ebiten.KeyDigit9,
}
