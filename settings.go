package vitrine

// Video modes. The host interprets these; scenes may also adjust their
// rendering (e.g. richer glow in cinematic mode).
const (
	VideoModeStandard  = "standard"  // plain rendering, HUD visible
	VideoModeCinematic = "cinematic" // letterboxed, HUD hidden
	VideoModeCapture   = "capture"   // like standard, plus per-frame PNG capture
)

// Speed and Intensity bounds applied by Merge.
var (
	speedRange     = Range{Min: 0.05, Max: 8}
	intensityRange = Range{Min: 0, Max: 1}
)

// Settings is the shared configuration object the host propagates to the
// active scene. Speed scales the simulation timestep, Intensity is a
// scene-defined strength knob in [0, 1], and VideoMode selects a rendering
// profile.
type Settings struct {
	Speed     float64 `yaml:"speed"`
	Intensity float64 `yaml:"intensity"`
	VideoMode string  `yaml:"video_mode"`
}

// DefaultSettings returns the settings a host starts with when none are
// configured.
func DefaultSettings() Settings {
	return Settings{Speed: 1, Intensity: 0.5, VideoMode: VideoModeStandard}
}

// Merge returns s with every non-zero field of in applied. Speed and
// Intensity are clamped to their valid ranges; an unknown VideoMode is
// ignored. The receiver is not modified.
func (s Settings) Merge(in Settings) Settings {
	if in.Speed != 0 {
		s.Speed = speedRange.Clamp(in.Speed)
	}
	if in.Intensity != 0 {
		s.Intensity = intensityRange.Clamp(in.Intensity)
	}
	switch in.VideoMode {
	case VideoModeStandard, VideoModeCinematic, VideoModeCapture:
		s.VideoMode = in.VideoMode
	}
	return s
}
