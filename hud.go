package vitrine

import "fmt"

const letterboxFraction = 0.085

var (
	hudTextColor = Color{0.8, 0.8, 0.85, 1}
	hudDimColor  = Color{0.5, 0.5, 0.55, 1}
)

// drawHUD renders the scene title, frame rates, current settings, and key
// hints in the top-left corner.
func (h *Host) drawHUD(cv Canvas) {
	cv.Text(8, 16, h.sceneName, hudTextColor)
	cv.Text(8, 30, fmt.Sprintf("FPS %.0f  TPS %.0f", h.fps, h.tps), hudDimColor)
	cv.Text(8, 44, fmt.Sprintf("speed %.2f  intensity %.2f  %s",
		h.settings.Speed, h.settings.Intensity, h.settings.VideoMode), hudDimColor)
	cv.Text(8, 58, "1-9 scene  arrows speed/intensity  V video  H hud", hudDimColor)
}

// drawLetterbox draws the cinematic-mode bars.
func (h *Host) drawLetterbox(cv Canvas) {
	w, ht := cv.Size()
	bar := float64(ht) * letterboxFraction
	cv.FillRect(0, 0, float64(w), bar, ColorBlack)
	cv.FillRect(0, float64(ht)-bar, float64(w), bar, ColorBlack)
}
