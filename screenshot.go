package vitrine

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// flushScreenshots captures the rendered frame for every queued label and
// writes each as a PNG under the configured capture directory. Called at the
// end of Host.Draw. Capture-mode frame labels keep their bare name so the
// numbered sequence is assembleable into video; everything else gets a
// timestamp prefix.
func (h *Host) flushScreenshots(screen *ebiten.Image) {
	if len(h.shotQueue) == 0 {
		return
	}

	if err := os.MkdirAll(h.cfg.CaptureDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[vitrine] screenshot: mkdir %s: %v\n", h.cfg.CaptureDir, err)
		h.shotQueue = h.shotQueue[:0]
		return
	}

	bounds := screen.Bounds()
	w, ht := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*ht)
	screen.ReadPixels(pixels)

	// Convert premultiplied RGBA to straight-alpha NRGBA.
	img := image.NewNRGBA(image.Rect(0, 0, w, ht))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}

	stamp := time.Now().Format("20060102_150405")

	for _, label := range h.shotQueue {
		safe := sanitizeLabel(label)
		var path string
		if strings.HasPrefix(label, "frame_") {
			path = fmt.Sprintf("%s/%s.png", h.cfg.CaptureDir, safe)
		} else {
			path = fmt.Sprintf("%s/%s_%s.png", h.cfg.CaptureDir, stamp, safe)
		}
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[vitrine] screenshot: %v\n", err)
		}
	}
	h.shotQueue = h.shotQueue[:0]
}

// sanitizeLabel replaces filesystem-unfriendly characters with underscores.
func sanitizeLabel(label string) string {
	if label == "" {
		return "shot"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, label)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
