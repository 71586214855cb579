package vitrine

import "github.com/hajimehoshi/ebiten/v2"

// Raster is a CPU-side RGBA pixel grid for field scenes (wave heightmaps,
// cellular automata). Scenes write cells with Set; the canvas uploads the
// buffer to the GPU only when it changed since the last blit.
type Raster struct {
	W, H int
	// Pix holds straight-alpha RGBA bytes, 4 per pixel, row-major.
	Pix []byte

	img   *ebiten.Image
	dirty bool
}

// NewRaster creates a w×h raster with all pixels transparent black.
func NewRaster(w, h int) *Raster {
	return &Raster{W: w, H: h, Pix: make([]byte, 4*w*h), dirty: true}
}

// Set writes the pixel at (x, y). Out-of-bounds coordinates are ignored.
func (r *Raster) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= r.W || y >= r.H {
		return
	}
	i := 4 * (y*r.W + x)
	r.Pix[i] = uint8(clamp(c.R, 0, 1) * 255)
	r.Pix[i+1] = uint8(clamp(c.G, 0, 1) * 255)
	r.Pix[i+2] = uint8(clamp(c.B, 0, 1) * 255)
	r.Pix[i+3] = uint8(clamp(c.A, 0, 1) * 255)
	r.dirty = true
}

// At returns the pixel at (x, y), or transparent black out of bounds.
func (r *Raster) At(x, y int) Color {
	if x < 0 || y < 0 || x >= r.W || y >= r.H {
		return Color{}
	}
	i := 4 * (y*r.W + x)
	return Color{
		R: float64(r.Pix[i]) / 255,
		G: float64(r.Pix[i+1]) / 255,
		B: float64(r.Pix[i+2]) / 255,
		A: float64(r.Pix[i+3]) / 255,
	}
}

// Fill sets every pixel to c.
func (r *Raster) Fill(c Color) {
	cr := uint8(clamp(c.R, 0, 1) * 255)
	cg := uint8(clamp(c.G, 0, 1) * 255)
	cb := uint8(clamp(c.B, 0, 1) * 255)
	ca := uint8(clamp(c.A, 0, 1) * 255)
	for i := 0; i < len(r.Pix); i += 4 {
		r.Pix[i] = cr
		r.Pix[i+1] = cg
		r.Pix[i+2] = cb
		r.Pix[i+3] = ca
	}
	r.dirty = true
}

// upload pushes the pixel buffer to the backing GPU image if it changed.
// Lazily creates the image so rasters stay usable in headless tests.
func (r *Raster) upload() *ebiten.Image {
	if r.W <= 0 || r.H <= 0 {
		return nil
	}
	if r.img == nil {
		r.img = ebiten.NewImage(r.W, r.H)
	}
	if r.dirty {
		r.img.WritePixels(r.Pix)
		r.dirty = false
	}
	return r.img
}
