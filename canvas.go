package vitrine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Canvas is the 2D drawing surface handed to scenes each frame. It mirrors
// the subset of a canvas context the scenes actually use: rectangle, circle,
// line and polygon fills, a radial gradient for glows, raster blits for
// field scenes, and small text labels.
//
// The host supplies an ebiten-backed implementation; tests use [NullCanvas].
type Canvas interface {
	// Size returns the drawable area in pixels.
	Size() (w, h int)
	// Clear fills the whole surface with c.
	Clear(c Color)
	FillRect(x, y, w, h float64, c Color)
	StrokeRect(x, y, w, h, width float64, c Color)
	FillCircle(x, y, r float64, c Color)
	StrokeCircle(x, y, r, width float64, c Color)
	Line(x0, y0, x1, y1, width float64, c Color)
	// FillPolygon fills a convex polygon given in winding order.
	// Fewer than 3 points is a no-op.
	FillPolygon(pts []Vec2, c Color)
	// RadialGradient draws a circular glow of radius r centered at (x, y),
	// shading from inner at the center to outer at the rim.
	RadialGradient(x, y, r float64, inner, outer Color)
	// DrawRaster blits a pixel grid at (x, y), scaled by scale.
	DrawRaster(ra *Raster, x, y, scale float64)
	// Text draws a small label with its baseline at (x, y).
	Text(x, y float64, s string, c Color)
}

// WhitePixel is a 1x1 white image used for solid fills and raster-free
// sprites.
var WhitePixel *ebiten.Image

// glowSprite is a prerendered radial alpha falloff used by RadialGradient.
var glowSprite *ebiten.Image

const glowSize = 128

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(color.White)

	glowSprite = ebiten.NewImage(glowSize, glowSize)
	pix := make([]byte, 4*glowSize*glowSize)
	half := float64(glowSize) / 2
	for y := 0; y < glowSize; y++ {
		for x := 0; x < glowSize; x++ {
			dx := (float64(x) + 0.5 - half) / half
			dy := (float64(y) + 0.5 - half) / half
			d := dx*dx + dy*dy
			var a float64
			if d < 1 {
				t := 1 - d
				a = t * t
			}
			i := 4 * (y*glowSize + x)
			v := uint8(a * 255)
			// Premultiplied white.
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, v
		}
	}
	glowSprite.WritePixels(pix)
}

// screenCanvas implements Canvas over an *ebiten.Image.
type screenCanvas struct {
	dst *ebiten.Image
}

// NewCanvas wraps an ebiten image in a Canvas. Exposed so alternative hosts
// (and render-target tricks) can hand scenes an offscreen surface.
func NewCanvas(dst *ebiten.Image) Canvas {
	return &screenCanvas{dst: dst}
}

func (s *screenCanvas) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *screenCanvas) Clear(c Color) {
	s.dst.Fill(c.toRGBA())
}

func (s *screenCanvas) FillRect(x, y, w, h float64, c Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c.toRGBA(), false)
}

func (s *screenCanvas) StrokeRect(x, y, w, h, width float64, c Color) {
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(width), c.toRGBA(), false)
}

func (s *screenCanvas) FillCircle(x, y, r float64, c Color) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c.toRGBA(), true)
}

func (s *screenCanvas) StrokeCircle(x, y, r, width float64, c Color) {
	vector.StrokeCircle(s.dst, float32(x), float32(y), float32(r), float32(width), c.toRGBA(), true)
}

func (s *screenCanvas) Line(x0, y0, x1, y1, width float64, c Color) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c.toRGBA(), true)
}

func (s *screenCanvas) FillPolygon(pts []Vec2, c Color) {
	n := len(pts)
	if n < 3 {
		return
	}
	// Triangle fan over WhitePixel, colored per-vertex.
	rgba := c.toRGBA()
	cr := float32(rgba.R) / 255 * float32(rgba.A) / 255
	cg := float32(rgba.G) / 255 * float32(rgba.A) / 255
	cb := float32(rgba.B) / 255 * float32(rgba.A) / 255
	ca := float32(rgba.A) / 255
	vs := make([]ebiten.Vertex, n)
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	is := make([]uint16, 0, (n-2)*3)
	for i := 2; i < n; i++ {
		is = append(is, 0, uint16(i-1), uint16(i))
	}
	s.dst.DrawTriangles(vs, is, WhitePixel, &ebiten.DrawTrianglesOptions{})
}

func (s *screenCanvas) RadialGradient(x, y, r float64, inner, outer Color) {
	if r <= 0 {
		return
	}
	scale := 2 * r / glowSize
	// Outer pass at full radius, inner pass at half: a cheap two-stop
	// approximation of a true radial gradient.
	s.drawGlow(x, y, scale, outer)
	s.drawGlow(x, y, scale*0.5, inner)
}

func (s *screenCanvas) drawGlow(x, y, scale float64, c Color) {
	if c.A <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-scale*glowSize/2, y-scale*glowSize/2)
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	op.Blend = ebiten.BlendLighter
	s.dst.DrawImage(glowSprite, op)
}

func (s *screenCanvas) DrawRaster(ra *Raster, x, y, scale float64) {
	img := ra.upload()
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	s.dst.DrawImage(img, op)
}

func (s *screenCanvas) Text(x, y float64, str string, c Color) {
	text.Draw(s.dst, str, basicfont.Face7x13, int(x), int(y), c.toRGBA())
}

// NullCanvas discards all drawing while counting operations. It lets scene
// tests run Init/Animate/Cleanup headless, asserting on state rather than
// pixels.
type NullCanvas struct {
	W, H int
	// Ops counts every drawing call made against the canvas.
	Ops int
}

func (n *NullCanvas) Size() (int, int)                                 { return n.W, n.H }
func (n *NullCanvas) Clear(Color)                                      { n.Ops++ }
func (n *NullCanvas) FillRect(_, _, _, _ float64, _ Color)             { n.Ops++ }
func (n *NullCanvas) StrokeRect(_, _, _, _, _ float64, _ Color)        { n.Ops++ }
func (n *NullCanvas) FillCircle(_, _, _ float64, _ Color)              { n.Ops++ }
func (n *NullCanvas) StrokeCircle(_, _, _, _ float64, _ Color)         { n.Ops++ }
func (n *NullCanvas) Line(_, _, _, _, _ float64, _ Color)              { n.Ops++ }
func (n *NullCanvas) FillPolygon(_ []Vec2, _ Color)                    { n.Ops++ }
func (n *NullCanvas) RadialGradient(_, _, _ float64, _, _ Color)       { n.Ops++ }
func (n *NullCanvas) DrawRaster(_ *Raster, _, _, _ float64)            { n.Ops++ }
func (n *NullCanvas) Text(_, _ float64, _ string, _ Color)             { n.Ops++ }
