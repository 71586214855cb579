package vitrine

import colorful "github.com/lucasb-eyer/go-colorful"

// Palette is a sampled color ramp. Scenes index it with a normalized value
// via At.
type Palette []Color

// At returns the palette color at t in [0, 1], interpolating between the
// nearest samples. Out-of-range values clamp to the ends.
func (p Palette) At(t float64) Color {
	if len(p) == 0 {
		return ColorWhite
	}
	if len(p) == 1 {
		return p[0]
	}
	t = clamp(t, 0, 1)
	f := t * float64(len(p)-1)
	i := int(f)
	if i >= len(p)-1 {
		return p[len(p)-1]
	}
	return p[i].Lerp(p[i+1], f-float64(i))
}

// makeRamp samples n colors along the Lab-space blend through the given
// stops. Blending in Lab keeps the ramp perceptually even, which matters for
// field scenes where small value differences carry meaning.
func makeRamp(n int, stops ...colorful.Color) Palette {
	ramp := make(Palette, n)
	segs := len(stops) - 1
	for i := range ramp {
		t := float64(i) / float64(n-1)
		f := t * float64(segs)
		s := int(f)
		if s >= segs {
			s = segs - 1
		}
		c := stops[s].BlendLab(stops[s+1], f-float64(s)).Clamped()
		ramp[i] = Color{R: c.R, G: c.G, B: c.B, A: 1}
	}
	return ramp
}

// PaletteThermal runs black through red and orange to white, for energy and
// density fields.
func PaletteThermal() Palette {
	return makeRamp(64,
		colorful.Color{R: 0.02, G: 0.02, B: 0.05},
		colorful.Color{R: 0.55, G: 0.08, B: 0.08},
		colorful.Color{R: 0.95, G: 0.55, B: 0.1},
		colorful.Color{R: 1, G: 0.97, B: 0.85},
	)
}

// PaletteOcean runs deep blue through teal to pale green, for smooth scalar
// fields.
func PaletteOcean() Palette {
	return makeRamp(64,
		colorful.Color{R: 0.05, G: 0.03, B: 0.25},
		colorful.Color{R: 0.1, G: 0.35, B: 0.55},
		colorful.Color{R: 0.2, G: 0.7, B: 0.6},
		colorful.Color{R: 0.85, G: 0.95, B: 0.7},
	)
}

// PaletteDiverging runs blue through near-black to orange, for signed fields
// such as wave displacement. The midpoint sits at t = 0.5.
func PaletteDiverging() Palette {
	return makeRamp(65,
		colorful.Color{R: 0.15, G: 0.45, B: 0.9},
		colorful.Color{R: 0.05, G: 0.05, B: 0.08},
		colorful.Color{R: 0.95, G: 0.5, B: 0.1},
	)
}
