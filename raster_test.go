package vitrine

import "testing"

func TestRasterSetAt(t *testing.T) {
	r := NewRaster(4, 3)
	r.Set(2, 1, Color{1, 0, 0, 1})

	c := r.At(2, 1)
	if c.R != 1 || c.A != 1 {
		t.Errorf("At(2,1) = %+v, want red", c)
	}
	if got := r.At(0, 0); got != (Color{}) {
		t.Errorf("At(0,0) = %+v, want zero", got)
	}
}

func TestRasterOutOfBoundsIgnored(t *testing.T) {
	r := NewRaster(2, 2)
	// Should not panic.
	r.Set(-1, 0, ColorWhite)
	r.Set(0, -1, ColorWhite)
	r.Set(2, 0, ColorWhite)
	r.Set(0, 2, ColorWhite)

	if got := r.At(-1, 0); got != (Color{}) {
		t.Errorf("At out of bounds = %+v, want zero", got)
	}
}

func TestRasterFill(t *testing.T) {
	r := NewRaster(3, 3)
	r.Fill(Color{0, 1, 0, 1})
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			c := r.At(x, y)
			if c.G != 1 || c.A != 1 {
				t.Fatalf("At(%d,%d) = %+v, want green", x, y, c)
			}
		}
	}
}

func TestRasterClampsComponents(t *testing.T) {
	r := NewRaster(1, 1)
	r.Set(0, 0, Color{R: 3, G: -2, B: 0, A: 1})
	c := r.At(0, 0)
	if c.R != 1 {
		t.Errorf("R = %v, want 1", c.R)
	}
	if c.G != 0 {
		t.Errorf("G = %v, want 0", c.G)
	}
}
