package vitrine

import (
	"math/rand/v2"
	"testing"
)

// setupBenchPool spawns a pool with n live particles ready to update.
func setupBenchPool(n int) *BurstPool {
	p := NewBurstPool(BurstConfig{
		Speed:      Range{Min: 20, Max: 120},
		Lifetime:   Range{Min: 10, Max: 20},
		Size:       Range{Min: 1, Max: 4},
		StartColor: Color{R: 1, G: 1, B: 1, A: 1},
	})
	p.Spawn(640, 360, n)
	return p
}

func BenchmarkBurstPool_Update_1000(b *testing.B) {
	p := setupBenchPool(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Update(1.0 / 60)
	}
}

func BenchmarkBurstPool_Draw_1000(b *testing.B) {
	p := setupBenchPool(1000)
	cv := &NullCanvas{W: 1280, H: 720}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Draw(cv)
	}
}

func BenchmarkRaster_Fill(b *testing.B) {
	r := NewRaster(320, 240)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Fill(Color{R: 0.1, G: 0.2, B: 0.3, A: 1})
	}
}

func BenchmarkRaster_SetFullFrame(b *testing.B) {
	r := NewRaster(320, 240)
	c := Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for y := 0; y < 240; y++ {
			for x := 0; x < 320; x++ {
				r.Set(x, y, c)
			}
		}
	}
}

func BenchmarkPalette_At(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))
	ts := make([]float64, 1024)
	for i := range ts {
		ts[i] = rng.Float64()
	}
	pal := PaletteThermal()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pal.At(ts[i%len(ts)])
	}
}
