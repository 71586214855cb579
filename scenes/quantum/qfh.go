package quantum

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

const fftSize = 256 // power of two keeps FFTReal on the radix-2 path

// harmonics synthesizes a waveform from a fundamental plus overtones and
// exposes its windowed magnitude spectrum.
type harmonics struct {
	fundamental float64 // cycles per frame of fftSize samples
	count       int     // number of overtones, >= 1
	falloff     float64 // amplitude ratio between successive overtones

	samples  []float64
	windowed []float64
	spectrum []float64
}

func newHarmonics(fundamental float64, count int) *harmonics {
	return &harmonics{
		fundamental: fundamental,
		count:       count,
		falloff:     0.55,
		samples:     make([]float64, fftSize),
		windowed:    make([]float64, fftSize),
		spectrum:    make([]float64, fftSize/2),
	}
}

// synthesize fills samples for the given phase offset and recomputes the
// spectrum from the Hann-windowed frame.
func (h *harmonics) synthesize(phase float64) {
	for i := range h.samples {
		t := float64(i) / fftSize
		var v float64
		amp := 1.0
		for k := 1; k <= h.count; k++ {
			v += amp * math.Sin(2*math.Pi*(h.fundamental*float64(k)*t)+phase*float64(k))
			amp *= h.falloff
		}
		h.samples[i] = v
	}
	h.analyze()
}

// analyze applies a Hann window and fills spectrum with per-bin magnitudes.
func (h *harmonics) analyze() {
	for i, s := range h.samples {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(fftSize-1)))
		h.windowed[i] = s * w
	}
	bins := fft.FFTReal(h.windowed)
	for i := range h.spectrum {
		h.spectrum[i] = cmplx.Abs(bins[i]) / (fftSize / 2)
	}
}

// dominantBin returns the index of the largest magnitude bin above DC.
func (h *harmonics) dominantBin() int {
	best, bi := 0.0, 1
	for i := 1; i < len(h.spectrum); i++ {
		if h.spectrum[i] > best {
			best, bi = h.spectrum[i], i
		}
	}
	return bi
}
