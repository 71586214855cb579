package quantum

import (
	"math"
	"math/rand/v2"
)

// register is a toy real-amplitude state vector over 2^qubits basis states.
// Grover-style sweeps (oracle sign flip, then inversion about the mean)
// concentrate probability on the marked state.
type register struct {
	amps   []float64
	target int
}

func newRegister(qubits, target int) *register {
	n := 1 << qubits
	r := &register{amps: make([]float64, n)}
	r.reset(target)
	return r
}

// reset restores the uniform superposition and marks a new target.
func (r *register) reset(target int) {
	n := len(r.amps)
	a := 1 / math.Sqrt(float64(n))
	for i := range r.amps {
		r.amps[i] = a
	}
	r.target = target % n
	if r.target < 0 {
		r.target += n
	}
}

// sweep runs one Grover iteration.
func (r *register) sweep() {
	r.amps[r.target] = -r.amps[r.target]
	var mean float64
	for _, a := range r.amps {
		mean += a
	}
	mean /= float64(len(r.amps))
	for i := range r.amps {
		r.amps[i] = 2*mean - r.amps[i]
	}
}

// probability returns |amp|^2 for the basis state.
func (r *register) probability(i int) float64 {
	return r.amps[i] * r.amps[i]
}

// optimalSweeps is the iteration count at which the marked-state
// probability peaks, floor(pi/4 * sqrt(N)).
func (r *register) optimalSweeps() int {
	return int(math.Floor(math.Pi / 4 * math.Sqrt(float64(len(r.amps)))))
}

// measure samples a basis state from the current distribution.
func (r *register) measure(rng *rand.Rand) int {
	u := rng.Float64()
	var cum float64
	for i := range r.amps {
		cum += r.probability(i)
		if u < cum {
			return i
		}
	}
	return len(r.amps) - 1
}
