// Package hopfield implements a classical Hopfield associative memory:
// Hebbian pattern storage on a dense symmetric weight matrix, an energy
// function, and synchronous or asynchronous relaxation toward stored
// patterns.
//
// States and patterns are bipolar vectors of -1 and +1 values. With Hebbian
// storage every stored pattern is a fixed point of the update rule (up to
// the usual ~0.138·n capacity limit), and asynchronous updates never
// increase the energy, so relaxation always terminates.
package hopfield

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Network is a Hopfield associative memory over n bipolar units.
// The zero value is not usable; create one with New.
type Network struct {
	n      int
	w      *mat.Dense // symmetric weights, zero diagonal
	stored int
}

// New creates an empty network with n units.
func New(n int) *Network {
	if n <= 0 {
		panic("hopfield: network size must be positive")
	}
	return &Network{n: n, w: mat.NewDense(n, n, nil)}
}

// Size returns the number of units.
func (net *Network) Size() int { return net.n }

// Stored returns the number of patterns stored so far.
func (net *Network) Stored() int { return net.stored }

// Store adds patterns to the memory with the Hebbian rule
// w_ij += p_i·p_j / n, keeping the diagonal at zero. Each pattern must have
// exactly Size() entries, all -1 or +1.
func (net *Network) Store(patterns ...[]float64) error {
	for k, p := range patterns {
		if len(p) != net.n {
			return fmt.Errorf("hopfield: pattern %d has %d units, want %d", k, len(p), net.n)
		}
		for i, v := range p {
			if v != 1 && v != -1 {
				return fmt.Errorf("hopfield: pattern %d unit %d is %v, want -1 or +1", k, i, v)
			}
		}
	}
	alpha := 1 / float64(net.n)
	for _, p := range patterns {
		v := mat.NewVecDense(net.n, p)
		net.w.RankOne(net.w, alpha, v, v)
		net.stored++
	}
	for i := 0; i < net.n; i++ {
		net.w.Set(i, i, 0)
	}
	return nil
}

// Energy returns E(s) = -1/2 · sᵀWs. Asynchronous updates never increase it.
func (net *Network) Energy(state []float64) float64 {
	v := mat.NewVecDense(net.n, state)
	return -0.5 * mat.Inner(v, net.w, v)
}

// field returns the local field h_i = Σ_j w_ij·s_j.
func (net *Network) field(state []float64, i int) float64 {
	return mat.Dot(net.w.RowView(i), mat.NewVecDense(net.n, state))
}

// StepSync applies one synchronous update: every unit computes its local
// field from the current state, then all units flip together. Returns the
// number of units that changed. Zero-field units keep their previous value.
//
// Synchronous updates can enter 2-cycles; use StepAsync when monotone
// energy descent matters.
func (net *Network) StepSync(state []float64) int {
	next := make([]float64, net.n)
	for i := range next {
		next[i] = signOr(net.field(state, i), state[i])
	}
	changed := 0
	for i, v := range next {
		if state[i] != v {
			state[i] = v
			changed++
		}
	}
	return changed
}

// StepAsync applies one asynchronous sweep: units update one at a time in a
// random order, each seeing the partially updated state. Returns the number
// of units that changed.
func (net *Network) StepAsync(state []float64, rng *rand.Rand) int {
	changed := 0
	for _, i := range rng.Perm(net.n) {
		v := signOr(net.field(state, i), state[i])
		if state[i] != v {
			state[i] = v
			changed++
		}
	}
	return changed
}

// Recall relaxes a copy of probe with asynchronous sweeps until no unit
// changes or maxSweeps is reached. It returns the final state, the number of
// sweeps used, and whether a fixed point was reached.
func (net *Network) Recall(probe []float64, maxSweeps int, rng *rand.Rand) ([]float64, int, bool) {
	state := make([]float64, net.n)
	copy(state, probe)
	for sweep := 1; sweep <= maxSweeps; sweep++ {
		if net.StepAsync(state, rng) == 0 {
			return state, sweep, true
		}
	}
	return state, maxSweeps, false
}

// Overlap returns the normalized agreement between two states in [-1, 1];
// 1 means identical, -1 means the exact inverse.
func Overlap(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum / float64(len(a))
}

// Corrupt returns a copy of pattern with each unit flipped independently
// with probability p.
func Corrupt(pattern []float64, p float64, rng *rand.Rand) []float64 {
	out := make([]float64, len(pattern))
	copy(out, pattern)
	for i := range out {
		if rng.Float64() < p {
			out[i] = -out[i]
		}
	}
	return out
}

// signOr returns the sign of h, or fallback when h is exactly zero.
func signOr(h, fallback float64) float64 {
	switch {
	case h > 0:
		return 1
	case h < 0:
		return -1
	default:
		return fallback
	}
}
