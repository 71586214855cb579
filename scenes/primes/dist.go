package primes

import "math"

// point3 is a classified position in the factor-space point cloud.
type point3 struct {
	x, y, z float64
	kind    int
}

// Point classifications, mirroring the distribution view's legend.
const (
	kindOrigin = iota
	kindPrime
	kindSquare
	kindCubic
	kindTwinGap // composite strictly between twin primes
	kindOther
)

const factorScale = 1000.0

// primeFactors returns n's prime factorization with multiplicity.
func primeFactors(n int) []int {
	var out []int
	for i := 2; i*i <= n; i++ {
		for n%i == 0 {
			out = append(out, i)
			n /= i
		}
	}
	if n > 1 {
		out = append(out, n)
	}
	return out
}

func isCube(n int) bool {
	r := int(math.Round(math.Cbrt(float64(n))))
	return r*r*r == n
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	f := primeFactors(n)
	return len(f) == 1
}

// classify maps n to its point-cloud position and kind. Primes sit on the
// x axis at p/factorScale, squares on the diagonal, everything else at its
// first three factors normalized into the unit ball.
func classify(n int) point3 {
	if n == 1 {
		return point3{kind: kindOrigin}
	}
	f := primeFactors(n)
	if len(f) == 1 {
		return point3{x: float64(f[0]) / factorScale, kind: kindPrime}
	}
	if len(f) == 2 && f[0] == f[1] {
		x := float64(f[0]) / factorScale
		return point3{x: x, y: x, kind: kindSquare}
	}

	kind := kindOther
	if isCube(n) {
		kind = kindCubic
	} else if isPrime(n-1) && isPrime(n+1) {
		kind = kindTwinGap
	}

	x := float64(f[0]) / factorScale
	var y, z float64
	if len(f) > 1 {
		y = float64(f[1]) / factorScale
	}
	if len(f) > 2 {
		z = float64(f[2]) / factorScale
	}
	if mag := math.Sqrt(x*x + y*y + z*z); mag > 1 {
		x, y, z = x/mag, y/mag, z/mag
	}
	return point3{x: x, y: y, z: z, kind: kind}
}
