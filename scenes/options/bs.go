package options

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// Params are the market inputs shared by every pricing function.
// T is time to maturity in years, Sigma annualized volatility, R the
// continuously compounded risk-free rate.
type Params struct {
	Spot   float64
	Strike float64
	T      float64
	Sigma  float64
	R      float64
}

func (p Params) d1() float64 {
	return (math.Log(p.Spot/p.Strike) + (p.R+0.5*p.Sigma*p.Sigma)*p.T) /
		(p.Sigma * math.Sqrt(p.T))
}

func (p Params) d2() float64 {
	return p.d1() - p.Sigma*math.Sqrt(p.T)
}

// Call returns the Black-Scholes price of a European call. At expiry or
// zero volatility it degenerates to discounted intrinsic value.
func Call(p Params) float64 {
	if p.T <= 0 || p.Sigma <= 0 {
		return math.Max(p.Spot-p.Strike*math.Exp(-p.R*p.T), 0)
	}
	return p.Spot*stdNormal.CDF(p.d1()) -
		p.Strike*math.Exp(-p.R*p.T)*stdNormal.CDF(p.d2())
}

// Put returns the Black-Scholes price of a European put.
func Put(p Params) float64 {
	if p.T <= 0 || p.Sigma <= 0 {
		return math.Max(p.Strike*math.Exp(-p.R*p.T)-p.Spot, 0)
	}
	return p.Strike*math.Exp(-p.R*p.T)*stdNormal.CDF(-p.d2()) -
		p.Spot*stdNormal.CDF(-p.d1())
}

// Delta returns dPrice/dSpot for a call; the put delta is Delta-1.
func Delta(p Params) float64 {
	if p.T <= 0 || p.Sigma <= 0 {
		if p.Spot > p.Strike {
			return 1
		}
		return 0
	}
	return stdNormal.CDF(p.d1())
}

// Gamma returns d2Price/dSpot2, identical for calls and puts.
func Gamma(p Params) float64 {
	if p.T <= 0 || p.Sigma <= 0 {
		return 0
	}
	return stdNormal.Prob(p.d1()) / (p.Spot * p.Sigma * math.Sqrt(p.T))
}

// Vega returns dPrice/dSigma per unit of volatility.
func Vega(p Params) float64 {
	if p.T <= 0 || p.Sigma <= 0 {
		return 0
	}
	return p.Spot * stdNormal.Prob(p.d1()) * math.Sqrt(p.T)
}

// BinomialCall prices a European call on a Cox-Ross-Rubinstein tree with
// the given number of steps. Converges to Call as steps grows.
func BinomialCall(p Params, steps int) float64 {
	if p.T <= 0 || steps <= 0 {
		return math.Max(p.Spot-p.Strike, 0)
	}
	dt := p.T / float64(steps)
	u := math.Exp(p.Sigma * math.Sqrt(dt))
	d := 1 / u
	disc := math.Exp(-p.R * dt)
	q := (math.Exp(p.R*dt) - d) / (u - d)

	// Terminal payoffs, then roll back.
	vals := make([]float64, steps+1)
	for i := 0; i <= steps; i++ {
		sT := p.Spot * math.Pow(u, float64(i)) * math.Pow(d, float64(steps-i))
		vals[i] = math.Max(sT-p.Strike, 0)
	}
	for n := steps - 1; n >= 0; n-- {
		for i := 0; i <= n; i++ {
			vals[i] = disc * (q*vals[i+1] + (1-q)*vals[i])
		}
	}
	return vals[0]
}
