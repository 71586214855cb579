package spin2

// deriv fills dydt with the system derivative at (t, y).
type deriv func(t float64, y, dydt []float64)

// rk4 advances y in place by one classical Runge-Kutta step.
func rk4(f deriv, t, h float64, y []float64) {
	n := len(y)
	k1 := make([]float64, n)
	k2 := make([]float64, n)
	k3 := make([]float64, n)
	k4 := make([]float64, n)
	tmp := make([]float64, n)

	f(t, y, k1)
	for i := range y {
		tmp[i] = y[i] + h/2*k1[i]
	}
	f(t+h/2, tmp, k2)
	for i := range y {
		tmp[i] = y[i] + h/2*k2[i]
	}
	f(t+h/2, tmp, k3)
	for i := range y {
		tmp[i] = y[i] + h*k3[i]
	}
	f(t+h, tmp, k4)
	for i := range y {
		y[i] += h / 6 * (k1[i] + 2*k2[i] + 2*k3[i] + k4[i])
	}
}

// waveField is the massive-graviton amplitude h(t) obeying h'' = -m^2 h.
type waveField struct {
	mass float64
	t    float64
	y    [2]float64 // h, h'
}

func newWaveField(mass, h0 float64) *waveField {
	return &waveField{mass: mass, y: [2]float64{h0, 0}}
}

func (w *waveField) step(dt float64) {
	m2 := w.mass * w.mass
	rk4(func(_ float64, y, d []float64) {
		d[0] = y[1]
		d[1] = -m2 * y[0]
	}, w.t, dt, w.y[:])
	w.t += dt
}

// amplitude returns the current strain h(t).
func (w *waveField) amplitude() float64 { return w.y[0] }

// cosmos evolves the scale factor under the simplified Friedmann system
// a'' = -g (a'^2/2 - m^2 a^2/2 + rho) a.
type cosmos struct {
	mass float64
	g    float64
	rho  float64
	t    float64
	y    [2]float64 // a, a'
}

// newCosmos builds a universe with background density rho. Density below
// the field term mass^2/2 drives expansion, density above it recollapse.
func newCosmos(mass, rho float64) *cosmos {
	return &cosmos{mass: mass, g: 0.5, rho: rho, y: [2]float64{1, 0}}
}

func (c *cosmos) step(dt float64) {
	rk4(func(_ float64, y, d []float64) {
		a, adot := y[0], y[1]
		t00 := 0.5*(adot*adot-c.mass*c.mass*a*a) + c.rho
		d[0] = adot
		d[1] = -c.g * t00 * a
	}, c.t, dt, c.y[:])
	c.t += dt
}

// scale returns the current scale factor a(t).
func (c *cosmos) scale() float64 { return c.y[0] }

func (c *cosmos) reset() {
	c.t = 0
	c.y = [2]float64{1, 0}
}
