package billiards

import "math"

// Galperin's billiard: a small block sits between a wall and a heavy block
// sliding in. With a mass ratio of 100^k the total collision count spells
// the first k+1 digits of π (3, 31, 314, ...). The run is simulated exactly
// as a sequence of collision events and played back stretched over
// galperinTime seconds.

// galperinState is the 1D two-block state right after an event. Positions
// are in simulation units with the wall at 0; the small block is a point at
// x1, the heavy block a point at x2 > x1.
type galperinState struct {
	t              float64
	x1, v1, x2, v2 float64
}

// galperinCount returns the total number of collisions (block-block and
// block-wall) for the given mass ratio.
func galperinCount(ratio float64) int {
	count := 0
	simulate(ratio, func(galperinState) { count++ })
	return count
}

// simulate runs the event loop from the standard start (small block at rest,
// heavy block sliding in) and calls visit with the state after every
// collision. The loop terminates when no further collision can occur: the
// small block moves away from the wall no faster than the heavy block.
func simulate(ratio float64, visit func(galperinState)) galperinState {
	m2 := ratio
	st := galperinState{x1: 2, v1: 0, x2: 5, v2: -1}

	for !(st.v1 >= 0 && st.v2 >= st.v1) {
		// Next block-block collision, if approaching.
		tbb := math.Inf(1)
		if st.v1 > st.v2 {
			tbb = (st.x2 - st.x1) / (st.v1 - st.v2)
		}
		// Next wall collision, if the small block heads left.
		tw := math.Inf(1)
		if st.v1 < 0 {
			tw = st.x1 / -st.v1
		}

		dt := math.Min(tbb, tw)
		st.t += dt
		st.x1 += st.v1 * dt
		st.x2 += st.v2 * dt

		if tbb <= tw {
			// Elastic exchange along the line.
			v1, v2 := st.v1, st.v2
			st.v1 = ((1-m2)*v1 + 2*m2*v2) / (1 + m2)
			st.v2 = ((m2-1)*v2 + 2*v1) / (1 + m2)
		} else {
			st.v1 = -st.v1
		}
		visit(st)
	}
	return st
}

// galperinRun is a finished event simulation plus playback state for
// animating it at canvas scale.
type galperinRun struct {
	ratio    float64
	events   []galperinState // state after each collision, in time order
	duration float64         // sim time of the last collision
	tau      float64         // playback position in sim time
	timeScl  float64         // sim time per real second
	posScl   float64         // canvas units per sim unit
	count    int             // collisions that playback has passed
}

func newGalperinRun(ratio, canvasW float64) *galperinRun {
	r := &galperinRun{ratio: ratio}
	r.events = append(r.events, galperinState{x1: 2, v1: 0, x2: 5, v2: -1})
	simulate(ratio, func(st galperinState) { r.events = append(r.events, st) })
	r.duration = r.events[len(r.events)-1].t
	if r.duration <= 0 {
		r.duration = 1
	}
	r.timeScl = r.duration / galperinTime
	r.posScl = (canvasW - blockWallX - bigSize - 40) / 7
	return r
}

// advance moves playback forward by dt real seconds and updates the visible
// collision count.
func (r *galperinRun) advance(dt float64) {
	r.tau += dt * r.timeScl
	for r.count < len(r.events)-1 && r.events[r.count+1].t <= r.tau {
		r.count++
	}
}

// done reports whether playback has passed the final collision.
func (r *galperinRun) done() bool {
	return r.count >= len(r.events)-1
}

// positions returns the canvas x coordinates of the small and heavy blocks'
// left edges at the current playback time.
func (r *galperinRun) positions() (sx, bx float64) {
	st := r.events[r.count]
	dt := r.tau - st.t
	x1 := st.x1 + st.v1*dt
	x2 := st.x2 + st.v2*dt
	// Keep both blocks on screen during the long run-out.
	if x2 > 8 {
		x2 = 8
	}
	if x1 > x2 {
		x1 = x2
	}
	sx = blockWallX + x1*r.posScl
	bx = blockWallX + x2*r.posScl + smallSize
	return sx, bx
}
