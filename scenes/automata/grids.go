package automata

import "math/rand/v2"

// lifeGrid is Conway's Game of Life with toroidal wrapping.
type lifeGrid struct {
	w, h int
	cur  []uint8
	nxt  []uint8
}

func newLifeGrid(w, h int) *lifeGrid {
	return &lifeGrid{w: w, h: h, cur: make([]uint8, w*h), nxt: make([]uint8, w*h)}
}

// step advances one generation: birth on 3 neighbors, survival on 2 or 3.
func (g *lifeGrid) step() {
	w, h := g.w, g.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(g.cur[ny*w+nx])
				}
			}
			i := y*w + x
			alive := g.cur[i] == 1
			g.nxt[i] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				g.nxt[i] = 1
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

// Brian's Brain cell states.
const (
	brainOff uint8 = iota
	brainFiring
	brainDying
)

// brainGrid is Brian's Brain: off cells fire on exactly two firing
// neighbors, firing cells become dying, dying cells turn off.
type brainGrid struct {
	w, h int
	cur  []uint8
	nxt  []uint8
}

func newBrainGrid(w, h int) *brainGrid {
	return &brainGrid{w: w, h: h, cur: make([]uint8, w*h), nxt: make([]uint8, w*h)}
}

func (g *brainGrid) step() {
	w, h := g.w, g.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			switch g.cur[i] {
			case brainFiring:
				g.nxt[i] = brainDying
			case brainDying:
				g.nxt[i] = brainOff
			default:
				firing := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx := (x + dx + w) % w
						ny := (y + dy + h) % h
						if g.cur[ny*w+nx] == brainFiring {
							firing++
						}
					}
				}
				if firing == 2 {
					g.nxt[i] = brainFiring
				} else {
					g.nxt[i] = brainOff
				}
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

// elementary is a one-dimensional rule automaton rendered as scrolling rows:
// cells holds the full visible history, row is the index of the newest row.
type elementary struct {
	w, h  int
	rule  uint8
	cells []uint8
	row   int
}

func newElementary(w, h int, rule uint8) *elementary {
	return &elementary{w: w, h: h, rule: rule, cells: make([]uint8, w*h)}
}

// reset seeds the top row randomly and clears history.
func (e *elementary) reset(rng *rand.Rand) {
	e.clear()
	for x := 0; x < e.w; x++ {
		if rng.Float64() < 0.5 {
			e.cells[x] = 1
		}
	}
	// Guarantee at least one live cell so deterministic rules have a seed.
	e.cells[e.w/2] = 1
	e.row = 0
}

func (e *elementary) clear() {
	for i := range e.cells {
		e.cells[i] = 0
	}
	e.row = 0
}

// nextRow applies the rule to src with toroidal wrapping.
func nextRow(rule uint8, src, dst []uint8) {
	w := len(src)
	for x := 0; x < w; x++ {
		l := src[(x-1+w)%w]
		c := src[x]
		r := src[(x+1)%w]
		pattern := l<<2 | c<<1 | r
		dst[x] = (rule >> pattern) & 1
	}
}

// step computes the next row below the current one; when the bottom is
// reached, rows scroll up by one.
func (e *elementary) step() {
	w := e.w
	src := e.cells[e.row*w : (e.row+1)*w]
	if e.row < e.h-1 {
		dst := e.cells[(e.row+1)*w : (e.row+2)*w]
		nextRow(e.rule, src, dst)
		e.row++
		return
	}
	copy(e.cells, e.cells[w:])
	last := e.cells[(e.h-1)*w : e.h*w]
	nextRow(e.rule, e.cells[(e.h-2)*w:(e.h-1)*w], last)
}
