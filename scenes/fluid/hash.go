package fluid

import "github.com/phanxgames/vitrine"

// spatialHash buckets particle indices by cell so neighbor queries touch
// only the 3x3 block around a position. Cell size equals the smoothing
// radius, so any pair within range shares adjacent cells.
type spatialHash struct {
	cell    float64
	buckets map[[2]int][]int
}

func newSpatialHash(cell float64) *spatialHash {
	return &spatialHash{cell: cell, buckets: make(map[[2]int][]int)}
}

func (g *spatialHash) key(p vitrine.Vec2) [2]int {
	return [2]int{int(p.X / g.cell), int(p.Y / g.cell)}
}

// rebuild reindexes every particle, reusing bucket slices between frames.
func (g *spatialHash) rebuild(parts []particle) {
	for k, b := range g.buckets {
		g.buckets[k] = b[:0]
	}
	for i := range parts {
		k := g.key(parts[i].pos)
		g.buckets[k] = append(g.buckets[k], i)
	}
}

// query appends to out all particle indices in the 3x3 cell block around
// pos and returns the extended slice.
func (g *spatialHash) query(pos vitrine.Vec2, out []int) []int {
	c := g.key(pos)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			out = append(out, g.buckets[[2]int{c[0] + dx, c[1] + dy}]...)
		}
	}
	return out
}
