package primes

// pushGrid grows one column per frontier number. Each incoming integer is
// captured by the first column whose frontier divides it and stacks beneath
// that frontier; an integer no column captures opens a new main-line column
// and becomes a frontier itself. Frontiers are exactly the primes, in order.
type pushGrid struct {
	frontiers []int
	columns   [][]int // columns[i][0] is frontiers[i]
	next      int
}

func newPushGrid() *pushGrid {
	return &pushGrid{next: 2}
}

// insert places the next integer and reports its column, depth, and whether
// it opened a new frontier.
func (g *pushGrid) insert() (col, depth int, frontier bool) {
	num := g.next
	g.next++
	for ci, p := range g.frontiers {
		if num%p == 0 {
			g.columns[ci] = append(g.columns[ci], num)
			return ci, len(g.columns[ci]) - 1, false
		}
	}
	g.frontiers = append(g.frontiers, num)
	g.columns = append(g.columns, []int{num})
	return len(g.columns) - 1, 0, true
}

// Frontiers returns the frontier numbers discovered so far.
func (g *pushGrid) Frontiers() []int { return g.frontiers }

// Placed reports how many integers have entered the grid.
func (g *pushGrid) Placed() int { return g.next - 2 }

func (g *pushGrid) reset() {
	g.frontiers = g.frontiers[:0]
	g.columns = g.columns[:0]
	g.next = 2
}
