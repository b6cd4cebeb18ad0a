package astar

// CostFunc returns the movement cost of entering the map cell at world
// coordinates (x, y): 0..254 for passable terrain, 255 (terrainBlocked)
// for an impassable wall. It is invoked synchronously from the search loop
// and must behave as a pure function of (x, y) for the duration of a Run.
type CostFunc func(x, y int) uint32

// grid is a width*height array of cells indexed by offset = y*w + x, plus
// the origin translation from grid-local to world coordinates. It owns the
// caller-supplied cost callback and tracks how many times it was invoked.
type grid struct {
	width, height int
	originX       int
	originY       int
	originSet     bool
	cells         []cell
	get           CostFunc
	eager         bool // true once InitGrid (eager mode) has populated every cell
	gets          uint32
}

func newGrid(width, height int) (*grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	g := &grid{width: width, height: height, cells: make([]cell, width*height)}
	g.resetCells()
	return g, nil
}

func (g *grid) offset(x, y int) int { return y*g.width + x }

func (g *grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// resetCells marks every cell Fresh with a zeroed g/h/f and, in lazy mode,
// an unknown terrain sentinel so the next touch re-fetches it. Eagerly
// initialised terrain is preserved across resets: only the per-run search
// bookkeeping is wiped, not the map itself.
func (g *grid) resetCells() {
	unknown := !g.eager
	for i := range g.cells {
		g.cells[i].reset()
		if unknown {
			g.cells[i].terrain = terrainUnknown
		}
	}
}

// eagerInit walks every (x,y) in [0,w)x[0,h), invoking get once per cell
// with world coordinates translated through (originX, originY), and stores
// the result as that cell's terrain.
func (g *grid) eagerInit(originX, originY int, get CostFunc) error {
	if get == nil {
		return ErrNilCostFunc
	}
	g.originX, g.originY, g.originSet = originX, originY, true
	g.get = get
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := &g.cells[g.offset(x, y)]
			c.terrain = get(originX+x, originY+y)
			g.gets++
		}
	}
	g.eager = true
	return nil
}

// terrainAt returns the terrain cost of grid-local (x,y), lazily invoking
// the cost callback (translated into world coordinates) the first time the
// cell is touched. In eager mode the terrain was already fetched.
func (g *grid) terrainAt(x, y int) (uint32, error) {
	c := &g.cells[g.offset(x, y)]
	if c.terrain != terrainUnknown {
		return c.terrain, nil
	}
	if g.get == nil {
		return 0, ErrGridNotInitialised
	}
	if !g.originSet {
		return 0, ErrOriginNotSet
	}
	c.terrain = g.get(g.originX+x, g.originY+y)
	g.gets++
	return c.terrain, nil
}
