package astar

// cellState is one of the three mutually exclusive states a cell can be in
// during a single search.
type cellState uint8

const (
	cellFresh cellState = iota
	cellOpen
	cellClosed
)

// terrainBlocked is the sentinel terrain cost meaning "impassable".
const terrainBlocked uint32 = 255

// terrainUnknown marks a cell whose terrain has not been fetched yet, used
// only in lazy grid-init mode.
const terrainUnknown uint32 = 1<<32 - 1

// cell is the per-grid-position record described in spec.md §3: terrain
// cost plus the mutable g/h/f/parent/state/heapIndex bookkeeping a search
// needs. A grid owns a flat array of these indexed by offset = y*w + x.
type cell struct {
	terrain   uint32
	g, h, f   uint64
	parentDir Direction
	state     cellState
	heapIndex int // index into the heap's backing array while state == cellOpen
}

func (c *cell) reset() {
	c.g, c.h, c.f = 0, 0, 0
	c.parentDir = 0
	c.state = cellFresh
	c.heapIndex = -1
}
