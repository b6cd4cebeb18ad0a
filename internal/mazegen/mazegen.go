// Package mazegen generates deterministic randomized cost grids for
// benchmarking and exercising the astar engine's compromise-path and
// timeout behavior on larger maps than the hand-written test fixtures
// cover. It is test/benchmark-only support, not part of the engine's
// public contract.
package mazegen

import "math/rand/v2"

// Blocked is the terrain cost astar treats as impassable.
const Blocked uint32 = 255

// Maze is a width x height cost grid, cost[y][x] in [0,254] or Blocked.
type Maze struct {
	Width, Height int
	Cost          [][]uint32
}

// Generate builds a deterministic maze from seed: every cell independently
// becomes Blocked with probability wallDensity (clamped to [0,0.9] so a
// path is still plausible), and otherwise gets a terrain cost in [0,4].
// The top-left (0,0) and bottom-right (width-1,height-1) corners are always
// left passable with cost 0 so benchmarks can reliably pick a start/goal
// pair; the other two corners are generated like any other cell.
func Generate(width, height int, seed uint64, wallDensity float64) *Maze {
	if wallDensity < 0 {
		wallDensity = 0
	}
	if wallDensity > 0.9 {
		wallDensity = 0.9
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	m := &Maze{Width: width, Height: height, Cost: make([][]uint32, height)}
	for y := 0; y < height; y++ {
		m.Cost[y] = make([]uint32, width)
		for x := 0; x < width; x++ {
			if r.Float64() < wallDensity {
				m.Cost[y][x] = Blocked
			} else {
				m.Cost[y][x] = uint32(r.IntN(5))
			}
		}
	}
	m.Cost[0][0] = 0
	m.Cost[height-1][width-1] = 0
	return m
}

// CostFunc adapts the maze to astar.CostFunc's signature.
func (m *Maze) CostFunc() func(x, y int) uint32 {
	return func(x, y int) uint32 {
		if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
			return Blocked
		}
		return m.Cost[y][x]
	}
}
