package astar

import "time"

// moveDirStride returns the step between active entries of the direction
// table for the current movement mode: 2 for Cardinal (N, E, S, W, the
// even entries), 1 for EightWay (all eight).
func (e *Engine) moveDirStride() int {
	if e.movementMode == EightWay {
		return 1
	}
	return 2
}

// Run searches for a least-cost path from (x0,y0) to (x1,y1), both in
// grid-local coordinates, and returns the outcome status. See spec.md §4.3
// for the full state machine; this implementation follows it step for
// step:
//
//  1. reset the grid and heap, since the previous Run (if any) left its
//     Open/Closed state behind,
//  2. trivial / embedded pre-checks before any heap push,
//  3. seed the start cell and push it onto the open set,
//  4. pop, close, goal-check, expand neighbors, relax, repeat,
//  5. on any non-Found exit, keep the nearest-compromise cell reached.
//
// Every exit path rearms the reset flag so the next call, with the same
// arguments or not, always starts from a clean grid and heap.
func (e *Engine) Run(x0, y0, x1, y1 int) (Status, error) {
	g := e.grid

	if !g.inBounds(x0, y0) || !g.inBounds(x1, y1) {
		e.finish(StatusNotFound, 0, 0)
		return e.status, nil
	}

	if e.mustReset {
		g.resetCells()
		e.heap.clear()
		e.mustReset = false
	}

	startOffset := g.offset(x0, y0)
	goalOffset := g.offset(x1, y1)
	e.startOffset, e.goalOffset = startOffset, goalOffset

	if startOffset == goalOffset {
		e.finish(StatusTrivial, startOffset, 0)
		return e.status, nil
	}

	startTerrain, err := g.terrainAt(x0, y0)
	if err != nil {
		return e.fail(err), nil
	}
	if startTerrain == terrainBlocked {
		e.finish(StatusEmbedded, startOffset, 0)
		return e.status, nil
	}

	started := time.Now()
	start := &g.cells[startOffset]
	start.g = 0
	start.h = e.heuristic(x0, y0, x1, y1) * uint64(e.heuristicFactor)
	start.f = start.h
	start.state = cellOpen
	e.heap.push(startOffset, start.f)

	bestOffset, bestScore := startOffset, start.h

	var loops, updates uint32
	openCount, closedCount := 1, 0
	status := StatusNotFound

loop:
	for {
		if e.heap.len() == 0 {
			break loop
		}
		loops++
		if e.timeout > 0 && loops%uint32(e.pollStride) == 0 {
			if time.Since(started) > e.timeout {
				status = StatusTimeout
				e.log.Debug().Uint32("loops", loops).Msg("astar: timeout")
				break loop
			}
		}

		curOffset := e.heap.pop()
		cur := &g.cells[curOffset]
		cur.state = cellClosed
		openCount--
		closedCount++

		if curOffset == goalOffset {
			status = StatusFound
			break loop
		}

		curX, curY := curOffset%g.width, curOffset/g.width
		dirStride := e.moveDirStride()
		for d := 0; d < numDirs; d += dirStride {
			dir := Direction(d)
			nx, ny := curX+int(e.dx[dir]), curY+int(e.dy[dir])
			if !g.inBounds(nx, ny) {
				continue
			}
			terrain, err := g.terrainAt(nx, ny)
			if err != nil {
				return e.fail(err), nil
			}
			if terrain == terrainBlocked {
				continue
			}

			step := uint64(e.moveCost[dir]) + uint64(terrain)
			if curOffset != startOffset && cur.parentDir != dir {
				step += uint64(e.steeringPenalty)
			}
			tentativeG := cur.g + step
			if e.maxCost > 0 && tentativeG > uint64(e.maxCost) {
				continue
			}

			neighborOffset := g.offset(nx, ny)
			neighbor := &g.cells[neighborOffset]
			switch neighbor.state {
			case cellFresh:
				neighbor.g = tentativeG
				neighbor.h = e.heuristic(nx, ny, x1, y1) * uint64(e.heuristicFactor)
				neighbor.f = neighbor.g + neighbor.h
				neighbor.parentDir = dir
				neighbor.state = cellOpen
				e.heap.push(neighborOffset, neighbor.f)
				openCount++
				if neighbor.h < bestScore {
					bestScore, bestOffset = neighbor.h, neighborOffset
				}
			case cellOpen:
				if tentativeG < neighbor.g {
					neighbor.g = tentativeG
					neighbor.f = tentativeG + neighbor.h
					neighbor.parentDir = dir
					e.heap.update(neighborOffset, neighbor.f)
					updates++
				}
			case cellClosed:
				// The engine never reopens a Closed cell: correct for
				// consistent heuristics, see DESIGN.md.
			}
		}
	}

	e.stats.Loops = loops
	e.stats.Updates = updates
	e.stats.Gets = g.gets
	e.stats.Usecs = time.Since(started).Microseconds()
	e.stats.Open, e.stats.Closed = openCount, closedCount

	resultOffset := goalOffset
	if status != StatusFound {
		e.haveRoute = bestOffset != startOffset
		resultOffset = bestOffset
		if e.haveRoute {
			e.log.Debug().Int("bestOffset", bestOffset).Msg("astar: compromise path recorded")
		}
	} else {
		e.haveRoute = true
	}
	e.bestOffset, e.bestScore = bestOffset, bestScore
	e.stats.BestX, e.stats.BestY = bestOffset%g.width, bestOffset/g.width

	e.status = status
	if e.haveRoute {
		e.directions = e.reconstructDirections(resultOffset)
		e.stats.Steps = len(e.directions)
		e.stats.Score = g.cells[resultOffset].g
	} else {
		e.directions = nil
		e.stats.Steps = 0
		e.stats.Score = 0
	}
	// A search has run: the grid and heap carry this run's Open/Closed
	// state and must be wiped before the next Run, same call or not
	// (original_source/tags/V_0_9_2/src/astar.h:183, "must reset").
	e.mustReset = true
	return e.status, nil
}

// finish handles the zero-work Trivial and out-of-range/NotFound
// preliminary exits, which never touch the heap.
func (e *Engine) finish(status Status, offset int, score uint64) {
	e.status = status
	e.haveRoute = status == StatusTrivial
	e.directions = nil
	e.stats = Stats{}
	e.bestOffset = offset
	e.bestScore = score
	e.mustReset = true
}

// fail records a precondition failure (GridNotInitialised / OriginNotSet)
// and returns its Status.
func (e *Engine) fail(err error) Status {
	switch err {
	case ErrGridNotInitialised:
		e.status = StatusGridNotInitialised
	case ErrOriginNotSet:
		e.status = StatusOriginNotSet
	default:
		e.status = StatusNotFound
	}
	e.haveRoute = false
	e.directions = nil
	e.mustReset = true
	return e.status
}

// reconstructDirections walks parentDir links backward from target to the
// start cell, recording the inverse direction at each step (spec.md §4.3,
// "Path reconstruction"), then reverses the result so it reads start to
// target.
func (e *Engine) reconstructDirections(target int) []Direction {
	if target == e.startOffset {
		return []Direction{}
	}
	g := e.grid
	var dirs []Direction
	cur := target
	for cur != e.startOffset {
		c := &g.cells[cur]
		d := c.parentDir
		dirs = append(dirs, d.Inverse())
		x, y := cur%g.width, cur/g.width
		px, py := x-int(e.dx[d]), y-int(e.dy[d])
		cur = g.offset(px, py)
	}
	for i, j := 0, len(dirs)-1; i < j; i, j = i+1, j-1 {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}
