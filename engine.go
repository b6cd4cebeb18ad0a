// Package astar computes least-cost routes across a two-dimensional
// rectangular grid using the A* algorithm. It is built for game units,
// simulation agents, or any caller that needs a sequence of discrete moves
// from a start cell to a goal cell on a cost-weighted grid, subject to a
// bounded cost cap and a bounded wall-clock timeout.
//
// An Engine is a single-threaded, non-suspending state machine: its methods
// never yield and must not be called concurrently on the same value from
// multiple goroutines. Distinct Engines are fully independent and safe to
// run in parallel.
package astar

import (
	"time"

	"github.com/rs/zerolog"
)

// defaultPollStride is how many loop iterations elapse between timeout
// checks when a timeout is configured, avoiding a time.Now() call on every
// single pop.
const defaultPollStride = 256

// Engine is the search driver (spec.md's "Context"): it owns the grid and
// heap, holds the movement configuration, orchestrates the main A* loop,
// and materializes the result of the most recent Run.
type Engine struct {
	grid *grid
	heap *minHeap

	dx, dy          [numDirs]int32
	moveCost        [numDirs]uint32
	steeringPenalty uint32
	heuristicFactor uint32
	maxCost         uint32
	timeout         time.Duration
	pollStride      int
	movementMode    MovementMode
	heuristic       HeuristicFunc

	log zerolog.Logger

	// mustReset is re-armed by every Set* method and by Run itself at the
	// end of every call, so the next Run always starts from a wiped grid
	// and an empty heap regardless of whether configuration changed.
	mustReset bool

	startOffset, goalOffset int
	status                  Status
	haveRoute               bool
	bestOffset              int
	bestScore               uint64
	directions              []Direction
	stats                   Stats
}

// Option configures an Engine at construction time. The same setters are
// also exposed as methods for reconfiguring an existing Engine between
// runs (SetOrigin, SetMaxCost, ...); Option exists so common presets (see
// Config.Options) can be applied in one New call.
type Option func(*Engine)

// WithHeuristic overrides the default Manhattan heuristic.
func WithHeuristic(h HeuristicFunc) Option {
	return func(e *Engine) { e.heuristic = h }
}

// WithLogger attaches a zerolog.Logger used to trace loop milestones
// (timeouts, compromise paths). The default is zerolog.Nop(),
// matching the teacher's silent-by-default behavior.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithMovementMode sets Cardinal or EightWay movement.
func WithMovementMode(m MovementMode) Option {
	return func(e *Engine) { e.movementMode = m; e.mustReset = true }
}

// WithTimeoutPollStride overrides how many loop iterations elapse between
// wall-clock timeout checks. Larger values reduce time.Now() overhead at
// the cost of coarser cancellation granularity.
func WithTimeoutPollStride(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.pollStride = n
		}
	}
}

// New creates an Engine over a width x height grid. get is the cost
// callback used to eagerly populate every cell's terrain; pass nil to
// instead populate later via InitGrid, or to fetch terrain lazily after
// calling both SetCostFunc and SetOrigin before the first Run.
func New(width, height int, get CostFunc, opts ...Option) (*Engine, error) {
	g, err := newGrid(width, height)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		grid:            g,
		heap:            newMinHeap(g.cells),
		dx:              defaultDX,
		dy:              defaultDY,
		heuristicFactor: defaultHeuristicFactor,
		steeringPenalty: 0,
		pollStride:      defaultPollStride,
		movementMode:    Cardinal,
		heuristic:       Manhattan,
		log:             zerolog.Nop(),
		mustReset:       true,
		status:          StatusNothing,
	}
	e.moveCost[DirN], e.moveCost[DirE], e.moveCost[DirS], e.moveCost[DirW] = defaultCardinalCost, defaultCardinalCost, defaultCardinalCost, defaultCardinalCost
	e.moveCost[DirNE], e.moveCost[DirSE], e.moveCost[DirSW], e.moveCost[DirNW] = defaultDiagonalCost, defaultDiagonalCost, defaultDiagonalCost, defaultDiagonalCost

	for _, opt := range opts {
		opt(e)
	}

	if get != nil {
		if err := g.eagerInit(0, 0, get); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// defaultHeuristicFactor is slightly less than the cardinal base cost,
// which produces straighter, smoother routes: the search becomes mildly
// greedy without losing admissibility in practice (spec.md §4.4).
const defaultHeuristicFactor uint32 = 9

// InitGrid eagerly populates every cell's terrain via get, translated
// through (originX, originY). Equivalent to passing get to New, but usable
// after construction (e.g. to re-home the grid on a different part of a
// larger map).
func (e *Engine) InitGrid(originX, originY int, get CostFunc) error {
	if err := e.grid.eagerInit(originX, originY, get); err != nil {
		return err
	}
	e.mustReset = true
	return nil
}

// SetOrigin sets the translation from grid-local to world coordinates.
// Required before a lazy-mode Run that hasn't been eagerly initialised.
func (e *Engine) SetOrigin(x, y int) {
	e.grid.originX, e.grid.originY = x, y
	e.grid.originSet = true
	e.mustReset = true
}

// SetCostFunc installs the lazy cost callback without eagerly fetching any
// terrain; cells are fetched on demand the first time a search touches
// them.
func (e *Engine) SetCostFunc(get CostFunc) {
	e.grid.get = get
	e.mustReset = true
}

// SetMaxCost caps accepted path cost; 0 disables the cap (spec.md §9,
// Open Question (b): callers who want a genuine zero-cost budget must set
// it to 1).
func (e *Engine) SetMaxCost(c uint32) { e.maxCost = c; e.mustReset = true }

// SetTimeout bounds wall-clock search time; 0 disables the timeout.
func (e *Engine) SetTimeout(d time.Duration) { e.timeout = d; e.mustReset = true }

// SetDXY overrides the (dx,dy) offset used for direction dir.
func (e *Engine) SetDXY(dir Direction, dx, dy int32) {
	e.dx[dir], e.dy[dir] = dx, dy
	e.mustReset = true
}

// SetCost overrides the base move cost charged for stepping in direction
// dir, before adding the destination cell's terrain cost.
func (e *Engine) SetCost(dir Direction, cost uint32) {
	e.moveCost[dir] = cost
	e.mustReset = true
}

// SetSteeringPenalty sets the extra cost charged when a move's direction
// differs from the previous move, producing straighter routes.
func (e *Engine) SetSteeringPenalty(p uint32) { e.steeringPenalty = p; e.mustReset = true }

// SetHeuristicFactor sets the multiplier applied to the heuristic's raw
// output.
func (e *Engine) SetHeuristicFactor(f uint32) { e.heuristicFactor = f; e.mustReset = true }

// SetHeuristic overrides the heuristic function used to estimate
// cost-to-goal. See HeuristicFunc for the admissibility/consistency
// contract.
func (e *Engine) SetHeuristic(h HeuristicFunc) {
	if h != nil {
		e.heuristic = h
	}
	e.mustReset = true
}

// SetMovementMode selects Cardinal or EightWay neighbor expansion.
func (e *Engine) SetMovementMode(m MovementMode) { e.movementMode = m; e.mustReset = true }

// DX returns the configured x offset for dir.
func (e *Engine) DX(dir Direction) int32 { return e.dx[dir] }

// DY returns the configured y offset for dir.
func (e *Engine) DY(dir Direction) int32 { return e.dy[dir] }

// Result returns the status of the most recent Run (StatusNothing before
// any Run has been performed).
func (e *Engine) Result() Status { return e.status }

// HaveRoute reports whether a route — full (StatusFound) or a best-effort
// compromise (StatusNotFound/StatusTimeout) — is available from the most
// recent Run.
func (e *Engine) HaveRoute() bool { return e.haveRoute }

// Stats returns the counters and score recorded by the most recent Run.
func (e *Engine) Stats() Stats { return e.stats }

// Directions returns a freshly allocated, caller-owned copy of the path
// found by the most recent Run: the full path to the goal for
// StatusFound, or the best-effort compromise path for StatusNotFound /
// StatusTimeout with HaveRoute() true. Returns nil otherwise. Unlike the
// original C library there is no paired free function — the slice is an
// ordinary Go value collected by the garbage collector (see DESIGN.md,
// "allocation ownership").
func (e *Engine) Directions() []Direction {
	if len(e.directions) == 0 {
		return nil
	}
	out := make([]Direction, len(e.directions))
	copy(out, e.directions)
	return out
}
