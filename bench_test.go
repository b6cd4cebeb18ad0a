package astar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/gridwalk/astar"
	"github.com/gridwalk/astar/internal/mazegen"
)

// TestConcurrentEnginesAreIndependent exercises the documented guarantee
// that distinct Engines may run concurrently even though a single Engine
// is not safe for concurrent use.
func TestConcurrentEnginesAreIndependent(t *testing.T) {
	const n = 8
	g, _ := errgroup.WithContext(context.Background())
	statuses := make([]astar.Status, n)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			maze := mazegen.Generate(40, 40, uint64(i+1), 0.2)
			e, err := astar.New(40, 40, maze.CostFunc())
			if err != nil {
				return err
			}
			status, err := e.Run(0, 0, 39, 39)
			if err != nil {
				return err
			}
			statuses[i] = status
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, s := range statuses {
		require.Contains(t, []astar.Status{astar.StatusFound, astar.StatusNotFound}, s)
	}
}

func BenchmarkRunOpenField100x100(b *testing.B) {
	e, err := astar.New(100, 100, func(x, y int) uint32 { return 0 })
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Run(0, 0, 99, 99)
	}
}

func BenchmarkRunMaze200x200(b *testing.B) {
	maze := mazegen.Generate(200, 200, 1, 0.25)
	e, err := astar.New(200, 200, maze.CostFunc(), astar.WithMovementMode(astar.EightWay), astar.WithHeuristic(astar.Octile))
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Run(0, 0, 199, 199)
	}
}
