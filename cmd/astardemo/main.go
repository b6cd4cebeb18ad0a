// Command astardemo renders a found or compromise path over an ASCII grid.
// It is an example driver only: the spec's CORE is the engine in package
// astar, not this CLI (spec.md §1, "explicitly OUT of scope").
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/gridwalk/astar"
	"github.com/gridwalk/astar/internal/mazegen"
)

func main() {
	width := flag.Int("w", 20, "grid width")
	height := flag.Int("h", 12, "grid height")
	seed := flag.Uint64("seed", 1, "maze random seed")
	density := flag.Float64("density", 0.25, "wall density, 0..0.9")
	eightWay := flag.Bool("8way", false, "allow diagonal movement")
	flag.Parse()

	maze := mazegen.Generate(*width, *height, *seed, *density)

	mode := astar.Cardinal
	if *eightWay {
		mode = astar.EightWay
	}
	eng, err := astar.New(*width, *height, maze.CostFunc(), astar.WithMovementMode(mode))
	if err != nil {
		fmt.Fprintln(os.Stderr, "astardemo:", err)
		os.Exit(1)
	}
	eng.SetTimeout(200 * time.Millisecond)

	status, err := eng.Run(0, 0, *width-1, *height-1)
	if err != nil {
		fmt.Fprintln(os.Stderr, "astardemo:", err)
		os.Exit(1)
	}

	path := map[[2]int]bool{}
	x, y := 0, 0
	path[[2]int{x, y}] = true
	for _, d := range eng.Directions() {
		x += int(eng.DX(d))
		y += int(eng.DY(d))
		path[[2]int{x, y}] = true
	}

	wall := color.New(color.FgHiBlack)
	route := color.New(color.FgGreen, color.Bold)
	plain := color.New(color.FgWhite)

	for gy := 0; gy < *height; gy++ {
		for gx := 0; gx < *width; gx++ {
			switch {
			case maze.Cost[gy][gx] == mazegen.Blocked:
				wall.Print("#")
			case path[[2]int{gx, gy}]:
				route.Print("*")
			default:
				plain.Print(".")
			}
		}
		fmt.Println()
	}

	stats := eng.Stats()
	fmt.Printf("status=%s steps=%d score=%d loops=%d usecs=%d\n",
		status, stats.Steps, stats.Score, stats.Loops, stats.Usecs)
}
