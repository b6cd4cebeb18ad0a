package astar

// Stats reports counters and the final path score from the most recent
// Run. All fields are zero before the first Run.
type Stats struct {
	Steps   int    // number of moves in the reported path
	Score   uint64 // accumulated cost of the reported path
	Usecs   int64  // wall-clock time spent inside Run, in microseconds
	Loops   uint32 // number of cells popped from the open set
	Gets    uint32 // number of CostFunc invocations
	Updates uint32 // number of decrease-key heap updates performed
	Open    int    // cells left in the Open state at exit
	Closed  int    // cells left in the Closed state at exit
	BestX   int    // x ordinate of the compromise cell (grid-local)
	BestY   int    // y ordinate of the compromise cell (grid-local)
}
