package astar

import "errors"

// Sentinel errors for programmer-error conditions. New returns
// ErrInvalidDimensions and InitGrid returns ErrNilCostFunc. Run's error
// return is always nil: it reports ErrGridNotInitialised and ErrOriginNotSet
// through StatusGridNotInitialised and StatusOriginNotSet, and out-of-range
// coordinates through StatusNotFound, so ErrOutOfRange is not returned by
// any function of the package.
var (
	ErrInvalidDimensions  = errors.New("astar: width and height must be positive")
	ErrNilCostFunc        = errors.New("astar: cost callback must not be nil")
	ErrGridNotInitialised = errors.New("astar: no cost callback installed and grid was not eagerly initialised")
	ErrOriginNotSet       = errors.New("astar: lazy cost fetch requires SetOrigin to have been called")
	ErrOutOfRange         = errors.New("astar: start or goal coordinates are out of grid bounds")
)
