package region

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridlab/point"
)

// Sentinel errors for region analysis.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Partition.
	ErrNilGrid = errors.New("region: grid is nil")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("region: invalid option supplied")
)

// Connectivity selects which neighbors join a region.
type Connectivity int

const (
	// Conn4 grows regions through N, E, W, S.
	Conn4 Connectivity = iota
	// Conn8 additionally grows regions through diagonals.
	Conn8
)

// Options configures Partition.
type Options struct {
	// Conn selects region adjacency.
	Conn Connectivity
	// OnRegion is called with each region once it is complete.
	OnRegion func(r Region)

	err error
}

// Option represents a functional option for Partition.
type Option func(*Options)

// DefaultOptions returns Conn4 with a no-op OnRegion hook.
func DefaultOptions() Options {
	return Options{
		Conn:     Conn4,
		OnRegion: func(Region) {},
	}
}

// WithConnectivity sets region adjacency. Unknown values surface as
// ErrOptionViolation from Partition.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		if c != Conn4 && c != Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, c)
			return
		}
		o.Conn = c
	}
}

// WithOnRegion registers a hook run for every completed region.
func WithOnRegion(fn func(r Region)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRegion = fn
		}
	}
}

// Region is a maximal connected set of cells sharing Label.
// Cells are ordered by Y, then X. A Region is immutable once returned.
type Region struct {
	Label   rune
	Cells   []point.Point
	members map[point.Point]struct{}
}

// Edge is one unit of exposed boundary: the cell Pos and the outward
// direction Dir pointing at the neighbor outside the region.
type Edge struct {
	Pos point.Point
	Dir point.Point
}

// Side is a maximal run of collinear unit edges sharing Dir.
// Edges are ordered along the run.
type Side struct {
	Dir   point.Point
	Edges []Edge
}

// Len returns the number of unit edges merged into the side.
func (s Side) Len() int { return len(s.Edges) }
