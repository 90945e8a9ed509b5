package maze

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridlab/point"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrNoStart indicates the start marker is missing or not unique.
	ErrNoStart = errors.New("maze: start cell not found")

	// ErrNoEnd indicates the end marker is missing or not unique.
	ErrNoEnd = errors.New("maze: end cell not found")

	// ErrBadStepCost indicates StepCost was set to zero or a negative value.
	ErrBadStepCost = errors.New("maze: StepCost must be positive")

	// ErrBadTurnCost indicates TurnCost was set to a negative value.
	ErrBadTurnCost = errors.New("maze: TurnCost must be non-negative")

	// ErrBadFacing indicates Facing is not one of North, East, South, West.
	ErrBadFacing = errors.New("maze: Facing must be a cardinal unit vector")

	// ErrOptionViolation wraps every error recorded by an invalid Option.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// Default cost model.
const (
	DefaultStepCost = 1
	DefaultTurnCost = 1000
)

// State is a (position, facing) pair together with the cost of the branch
// that reached it. It is passed to the OnExpand hook.
type State struct {
	Pos  point.Point
	Dir  point.Point
	Cost int
}

// Options configures Search.
//
// Start, End, Wall – labels of the start cell, goal cell and impassable cells.
// Facing           – initial facing at Start. Default point.East.
// StepCost         – cost of one forward move. Must be > 0.
// TurnCost         – extra cost of a 90° turn. Must be ≥ 0.
// OnExpand         – called whenever a branch is taken off the queue.
// OnImprove        – called when a cheaper goal cost is discovered.
type Options struct {
	Start     rune
	End       rune
	Wall      rune
	Facing    point.Point
	StepCost  int
	TurnCost  int
	OnExpand  func(s State)
	OnImprove func(cost int)

	err error
}

// Option represents a functional option for Search.
type Option func(*Options)

// DefaultOptions returns the reference cost model: 'S' to 'E' through cells
// other than '#', facing East, step 1, turn 1000, no-op hooks.
func DefaultOptions() Options {
	return Options{
		Start:     'S',
		End:       'E',
		Wall:      '#',
		Facing:    point.East,
		StepCost:  DefaultStepCost,
		TurnCost:  DefaultTurnCost,
		OnExpand:  func(State) {},
		OnImprove: func(int) {},
	}
}

// WithMarkers overrides the start, end and wall labels.
func WithMarkers(start, end, wall rune) Option {
	return func(o *Options) {
		o.Start, o.End, o.Wall = start, end, wall
	}
}

// WithFacing sets the initial facing. Non-cardinal vectors are recorded as
// ErrBadFacing and reported by Search.
func WithFacing(dir point.Point) Option {
	return func(o *Options) {
		if !isCardinal(dir) {
			o.err = fmt.Errorf("%w: %w: got %v", ErrOptionViolation, ErrBadFacing, dir)
			return
		}
		o.Facing = dir
	}
}

// WithStepCost sets the forward move cost (must be > 0).
func WithStepCost(c int) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: %w: got %d", ErrOptionViolation, ErrBadStepCost, c)
			return
		}
		o.StepCost = c
	}
}

// WithTurnCost sets the 90° turn penalty (must be ≥ 0).
func WithTurnCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: %w: got %d", ErrOptionViolation, ErrBadTurnCost, c)
			return
		}
		o.TurnCost = c
	}
}

// WithOnExpand registers a hook called for every expanded branch.
func WithOnExpand(fn func(s State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnImprove registers a hook called when a cheaper goal cost is found.
func WithOnImprove(fn func(cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}

func isCardinal(d point.Point) bool {
	for _, c := range point.Cardinals {
		if d == c {
			return true
		}
	}
	return false
}

// Result is the outcome of Search.
//
// Found reports whether End is reachable. When false, Cost is 0 and Paths
// and Tiles are empty. Paths holds every distinct minimum-cost route from
// Start to End inclusive, in discovery order; each slice is owned by the
// caller. Tiles is the union of all positions on those routes, ordered by
// Y, then X.
type Result struct {
	Found bool
	Cost  int
	Paths [][]point.Point
	Tiles []point.Point
}

// TileCount returns the number of distinct positions on any optimal route.
func (r Result) TileCount() int { return len(r.Tiles) }

// PathCount returns the number of distinct optimal routes.
func (r Result) PathCount() int { return len(r.Paths) }

// OnPath reports whether p lies on any optimal route.
func (r Result) OnPath(p point.Point) bool {
	_, ok := slices.BinarySearchFunc(r.Tiles, p, byRow)
	return ok
}
