package maze

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/point"
)

// Search finds every minimum-cost route from the start marker to the end
// marker of g under the turn-penalised cost model described in the package
// documentation.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadFacing, ErrBadStepCost, ErrBadTurnCost).
//  2. g must be non-nil (ErrNilGrid).
//  3. g must contain exactly one start and one end marker (ErrNoStart, ErrNoEnd).
//
// If the end is unreachable the returned Result has Found == false and err == nil.
func Search(g *grid.Grid, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate grid and markers
	if g == nil {
		return Result{}, ErrNilGrid
	}
	start, err := g.Find(cfg.Start)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrNoStart, err)
	}
	end, err := g.Find(cfg.End)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrNoEnd, err)
	}

	// 3) Run
	r := &runner{
		g:       g,
		options: cfg,
		end:     end,
		best:    make(map[stateKey]int, g.Len()),
		goal:    -1,
	}
	r.init(start)
	r.process()

	return r.result(), nil
}

// stateKey identifies a search state for pruning.
type stateKey struct {
	pos point.Point
	dir point.Point
}

// trail is a persistent route: each node points at its predecessor, so
// branches share their common prefix and never mutate it.
type trail struct {
	pos   point.Point
	prev  *trail
	depth int
}

// extend returns a new trail ending at p; t is left untouched.
func (t *trail) extend(p point.Point) *trail {
	return &trail{pos: p, prev: t, depth: t.depth + 1}
}

// visits reports whether p already appears on the route.
func (t *trail) visits(p point.Point) bool {
	for n := t; n != nil; n = n.prev {
		if n.pos == p {
			return true
		}
	}
	return false
}

// points materializes the route from its first to last position.
func (t *trail) points() []point.Point {
	out := make([]point.Point, t.depth)
	for n := t; n != nil; n = n.prev {
		out[n.depth-1] = n.pos
	}
	return out
}

// runner holds the mutable state of a single Search execution.
type runner struct {
	g       *grid.Grid
	options Options
	end     point.Point
	best    map[stateKey]int // lowest cost seen per (position, facing)
	pq      branchPQ
	seq     int
	goal    int // best goal cost, -1 while unknown
	arrived []*trail
}

// init seeds the queue with the start state.
func (r *runner) init(start point.Point) {
	heap.Init(&r.pq)
	r.push(&branch{
		state: State{Pos: start, Dir: r.options.Facing},
		trail: &trail{pos: start, depth: 1},
	})
}

func (r *runner) push(b *branch) {
	b.seq = r.seq
	r.seq++
	r.best[stateKey{b.state.Pos, b.state.Dir}] = b.state.Cost
	heap.Push(&r.pq, b)
}

// process pops branches in cost order until none can still tie the goal.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		b := heap.Pop(&r.pq).(*branch)
		s := b.state

		// Every remaining branch is at least this expensive.
		if r.goal >= 0 && s.Cost > r.goal {
			return
		}
		// A strictly cheaper branch reached this state after b was queued.
		if best, ok := r.best[stateKey{s.Pos, s.Dir}]; ok && best < s.Cost {
			continue
		}
		r.options.OnExpand(s)

		if s.Pos == r.end {
			if r.goal < 0 || s.Cost < r.goal {
				r.goal = s.Cost
				r.arrived = r.arrived[:0]
				r.options.OnImprove(s.Cost)
			}
			r.arrived = append(r.arrived, b.trail)
			continue
		}

		r.relax(b)
	}
}

// relax queues every legal move out of b. Reversal is never legal; a move
// into a position already on b's route is skipped; a move whose target
// state is already known at a strictly lower cost is pruned.
func (r *runner) relax(b *branch) {
	s := b.state
	back := s.Dir.Opposite()
	for _, d := range point.Cardinals {
		if d == back {
			continue
		}
		next := s.Pos.Add(d)
		label, ok := r.g.Get(next)
		if !ok || label == r.options.Wall {
			continue
		}
		if b.trail.visits(next) {
			continue
		}

		cost := s.Cost + r.options.StepCost
		if d != s.Dir {
			cost += r.options.TurnCost
		}
		if best, ok := r.best[stateKey{next, d}]; ok && best < cost {
			continue
		}

		r.push(&branch{
			state: State{Pos: next, Dir: d, Cost: cost},
			trail: b.trail.extend(next),
		})
	}
}

// result materializes the optimal routes and their tile union.
func (r *runner) result() Result {
	if r.goal < 0 {
		return Result{}
	}

	res := Result{Found: true, Cost: r.goal, Paths: make([][]point.Point, 0, len(r.arrived))}
	tiles := make(map[point.Point]struct{})
	for _, t := range r.arrived {
		path := t.points()
		res.Paths = append(res.Paths, path)
		for _, p := range path {
			tiles[p] = struct{}{}
		}
	}
	res.Tiles = make([]point.Point, 0, len(tiles))
	for p := range tiles {
		res.Tiles = append(res.Tiles, p)
	}
	slices.SortFunc(res.Tiles, byRow)

	return res
}

func byRow(a, b point.Point) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
