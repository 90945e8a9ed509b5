package region

import (
	"slices"

	"github.com/katalvlaran/gridlab/point"
)

// lineKey groups unit edges that lie on the same boundary line:
// same outward direction and same fixed coordinate across that direction.
type lineKey struct {
	dir   point.Point
	fixed int
}

// Sides merges unit edges into maximal straight runs.
//
// Edges facing North/South lie on a horizontal line (fixed Y) and run along X;
// edges facing East/West lie on a vertical line (fixed X) and run along Y.
// Within a line, edges whose running coordinates differ by exactly one belong
// to the same side. Because the outward direction is part of the key, the
// boundary of a hole never merges with the outer boundary, and two edges
// touching only at a corner never merge.
//
// Sides are ordered by direction (point.Cardinals order), then line, then start.
func (r Region) Sides() []Side {
	lines := make(map[lineKey][]int)
	for _, e := range r.Edges() {
		fixed, along := split(e)
		k := lineKey{dir: e.Dir, fixed: fixed}
		lines[k] = append(lines[k], along)
	}

	keys := make([]lineKey, 0, len(lines))
	for k := range lines {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b lineKey) int {
		if a.dir != b.dir {
			return dirRank(a.dir) - dirRank(b.dir)
		}
		return a.fixed - b.fixed
	})

	var sides []Side
	for _, k := range keys {
		along := lines[k]
		slices.Sort(along)
		var cur Side
		for i, v := range along {
			if i > 0 && v != along[i-1]+1 {
				sides = append(sides, cur)
				cur = Side{}
			}
			cur.Dir = k.dir
			cur.Edges = append(cur.Edges, Edge{Pos: join(k, v), Dir: k.dir})
		}
		sides = append(sides, cur)
	}

	return sides
}

// SideCount returns len(Sides()) without materializing the runs.
func (r Region) SideCount() int {
	lines := make(map[lineKey][]int)
	for _, e := range r.Edges() {
		fixed, along := split(e)
		k := lineKey{dir: e.Dir, fixed: fixed}
		lines[k] = append(lines[k], along)
	}

	n := 0
	for _, along := range lines {
		slices.Sort(along)
		n++
		for i := 1; i < len(along); i++ {
			if along[i] != along[i-1]+1 {
				n++
			}
		}
	}

	return n
}

// split returns the fixed and running coordinates of an edge.
func split(e Edge) (fixed, along int) {
	if e.Dir.X == 0 {
		return e.Pos.Y, e.Pos.X
	}

	return e.Pos.X, e.Pos.Y
}

// join inverts split for a given line.
func join(k lineKey, along int) point.Point {
	if k.dir.X == 0 {
		return point.New(along, k.fixed)
	}

	return point.New(k.fixed, along)
}

func dirRank(d point.Point) int {
	for i, c := range point.Cardinals {
		if c == d {
			return i
		}
	}

	return len(point.Cardinals)
}
