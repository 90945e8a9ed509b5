package region

import (
	"slices"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/point"
)

// Partition splits g into regions. Every present cell belongs to exactly one
// region; regions are returned in discovery order (seeds scanned by Y, then X).
//
// Behavior:
//  1. Scan cells in grid.Points order; skip cells already claimed.
//  2. BFS from the seed, claiming neighbors that are present, carry the seed's
//     label and are unclaimed. Claims go into a single set shared by all regions.
//  3. Emit the region and invoke OnRegion.
func Partition(g *grid.Grid, opts ...Option) ([]Region, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	neighbors := g.CardinalNeighbors
	if cfg.Conn == Conn8 {
		neighbors = g.Neighbors
	}

	claimed := make(map[point.Point]struct{}, g.Len())
	var regions []Region
	for _, seed := range g.Points() {
		if _, ok := claimed[seed]; ok {
			continue
		}
		label, _ := g.Get(seed)
		same := grid.Is(label)

		claimed[seed] = struct{}{}
		queue := []point.Point{seed}
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range neighbors(queue[qi], same) {
				if _, ok := claimed[n]; ok {
					continue
				}
				claimed[n] = struct{}{}
				queue = append(queue, n)
			}
		}

		r := newRegion(label, queue)
		cfg.OnRegion(r)
		regions = append(regions, r)
	}

	return regions, nil
}

func newRegion(label rune, cells []point.Point) Region {
	slices.SortFunc(cells, byRow)
	members := make(map[point.Point]struct{}, len(cells))
	for _, c := range cells {
		members[c] = struct{}{}
	}

	return Region{Label: label, Cells: cells, members: members}
}

func byRow(a, b point.Point) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}

// Contains reports whether p belongs to the region.
func (r Region) Contains(p point.Point) bool {
	_, ok := r.members[p]
	return ok
}

// Area returns the number of cells.
func (r Region) Area() int { return len(r.Cells) }

// Edges returns every unit boundary edge, cell by cell in Cells order and
// direction by direction in point.Cardinals order.
func (r Region) Edges() []Edge {
	var out []Edge
	for _, c := range r.Cells {
		for _, d := range point.Cardinals {
			if !r.Contains(c.Add(d)) {
				out = append(out, Edge{Pos: c, Dir: d})
			}
		}
	}

	return out
}

// Perimeter returns the number of unit boundary edges. A neighbor counts as
// outside whether it is off-grid or carries another label.
func (r Region) Perimeter() int {
	n := 0
	for _, c := range r.Cells {
		for _, d := range point.Cardinals {
			if !r.Contains(c.Add(d)) {
				n++
			}
		}
	}

	return n
}

// Price returns Area × Perimeter.
func (r Region) Price() int { return r.Area() * r.Perimeter() }

// BulkPrice returns Area × SideCount.
func (r Region) BulkPrice() int { return r.Area() * r.SideCount() }

// TotalPrice sums Price over regions.
func TotalPrice(regions []Region) int {
	total := 0
	for _, r := range regions {
		total += r.Price()
	}

	return total
}

// TotalBulkPrice sums BulkPrice over regions.
func TotalBulkPrice(regions []Region) int {
	total := 0
	for _, r := range regions {
		total += r.BulkPrice()
	}

	return total
}
