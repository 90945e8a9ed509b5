package grid

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/gridlab/point"
)

// Parse builds a Grid from newline-separated text. Blank lines (empty or
// whitespace-only, including a trailing newline) are skipped and "\r\n"
// endings are accepted. Returns ErrEmptyGrid if no non-blank line remains or
// if WithOmit dropped every cell.
func Parse(text string, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{
		cells:  make(map[point.Point]rune, len(lines)*len(lines[0])),
		height: len(lines),
		axis:   cfg.Axis,
	}
	for row, line := range lines {
		y := g.rowToY(row)
		x := 0
		for _, r := range line {
			if _, skip := cfg.Omit[r]; !skip {
				g.cells[point.New(x, y)] = r
			}
			x++
		}
		g.width = max(g.width, x)
	}
	if len(g.cells) == 0 {
		return nil, fmt.Errorf("%w: every cell was omitted", ErrEmptyGrid)
	}

	return g, nil
}

// MustParse is Parse that panics on error. Intended for tests and examples.
func MustParse(text string, opts ...Option) *Grid {
	g, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}

	return g
}

// rowToY maps a line index to a y coordinate per the grid's axis.
func (g *Grid) rowToY(row int) int {
	if g.axis == RowsUp {
		return g.height - 1 - row
	}

	return row
}

// Width returns the length of the longest line, in runes.
func (g *Grid) Width() int { return g.width }

// Height returns the number of non-blank lines.
func (g *Grid) Height() int { return g.height }

// Extent returns (Width, Height), the exclusive upper corner of the grid.
func (g *Grid) Extent() point.Point { return point.New(g.width, g.height) }

// Len returns the number of present cells.
func (g *Grid) Len() int { return len(g.cells) }

// Axis returns the vertical convention used at parse time.
func (g *Grid) Axis() Axis { return g.axis }

// Get returns the label at p and whether p is present.
func (g *Grid) Get(p point.Point) (rune, bool) {
	r, ok := g.cells[p]
	return r, ok
}

// Has reports whether p is a present cell.
func (g *Grid) Has(p point.Point) bool {
	_, ok := g.cells[p]
	return ok
}

// InBounds reports whether p lies inside the recorded extent,
// whether or not a cell is present there.
func (g *Grid) InBounds(p point.Point) bool {
	return p.WithinBounds(g.Extent(), point.Zero)
}

// Points returns all present coordinates ordered by Y, then X.
// Complexity: O(N log N).
func (g *Grid) Points() []point.Point {
	out := make([]point.Point, 0, len(g.cells))
	for p := range g.cells {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b point.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})

	return out
}

// Neighbors returns the 8-neighbors of p that are present and satisfy pred,
// in point.Compass order. A nil pred accepts every present cell.
func (g *Grid) Neighbors(p point.Point, pred Predicate) []point.Point {
	return g.filter(p, point.Compass[:], pred)
}

// CardinalNeighbors returns the 4-neighbors of p that are present and satisfy
// pred, in point.Cardinals order. A nil pred accepts every present cell.
func (g *Grid) CardinalNeighbors(p point.Point, pred Predicate) []point.Point {
	return g.filter(p, point.Cardinals[:], pred)
}

func (g *Grid) filter(p point.Point, dirs []point.Point, pred Predicate) []point.Point {
	if pred == nil {
		pred = Any
	}
	out := make([]point.Point, 0, len(dirs))
	for _, d := range dirs {
		q := p.Add(d)
		label, ok := g.cells[q]
		if !ok || !pred(q, label) {
			continue
		}
		out = append(out, q)
	}

	return out
}

// FindAll returns every coordinate labelled r, ordered as Points.
func (g *Grid) FindAll(r rune) []point.Point {
	var out []point.Point
	for _, p := range g.Points() {
		if g.cells[p] == r {
			out = append(out, p)
		}
	}

	return out
}

// Find returns the unique coordinate labelled r.
// Returns ErrLabelNotFound or ErrDuplicateLabel otherwise.
func (g *Grid) Find(r rune) (point.Point, error) {
	all := g.FindAll(r)
	switch len(all) {
	case 0:
		return point.Zero, fmt.Errorf("%w: %q", ErrLabelNotFound, r)
	case 1:
		return all[0], nil
	default:
		return point.Zero, fmt.Errorf("%w: %q appears %d times", ErrDuplicateLabel, r, len(all))
	}
}

// Render draws the grid in its original line order. Cells for which
// highlight returns true are drawn as mark; absent cells are drawn as ' '
// and trailing blanks are trimmed. A nil highlight draws labels only.
func (g *Grid) Render(highlight func(point.Point) bool, mark rune) string {
	var sb strings.Builder
	for row := 0; row < g.height; row++ {
		y := g.rowToY(row)
		var line strings.Builder
		for x := 0; x < g.width; x++ {
			p := point.New(x, y)
			label, ok := g.cells[p]
			switch {
			case highlight != nil && ok && highlight(p):
				line.WriteRune(mark)
			case ok:
				line.WriteRune(label)
			default:
				line.WriteByte(' ')
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}

	return sb.String()
}
