package region_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/point"
	"github.com/katalvlaran/gridlab/region"
)

// partition parses text and partitions it, failing the test on error.
func partition(t *testing.T, text string, opts ...region.Option) (*grid.Grid, []region.Region) {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)
	regions, err := region.Partition(g, opts...)
	require.NoError(t, err)

	return g, regions
}

// firstWithLabel returns the first region discovered with the given label.
func firstWithLabel(t *testing.T, regions []region.Region, label rune) region.Region {
	t.Helper()
	for _, r := range regions {
		if r.Label == label {
			return r
		}
	}
	t.Fatalf("no region labelled %q", label)

	return region.Region{}
}

//----------------------------------------------------------------------------//
// Partition
//----------------------------------------------------------------------------//

func TestPartition_Errors(t *testing.T) {
	_, err := region.Partition(nil)
	require.ErrorIs(t, err, region.ErrNilGrid)

	g := grid.MustParse("A")
	_, err = region.Partition(g, region.WithConnectivity(region.Connectivity(3)))
	require.ErrorIs(t, err, region.ErrOptionViolation)
}

// TestPartition_Covers checks that every cell lands in exactly one region.
func TestPartition_Covers(t *testing.T) {
	for name, text := range map[string]string{
		"Small":    gardenSmall,
		"Donut":    gardenDonut,
		"Stripes":  gardenStripes,
		"Diagonal": gardenDiagonal,
		"Large":    gardenLarge,
		"Ragged":   "AAB\nA\nBBBB",
	} {
		t.Run(name, func(t *testing.T) {
			g, regions := partition(t, text)

			seen := make(map[point.Point]int, g.Len())
			area := 0
			for _, r := range regions {
				area += r.Area()
				for _, c := range r.Cells {
					seen[c]++
					label, ok := g.Get(c)
					require.True(t, ok)
					assert.Equal(t, r.Label, label)
					assert.True(t, r.Contains(c))
				}
			}
			assert.Equal(t, g.Len(), area)
			assert.Len(t, seen, g.Len())
			for p, n := range seen {
				assert.Equal(t, 1, n, "cell %v claimed %d times", p, n)
			}
		})
	}
}

// TestPartition_Connected checks every region is 4-connected internally.
func TestPartition_Connected(t *testing.T) {
	_, regions := partition(t, gardenLarge)
	for _, r := range regions {
		reached := map[point.Point]bool{r.Cells[0]: true}
		stack := []point.Point{r.Cells[0]}
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, n := range p.CardinalNeighbors() {
				if r.Contains(n) && !reached[n] {
					reached[n] = true
					stack = append(stack, n)
				}
			}
		}
		assert.Len(t, reached, r.Area(), "region %q at %v", r.Label, r.Cells[0])
	}
}

// TestPartition_Idempotent compares two runs as sets of (label, cells).
func TestPartition_Idempotent(t *testing.T) {
	g := grid.MustParse(gardenLarge)
	a, err := region.Partition(g)
	require.NoError(t, err)
	b, err := region.Partition(g)
	require.NoError(t, err)

	project := func(rs []region.Region) []string {
		out := make([]string, 0, len(rs))
		for _, r := range rs {
			s := string(r.Label)
			for _, c := range r.Cells {
				s += c.String()
			}
			out = append(out, s)
		}
		slices.Sort(out)
		return out
	}
	assert.Equal(t, project(a), project(b))
}

func TestPartition_SmallGarden(t *testing.T) {
	_, regions := partition(t, gardenSmall)
	require.Len(t, regions, 5)

	labels := make([]rune, 0, len(regions))
	for _, r := range regions {
		labels = append(labels, r.Label)
	}
	assert.Equal(t, []rune{'A', 'B', 'C', 'D', 'E'}, labels)

	a := regions[0]
	assert.Equal(t, 4, a.Area())
	assert.Equal(t, 10, a.Perimeter())
	assert.Equal(t, 40, a.Price())
}

// TestPartition_SameLabelSplit keeps disconnected same-label cells apart.
func TestPartition_SameLabelSplit(t *testing.T) {
	_, regions := partition(t, gardenDonut)
	require.Len(t, regions, 5)
	xs := 0
	for _, r := range regions {
		if r.Label == 'X' {
			xs++
			assert.Equal(t, 1, r.Area())
			assert.Equal(t, 4, r.Perimeter())
		}
	}
	assert.Equal(t, 4, xs)
}

func TestPartition_SingleCell(t *testing.T) {
	_, regions := partition(t, "Z")
	require.Len(t, regions, 1)
	r := regions[0]
	assert.Equal(t, 1, r.Area())
	assert.Equal(t, 4, r.Perimeter())
	assert.Equal(t, 4, r.SideCount())
	assert.Equal(t, 4, r.Price())
}

// TestPartition_Conn8 joins diagonal cells only under Conn8.
func TestPartition_Conn8(t *testing.T) {
	text := "A.\n.A"
	_, four := partition(t, text)
	assert.Len(t, four, 4)

	_, eight := partition(t, text, region.WithConnectivity(region.Conn8))
	require.Len(t, eight, 2)
	a := firstWithLabel(t, eight, 'A')
	assert.Equal(t, 2, a.Area())
	assert.Equal(t, 8, a.Perimeter())
	assert.Equal(t, 8, a.SideCount())
}

func TestPartition_OnRegionHook(t *testing.T) {
	var got []rune
	_, regions := partition(t, gardenSmall, region.WithOnRegion(func(r region.Region) {
		got = append(got, r.Label)
	}))
	require.Len(t, got, len(regions))
	assert.Equal(t, []rune{'A', 'B', 'C', 'D', 'E'}, got)
}

//----------------------------------------------------------------------------//
// Boundary metrics
//----------------------------------------------------------------------------//

// TestPerimeter_Donut checks a region fully enclosing other regions.
func TestPerimeter_Donut(t *testing.T) {
	_, regions := partition(t, gardenDonut)
	o := firstWithLabel(t, regions, 'O')

	assert.Equal(t, 21, o.Area())
	assert.Equal(t, 36, o.Perimeter())
	assert.Len(t, o.Edges(), 36)
	assert.Equal(t, 20, o.SideCount())
}

func TestTotals(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		price     int
		bulkPrice int
	}{
		{"Small", gardenSmall, 140, 80},
		{"Donut", gardenDonut, 772, 436},
		{"Stripes", gardenStripes, 692, 236},
		{"Diagonal", gardenDiagonal, 1184, 368},
		{"Large", gardenLarge, 1930, 1206},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, regions := partition(t, tc.text)
			assert.Equal(t, tc.price, region.TotalPrice(regions))
			assert.Equal(t, tc.bulkPrice, region.TotalBulkPrice(regions))
		})
		t.Run(tc.name+"RowsUp", func(t *testing.T) {
			g, err := grid.Parse(tc.text, grid.WithAxis(grid.RowsUp))
			require.NoError(t, err)
			regions, err := region.Partition(g)
			require.NoError(t, err)
			assert.Equal(t, tc.price, region.TotalPrice(regions))
			assert.Equal(t, tc.bulkPrice, region.TotalBulkPrice(regions))
		})
	}
}

func TestSides_SmallGarden(t *testing.T) {
	_, regions := partition(t, gardenSmall)
	want := map[rune]int{'A': 4, 'B': 4, 'C': 8, 'D': 4, 'E': 4}
	for _, r := range regions {
		assert.Equal(t, want[r.Label], r.SideCount(), "region %q", r.Label)
		assert.Len(t, r.Sides(), want[r.Label], "region %q", r.Label)
	}

	a := regions[0]
	sides := a.Sides()
	dirs := make([]point.Point, 0, len(sides))
	lens := make([]int, 0, len(sides))
	for _, s := range sides {
		dirs = append(dirs, s.Dir)
		lens = append(lens, s.Len())
	}
	assert.Equal(t, []point.Point{point.North, point.East, point.West, point.South}, dirs)
	assert.Equal(t, []int{4, 1, 1, 4}, lens)
	assert.Equal(t, []region.Edge{
		{Pos: point.New(0, 0), Dir: point.North},
		{Pos: point.New(1, 0), Dir: point.North},
		{Pos: point.New(2, 0), Dir: point.North},
		{Pos: point.New(3, 0), Dir: point.North},
	}, sides[0].Edges)
}

// TestSides_Stripes covers a comb-shaped region with 12 sides.
func TestSides_Stripes(t *testing.T) {
	_, regions := partition(t, gardenStripes)
	e := firstWithLabel(t, regions, 'E')
	assert.Equal(t, 17, e.Area())
	assert.Equal(t, 12, e.SideCount())
	assert.Equal(t, 204, e.BulkPrice())
}

// TestSides_Diagonal covers inner holes touching at a corner: the touching
// boundaries must not merge.
func TestSides_Diagonal(t *testing.T) {
	_, regions := partition(t, gardenDiagonal)
	a := firstWithLabel(t, regions, 'A')
	assert.Equal(t, 28, a.Area())
	assert.Equal(t, 12, a.SideCount())

	// Every unit edge belongs to exactly one side.
	total := 0
	for _, s := range a.Sides() {
		total += s.Len()
	}
	assert.Equal(t, a.Perimeter(), total)
}
