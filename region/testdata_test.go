package region_test

// Reference gardens used across tests.
const (
	gardenSmall = `AAAA
BBCD
BBCC
EEEC`

	gardenDonut = `OOOOO
OXOXO
OOOOO
OXOXO
OOOOO`

	gardenStripes = `EEEEE
EXXXX
EEEEE
EXXXX
EEEEE`

	gardenDiagonal = `AAAAAA
AAABBA
AAABBA
ABBAAA
ABBAAA
AAAAAA`

	gardenLarge = `RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE`
)
