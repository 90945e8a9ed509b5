// Package gridlab is a toolkit for puzzle-style 2D grids: parse a block of
// text into a sparse coordinate map, carve it into regions, and search it for
// turn-penalised shortest routes.
//
// Under the hood, everything is organized under small subpackages:
//
//	point/    — immutable integer vector, directions, bounds and line normalization
//	numparse/ — generic signed/unsigned integer decoding from puzzle text
//	grid/     — sparse Point→rune grid, filtered neighbor lookup, rendering
//	region/   — flood-fill partition, perimeter and straight-side counting
//	maze/     — best-first search over (position, facing) keeping all optimal routes
//	cmd/gridsolve — command-line front end printing one integer per run
//
// Quick ASCII example:
//
//	#######
//	#.....#
//	#S###E#
//	#.....#
//	#######
//
// has two equal-cost routes from S to E (cost 3006 with the default
// step 1 / turn 1000 model) covering 12 tiles.
//
// Every computation is a pure function of its input text: no global state,
// no goroutines. Observability is provided through hooks (region.WithOnRegion,
// maze.WithOnExpand, maze.WithOnImprove).
package gridlab
