// Package region partitions a grid.Grid into maximal connected regions of
// equal label and measures their boundaries.
//
// What:
//
//   - Partition: breadth-first flood fill seeded from every unclaimed cell,
//     using one global claimed set, so every cell is visited once overall.
//   - Perimeter: number of unit boundary edges (cardinal neighbors outside the region).
//   - Sides: unit edges merged into maximal collinear runs sharing an outward
//     direction. Inner boundaries around holes form their own runs.
//   - Price = Area × Perimeter, BulkPrice = Area × SideCount.
//
// Complexity:
//
//   - Partition: O(N log N) time (the log comes from ordering seeds), O(N) memory.
//   - Perimeter: O(A) per region.
//   - Sides:     O(E log E) per region, E = perimeter.
//
// Options:
//
//   - WithConnectivity(Conn4|Conn8): adjacency used to grow a region. Default Conn4.
//     Boundary metrics always use the four cardinal directions.
//   - WithOnRegion: hook invoked once per completed region, in discovery order.
//
// Errors:
//
//   - ErrNilGrid: a nil grid was passed to Partition.
//   - ErrOptionViolation: an invalid Option was supplied.
package region
