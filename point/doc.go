// Package point provides Point, an immutable 2D integer vector used as the
// coordinate type by every grid algorithm in gridlab.
//
// What:
//
//   - Value arithmetic: Add, Sub, Scale.
//   - Unit directions North, East, South, West and the four diagonals.
//   - Neighbor enumeration in a fixed, deterministic order.
//   - Half-open and inclusive bounds checks.
//   - Line normalization (divide by GCD) and integer magnitude.
//
// Axis convention:
//
//	Direction names assume screen coordinates: x grows to the right and
//	y grows downward, so North is (0,-1). This matches grid.RowsDown,
//	the default grid axis.
//
// Errors:
//
//   - ErrZeroVector: Magnitude, Normalize and NormalizeToLine are undefined
//     for (0,0) and report this sentinel instead of dividing by zero.
//
// Complexity: every operation is O(1) except NormalizeToLine, which is
// O(log min(|x|,|y|)) for the Euclidean GCD.
package point
