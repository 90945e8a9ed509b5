// Package grid turns line-oriented puzzle text into a sparse mapping from
// point.Point to a cell label (rune), the shared substrate for region
// analysis and maze search.
//
// What:
//
//   - Parse scans non-blank lines and assigns every rune a coordinate.
//   - Ragged lines are tolerated: missing cells are simply absent.
//   - Neighbor queries are filtered by grid membership and a caller predicate.
//   - Render draws the grid back to text with optional highlighted tiles.
//
// Axis:
//
//   - RowsDown (default): the first line is y=0 and y grows downward,
//     matching the screen-oriented directions of package point.
//   - RowsUp: the first line is y=Height-1 and y grows upward.
//
// The axis is applied uniformly by Parse, Points and Render.
//
// Complexity:
//
//   - Parse:     O(N) time and memory, N = number of runes.
//   - Neighbors: O(d) per query (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: text has no non-blank lines, or every cell was omitted.
//   - ErrLabelNotFound / ErrDuplicateLabel: Find could not locate a unique cell.
//   - ErrOptionViolation: an invalid Option was supplied.
//
// A Grid is read-only after Parse and safe for concurrent readers.
package grid
