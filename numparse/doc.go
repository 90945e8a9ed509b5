// Package numparse decodes integers embedded in puzzle text.
//
// What:
//
//   - Signed / Unsigned: parse a leading integer and return the unconsumed rest,
//     so callers can chain parsers over a line ("12,-4 -> 7").
//   - All: extract every signed integer from free-form text.
//   - Fields: split on a separator and parse each field strictly.
//   - Narrow: checked conversion from int to a smaller integer type.
//
// All functions are generic over golang.org/x/exp/constraints integer sets and
// fail fast: malformed or overflowing input yields ErrNoNumber or ErrOutOfRange
// (wrapped with context) rather than a silent default.
package numparse
