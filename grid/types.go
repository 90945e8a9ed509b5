package grid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridlab/point"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input text has no non-empty lines.
	ErrEmptyGrid = errors.New("grid: input must contain at least one non-empty line")
	// ErrLabelNotFound indicates no cell carries the requested label.
	ErrLabelNotFound = errors.New("grid: label not found")
	// ErrDuplicateLabel indicates more than one cell carries a label expected to be unique.
	ErrDuplicateLabel = errors.New("grid: label is not unique")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// Axis selects how text lines map to y coordinates.
type Axis int

const (
	// RowsDown maps line i to y=i.
	RowsDown Axis = iota
	// RowsUp maps line i to y=Height-1-i.
	RowsUp
)

// Predicate filters neighbor candidates by position and label.
// It is only called for points present in the grid.
type Predicate func(p point.Point, label rune) bool

// Options configures Parse.
type Options struct {
	// Axis selects the vertical convention. Default RowsDown.
	Axis Axis
	// Omit lists labels that are not stored; such positions become absent cells.
	Omit map[rune]struct{}

	err error
}

// Option represents a functional option for Parse.
type Option func(*Options)

// DefaultOptions returns RowsDown with no omitted labels.
func DefaultOptions() Options {
	return Options{Axis: RowsDown}
}

// WithAxis sets the vertical convention. Unknown values are recorded as
// ErrOptionViolation and reported by Parse.
func WithAxis(a Axis) Option {
	return func(o *Options) {
		if a != RowsDown && a != RowsUp {
			o.err = fmt.Errorf("%w: unknown axis %d", ErrOptionViolation, a)
			return
		}
		o.Axis = a
	}
}

// WithOmit drops cells carrying any of labels, leaving them absent.
// Width and Height still account for omitted cells.
func WithOmit(labels ...rune) Option {
	return func(o *Options) {
		if o.Omit == nil {
			o.Omit = make(map[rune]struct{}, len(labels))
		}
		for _, r := range labels {
			o.Omit[r] = struct{}{}
		}
	}
}

// Grid is a sparse, immutable mapping from coordinates to labels.
// Width is the longest line in runes; Height is the number of non-empty lines.
type Grid struct {
	cells  map[point.Point]rune
	width  int
	height int
	axis   Axis
}

// Is returns a Predicate accepting cells labelled r.
func Is(r rune) Predicate {
	return func(_ point.Point, label rune) bool { return label == r }
}

// Not returns a Predicate rejecting cells carrying any of labels.
func Not(labels ...rune) Predicate {
	return func(_ point.Point, label rune) bool {
		for _, r := range labels {
			if label == r {
				return false
			}
		}
		return true
	}
}

// Any accepts every present cell.
func Any(point.Point, rune) bool { return true }
