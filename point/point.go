package point

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale multiplies both components by k.
func (p Point) Scale(k int) Point {
	return Point{p.X * k, p.Y * k}
}

// IsZero reports whether p is (0,0).
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Less orders points lexicographically by X, then Y.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}

	return p.Y < q.Y
}

// Compare returns -1, 0 or +1 following the same ordering as Less.
// Suitable for slices.SortFunc.
func Compare(a, b Point) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

// Neighbors returns the 8 surrounding points in Compass order.
func (p Point) Neighbors() []Point {
	out := make([]Point, 0, len(Compass))
	for _, d := range Compass {
		out = append(out, p.Add(d))
	}

	return out
}

// CardinalNeighbors returns the 4 orthogonal neighbors in Cardinals order.
func (p Point) CardinalNeighbors() []Point {
	out := make([]Point, 0, len(Cardinals))
	for _, d := range Cardinals {
		out = append(out, p.Add(d))
	}

	return out
}

// Opposite returns the reversed vector -p.
func (p Point) Opposite() Point {
	return Point{-p.X, -p.Y}
}

// TurnRight rotates p by 90° clockwise on screen (North → East).
func (p Point) TurnRight() Point {
	return Point{-p.Y, p.X}
}

// TurnLeft rotates p by 90° counter-clockwise on screen (North → West).
func (p Point) TurnLeft() Point {
	return Point{p.Y, -p.X}
}

// ManhattanDistance returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) ManhattanDistance(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Magnitude returns the Euclidean length of p truncated to an integer.
// Returns ErrZeroVector for (0,0), since the only caller-facing use of a
// magnitude is as a divisor.
func (p Point) Magnitude() (int, error) {
	if p.IsZero() {
		return 0, ErrZeroVector
	}

	return isqrt(p.X*p.X + p.Y*p.Y), nil
}

// Normalize divides both components by Magnitude using integer division.
// Only unit-length results are exact (axis-aligned vectors).
func (p Point) Normalize() (Point, error) {
	mag, err := p.Magnitude()
	if err != nil {
		return Zero, err
	}

	return Point{p.X / mag, p.Y / mag}, nil
}

// NormalizeToLine divides both components by their greatest common divisor,
// yielding the smallest integer step along the same direction:
// (6,2) → (3,1), (4,0) → (1,0), (-6,4) → (-3,2).
func (p Point) NormalizeToLine() (Point, error) {
	if p.IsZero() {
		return Zero, ErrZeroVector
	}
	g := gcd(abs(p.X), abs(p.Y))

	return Point{p.X / g, p.Y / g}, nil
}

// WithinBounds reports lower.X <= X < upper.X and lower.Y <= Y < upper.Y.
func (p Point) WithinBounds(upper, lower Point) bool {
	return p.X >= lower.X && p.Y >= lower.Y && p.X < upper.X && p.Y < upper.Y
}

// WithinBoundsInclusive is WithinBounds with both ends inclusive.
func (p Point) WithinBoundsInclusive(upper, lower Point) bool {
	return p.X >= lower.X && p.Y >= lower.Y && p.X <= upper.X && p.Y <= upper.Y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// gcd expects non-negative arguments, not both zero.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// isqrt returns floor(sqrt(n)) for n >= 0 using Newton's iteration,
// avoiding float rounding on large inputs.
func isqrt(n int) int {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}

	return x
}
