package numparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Signed parses an optional '-' followed by decimal digits at the start of s.
// It returns the value and the unconsumed remainder of s.
func Signed[T constraints.Signed](s string) (T, string, error) {
	end := 0
	if end < len(s) && s[end] == '-' {
		end++
	}
	digits := scanDigits(s[end:])
	if digits == 0 {
		return 0, s, fmt.Errorf("%w: at %q", ErrNoNumber, preview(s))
	}
	end += digits

	v, err := toSigned[T](s[:end])
	if err != nil {
		return 0, s, err
	}

	return v, s[end:], nil
}

// Unsigned parses decimal digits at the start of s.
// A leading '-' is rejected with ErrNoNumber.
func Unsigned[T constraints.Unsigned](s string) (T, string, error) {
	end := scanDigits(s)
	if end == 0 {
		return 0, s, fmt.Errorf("%w: at %q", ErrNoNumber, preview(s))
	}
	n, err := strconv.ParseUint(s[:end], 10, 64)
	if err != nil {
		return 0, s, fmt.Errorf("%w: %q", ErrOutOfRange, s[:end])
	}
	v := T(n)
	if uint64(v) != n {
		return 0, s, fmt.Errorf("%w: %q", ErrOutOfRange, s[:end])
	}

	return v, s[end:], nil
}

// All returns every signed integer appearing in s, in order. A '-' counts as
// a sign only when immediately followed by a digit, so "3-4" yields [3 -4]
// and "a - 4" yields [4]. Text without any digits yields ErrNoNumber.
func All[T constraints.Signed](s string) ([]T, error) {
	var out []T
	for i := 0; i < len(s); {
		c := s[i]
		isSign := c == '-' && i+1 < len(s) && isDigit(s[i+1])
		if !isDigit(c) && !isSign {
			i++
			continue
		}
		v, rest, err := Signed[T](s[i:])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		i = len(s) - len(rest)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: in %q", ErrNoNumber, preview(s))
	}

	return out, nil
}

// Fields splits s on sep, trims surrounding whitespace from each field and
// parses it as a whole signed integer. Empty fields are skipped.
func Fields[T constraints.Signed](s, sep string) ([]T, error) {
	parts := strings.Split(s, sep)
	out := make([]T, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := toSigned[T](part)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// Narrow converts v to T, failing with ErrOutOfRange if the value would change.
func Narrow[T constraints.Integer](v int) (T, error) {
	t := T(v)
	if int(t) != v || (t < 0) != (v < 0) {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, v)
	}

	return t, nil
}

func toSigned[T constraints.Signed](lit string) (T, error) {
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrOutOfRange, lit)
		}

		return 0, fmt.Errorf("%w: %q", ErrNoNumber, lit)
	}
	v := T(n)
	if int64(v) != n {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, lit)
	}

	return v, nil
}

func scanDigits(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}

	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// preview trims long inputs in error messages.
func preview(s string) string {
	const limit = 16
	if len(s) > limit {
		return s[:limit] + "…"
	}

	return s
}
