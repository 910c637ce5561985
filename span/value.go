package span

import "fmt"

// Value is the set of offset widths a Span can be instantiated with.
// The width is a compile-time choice; there is no runtime branching on it.
type Value interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// MaxValue returns the largest offset representable at width V.
func MaxValue[V Value]() V {
	return ^V(0)
}

// addChecked returns a+b or ErrOverflow, never a wrapped result.
func addChecked[V Value](a, b V) (V, error) {
	if b > MaxValue[V]()-a {
		return 0, fmt.Errorf("%d+%d exceeds %d: %w", a, b, MaxValue[V](), ErrOverflow)
	}
	return a + b, nil
}

// subChecked returns a-b or ErrUnderflow, never a wrapped result.
func subChecked[V Value](a, b V) (V, error) {
	if b > a {
		return 0, fmt.Errorf("%d-%d drops below zero: %w", a, b, ErrUnderflow)
	}
	return a - b, nil
}

func minValue[V Value](a, b V) V {
	if a < b {
		return a
	}
	return b
}

func maxValue[V Value](a, b V) V {
	if a > b {
		return a
	}
	return b
}
