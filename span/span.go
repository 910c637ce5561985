package span

import (
	"fmt"

	"fortio.org/safecast"
)

// Span is a half-open range [Start, End) of offsets into caller-owned text.
// The zero value is the empty span at offset 0.
type Span[V Value] struct {
	Start V // inclusive
	End   V // exclusive
}

// FromBounds builds a span from a start/end pair.
// Returns ErrInvalidSpan when start > end.
func FromBounds[V Value](start, end V) (Span[V], error) {
	if start > end {
		return Span[V]{}, fmt.Errorf("bounds %d..%d: %w", start, end, ErrInvalidSpan)
	}
	return Span[V]{Start: start, End: end}, nil
}

// FromOffsetLen builds a span covering length offsets from start.
// Returns ErrOverflow when start+length exceeds the offset width.
func FromOffsetLen[V Value](start, length V) (Span[V], error) {
	end, err := addChecked(start, length)
	if err != nil {
		return Span[V]{}, fmt.Errorf("offset %d len %d: %w", start, length, err)
	}
	return Span[V]{Start: start, End: end}, nil
}

// Empty reports whether the span covers no offsets.
func (s Span[V]) Empty() bool {
	return s.Start == s.End
}

// Len returns End - Start.
func (s Span[V]) Len() V {
	return s.End - s.Start
}

func (s Span[V]) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Contains reports whether pos lies inside the span.
// An empty span contains no offset, including its own Start.
func (s Span[V]) Contains(pos V) bool {
	return s.Start <= pos && pos < s.End
}

// ContainsSpan reports whether other lies entirely inside s.
// Every span contains itself; an empty span is contained by any span
// whose bounds bracket it.
func (s Span[V]) ContainsSpan(other Span[V]) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Overlaps reports whether the two spans share at least one offset.
// Touching endpoints do not overlap, and empty spans never overlap anything.
func (s Span[V]) Overlaps(other Span[V]) bool {
	return s.Start < other.End && other.Start < s.End
}

// Cover returns the smallest span enclosing both s and other.
// Defined for disjoint spans too: the gap between them is covered.
func (s Span[V]) Cover(other Span[V]) Span[V] {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Intersect returns the common part of the two spans.
// Touching spans (s.End == other.Start) intersect in a valid empty span at
// the touch point, so ok can be true even when Overlaps is false. Disjoint
// spans return ok=false.
func (s Span[V]) Intersect(other Span[V]) (Span[V], bool) {
	start := maxValue(s.Start, other.Start)
	end := minValue(s.End, other.End)
	if start > end {
		return Span[V]{}, false
	}
	return Span[V]{Start: start, End: end}, true
}

// Translate shifts both bounds by delta.
// Returns ErrUnderflow when a bound would drop below zero and ErrOverflow
// when it would leave the offset width.
func (s Span[V]) Translate(delta int64) (Span[V], error) {
	if delta >= 0 {
		n, err := safecast.Conv[V](delta)
		if err != nil {
			return Span[V]{}, fmt.Errorf("translate by %d: %w", delta, ErrOverflow)
		}
		end, err := addChecked(s.End, n)
		if err != nil {
			return Span[V]{}, fmt.Errorf("translate by %d: %w", delta, err)
		}
		// Start+n cannot overflow once End+n fit.
		return Span[V]{Start: s.Start + n, End: end}, nil
	}
	mag := uint64(-(delta + 1)) + 1 // |delta| without negating MinInt64
	if mag > uint64(s.Start) {
		return Span[V]{}, fmt.Errorf("translate by %d: %w", delta, ErrUnderflow)
	}
	n := V(mag)
	return Span[V]{Start: s.Start - n, End: s.End - n}, nil
}

// GrowFront moves End forward by amount.
func (s Span[V]) GrowFront(amount V) (Span[V], error) {
	end, err := addChecked(s.End, amount)
	if err != nil {
		return Span[V]{}, fmt.Errorf("grow front by %d: %w", amount, err)
	}
	return Span[V]{Start: s.Start, End: end}, nil
}

// GrowBack moves Start backward by amount.
func (s Span[V]) GrowBack(amount V) (Span[V], error) {
	start, err := subChecked(s.Start, amount)
	if err != nil {
		return Span[V]{}, fmt.Errorf("grow back by %d: %w", amount, err)
	}
	return Span[V]{Start: start, End: s.End}, nil
}

// ShrinkFront moves End backward by amount.
// Returns ErrInvalidSpan when amount exceeds the span's length.
func (s Span[V]) ShrinkFront(amount V) (Span[V], error) {
	if amount > s.Len() {
		return Span[V]{}, fmt.Errorf("shrink front by %d of %d: %w", amount, s.Len(), ErrInvalidSpan)
	}
	return Span[V]{Start: s.Start, End: s.End - amount}, nil
}

// ShrinkBack moves Start forward by amount.
// Returns ErrInvalidSpan when amount exceeds the span's length.
func (s Span[V]) ShrinkBack(amount V) (Span[V], error) {
	if amount > s.Len() {
		return Span[V]{}, fmt.Errorf("shrink back by %d of %d: %w", amount, s.Len(), ErrInvalidSpan)
	}
	return Span[V]{Start: s.Start + amount, End: s.End}, nil
}

// CollapseToStart returns the empty span at Start.
func (s Span[V]) CollapseToStart() Span[V] {
	return Span[V]{Start: s.Start, End: s.Start}
}

// CollapseToEnd returns the empty span at End.
func (s Span[V]) CollapseToEnd() Span[V] {
	return Span[V]{Start: s.End, End: s.End}
}

// Compare orders spans by both endpoints at once. It returns ok=false when
// the endpoints disagree in direction (one span starts earlier but ends
// later), in which case the spans are unordered.
func (s Span[V]) Compare(other Span[V]) (int, bool) {
	cs := compareV(s.Start, other.Start)
	ce := compareV(s.End, other.End)
	switch {
	case cs == ce:
		return cs, true
	case cs == 0:
		return ce, true
	case ce == 0:
		return cs, true
	default:
		return 0, false
	}
}

func compareV[V Value](a, b V) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
