package diag

import (
	"fmt"

	"fortio.org/safecast"

	"textspan/span"
)

// Range is the external renderer-facing form of a span: a half-open pair of
// offsets wide enough for every supported span width. It carries no
// reference to the text and no width information beyond the values.
type Range struct {
	Start uint64 `json:"start" msgpack:"start"`
	End   uint64 `json:"end" msgpack:"end"`
}

// RangeOf widens a span into a Range. The widening is lossless for every
// offset width, so it cannot fail.
func RangeOf[V span.Value](s span.Span[V]) Range {
	return Range{Start: uint64(s.Start), End: uint64(s.End)}
}

// SpanOf narrows a Range back into a span at width V.
// Returns span.ErrOverflow when either offset does not fit the width, and
// span.ErrInvalidSpan when Start exceeds End.
func SpanOf[V span.Value](r Range) (span.Span[V], error) {
	start, err := safecast.Conv[V](r.Start)
	if err != nil {
		return span.Span[V]{}, fmt.Errorf("range start %d: %w", r.Start, span.ErrOverflow)
	}
	end, err := safecast.Conv[V](r.End)
	if err != nil {
		return span.Span[V]{}, fmt.Errorf("range end %d: %w", r.End, span.ErrOverflow)
	}
	return span.FromBounds(start, end)
}

// Empty reports whether the range covers no offsets.
func (r Range) Empty() bool {
	return r.Start == r.End
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}
