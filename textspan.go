// Package textspan exposes the span algebra at the offset width selected at
// build time. Exactly one of the build tags spanvalue_u8, spanvalue_u16,
// spanvalue_u32 or spanvalue_u64 must be set; the choice trades maximum
// addressable text length against per-span memory. Code that wants to pick
// its own width, or several widths at once, should use package textspan/span
// directly.
package textspan

import "textspan/span"

// Span is a half-open range [Start, End) at the build-selected width.
type Span = span.Span[Value]

// MaxValue returns the largest representable offset at the selected width.
func MaxValue() Value {
	return span.MaxValue[Value]()
}

// FromBounds builds a span from a start/end pair.
// Returns span.ErrInvalidSpan when start > end.
func FromBounds(start, end Value) (Span, error) {
	return span.FromBounds(start, end)
}

// FromOffsetLen builds a span covering length offsets from start.
// Returns span.ErrOverflow when start+length exceeds the selected width.
func FromOffsetLen(start, length Value) (Span, error) {
	return span.FromOffsetLen(start, length)
}
