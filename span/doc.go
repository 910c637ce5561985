// Package span defines half-open byte-offset spans over caller-owned text
// and the pure algebra over them.
// Invariants:
//   - Span.Start <= Span.End always; constructors return ErrInvalidSpan
//     instead of producing a violating span.
//   - A span with Start == End is a valid empty span (a cursor position),
//     not an error. Empty spans contain no offset, including their own Start.
//   - Spans are immutable value types; every operation returns a new span.
//   - Arithmetic never wraps: operations that would leave the offset width
//     return ErrOverflow or ErrUnderflow.
//   - Offsets are unit-agnostic (bytes, runes, whatever the caller counts);
//     the package never validates them against an actual buffer. The only
//     exceptions are Apply and ApplyBytes, which slice a caller-provided
//     string and report ErrOutOfBounds when it is too short.
package span
