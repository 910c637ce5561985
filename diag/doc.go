// Package diag is the optional interop surface between spans and external
// diagnostic renderers. Importing it is the opt-in; package span never
// depends on it, and it works with every offset width at once.
//
// Range is the renderer-facing shape: a width-independent half-open pair of
// uint64 offsets that any span widens into losslessly (RangeOf) and narrows
// back out of with an overflow check (SpanOf).
//
// The rest of the package is the plumbing a host needs to carry ranges to a
// renderer without inventing its own: Diagnostic (severity, code, message,
// primary range, notes), Reporter for decoupled emission, Bag for bounded
// collection with deterministic ordering and dedup, and msgpack
// encode/decode for caching or transporting diagnostic lists. The package
// performs no formatting and no IO of its own; rendering belongs to the
// external consumer.
package diag
