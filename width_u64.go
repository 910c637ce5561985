//go:build spanvalue_u64

package textspan

// Value is the offset type selected for this build: 64-bit.
type Value = uint64
