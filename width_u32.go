//go:build spanvalue_u32

package textspan

// Value is the offset type selected for this build: 32-bit.
type Value = uint32
