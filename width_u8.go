//go:build spanvalue_u8

package textspan

// Value is the offset type selected for this build: 8-bit.
type Value = uint8
