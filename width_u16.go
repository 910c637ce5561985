//go:build spanvalue_u16

package textspan

// Value is the offset type selected for this build: 16-bit.
type Value = uint16
