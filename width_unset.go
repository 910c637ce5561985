//go:build !spanvalue_u8 && !spanvalue_u16 && !spanvalue_u32 && !spanvalue_u64

package textspan

// No offset width was selected. Build this package with exactly one of the
// tags spanvalue_u8, spanvalue_u16, spanvalue_u32 or spanvalue_u64, e.g.
//
//	go build -tags spanvalue_u32 ./...
//
// Selecting more than one tag is also a build error (Value is redeclared).
// The deliberately undefined type below turns the missing tag into a
// build-time error instead of a runtime surprise.
type Value = selectASpanValueWidthBuildTag
