package span

import "errors"

var (
	// ErrInvalidSpan reports an attempt to construct a span with Start > End.
	ErrInvalidSpan = errors.New("invalid span: start exceeds end")
	// ErrOverflow reports arithmetic that would exceed the offset width's maximum.
	ErrOverflow = errors.New("span offset overflow")
	// ErrUnderflow reports arithmetic that would drive an offset below zero.
	ErrUnderflow = errors.New("span offset underflow")
	// ErrOutOfBounds reports a span that does not fit the text it is applied to.
	ErrOutOfBounds = errors.New("span out of bounds for text")
)
