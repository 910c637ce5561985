package span

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

// ApplyBytes slices text by the span, treating Start and End as byte offsets.
// Returns ErrOutOfBounds when text is shorter than End.
func (s Span[V]) ApplyBytes(text string) (string, error) {
	end, err := safecast.Conv[int](uint64(s.End))
	if err != nil {
		return "", fmt.Errorf("apply bytes %s: %w", s, ErrOutOfBounds)
	}
	if end > len(text) {
		return "", fmt.Errorf("apply bytes %s to %d bytes: %w", s, len(text), ErrOutOfBounds)
	}
	return text[int(s.Start):end], nil
}

// Apply slices text by the span, treating Start and End as rune offsets.
// Returns ErrOutOfBounds when text has fewer than End runes.
func (s Span[V]) Apply(text string) (string, error) {
	startByte, ok := runeOffsetToByte(text, uint64(s.Start))
	if !ok {
		return "", fmt.Errorf("apply %s to %d runes: %w", s, utf8.RuneCountInString(text), ErrOutOfBounds)
	}
	endByte, ok := runeOffsetToByte(text, uint64(s.End))
	if !ok {
		return "", fmt.Errorf("apply %s to %d runes: %w", s, utf8.RuneCountInString(text), ErrOutOfBounds)
	}
	return text[startByte:endByte], nil
}

// runeOffsetToByte maps a rune offset to the byte index where that rune
// starts. Offset len(runes) maps to len(text); anything past that fails.
func runeOffsetToByte(text string, off uint64) (int, bool) {
	var n uint64
	for i := range text {
		if n == off {
			return i, true
		}
		n++
	}
	if n == off {
		return len(text), true
	}
	return 0, false
}
