package diag

import (
	"errors"
	"testing"

	"textspan/span"
)

func TestRangeOf(t *testing.T) {
	tests := []struct {
		name     string
		from     func() Range
		expected Range
	}{
		{
			name:     "uint8 widens",
			from:     func() Range { return RangeOf(span.Span[uint8]{Start: 2, End: 5}) },
			expected: Range{Start: 2, End: 5},
		},
		{
			name:     "uint8 max widens",
			from:     func() Range { return RangeOf(span.Span[uint8]{Start: 250, End: 255}) },
			expected: Range{Start: 250, End: 255},
		},
		{
			name:     "uint32 widens",
			from:     func() Range { return RangeOf(span.Span[uint32]{Start: 1 << 30, End: 1 << 31}) },
			expected: Range{Start: 1 << 30, End: 1 << 31},
		},
		{
			name:     "uint64 identity",
			from:     func() Range { return RangeOf(span.Span[uint64]{Start: 0, End: 1 << 40}) },
			expected: Range{Start: 0, End: 1 << 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from(); got != tt.expected {
				t.Errorf("RangeOf = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpanOf(t *testing.T) {
	t.Run("round trip at narrow width", func(t *testing.T) {
		orig := span.Span[uint8]{Start: 7, End: 200}
		back, err := SpanOf[uint8](RangeOf(orig))
		if err != nil {
			t.Fatalf("SpanOf(RangeOf(%v)) unexpected error: %v", orig, err)
		}
		if back != orig {
			t.Errorf("round trip = %v, want %v", back, orig)
		}
	})

	t.Run("narrowing overflow", func(t *testing.T) {
		if _, err := SpanOf[uint8](Range{Start: 0, End: 300}); !errors.Is(err, span.ErrOverflow) {
			t.Errorf("SpanOf[uint8](0-300) error = %v, want ErrOverflow", err)
		}
		if _, err := SpanOf[uint16](Range{Start: 70000, End: 70001}); !errors.Is(err, span.ErrOverflow) {
			t.Errorf("SpanOf[uint16](70000-70001) error = %v, want ErrOverflow", err)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		if _, err := SpanOf[uint32](Range{Start: 9, End: 3}); !errors.Is(err, span.ErrInvalidSpan) {
			t.Errorf("SpanOf(9-3) error = %v, want ErrInvalidSpan", err)
		}
	})

	t.Run("widening into uint64 always fits", func(t *testing.T) {
		r := Range{Start: 1 << 50, End: 1<<50 + 9}
		s, err := SpanOf[uint64](r)
		if err != nil {
			t.Fatalf("SpanOf[uint64] unexpected error: %v", err)
		}
		if RangeOf(s) != r {
			t.Errorf("RangeOf(SpanOf(%v)) = %v", r, RangeOf(s))
		}
	})
}

func TestRange_EmptyString(t *testing.T) {
	r := Range{Start: 3, End: 3}
	if !r.Empty() {
		t.Errorf("Empty() = false for %v", r)
	}
	if r.String() != "3-3" {
		t.Errorf("String() = %q", r.String())
	}
}
