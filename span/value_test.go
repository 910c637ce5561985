package span

import (
	"errors"
	"testing"
)

func TestMaxValue(t *testing.T) {
	if got := MaxValue[uint8](); got != 255 {
		t.Errorf("MaxValue[uint8]() = %d, want 255", got)
	}
	if got := MaxValue[uint16](); got != 65535 {
		t.Errorf("MaxValue[uint16]() = %d, want 65535", got)
	}
	if got := MaxValue[uint32](); got != 0xFFFFFFFF {
		t.Errorf("MaxValue[uint32]() = %d, want 0xFFFFFFFF", got)
	}
	if got := MaxValue[uint64](); got != 0xFFFFFFFFFFFFFFFF {
		t.Errorf("MaxValue[uint64]() = %d, want max uint64", got)
	}
}

func TestCheckedArithmetic(t *testing.T) {
	t.Run("add within range", func(t *testing.T) {
		got, err := addChecked[uint8](250, 5)
		if err != nil || got != 255 {
			t.Errorf("addChecked(250, 5) = %d, %v; want 255, nil", got, err)
		}
	})
	t.Run("add overflow", func(t *testing.T) {
		if _, err := addChecked[uint8](250, 6); !errors.Is(err, ErrOverflow) {
			t.Errorf("addChecked(250, 6) error = %v, want ErrOverflow", err)
		}
	})
	t.Run("sub within range", func(t *testing.T) {
		got, err := subChecked[uint8](5, 5)
		if err != nil || got != 0 {
			t.Errorf("subChecked(5, 5) = %d, %v; want 0, nil", got, err)
		}
	})
	t.Run("sub underflow", func(t *testing.T) {
		if _, err := subChecked[uint8](5, 6); !errors.Is(err, ErrUnderflow) {
			t.Errorf("subChecked(5, 6) error = %v, want ErrUnderflow", err)
		}
	})
}
