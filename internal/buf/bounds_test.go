package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestTableSlots(t *testing.T) {
	slots, err := TableSlots(3, 10)
	if err != nil || slots != 4 {
		t.Fatalf("TableSlots(3,10)=%d,%v want 4,nil", slots, err)
	}
	if _, err := TableSlots(11, 10); err == nil {
		t.Fatalf("expected limit error")
	}
	if slots, err := TableSlots(1<<20, 0); err != nil || slots != 1<<20+1 {
		t.Fatalf("TableSlots unlimited = %d,%v", slots, err)
	}
}
