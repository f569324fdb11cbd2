package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// TableSlots validates a table entry count read from the wire against limit
// and returns the slot count including the reserved slot 0.
//
//	slots, err := buf.TableSlots(count, limits.MaxTableEntries)
//	if err != nil {
//	    return fmt.Errorf("string table: %w", err)
//	}
//	table := make([]string, slots)
func TableSlots(count uint32, limit int) (int, error) {
	n := int(count)
	if limit > 0 && n > limit {
		return 0, fmt.Errorf("table of %d entries exceeds limit %d", n, limit)
	}
	slots, ok := AddOverflowSafe(n, 1)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d + 1", n)
	}
	return slots, nil
}
