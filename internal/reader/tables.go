package reader

import (
	"fmt"

	"github.com/joshuapare/annoindex/internal/buf"
	"github.com/joshuapare/annoindex/internal/format"
	"github.com/joshuapare/annoindex/internal/packed"
	"github.com/joshuapare/annoindex/pkg/dotname"
	"github.com/joshuapare/annoindex/pkg/types"
)

// tableSlots reads a table entry count and returns the slot count including
// the reserved slot 0.
func tableSlots(s *packed.Stream, limits types.Limits, what string) (int, error) {
	n, err := s.ReadPackedU32()
	if err != nil {
		return 0, fmt.Errorf("%s size: %w", what, err)
	}
	slots, err := buf.TableSlots(n, limits.MaxTableEntries)
	if err != nil {
		return 0, fmt.Errorf("%s: %v: %w", what, err, format.ErrLimitExceeded)
	}
	return slots, nil
}

// readCount reads a list length and checks it against the table limit.
func readCount(s *packed.Stream, limits types.Limits, what string) (int, error) {
	n, err := s.ReadPackedU32()
	if err != nil {
		return 0, fmt.Errorf("%s count: %w", what, err)
	}
	if limits.MaxTableEntries > 0 && int(n) > limits.MaxTableEntries {
		return 0, fmt.Errorf("%s count %d exceeds %d: %w", what, n, limits.MaxTableEntries, format.ErrLimitExceeded)
	}
	return int(n), nil
}

// readStringTable reads a count followed by that many length-prefixed strings.
func readStringTable(s *packed.Stream, limits types.Limits) ([]string, error) {
	slots, err := tableSlots(s, limits, "string table")
	if err != nil {
		return nil, err
	}
	table := make([]string, slots)
	for i := 1; i < slots; i++ {
		if table[i], err = s.ReadUTF(); err != nil {
			return nil, fmt.Errorf("string table entry %d: %w", i, err)
		}
	}
	return table, nil
}

// nameTree rebuilds shared-prefix names from their depth-first flattening.
// Each entry gives its depth; an entry no deeper than the previous one first
// climbs (lastDepth - depth + 1) levels from the previous name.
type nameTree struct {
	cur       *dotname.Name
	lastDepth int
	maxDepth  int
}

func newNameTree(limits types.Limits) *nameTree {
	return &nameTree{lastDepth: -1, maxDepth: limits.MaxNameDepth}
}

func (t *nameTree) add(depth int, local string, inner bool) (*dotname.Name, error) {
	if t.maxDepth > 0 && depth > t.maxDepth {
		return nil, fmt.Errorf("name depth %d exceeds %d: %w", depth, t.maxDepth, format.ErrLimitExceeded)
	}
	if depth <= t.lastDepth {
		for climb := t.lastDepth - depth + 1; climb > 0; climb-- {
			if t.cur == nil {
				return nil, fmt.Errorf("name depth %d climbs above root: %w", depth, format.ErrBadReference)
			}
			t.cur = t.cur.Prefix()
		}
	}
	n, err := dotname.NewComponent(t.cur, local, inner)
	if err != nil {
		return nil, err
	}
	t.cur = n
	t.lastDepth = depth
	return n, nil
}
