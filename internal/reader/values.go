package reader

import (
	"fmt"

	"github.com/joshuapare/annoindex/internal/format"
	"github.com/joshuapare/annoindex/internal/packed"
)

// valueGrammar covers the value kinds whose payload differs between wire
// versions.
type valueGrammar interface {
	skipClassValue() error
	skipEnumValue() error
	skipNestedValue(depth int) error
}

// valueSkipper consumes annotation values without keeping them. Every width
// here is part of the wire contract: a wrong width desynchronizes everything
// that follows.
type valueSkipper struct {
	s        *packed.Stream
	grammar  valueGrammar
	maxDepth int
}

// skipValues consumes a packed count followed by that many
// (name ref, tag, payload) triples.
func (v *valueSkipper) skipValues(depth int) error {
	if v.maxDepth > 0 && depth > v.maxDepth {
		return fmt.Errorf("depth %d: %w", depth, format.ErrTooDeep)
	}
	n, err := v.s.ReadPackedU32()
	if err != nil {
		return fmt.Errorf("value count: %w", err)
	}
	for i := uint32(0); i < n; i++ {
		if err := v.s.SkipPackedU32(); err != nil {
			return fmt.Errorf("value %d name: %w", i, err)
		}
		tag, err := v.s.ReadU8()
		if err != nil {
			return fmt.Errorf("value %d tag: %w", i, err)
		}
		if err := v.skipValue(format.ValueTag(tag), depth); err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
	}
	return nil
}

func (v *valueSkipper) skipValue(tag format.ValueTag, depth int) error {
	switch tag {
	case format.ValueByte, format.ValueBoolean:
		return v.s.Skip(format.ByteValueSize)
	case format.ValueShort, format.ValueInt, format.ValueChar, format.ValueString:
		return v.s.SkipPackedU32()
	case format.ValueFloat:
		return v.s.Skip(format.FloatValueSize)
	case format.ValueDouble:
		return v.s.Skip(format.DoubleValueSize)
	case format.ValueLong:
		return v.s.Skip(format.LongValueSize)
	case format.ValueClass:
		return v.grammar.skipClassValue()
	case format.ValueEnum:
		return v.grammar.skipEnumValue()
	case format.ValueArray:
		return v.skipValues(depth + 1)
	case format.ValueNested:
		return v.grammar.skipNestedValue(depth + 1)
	default:
		return fmt.Errorf("value tag %d: %w", tag, format.ErrInvalidTag)
	}
}
