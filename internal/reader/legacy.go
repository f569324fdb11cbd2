package reader

import (
	"fmt"

	"github.com/joshuapare/annoindex/internal/format"
	"github.com/joshuapare/annoindex/internal/packed"
	"github.com/joshuapare/annoindex/pkg/dotname"
	"github.com/joshuapare/annoindex/pkg/types"
)

// legacyDecoder reads the flat format (versions 2 and 3): a class-name table,
// a string table, then class records with their annotations inline.
//
//	classTable   packed N; N × (packed depth, utf local)
//	stringTable  packed M; M × utf
//	classes      packed C; C × class
type legacyDecoder struct {
	s       *packed.Stream
	version int
	limits  types.Limits
	values  valueSkipper

	classTable  []*dotname.Name
	stringTable []string

	stats Stats
}

func newLegacyDecoder(s *packed.Stream, version int, limits types.Limits) *legacyDecoder {
	d := &legacyDecoder{s: s, version: version, limits: limits}
	d.values = valueSkipper{s: s, grammar: d, maxDepth: limits.MaxValueDepth}
	return d
}

func (d *legacyDecoder) decode() ([]*types.ClassRecord, error) {
	if err := d.readClassTable(); err != nil {
		return nil, err
	}
	var err error
	if d.stringTable, err = readStringTable(d.s, d.limits); err != nil {
		return nil, err
	}
	d.stats.Names = len(d.classTable) - 1
	d.stats.Strings = len(d.stringTable) - 1

	n, err := readCount(d.s, d.limits, "class")
	if err != nil {
		return nil, err
	}
	records := make([]*types.ClassRecord, 0, n)
	for i := 0; i < n; i++ {
		rec, err := d.readClass()
		if err != nil {
			return nil, fmt.Errorf("class %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (d *legacyDecoder) readClassTable() error {
	slots, err := tableSlots(d.s, d.limits, "class name table")
	if err != nil {
		return err
	}
	d.classTable = make([]*dotname.Name, slots)
	tree := newNameTree(d.limits)
	for i := 1; i < slots; i++ {
		depth, err := d.s.ReadPackedU32()
		if err != nil {
			return fmt.Errorf("class name %d depth: %w", i, err)
		}
		local, err := d.s.ReadUTF()
		if err != nil {
			return fmt.Errorf("class name %d: %w", i, err)
		}
		if d.classTable[i], err = tree.add(int(depth), local, false); err != nil {
			return fmt.Errorf("class name %d: %w", i, err)
		}
	}
	return nil
}

func (d *legacyDecoder) className() (*dotname.Name, error) {
	idx, err := d.s.ReadPackedU32()
	if err != nil {
		return nil, err
	}
	n, err := ref(d.classTable, idx, "class name")
	if err != nil {
		return nil, err
	}
	return orPlaceholder(n), nil
}

func (d *legacyDecoder) skipStringRef() error {
	idx, err := d.s.ReadPackedU32()
	if err != nil {
		return err
	}
	_, err = ref(d.stringTable, idx, "string")
	return err
}

// class layout:
//
//	packed name, packed super, u16 flags, [v3] u8 no-args constructor,
//	packed nIntf, nIntf × packed name,
//	packed nAnn, nAnn × annotation
func (d *legacyDecoder) readClass() (*types.ClassRecord, error) {
	name, err := d.className()
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	if name.IsPlaceholder() {
		return nil, fmt.Errorf("name: null class name: %w", format.ErrBadReference)
	}
	super, err := d.className()
	if err != nil {
		return nil, fmt.Errorf("%s: super: %w", name, err)
	}
	flags, err := d.s.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("%s: flags: %w", name, err)
	}
	if d.version >= format.NoArgsConstructorVersion {
		if err := d.s.Skip(1); err != nil {
			return nil, fmt.Errorf("%s: no-args flag: %w", name, err)
		}
	}

	nIntf, err := readCount(d.s, d.limits, "interface")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	interfaces := make([]*dotname.Name, 0, nIntf)
	for i := 0; i < nIntf; i++ {
		intf, err := d.className()
		if err != nil {
			return nil, fmt.Errorf("%s: interface %d: %w", name, i, err)
		}
		interfaces = append(interfaces, intf)
	}

	ci := types.ClassInit{
		Name:       name,
		SuperName:  super,
		Flags:      flags,
		Interfaces: interfaces,
	}
	if err := d.readAnnotations(&ci); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return types.NewClassRecord(ci), nil
}

// readAnnotations consumes the annotation block of one class, appending each
// instance to the list selected by its target.
//
//	packed nAnn, nAnn × (packed name, packed nTargets,
//	                     nTargets × (u8 tag, target, values))
func (d *legacyDecoder) readAnnotations(ci *types.ClassInit) error {
	nAnn, err := readCount(d.s, d.limits, "annotation")
	if err != nil {
		return err
	}
	for i := 0; i < nAnn; i++ {
		annotation, err := d.className()
		if err != nil {
			return fmt.Errorf("annotation %d name: %w", i, err)
		}
		nTargets, err := readCount(d.s, d.limits, "annotation target")
		if err != nil {
			return fmt.Errorf("annotation %s: %w", annotation, err)
		}
		for j := 0; j < nTargets; j++ {
			if err := d.readTarget(annotation, ci); err != nil {
				return fmt.Errorf("annotation %s target %d: %w", annotation, j, err)
			}
			if err := d.values.skipValues(0); err != nil {
				return fmt.Errorf("annotation %s target %d: %w", annotation, j, err)
			}
			d.stats.Annotations++
		}
	}
	return nil
}

func (d *legacyDecoder) readTarget(annotation *dotname.Name, ci *types.ClassInit) error {
	tag, err := d.s.ReadU8()
	if err != nil {
		return fmt.Errorf("tag: %w", err)
	}
	switch format.LegacyTargetTag(tag) {
	case format.LegacyTargetField:
		// packed name, type, u16 flags
		if err := d.skipStringRef(); err != nil {
			return fmt.Errorf("field name: %w", err)
		}
		if err := d.skipType(); err != nil {
			return fmt.Errorf("field type: %w", err)
		}
		if err := d.s.Skip(2); err != nil {
			return fmt.Errorf("field flags: %w", err)
		}
		ci.FieldAnnotations = append(ci.FieldAnnotations, annotation)
	case format.LegacyTargetMethod:
		if err := d.skipMethod(); err != nil {
			return err
		}
		ci.MethodAnnotations = append(ci.MethodAnnotations, annotation)
	case format.LegacyTargetMethodParameter:
		if err := d.skipMethod(); err != nil {
			return err
		}
		if err := d.s.SkipPackedU32(); err != nil {
			return fmt.Errorf("parameter position: %w", err)
		}
	case format.LegacyTargetClass:
		ci.ClassAnnotations = append(ci.ClassAnnotations, annotation)
	default:
		return fmt.Errorf("target tag %d: %w", tag, format.ErrInvalidTag)
	}
	return nil
}

// skipType consumes a u8 kind and a packed class name reference.
func (d *legacyDecoder) skipType() error {
	if err := d.s.Skip(1); err != nil {
		return err
	}
	_, err := d.className()
	return err
}

// skipMethod consumes packed name, packed nArgs, nArgs × type, return type,
// u16 flags.
func (d *legacyDecoder) skipMethod() error {
	if err := d.skipStringRef(); err != nil {
		return fmt.Errorf("method name: %w", err)
	}
	nArgs, err := readCount(d.s, d.limits, "method argument")
	if err != nil {
		return err
	}
	for i := 0; i < nArgs; i++ {
		if err := d.skipType(); err != nil {
			return fmt.Errorf("method argument %d: %w", i, err)
		}
	}
	if err := d.skipType(); err != nil {
		return fmt.Errorf("method return type: %w", err)
	}
	if err := d.s.Skip(2); err != nil {
		return fmt.Errorf("method flags: %w", err)
	}
	return nil
}

func (d *legacyDecoder) skipClassValue() error {
	return d.skipType()
}

func (d *legacyDecoder) skipEnumValue() error {
	if err := d.skipType(); err != nil {
		return err
	}
	return d.skipStringRef()
}

func (d *legacyDecoder) skipNestedValue(depth int) error {
	if _, err := d.className(); err != nil {
		return err
	}
	return d.values.skipValues(depth)
}
