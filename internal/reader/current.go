package reader

import (
	"fmt"

	"github.com/joshuapare/annoindex/internal/format"
	"github.com/joshuapare/annoindex/internal/packed"
	"github.com/joshuapare/annoindex/pkg/dotname"
	"github.com/joshuapare/annoindex/pkg/types"
)

// currentDecoder reads the cross-referencing table format (version 6). Later
// tables refer to earlier ones by slot; slot 0 of every table is reserved and
// means "no value".
//
//	header       packed annotations, implementors, subclasses (unused)
//	byteTable    packed n; n × (packed len, bytes)
//	stringTable  packed n; n × utf
//	nameTable    packed n; n × (packed depth<<1|inner, packed string)
//	typeCounts   packed types, packed typeLists
//	typeTable    types × typeEntry
//	typeLists    every slot not already materialized: typeListEntry
//	methodTable  packed n; n × (packed bytes, 6 × packed, annotations)
//	fieldTable   packed n; n × (packed bytes, 2 × packed, annotations)
//	classes      packed n; n × classEntry
type currentDecoder struct {
	s      *packed.Stream
	limits types.Limits
	values valueSkipper

	byteTable   [][]byte
	byteNames   []*dotname.Name
	stringTable []string
	nameTable   []*dotname.Name

	// typeTable keeps only the class name a type resolves to; type lists
	// keep slot indexes into typeTable and resolve when consumed.
	typeTable     []*dotname.Name
	typeListTable [][]uint32
	typeListRead  []bool

	methodTable []holder
	fieldTable  []holder

	annotations map[uint32]annotationRef

	stats Stats
}

// holder is the annotation data of one field or method table entry. Classes
// refer to holders by slot, so each is decoded once.
type holder struct {
	name        *dotname.Name
	annotations []*dotname.Name
}

func newCurrentDecoder(s *packed.Stream, limits types.Limits) *currentDecoder {
	d := &currentDecoder{
		s:           s,
		limits:      limits,
		annotations: make(map[uint32]annotationRef),
	}
	d.values = valueSkipper{s: s, grammar: d, maxDepth: limits.MaxValueDepth}
	return d
}

func (d *currentDecoder) decode() ([]*types.ClassRecord, error) {
	// Reverse-index sizes are only needed by a full index.
	if err := d.s.SkipPacked(3); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	steps := []struct {
		what string
		fn   func() error
	}{
		{"byte table", d.readByteTable},
		{"string table", d.readStringTable},
		{"name table", d.readNameTable},
		{"type tables", d.readTypeTables},
		{"method table", d.readMethodTable},
		{"field table", d.readFieldTable},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return nil, fmt.Errorf("%s: %w", step.what, err)
		}
	}

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
	d.stats.Annotations = len(d.annotations)
	return records, nil
}

func (d *currentDecoder) readByteTable() error {
	slots, err := tableSlots(d.s, d.limits, "byte table")
	if err != nil {
		return err
	}
	d.byteTable = make([][]byte, slots)
	d.byteNames = make([]*dotname.Name, slots)
	for i := 1; i < slots; i++ {
		n, err := d.s.ReadPackedU32()
		if err != nil {
			return fmt.Errorf("entry %d length: %w", i, err)
		}
		if d.limits.MaxBlobBytes > 0 && int(n) > d.limits.MaxBlobBytes {
			return fmt.Errorf("entry %d length %d exceeds %d: %w", i, n, d.limits.MaxBlobBytes, format.ErrLimitExceeded)
		}
		if d.byteTable[i], err = d.s.ReadFull(int(n)); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	d.stats.Bytes = slots - 1
	return nil
}

// byteName returns the byte-table slot as a simple name, converting it on
// first use.
func (d *currentDecoder) byteName(idx uint32) (*dotname.Name, error) {
	raw, err := ref(d.byteTable, idx, "byte table")
	if err != nil {
		return nil, err
	}
	if idx == 0 {
		return dotname.Placeholder(), nil
	}
	if n := d.byteNames[idx]; n != nil {
		return n, nil
	}
	n, err := dotname.NewSimple(string(raw))
	if err != nil {
		return nil, err
	}
	d.byteNames[idx] = n
	return n, nil
}

func (d *currentDecoder) readStringTable() error {
	var err error
	d.stringTable, err = readStringTable(d.s, d.limits)
	d.stats.Strings = len(d.stringTable) - 1
	return err
}

func (d *currentDecoder) readNameTable() error {
	slots, err := tableSlots(d.s, d.limits, "name table")
	if err != nil {
		return err
	}
	d.nameTable = make([]*dotname.Name, slots)
	tree := newNameTree(d.limits)
	for i := 1; i < slots; i++ {
		packedDepth, err := d.s.ReadPackedU32()
		if err != nil {
			return fmt.Errorf("entry %d depth: %w", i, err)
		}
		local, err := d.stringRef()
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		inner := packedDepth&1 == 1
		if d.nameTable[i], err = tree.add(int(packedDepth>>1), local, inner); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	d.stats.Names = slots - 1
	return nil
}

func (d *currentDecoder) stringRef() (string, error) {
	idx, err := d.s.ReadPackedU32()
	if err != nil {
		return "", err
	}
	return ref(d.stringTable, idx, "string")
}

func (d *currentDecoder) nameRef() (*dotname.Name, error) {
	idx, err := d.s.ReadPackedU32()
	if err != nil {
		return nil, err
	}
	n, err := ref(d.nameTable, idx, "name")
	if err != nil {
		return nil, err
	}
	return orPlaceholder(n), nil
}

func (d *currentDecoder) typeRef() (*dotname.Name, error) {
	idx, err := d.s.ReadPackedU32()
	if err != nil {
		return nil, err
	}
	n, err := ref(d.typeTable, idx, "type")
	if err != nil {
		return nil, err
	}
	return orPlaceholder(n), nil
}

func (d *currentDecoder) readTypeTables() error {
	typeSlots, err := tableSlots(d.s, d.limits, "type table")
	if err != nil {
		return err
	}
	listSlots, err := tableSlots(d.s, d.limits, "type list table")
	if err != nil {
		return err
	}
	d.typeTable = make([]*dotname.Name, typeSlots)
	d.typeListTable = make([][]uint32, listSlots)
	d.typeListRead = make([]bool, listSlots)
	d.typeListRead[0] = true

	for i := 1; i < typeSlots; i++ {
		if d.typeTable[i], err = d.readTypeEntry(); err != nil {
			return fmt.Errorf("type %d: %w", i, err)
		}
	}
	// Lists already pulled in by a type entry are gaps in this section.
	for i := 1; i < listSlots; i++ {
		if d.typeListRead[i] {
			continue
		}
		if err := d.readTypeListEntry(uint32(i)); err != nil {
			return fmt.Errorf("type list %d: %w", i, err)
		}
	}
	d.stats.Types = typeSlots - 1
	d.stats.TypeLists = listSlots - 1
	return nil
}

// readTypeEntry decodes one type and returns the class name it contributes:
// the name of a class or parameterized type, the placeholder otherwise. Every
// kind still consumes its full payload and type annotations.
func (d *currentDecoder) readTypeEntry() (*dotname.Name, error) {
	tag, err := d.s.ReadU8()
	if err != nil {
		return nil, err
	}
	kind := format.TypeKind(tag)
	name := dotname.Placeholder()

	switch kind {
	case format.TypeClass:
		if name, err = d.nameRef(); err != nil {
			return nil, err
		}
	case format.TypeArray:
		// dimensions, component type
		err = d.s.SkipPacked(2)
	case format.TypePrimitive:
		err = d.s.Skip(1)
	case format.TypeVoid:
	case format.TypeVariable:
		// identifier, bounds
		if err = d.s.SkipPackedU32(); err == nil {
			err = d.typeListRef()
		}
	case format.TypeUnresolvedVariable:
		err = d.s.SkipPackedU32()
	case format.TypeWildcard:
		// extends flag, bound
		err = d.s.SkipPacked(2)
	case format.TypeParameterized:
		if err = d.s.SkipPackedU32(); err != nil { // owner
			return nil, err
		}
		if name, err = d.nameRef(); err != nil {
			return nil, err
		}
		err = d.typeListRef()
	default:
		return nil, fmt.Errorf("type kind %d: %w", tag, format.ErrInvalidTag)
	}
	if err != nil {
		return nil, err
	}
	if err := d.skipAnnotationRefs(); err != nil {
		return nil, fmt.Errorf("type annotations: %w", err)
	}
	return name, nil
}

// typeListRef reads a type-list slot referenced from inside a type entry. A
// slot not yet materialized is encoded inline right here.
func (d *currentDecoder) typeListRef() error {
	idx, err := d.s.ReadPackedU32()
	if err != nil {
		return err
	}
	if _, err := ref(d.typeListTable, idx, "type list"); err != nil {
		return err
	}
	if d.typeListRead[idx] {
		return nil
	}
	return d.readTypeListEntry(idx)
}

func (d *currentDecoder) readTypeListEntry(idx uint32) error {
	n, err := readCount(d.s, d.limits, "type list entry")
	if err != nil {
		return err
	}
	list := make([]uint32, n)
	for i := range list {
		if list[i], err = d.s.ReadPackedU32(); err != nil {
			return err
		}
	}
	d.typeListTable[idx] = list
	d.typeListRead[idx] = true
	return nil
}

// typeListNames reads a type-list slot reference and resolves it to names.
func (d *currentDecoder) typeListNames() ([]*dotname.Name, error) {
	idx, err := d.s.ReadPackedU32()
	if err != nil {
		return nil, err
	}
	list, err := ref(d.typeListTable, idx, "type list")
	if err != nil {
		return nil, err
	}
	names := make([]*dotname.Name, 0, len(list))
	for _, t := range list {
		n, err := ref(d.typeTable, t, "type")
		if err != nil {
			return nil, err
		}
		names = append(names, orPlaceholder(n))
	}
	return names, nil
}

func (d *currentDecoder) readMethodTable() error {
	var err error
	d.methodTable, err = d.readHolders(format.MethodSkippedFields)
	d.stats.Methods = len(d.methodTable) - 1
	return err
}

func (d *currentDecoder) readFieldTable() error {
	var err error
	d.fieldTable, err = d.readHolders(format.FieldSkippedFields)
	d.stats.Fields = len(d.fieldTable) - 1
	return err
}

// readHolders reads a method or field table: each entry is a byte-table name,
// the given number of unused packed fields, and an annotation list.
func (d *currentDecoder) readHolders(skipped int) ([]holder, error) {
	slots, err := tableSlots(d.s, d.limits, "holder table")
	if err != nil {
		return nil, err
	}
	table := make([]holder, slots)
	for i := 1; i < slots; i++ {
		idx, err := d.s.ReadPackedU32()
		if err != nil {
			return nil, fmt.Errorf("entry %d name: %w", i, err)
		}
		name, err := d.byteName(idx)
		if err != nil {
			return nil, fmt.Errorf("entry %d name: %w", i, err)
		}
		if err := d.s.SkipPacked(skipped); err != nil {
			return nil, fmt.Errorf("entry %d %s: %w", i, name, err)
		}
		anns, err := d.readAnnotationNames(keepTracked)
		if err != nil {
			return nil, fmt.Errorf("entry %d %s: %w", i, name, err)
		}
		table[i] = holder{name: name, annotations: anns}
	}
	return table, nil
}

// classEntry layout:
//
//	packed name, packed flags, packed super type, packed type parameters,
//	packed interfaces, packed enclosing class, packed simple name,
//	u8 has enclosing method [4 × packed],
//	packed groups,
//	packed nFields, nFields × packed field slot,
//	packed nMethods, nMethods × packed method slot,
//	groups × annotations
func (d *currentDecoder) readClass() (*types.ClassRecord, error) {
	name, err := d.nameRef()
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	if name.IsPlaceholder() {
		return nil, fmt.Errorf("name: null class name: %w", format.ErrBadReference)
	}
	flags, err := d.s.ReadPackedU32()
	if err != nil {
		return nil, fmt.Errorf("%s: flags: %w", name, err)
	}
	super, err := d.typeRef()
	if err != nil {
		return nil, fmt.Errorf("%s: super type: %w", name, err)
	}
	if err := d.s.SkipPackedU32(); err != nil {
		return nil, fmt.Errorf("%s: type parameters: %w", name, err)
	}
	interfaces, err := d.typeListNames()
	if err != nil {
		return nil, fmt.Errorf("%s: interfaces: %w", name, err)
	}
	if err := d.s.SkipPacked(2); err != nil {
		return nil, fmt.Errorf("%s: enclosing class: %w", name, err)
	}
	if err := d.skipEnclosingMethod(); err != nil {
		return nil, fmt.Errorf("%s: enclosing method: %w", name, err)
	}

	groups, err := readCount(d.s, d.limits, "annotation group")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	fields, err := d.holderRefs(d.fieldTable, "field")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	methods, err := d.holderRefs(d.methodTable, "method")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	ci := types.ClassInit{
		Name:              name,
		SuperName:         super,
		Flags:             uint16(flags),
		Interfaces:        interfaces,
		FieldAnnotations:  collect(d.fieldTable, fields),
		MethodAnnotations: collect(d.methodTable, methods),
	}
	for g := 0; g < groups; g++ {
		anns, err := d.readAnnotationNames(keepClass)
		if err != nil {
			return nil, fmt.Errorf("%s: annotation group %d: %w", name, g, err)
		}
		ci.ClassAnnotations = append(ci.ClassAnnotations, anns...)
	}
	return types.NewClassRecord(ci), nil
}

func (d *currentDecoder) skipEnclosingMethod() error {
	flag, err := d.s.ReadU8()
	if err != nil {
		return err
	}
	switch flag {
	case 0:
		return nil
	case format.HasEnclosingMethod:
		return d.s.SkipPacked(format.EnclosingMethodSkippedFields)
	default:
		return fmt.Errorf("enclosing method flag %d: %w", flag, format.ErrInvalidTag)
	}
}

// holderRefs reads a count and that many validated slots into table.
func (d *currentDecoder) holderRefs(table []holder, what string) ([]uint32, error) {
	n, err := readCount(d.s, d.limits, what)
	if err != nil {
		return nil, err
	}
	refs := make([]uint32, n)
	for i := range refs {
		if refs[i], err = d.s.ReadPackedU32(); err != nil {
			return nil, fmt.Errorf("%s %d: %w", what, i, err)
		}
		if _, err := ref(table, refs[i], what); err != nil {
			return nil, err
		}
	}
	return refs, nil
}

// collect concatenates the annotations of the referenced holders, sizing the
// result up front.
func collect(table []holder, refs []uint32) []*dotname.Name {
	total := 0
	for _, r := range refs {
		total += len(table[r].annotations)
	}
	out := make([]*dotname.Name, 0, total)
	for _, r := range refs {
		out = append(out, table[r].annotations...)
	}
	return out
}
