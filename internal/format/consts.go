// Package format houses the wire-level constants of the annotation index
// format. The goal is to keep tag values and layout facts in one place so the
// decoders in internal/reader stay focused on ordering and table resolution.
package format

// Magic is the four-byte big-endian signature at the start of every index blob.
//
//	Offset  Size  Description
//	------  ----  ------------------------------------------
//	 0x000   4    0xBA 0xBE 0x1F 0x15
//	 0x004   1    Version
//	 0x005   ..   Version-specific tables
const Magic uint32 = 0xBABE1F15

const (
	// MagicSize is the number of bytes occupied by Magic.
	MagicSize = 4

	// HeaderSize covers the magic plus the version byte.
	HeaderSize = MagicSize + 1

	// MinLegacyVersion and MaxLegacyVersion bound the flat table format.
	MinLegacyVersion = 2
	MaxLegacyVersion = 3

	// NoArgsConstructorVersion is the first legacy version carrying the
	// per-class no-args-constructor flag.
	NoArgsConstructorVersion = 3

	// CurrentVersion is the only cross-referencing table format version.
	CurrentVersion = 6
)

// MaxPackedBytes is the longest encoding of a packed unsigned 32-bit integer.
const MaxPackedBytes = 5

// MaxPackedValue is the largest value the packed codec accepts (2^31-1).
const MaxPackedValue = 1<<31 - 1

// ValueTag identifies the payload of one annotation value.
type ValueTag uint8

const (
	ValueByte    ValueTag = 1
	ValueShort   ValueTag = 2
	ValueInt     ValueTag = 3
	ValueChar    ValueTag = 4
	ValueFloat   ValueTag = 5
	ValueDouble  ValueTag = 6
	ValueLong    ValueTag = 7
	ValueBoolean ValueTag = 8
	ValueString  ValueTag = 9
	ValueClass   ValueTag = 10
	ValueEnum    ValueTag = 11
	ValueArray   ValueTag = 12
	ValueNested  ValueTag = 13
)

// Raw payload widths for the fixed-size value kinds.
const (
	ByteValueSize   = 1
	FloatValueSize  = 4
	DoubleValueSize = 8
	LongValueSize   = 8
)

// LegacyTargetTag selects the target of one legacy annotation instance.
type LegacyTargetTag uint8

const (
	LegacyTargetField           LegacyTargetTag = 1
	LegacyTargetMethod          LegacyTargetTag = 2
	LegacyTargetMethodParameter LegacyTargetTag = 3
	LegacyTargetClass           LegacyTargetTag = 4
)

// TargetKind is the annotation target tag of the current format.
type TargetKind uint8

const (
	TargetNull TargetKind = iota
	TargetField
	TargetMethod
	TargetMethodParameter
	TargetClass
	TargetEmptyType
	TargetClassExtendsType
	TargetTypeParameter
	TargetTypeParameterBound
	TargetMethodParameterType
	TargetThrowsType

	targetKindCount
)

// targetExtras is the number of packed fields trailing each target tag.
var targetExtras = [targetKindCount]int{
	TargetNull:                0,
	TargetField:               0,
	TargetMethod:              0,
	TargetMethodParameter:     1, // position
	TargetClass:               0,
	TargetEmptyType:           2, // usage, receiver
	TargetClassExtendsType:    2, // usage, position
	TargetTypeParameter:       2, // usage, position
	TargetTypeParameterBound:  3, // usage, position, bound
	TargetMethodParameterType: 2, // usage, position
	TargetThrowsType:          2, // usage, position
}

// Valid reports whether k is a known target tag.
func (k TargetKind) Valid() bool { return k < targetKindCount }

// Extras returns how many packed fields follow the tag on the wire.
func (k TargetKind) Extras() int {
	if !k.Valid() {
		return 0
	}
	return targetExtras[k]
}

// Tracked reports whether annotations on this target survive in the sparse index.
func (k TargetKind) Tracked() bool {
	return k == TargetClass || k == TargetField || k == TargetMethod
}

func (k TargetKind) String() string {
	switch k {
	case TargetNull:
		return "null"
	case TargetField:
		return "field"
	case TargetMethod:
		return "method"
	case TargetMethodParameter:
		return "method-parameter"
	case TargetClass:
		return "class"
	case TargetEmptyType:
		return "empty-type"
	case TargetClassExtendsType:
		return "class-extends-type"
	case TargetTypeParameter:
		return "type-parameter"
	case TargetTypeParameterBound:
		return "type-parameter-bound"
	case TargetMethodParameterType:
		return "method-parameter-type"
	case TargetThrowsType:
		return "throws-type"
	default:
		return "unknown"
	}
}

// TypeKind is the tag of one entry in the current format's type table.
type TypeKind uint8

const (
	TypeClass TypeKind = iota
	TypeArray
	TypePrimitive
	TypeVoid
	TypeVariable
	TypeUnresolvedVariable
	TypeWildcard
	TypeParameterized
)

// Per-method and per-field packed fields that the sparse index skips.
const (
	// MethodSkippedFields: flags, type parameters, receiver type, return
	// type, parameters, exceptions.
	MethodSkippedFields = 6
	// FieldSkippedFields: flags, type.
	FieldSkippedFields = 2
	// EnclosingMethodSkippedFields: name, owner, return type, parameters.
	EnclosingMethodSkippedFields = 4
)

// HasEnclosingMethod marks a class entry followed by an enclosing-method block.
const HasEnclosingMethod = 1
