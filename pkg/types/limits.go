package types

// Bounds applied while decoding. Counts come straight off the wire, so every
// table allocation is checked against these before it happens.
const (
	// DefaultMaxTableEntries comfortably covers the largest application
	// indexes (hundreds of thousands of classes).
	DefaultMaxTableEntries = 1 << 22

	// RelaxedMaxTableEntries allows whole-platform indexes.
	RelaxedMaxTableEntries = 1 << 26

	// StrictMaxTableEntries suits untrusted input in constrained processes.
	StrictMaxTableEntries = 1 << 16

	// DefaultMaxBlobBytes bounds a single byte-table entry.
	DefaultMaxBlobBytes = 1 << 16

	// DefaultMaxNameDepth bounds package nesting in name tables.
	DefaultMaxNameDepth = 256

	// DefaultMaxValueDepth bounds nesting of array and annotation values.
	DefaultMaxValueDepth = 64

	// StrictMaxValueDepth is a shallow nesting bound.
	StrictMaxValueDepth = 16

	// DefaultMaxIndexBytes bounds the decompressed size of one index blob.
	DefaultMaxIndexBytes = 1 << 30

	// StrictMaxIndexBytes bounds the decompressed size for untrusted blobs.
	StrictMaxIndexBytes = 64 << 20
)

// Limits defines constraints applied while decoding to prevent resource
// exhaustion on malformed or hostile index blobs. A zero field means
// "no limit".
type Limits struct {
	// MaxTableEntries is the largest entry count accepted for any table.
	MaxTableEntries int

	// MaxBlobBytes is the largest byte-table entry.
	MaxBlobBytes int

	// MaxNameDepth is the deepest package/class nesting in a name table.
	MaxNameDepth int

	// MaxValueDepth is the deepest nesting of annotation values.
	MaxValueDepth int

	// MaxIndexBytes is the largest (decompressed) blob accepted by loaders.
	MaxIndexBytes int64
}

// DefaultLimits returns limits that accept every realistic index.
func DefaultLimits() Limits {
	return Limits{
		MaxTableEntries: DefaultMaxTableEntries,
		MaxBlobBytes:    DefaultMaxBlobBytes,
		MaxNameDepth:    DefaultMaxNameDepth,
		MaxValueDepth:   DefaultMaxValueDepth,
		MaxIndexBytes:   DefaultMaxIndexBytes,
	}
}

// RelaxedLimits returns more permissive limits for very large indexes.
func RelaxedLimits() Limits {
	l := DefaultLimits()
	l.MaxTableEntries = RelaxedMaxTableEntries
	l.MaxIndexBytes = 0
	return l
}

// StrictLimits returns conservative limits for untrusted input.
func StrictLimits() Limits {
	return Limits{
		MaxTableEntries: StrictMaxTableEntries,
		MaxBlobBytes:    DefaultMaxBlobBytes,
		MaxNameDepth:    DefaultMaxNameDepth,
		MaxValueDepth:   StrictMaxValueDepth,
		MaxIndexBytes:   StrictMaxIndexBytes,
	}
}
