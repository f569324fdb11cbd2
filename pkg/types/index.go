package types

import (
	"slices"

	"github.com/joshuapare/annoindex/pkg/dotname"
)

// Index maps qualified class names to their records. It is built once per
// decode and never mutated, so it is safe for concurrent readers.
type Index struct {
	version int
	classes map[string]*ClassRecord
	names   []*dotname.Name

	annotated    map[string][]*ClassRecord
	subclasses   map[string][]*ClassRecord
	implementors map[string][]*ClassRecord
}

// NewIndex builds an Index over records decoded from a blob of the given
// version. A later record with the same name replaces an earlier one.
func NewIndex(version int, records []*ClassRecord) *Index {
	idx := &Index{
		version:      version,
		classes:      make(map[string]*ClassRecord, len(records)),
		annotated:    make(map[string][]*ClassRecord),
		subclasses:   make(map[string][]*ClassRecord),
		implementors: make(map[string][]*ClassRecord),
	}
	for _, rec := range records {
		idx.classes[rec.name.String()] = rec
	}

	idx.names = make([]*dotname.Name, 0, len(idx.classes))
	for _, rec := range idx.classes {
		idx.names = append(idx.names, rec.name)
	}
	slices.SortFunc(idx.names, dotname.Compare)

	// Derived views follow name order so query results are deterministic.
	for _, n := range idx.names {
		rec := idx.classes[n.String()]
		for _, ann := range uniqueStrings(rec.classAnnotations) {
			idx.annotated[ann] = append(idx.annotated[ann], rec)
		}
		if !rec.superName.IsPlaceholder() {
			super := rec.superName.String()
			idx.subclasses[super] = append(idx.subclasses[super], rec)
		}
		for _, intf := range uniqueStrings(rec.interfaces) {
			idx.implementors[intf] = append(idx.implementors[intf], rec)
		}
	}
	return idx
}

func uniqueStrings(names []*dotname.Name) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		s := n.String()
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// Version returns the wire-format version the index was decoded from.
func (idx *Index) Version() int { return idx.version }

// Len returns the number of classes.
func (idx *Index) Len() int { return len(idx.classes) }

// Get returns the record for a qualified name such as "com.example.Foo".
func (idx *Index) Get(name string) (*ClassRecord, bool) {
	rec, ok := idx.classes[name]
	return rec, ok
}

// Lookup returns the record for name.
func (idx *Index) Lookup(name *dotname.Name) (*ClassRecord, bool) {
	if name.IsPlaceholder() {
		return nil, false
	}
	return idx.Get(name.String())
}

// Names returns every class name in dotname.Compare order.
func (idx *Index) Names() []*dotname.Name { return slices.Clone(idx.names) }

// Classes returns every record in name order.
func (idx *Index) Classes() []*ClassRecord {
	out := make([]*ClassRecord, len(idx.names))
	for i, n := range idx.names {
		out[i] = idx.classes[n.String()]
	}
	return out
}

// AnnotatedWith returns the classes whose class-level annotations include
// annotation.
func (idx *Index) AnnotatedWith(annotation string) []*ClassRecord {
	return slices.Clone(idx.annotated[annotation])
}

// Subclasses returns the indexed classes that directly extend super.
func (idx *Index) Subclasses(super string) []*ClassRecord {
	return slices.Clone(idx.subclasses[super])
}

// Implementors returns the indexed classes that directly implement intf.
func (idx *Index) Implementors(intf string) []*ClassRecord {
	return slices.Clone(idx.implementors[intf])
}
