package reader

import (
	"fmt"
	"slices"

	"github.com/joshuapare/annoindex/internal/format"
	"github.com/joshuapare/annoindex/pkg/dotname"
)

// annotationRef is what the sparse index keeps of one annotation instance.
type annotationRef struct {
	name *dotname.Name
	kind format.TargetKind
}

func keepTracked(a annotationRef) bool { return a.kind.Tracked() }
func keepClass(a annotationRef) bool   { return a.kind == format.TargetClass }
func keepNone(annotationRef) bool      { return false }

// readAnnotationRef reads one annotation reference. The first time a
// reference appears, its entry follows inline:
//
//	packed name, u8 target tag, target extras, values
//
// Later occurrences are served from the cache without touching the stream.
// Reference 0 is the null annotation.
func (d *currentDecoder) readAnnotationRef(depth int) (annotationRef, error) {
	idx, err := d.s.ReadPackedU32()
	if err != nil {
		return annotationRef{}, err
	}
	if idx == 0 {
		return annotationRef{name: dotname.Placeholder(), kind: format.TargetNull}, nil
	}
	if cached, ok := d.annotations[idx]; ok {
		return cached, nil
	}
	if d.limits.MaxTableEntries > 0 && len(d.annotations) >= d.limits.MaxTableEntries {
		return annotationRef{}, fmt.Errorf("annotation %d: more than %d annotations: %w", idx, d.limits.MaxTableEntries, format.ErrLimitExceeded)
	}
	entry, err := d.readAnnotationEntry(depth)
	if err != nil {
		return annotationRef{}, fmt.Errorf("annotation %d: %w", idx, err)
	}
	d.annotations[idx] = entry
	return entry, nil
}

func (d *currentDecoder) readAnnotationEntry(depth int) (annotationRef, error) {
	name, err := d.nameRef()
	if err != nil {
		return annotationRef{}, fmt.Errorf("name: %w", err)
	}
	tag, err := d.s.ReadU8()
	if err != nil {
		return annotationRef{}, fmt.Errorf("%s: target: %w", name, err)
	}
	kind := format.TargetKind(tag)
	if !kind.Valid() {
		return annotationRef{}, fmt.Errorf("%s: target tag %d: %w", name, tag, format.ErrInvalidTag)
	}
	if err := d.s.SkipPacked(kind.Extras()); err != nil {
		return annotationRef{}, fmt.Errorf("%s: %s target: %w", name, kind, err)
	}
	if err := d.values.skipValues(depth); err != nil {
		return annotationRef{}, fmt.Errorf("%s: %w", name, err)
	}
	if !kind.Tracked() {
		name = dotname.Placeholder()
	}
	return annotationRef{name: name, kind: kind}, nil
}

// readAnnotationNames reads an annotation list and returns the names of the
// entries keep accepts, never including the placeholder. The result is empty,
// not nil, when nothing is kept, and its capacity matches its length.
func (d *currentDecoder) readAnnotationNames(keep func(annotationRef) bool) ([]*dotname.Name, error) {
	n, err := readCount(d.s, d.limits, "annotation")
	if err != nil {
		return nil, err
	}
	names := []*dotname.Name{}
	for i := 0; i < n; i++ {
		a, err := d.readAnnotationRef(0)
		if err != nil {
			return nil, err
		}
		if keep(a) && !a.name.IsPlaceholder() {
			names = append(names, a.name)
		}
	}
	return slices.Clip(names), nil
}

// skipAnnotationRefs consumes a type annotation list.
func (d *currentDecoder) skipAnnotationRefs() error {
	_, err := d.readAnnotationNames(keepNone)
	return err
}

func (d *currentDecoder) skipClassValue() error {
	return d.s.SkipPackedU32()
}

func (d *currentDecoder) skipEnumValue() error {
	return d.s.SkipPacked(2)
}

func (d *currentDecoder) skipNestedValue(depth int) error {
	_, err := d.readAnnotationRef(depth)
	return err
}
