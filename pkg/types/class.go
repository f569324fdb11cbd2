package types

import (
	"encoding/json"
	"slices"

	"github.com/joshuapare/annoindex/pkg/dotname"
)

// Access flags recorded for each class.
const (
	FlagPublic     uint16 = 0x0001
	FlagFinal      uint16 = 0x0010
	FlagInterface  uint16 = 0x0200
	FlagAbstract   uint16 = 0x0400
	FlagSynthetic  uint16 = 0x1000
	FlagAnnotation uint16 = 0x2000
	FlagEnum       uint16 = 0x4000
)

// ClassInit carries the decoded fields of one class.
type ClassInit struct {
	Name              *dotname.Name
	SuperName         *dotname.Name
	Flags             uint16
	Interfaces        []*dotname.Name
	ClassAnnotations  []*dotname.Name
	FieldAnnotations  []*dotname.Name
	MethodAnnotations []*dotname.Name
}

// ClassRecord holds the annotation data of one class. It never changes after
// NewClassRecord returns.
type ClassRecord struct {
	name              *dotname.Name
	superName         *dotname.Name
	flags             uint16
	interfaces        []*dotname.Name
	classAnnotations  []*dotname.Name
	fieldAnnotations  []*dotname.Name
	methodAnnotations []*dotname.Name
}

// NewClassRecord builds a record from init. A nil SuperName becomes the
// placeholder; nil lists become empty; placeholder entries are dropped from
// the name lists.
func NewClassRecord(init ClassInit) *ClassRecord {
	super := init.SuperName
	if super == nil {
		super = dotname.Placeholder()
	}
	return &ClassRecord{
		name:              init.Name,
		superName:         super,
		flags:             init.Flags,
		interfaces:        compact(init.Interfaces),
		classAnnotations:  compact(init.ClassAnnotations),
		fieldAnnotations:  compact(init.FieldAnnotations),
		methodAnnotations: compact(init.MethodAnnotations),
	}
}

func compact(names []*dotname.Name) []*dotname.Name {
	if len(names) == 0 {
		return []*dotname.Name{}
	}
	if !slices.ContainsFunc(names, (*dotname.Name).IsPlaceholder) {
		return names
	}
	return slices.DeleteFunc(slices.Clone(names), (*dotname.Name).IsPlaceholder)
}

// Name returns the qualified class name.
func (c *ClassRecord) Name() *dotname.Name { return c.name }

// SuperName returns the superclass, or the placeholder when there is none.
func (c *ClassRecord) SuperName() *dotname.Name { return c.superName }

// Flags returns the class access flags.
func (c *ClassRecord) Flags() uint16 { return c.flags }

// Interfaces returns the directly implemented interfaces in declaration order.
func (c *ClassRecord) Interfaces() []*dotname.Name { return slices.Clone(c.interfaces) }

// ClassAnnotations returns the annotations placed on the class itself.
func (c *ClassRecord) ClassAnnotations() []*dotname.Name { return slices.Clone(c.classAnnotations) }

// FieldAnnotations returns the annotations placed on any field of the class.
func (c *ClassRecord) FieldAnnotations() []*dotname.Name { return slices.Clone(c.fieldAnnotations) }

// MethodAnnotations returns the annotations placed on any method of the class.
func (c *ClassRecord) MethodAnnotations() []*dotname.Name { return slices.Clone(c.methodAnnotations) }

// HasClassAnnotation reports whether the class itself carries annotation.
func (c *ClassRecord) HasClassAnnotation(annotation string) bool {
	return containsName(c.classAnnotations, annotation)
}

// HasFieldAnnotation reports whether any field carries annotation.
func (c *ClassRecord) HasFieldAnnotation(annotation string) bool {
	return containsName(c.fieldAnnotations, annotation)
}

// HasMethodAnnotation reports whether any method carries annotation.
func (c *ClassRecord) HasMethodAnnotation(annotation string) bool {
	return containsName(c.methodAnnotations, annotation)
}

func containsName(names []*dotname.Name, want string) bool {
	for _, n := range names {
		if n.String() == want {
			return true
		}
	}
	return false
}

// IsInterface reports whether FlagInterface is set.
func (c *ClassRecord) IsInterface() bool { return c.flags&FlagInterface != 0 }

// IsAbstract reports whether FlagAbstract is set.
func (c *ClassRecord) IsAbstract() bool { return c.flags&FlagAbstract != 0 }

// IsAnnotation reports whether FlagAnnotation is set. Annotation types are
// also interfaces.
func (c *ClassRecord) IsAnnotation() bool { return c.flags&FlagAnnotation != 0 }

// IsEnum reports whether FlagEnum is set.
func (c *ClassRecord) IsEnum() bool { return c.flags&FlagEnum != 0 }

// ClassView is the serialized form of a ClassRecord.
type ClassView struct {
	Name              string   `json:"name"`
	SuperName         string   `json:"superName,omitempty"`
	Flags             uint16   `json:"flags"`
	Interfaces        []string `json:"interfaces"`
	ClassAnnotations  []string `json:"classAnnotations"`
	FieldAnnotations  []string `json:"fieldAnnotations"`
	MethodAnnotations []string `json:"methodAnnotations"`
}

// View returns the string form of the record.
func (c *ClassRecord) View() ClassView {
	return ClassView{
		Name:              c.name.String(),
		SuperName:         c.superName.String(),
		Flags:             c.flags,
		Interfaces:        Strings(c.interfaces),
		ClassAnnotations:  Strings(c.classAnnotations),
		FieldAnnotations:  Strings(c.fieldAnnotations),
		MethodAnnotations: Strings(c.methodAnnotations),
	}
}

// MarshalJSON encodes the record as its ClassView.
func (c *ClassRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.View())
}

// Strings converts names to their display strings.
func Strings(names []*dotname.Name) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.String()
	}
	return out
}
