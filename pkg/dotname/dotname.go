// Package dotname represents qualified class names as chains of segments that
// share their prefixes.
//
// A componentized name stores only its last segment and points at the name of
// its enclosing package or class, so "com.example.Foo" and "com.example.Bar"
// share the "com.example" chain. Inner classes are marked on the segment that
// follows a '$'. A simple name is a single undotted segment with no prefix.
//
// Names are immutable once built. The hash is computed at construction from
// the display string, so names that print the same hash the same no matter
// how they were assembled.
package dotname

import (
	"errors"
	"fmt"
	"strings"
)

const (
	packageSeparator = '.'
	innerSeparator   = '$'
	hashMultiplier   = 31
)

// ErrInvalidName indicates a name that violates the construction invariants.
var ErrInvalidName = errors.New("dotname: invalid name")

// Name is one segment of a qualified name plus a link to its prefix.
type Name struct {
	prefix        *Name
	local         string
	componentized bool
	inner         bool
	hash          uint32
}

var placeholder = &Name{}

// Placeholder returns the shared empty simple name standing in for "no class
// name". Every call returns the same pointer.
func Placeholder() *Name { return placeholder }

// NewSimple returns a simple name. The text must not contain '.'.
func NewSimple(local string) (*Name, error) {
	if strings.IndexByte(local, packageSeparator) >= 0 {
		return nil, fmt.Errorf("%w: simple name %q contains '.'", ErrInvalidName, local)
	}
	return &Name{local: local, hash: extendHash(0, local)}, nil
}

// MustSimple is like NewSimple but panics on invalid input. Intended for
// package-level constants.
func MustSimple(local string) *Name {
	n, err := NewSimple(local)
	if err != nil {
		panic(err)
	}
	return n
}

// NewComponent returns a componentized name appending local to prefix. A nil
// prefix starts a new chain. Inner segments need a prefix, and prefixes must
// themselves be componentized.
func NewComponent(prefix *Name, local string, inner bool) (*Name, error) {
	if prefix != nil && !prefix.componentized {
		return nil, fmt.Errorf("%w: prefix %q of %q is not componentized", ErrInvalidName, prefix.local, local)
	}
	if inner && prefix == nil {
		return nil, fmt.Errorf("%w: inner class segment %q has no prefix", ErrInvalidName, local)
	}
	var h uint32
	if prefix != nil {
		h = prefix.hash*hashMultiplier + uint32(separator(inner))
	}
	return &Name{
		prefix:        prefix,
		local:         local,
		componentized: true,
		inner:         inner,
		hash:          extendHash(h, local),
	}, nil
}

// Parse builds a componentized chain from a display string such as
// "com.example.Outer$Inner". Empty input yields the placeholder.
func Parse(qualified string) (*Name, error) {
	if qualified == "" {
		return placeholder, nil
	}
	var (
		cur   *Name
		inner bool
		start int
	)
	for i := 0; i <= len(qualified); i++ {
		if i < len(qualified) && qualified[i] != packageSeparator && qualified[i] != innerSeparator {
			continue
		}
		next, err := NewComponent(cur, qualified[start:i], inner)
		if err != nil {
			return nil, err
		}
		cur = next
		if i < len(qualified) {
			inner = qualified[i] == innerSeparator
		}
		start = i + 1
	}
	return cur, nil
}

func separator(inner bool) byte {
	if inner {
		return innerSeparator
	}
	return packageSeparator
}

func extendHash(h uint32, s string) uint32 {
	for i := 0; i < len(s); i++ {
		h = h*hashMultiplier + uint32(s[i])
	}
	return h
}

// Prefix returns the enclosing name, or nil for a root segment.
func (n *Name) Prefix() *Name { return n.prefix }

// Local returns the last segment.
func (n *Name) Local() string { return n.local }

// IsComponentized reports whether n is part of a prefix-sharing chain.
func (n *Name) IsComponentized() bool { return n.componentized }

// IsInner reports whether the last segment follows a '$'.
func (n *Name) IsInner() bool { return n.inner }

// IsPlaceholder reports whether n is the placeholder (or nil).
func (n *Name) IsPlaceholder() bool { return n == nil || n == placeholder }

// Hash returns the precomputed hash of the display string.
func (n *Name) Hash() uint32 { return n.hash }

// String returns the qualified form, e.g. "com.example.Outer$Inner".
func (n *Name) String() string {
	if n == nil {
		return ""
	}
	if n.prefix == nil {
		return n.local
	}
	size := 0
	depth := 0
	for c := n; c != nil; c = c.prefix {
		size += len(c.local) + 1
		depth++
	}
	chain := make([]*Name, depth)
	for c, i := n, depth-1; c != nil; c, i = c.prefix, i-1 {
		chain[i] = c
	}

	var b strings.Builder
	b.Grow(size)
	for i, c := range chain {
		if i > 0 {
			b.WriteByte(separator(c.inner))
		}
		b.WriteString(c.local)
	}
	return b.String()
}

// Equal reports whether n and o print the same qualified name.
func (n *Name) Equal(o *Name) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil || n.hash != o.hash {
		return false
	}
	if n.componentized && o.componentized {
		a, b := n, o
		for a != nil && b != nil && a.local == b.local && a.inner == b.inner {
			if a.prefix == b.prefix {
				return true
			}
			a, b = a.prefix, b.prefix
		}
	}
	return n.String() == o.String()
}
