// Package testutil assembles annotation index blobs for tests.
package testutil

import (
	"github.com/joshuapare/annoindex/internal/buf"
	"github.com/joshuapare/annoindex/internal/format"
	"github.com/joshuapare/annoindex/internal/packed"
)

// Blob is an append-only byte builder. Every method returns the receiver so
// wire layouts read top to bottom.
type Blob struct {
	b []byte
}

// NewBlob starts an empty blob.
func NewBlob() *Blob { return &Blob{} }

// Header starts a blob with the magic and the version byte.
func Header(version byte) *Blob {
	return NewBlob().U32(format.Magic).U8(version)
}

// Packed appends each value as a packed integer.
func (b *Blob) Packed(vs ...uint32) *Blob {
	for _, v := range vs {
		b.b = packed.AppendPackedU32(b.b, v)
	}
	return b
}

// U8 appends one byte.
func (b *Blob) U8(v byte) *Blob {
	b.b = append(b.b, v)
	return b
}

// U16 appends a big-endian uint16.
func (b *Blob) U16(v uint16) *Blob {
	b.b = buf.PutU16BE(b.b, v)
	return b
}

// U32 appends a big-endian uint32.
func (b *Blob) U32(v uint32) *Blob {
	b.b = buf.PutU32BE(b.b, v)
	return b
}

// Raw appends bytes verbatim.
func (b *Blob) Raw(p ...byte) *Blob {
	b.b = append(b.b, p...)
	return b
}

// UTF appends a u16 length followed by the string bytes. Callers use strings
// without U+0000 or supplementary characters, whose standard and modified
// UTF-8 forms coincide.
func (b *Blob) UTF(s string) *Blob {
	return b.U16(uint16(len(s))).Raw([]byte(s)...)
}

// Sized appends a packed length followed by the bytes of s.
func (b *Blob) Sized(s string) *Blob {
	return b.Packed(uint32(len(s))).Raw([]byte(s)...)
}

// Append appends the content of other.
func (b *Blob) Append(other *Blob) *Blob {
	b.b = append(b.b, other.b...)
	return b
}

// Len returns the current size.
func (b *Blob) Len() int { return len(b.b) }

// Bytes returns a copy of the content.
func (b *Blob) Bytes() []byte {
	out := make([]byte, len(b.b))
	copy(out, b.b)
	return out
}
