package packed

import "github.com/joshuapare/annoindex/internal/format"

// AppendPackedU32 appends the packed encoding of v to dst, most significant
// group first. Values above format.MaxPackedValue still encode (in five bytes)
// so malformed inputs can be produced on purpose; ReadPackedU32 rejects them.
func AppendPackedU32(dst []byte, v uint32) []byte {
	var tmp [format.MaxPackedBytes]byte
	i := len(tmp) - 1
	tmp[i] = byte(v & dataMask)
	for v >>= dataBitsPerByte; v != 0; v >>= dataBitsPerByte {
		i--
		tmp[i] = byte(v&dataMask) | continuationBit
	}
	return append(dst, tmp[i:]...)
}

// PackedLen returns the number of bytes AppendPackedU32 emits for v.
func PackedLen(v uint32) int {
	n := 1
	for v >>= dataBitsPerByte; v != 0; v >>= dataBitsPerByte {
		n++
	}
	return n
}
