// Package mutf8 decodes the modified UTF-8 encoding used by length-prefixed
// strings in index blobs: U+0000 is written as the two bytes C0 80 and
// supplementary characters as a pair of three-byte surrogate encodings.
//
// Decoding is exposed as a golang.org/x/text transform.Transformer so callers
// can chain it with readers or run it over whole byte slices.
package mutf8

import (
	"bytes"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

const (
	surrogateLead = 0xED
	nullLead      = 0xC0
	nullTrail     = 0x80
	surrogateSize = 3
	pairSize      = 2 * surrogateSize
)

// Decoder converts modified UTF-8 into standard UTF-8. Invalid sequences and
// unpaired surrogates become utf8.RuneError.
var Decoder transform.Transformer = decoder{}

type decoder struct{ transform.NopResetter }

func (decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var scratch [utf8.UTFMax]byte
	for nSrc < len(src) {
		c := src[nSrc]
		if c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}

		rest := src[nSrc:]
		var out []byte
		var consumed int

		if (c == nullLead || c == surrogateLead) && len(rest) < 2 && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		switch {
		case c == nullLead && len(rest) >= 2 && rest[1] == nullTrail:
			scratch[0] = 0
			out, consumed = scratch[:1], 2

		case c == surrogateLead && len(rest) >= 2 && rest[1] >= 0xA0:
			if len(rest) < surrogateSize && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			hi, ok := surrogate(rest)
			if !ok {
				out, consumed = runeError(&scratch), 1
				break
			}
			if utf16.IsSurrogate(hi) && hi < 0xDC00 {
				if len(rest) < pairSize && !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
				if len(rest) >= pairSize && rest[surrogateSize] == surrogateLead {
					if lo, ok := surrogate(rest[surrogateSize:]); ok {
						if r := utf16.DecodeRune(hi, lo); r != utf8.RuneError {
							n := utf8.EncodeRune(scratch[:], r)
							out, consumed = scratch[:n], pairSize
							break
						}
					}
				}
			}
			out, consumed = runeError(&scratch), surrogateSize

		default:
			r, size := utf8.DecodeRune(rest)
			if r == utf8.RuneError && size <= 1 {
				if !atEOF && !utf8.FullRune(rest) {
					return nDst, nSrc, transform.ErrShortSrc
				}
				out, consumed = runeError(&scratch), 1
				break
			}
			out, consumed = rest[:size], size
		}

		if nDst+len(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += consumed
	}
	return nDst, nSrc, nil
}

// surrogate decodes one three-byte surrogate encoding at the start of b.
func surrogate(b []byte) (rune, bool) {
	if len(b) < surrogateSize || b[0] != surrogateLead {
		return 0, false
	}
	if b[1]&0xE0 != 0xA0 || b[2]&0xC0 != 0x80 {
		return 0, false
	}
	return 0xD000 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), true
}

func runeError(scratch *[utf8.UTFMax]byte) []byte {
	n := utf8.EncodeRune(scratch[:], utf8.RuneError)
	return scratch[:n]
}

// String decodes b. Pure ASCII and ordinary UTF-8 without the special lead
// bytes skip the transformer entirely.
func String(b []byte) (string, error) {
	if bytes.IndexByte(b, nullLead) < 0 && bytes.IndexByte(b, surrogateLead) < 0 {
		return string(b), nil
	}
	out, _, err := transform.Bytes(Decoder, b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
