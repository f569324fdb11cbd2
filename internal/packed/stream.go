// Package packed implements the byte cursor used by the index decoders and
// the packed unsigned integer encoding: big-endian groups of 7 data bits, high
// bit set on every byte except the last.
package packed

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/annoindex/internal/buf"
	"github.com/joshuapare/annoindex/internal/format"
	"github.com/joshuapare/annoindex/internal/mutf8"
)

const (
	dataBitsPerByte = 7
	dataMask        = 1<<dataBitsPerByte - 1 // 0x7f
	continuationBit = 0x80

	// maxBeforeShift is the largest accumulator that can take another group
	// without exceeding format.MaxPackedValue.
	maxBeforeShift = format.MaxPackedValue >> dataBitsPerByte
)

type byteSource interface {
	io.Reader
	io.ByteReader
}

// Stream reads index data sequentially and tracks how many bytes it consumed.
// A Stream is not safe for concurrent use.
type Stream struct {
	src     byteSource
	off     int64
	scratch [8]byte
}

// NewStream creates a stream over r. Readers that do not implement
// io.ByteReader are buffered.
func NewStream(r io.Reader) *Stream {
	if bs, ok := r.(byteSource); ok {
		return &Stream{src: bs}
	}
	return &Stream{src: bufio.NewReader(r)}
}

// Offset returns the number of bytes consumed so far.
func (s *Stream) Offset() int64 { return s.off }

// eof converts an end of input inside a structure into io.ErrUnexpectedEOF
// annotated with the failing offset.
func (s *Stream) eof(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("stream: offset %d: %w", s.off, err)
}

// ReadByte reads a single byte.
func (s *Stream) ReadByte() (byte, error) {
	b, err := s.src.ReadByte()
	if err != nil {
		return 0, s.eof(err)
	}
	s.off++
	return b, nil
}

// ReadU8 reads an unsigned byte.
func (s *Stream) ReadU8() (uint8, error) {
	return s.ReadByte()
}

// ReadBool reads a one-byte boolean.
func (s *Stream) ReadBool() (bool, error) {
	b, err := s.ReadByte()
	return b != 0, err
}

// ReadU16 reads a big-endian uint16.
func (s *Stream) ReadU16() (uint16, error) {
	if err := s.fill(2); err != nil {
		return 0, err
	}
	return buf.U16BE(s.scratch[:2]), nil
}

// ReadU32 reads a big-endian uint32.
func (s *Stream) ReadU32() (uint32, error) {
	if err := s.fill(4); err != nil {
		return 0, err
	}
	return buf.U32BE(s.scratch[:4]), nil
}

func (s *Stream) fill(n int) error {
	got, err := io.ReadFull(s.src, s.scratch[:n])
	s.off += int64(got)
	if err != nil {
		return s.eof(err)
	}
	return nil
}

// directReadMax is the largest length ReadFull allocates up front. Longer
// reads grow with the data actually delivered, so a forged length cannot
// force a large allocation.
const directReadMax = 64 << 10

// ReadFull reads exactly n bytes into a new slice.
func (s *Stream) ReadFull(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("stream: negative length %d", n)
	}
	if n <= directReadMax {
		out := make([]byte, n)
		got, err := io.ReadFull(s.src, out)
		s.off += int64(got)
		if err != nil {
			return nil, s.eof(err)
		}
		return out, nil
	}
	var b bytes.Buffer
	got, err := io.CopyN(&b, s.src, int64(n))
	s.off += got
	if err != nil {
		return nil, s.eof(err)
	}
	return b.Bytes(), nil
}

// Skip advances the position by n bytes.
func (s *Stream) Skip(n int) error {
	if n <= len(s.scratch) {
		return s.fill(n)
	}
	got, err := io.CopyN(io.Discard, s.src, int64(n))
	s.off += got
	if err != nil {
		return s.eof(err)
	}
	return nil
}

// ReadPackedU32 reads a packed unsigned integer of at most five bytes.
// Values above 2^31-1 fail with format.ErrPackedOverflow rather than wrap.
func (s *Stream) ReadPackedU32() (uint32, error) {
	var acc uint32
	for i := 0; i < format.MaxPackedBytes; i++ {
		b, err := s.ReadByte()
		if err != nil {
			return 0, err
		}
		if acc > maxBeforeShift {
			return 0, fmt.Errorf("stream: offset %d: %w", s.off, format.ErrPackedOverflow)
		}
		acc = acc<<dataBitsPerByte | uint32(b&dataMask)
		if b&continuationBit == 0 {
			return acc, nil
		}
	}
	return 0, fmt.Errorf("stream: offset %d: %w", s.off, format.ErrPackedOverflow)
}

// SkipPackedU32 consumes a packed unsigned integer without decoding it.
func (s *Stream) SkipPackedU32() error {
	for i := 0; i < format.MaxPackedBytes; i++ {
		b, err := s.ReadByte()
		if err != nil {
			return err
		}
		if b&continuationBit == 0 {
			return nil
		}
	}
	return fmt.Errorf("stream: offset %d: %w", s.off, format.ErrPackedOverflow)
}

// SkipPacked consumes n packed integers.
func (s *Stream) SkipPacked(n int) error {
	for i := 0; i < n; i++ {
		if err := s.SkipPackedU32(); err != nil {
			return err
		}
	}
	return nil
}

// ReadUTF reads a string stored as a big-endian uint16 byte length followed
// by modified UTF-8.
func (s *Stream) ReadUTF() (string, error) {
	n, err := s.ReadU16()
	if err != nil {
		return "", err
	}
	raw, err := s.ReadFull(int(n))
	if err != nil {
		return "", err
	}
	str, err := mutf8.String(raw)
	if err != nil {
		return "", fmt.Errorf("stream: offset %d: decode string: %w", s.off, err)
	}
	return str, nil
}
