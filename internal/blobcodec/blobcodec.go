// Package blobcodec detects and removes the compression some build tools
// wrap around index files. Plain blobs pass through untouched.
package blobcodec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Codec identifies the container around an index blob.
type Codec int

const (
	None Codec = iota
	Gzip
	Zstd
)

func (c Codec) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("Codec(%d)", int(c))
	}
}

var (
	gzipMagic = []byte{0x1F, 0x8B}
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
)

// ErrTooLarge is returned when the decompressed blob exceeds the bound.
var ErrTooLarge = errors.New("blobcodec: decompressed blob too large")

// Detect reports the codec of data from its leading bytes.
func Detect(data []byte) Codec {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	case bytes.HasPrefix(data, gzipMagic):
		return Gzip
	default:
		return None
	}
}

// Unwrap returns the decompressed content of data and the codec it found.
// A positive maxBytes bounds the decompressed size. Uncompressed input is
// returned as is and is not subject to the bound.
func Unwrap(data []byte, maxBytes int64) ([]byte, Codec, error) {
	codec := Detect(data)
	var (
		out []byte
		err error
	)
	switch codec {
	case None:
		return data, None, nil
	case Gzip:
		out, err = gunzip(data, maxBytes)
	case Zstd:
		out, err = unzstd(data, maxBytes)
	}
	if err != nil {
		return nil, codec, fmt.Errorf("blobcodec: %s: %w", codec, err)
	}
	return out, codec, nil
}

func gunzip(data []byte, maxBytes int64) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return readAllBounded(zr, maxBytes)
}

var zstdPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil
		}
		return dec
	},
}

func unzstd(data []byte, maxBytes int64) ([]byte, error) {
	dec, ok := zstdPool.Get().(*zstd.Decoder)
	if !ok || dec == nil {
		var err error
		if dec, err = zstd.NewReader(nil, zstd.WithDecoderConcurrency(1)); err != nil {
			return nil, err
		}
	}
	defer func() {
		_ = dec.Reset(nil)
		zstdPool.Put(dec)
	}()
	if err := dec.Reset(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return readAllBounded(dec, maxBytes)
}

func readAllBounded(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes > 0 {
		r = io.LimitReader(r, maxBytes+1)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if maxBytes > 0 && int64(len(out)) > maxBytes {
		return nil, fmt.Errorf("more than %d bytes: %w", maxBytes, ErrTooLarge)
	}
	return out, nil
}
