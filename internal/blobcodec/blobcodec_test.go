package blobcodec

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var plain = []byte{0xBA, 0xBE, 0x1F, 0x15, 0x06, 0x00, 0x00, 0x00}

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var b bytes.Buffer
	zw := gzip.NewWriter(&b)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return b.Bytes()
}

func zstded(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func TestDetect(t *testing.T) {
	assert.Equal(t, None, Detect(plain))
	assert.Equal(t, None, Detect(nil))
	assert.Equal(t, Gzip, Detect(gzipped(t, plain)))
	assert.Equal(t, Zstd, Detect(zstded(t, plain)))
}

func TestUnwrap(t *testing.T) {
	cases := map[Codec][]byte{
		None: plain,
		Gzip: gzipped(t, plain),
		Zstd: zstded(t, plain),
	}
	for codec, data := range cases {
		t.Run(codec.String(), func(t *testing.T) {
			out, got, err := Unwrap(data, 1<<20)
			require.NoError(t, err)
			assert.Equal(t, codec, got)
			assert.Equal(t, plain, out)
		})
	}
}

func TestUnwrap_Bound(t *testing.T) {
	big := bytes.Repeat([]byte{0xAB}, 4096)
	for _, data := range [][]byte{gzipped(t, big), zstded(t, big)} {
		_, _, err := Unwrap(data, 1024)
		require.ErrorIs(t, err, ErrTooLarge)

		out, _, err := Unwrap(data, 0)
		require.NoError(t, err)
		require.Len(t, out, len(big))
	}
}

func TestUnwrap_Corrupt(t *testing.T) {
	data := gzipped(t, plain)
	data = data[:len(data)-6]
	_, codec, err := Unwrap(data, 0)
	require.Error(t, err)
	assert.Equal(t, Gzip, codec)

	_, _, err = Unwrap(append([]byte(nil), zstdMagic...), 0)
	require.Error(t, err)
}

func TestCodecString(t *testing.T) {
	assert.Equal(t, "Codec(9)", Codec(9).String())
}
