package annoindex

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/annoindex/internal/format"
	"github.com/joshuapare/annoindex/internal/mmfile"
	"github.com/joshuapare/annoindex/internal/testutil"
	"github.com/joshuapare/annoindex/pkg/types"
)

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

func TestRead(t *testing.T) {
	idx, err := Read(bytes.NewReader(testutil.LegacySingleClass()))
	require.NoError(t, err)
	require.Equal(t, 1, idx.Len())

	rec, ok := idx.Get("a.b.C")
	require.True(t, ok)
	assert.Equal(t, []string{"a.b.Ann"}, Names(rec.ClassAnnotations()))
}

func TestRead_ByteReaderStopsAtIndexEnd(t *testing.T) {
	trailer := []byte("next")
	r := bytes.NewReader(append(testutil.LegacySingleClass(), trailer...))
	_, err := Read(r)
	require.NoError(t, err)
	require.Equal(t, len(trailer), r.Len())
}

func TestReadBytes_Current(t *testing.T) {
	idx, err := ReadBytes(testutil.CurrentSharedField())
	require.NoError(t, err)
	require.Equal(t, format.CurrentVersion, idx.Version())

	subs := idx.Subclasses("a.b.Base")
	require.Len(t, subs, 1)
	assert.Equal(t, "a.b.C", subs[0].Name().String())

	impls := idx.Implementors("a.b.Base")
	require.Len(t, impls, 1)
	assert.Equal(t, "a.b.C", impls[0].Name().String())

	assert.Len(t, idx.AnnotatedWith("a.b.Ann"), 2)
}

func TestReadBytes_Errors(t *testing.T) {
	_, err := ReadBytes(testutil.Header(99).Bytes())
	require.Error(t, err)
	assert.True(t, types.IsFormat(err))

	blob := testutil.CurrentSharedField()
	_, err = ReadBytes(blob[:len(blob)/2])
	require.Error(t, err)
	assert.True(t, types.IsIO(err))
}

func TestWithLogger(t *testing.T) {
	var out bytes.Buffer
	l := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := ReadBytes(testutil.CurrentSharedField(), WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "decoded index")
	assert.Contains(t, out.String(), "annotations=6")
	assert.Contains(t, out.String(), "type_lists=1")
}

func TestWithLimits(t *testing.T) {
	limits := types.DefaultLimits()
	limits.MaxNameDepth = 1
	_, err := ReadBytes(testutil.LegacySingleClass(), WithLimits(limits))
	require.ErrorIs(t, err, format.ErrLimitExceeded)
}

func TestOpen_Codecs(t *testing.T) {
	plain := testutil.LegacyMembers()
	stored := map[string][]byte{
		"none": plain,
		"gzip": gzipped(t, plain),
		"zstd": zstded(t, plain),
	}
	for codec, data := range stored {
		t.Run(codec, func(t *testing.T) {
			path := testutil.WriteIndexFile(t, "members.idx", data)
			f, err := Open(path)
			require.NoError(t, err)

			assert.Equal(t, path, f.Path)
			assert.Equal(t, codec, f.Codec)
			assert.Equal(t, int64(len(data)), f.Size)
			assert.Equal(t, digest.FromBytes(data), f.Digest)
			require.NoError(t, f.Digest.Validate())

			bean, ok := f.Index.Get("a.b.Bean")
			require.True(t, ok)
			assert.Equal(t, []string{"a.b.Named", "a.b.Entity"}, Names(bean.ClassAnnotations()))
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.idx"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := testutil.WriteIndexFile(t, "big.idx", testutil.LegacyMembers())
	limits := types.DefaultLimits()
	limits.MaxIndexBytes = 16
	_, err = Open(path, WithLimits(limits))
	require.ErrorIs(t, err, mmfile.ErrTooLarge)

	path = testutil.WriteIndexFile(t, "bad.idx", testutil.NewBlob().U32(0xCAFEBABE).U8(6).Bytes())
	_, err = Open(path)
	require.ErrorIs(t, err, format.ErrBadMagic)
	assert.Contains(t, err.Error(), path)
}

func TestOpenAll(t *testing.T) {
	blobs := [][]byte{
		testutil.LegacySingleClass(),
		testutil.LegacyMembers(),
		testutil.CurrentSharedField(),
	}
	var paths []string
	for _, b := range blobs {
		paths = append(paths, testutil.WriteIndexFile(t, "part.idx", b))
	}

	files, err := OpenAll(context.Background(), paths, WithConcurrency(2))
	require.NoError(t, err)
	require.Len(t, files, len(paths))
	for i, f := range files {
		assert.Equal(t, paths[i], f.Path)
	}
	assert.Equal(t, 3, files[0].Index.Version())
	assert.Equal(t, 2, files[1].Index.Version())
	assert.Equal(t, format.CurrentVersion, files[2].Index.Version())
}

func TestOpenAll_Failure(t *testing.T) {
	paths := []string{
		testutil.WriteIndexFile(t, "good.idx", testutil.LegacySingleClass()),
		testutil.WriteIndexFile(t, "bad.idx", testutil.Header(99).Bytes()),
	}
	files, err := OpenAll(context.Background(), paths)
	require.Nil(t, files)
	require.ErrorIs(t, err, format.ErrUnsupportedVersion)
}

func TestOpenAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	paths := []string{testutil.WriteIndexFile(t, "good.idx", testutil.LegacySingleClass())}
	files, err := OpenAll(ctx, paths)
	require.Nil(t, files)
	require.ErrorIs(t, err, context.Canceled)
}

func TestOpenAll_Empty(t *testing.T) {
	files, err := OpenAll(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, files)
}
