package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.idx")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestMap(t *testing.T) {
	want := []byte{0xBA, 0xBE, 0x1F, 0x15, 0x06}
	data, release, err := Map(writeFile(t, want), 0)
	require.NoError(t, err)
	require.Equal(t, want, data)
	require.NoError(t, release())
	require.NoError(t, release(), "second release is a no-op")
}

func TestMap_ZeroLength(t *testing.T) {
	data, release, err := Map(writeFile(t, nil), 0)
	require.NoError(t, err)
	require.Empty(t, data)
	require.NotNil(t, release)
	require.NoError(t, release())
}

func TestMap_TooLarge(t *testing.T) {
	_, release, err := Map(writeFile(t, make([]byte, 64)), 32)
	require.ErrorIs(t, err, ErrTooLarge)
	require.NoError(t, release())
}

func TestMap_Missing(t *testing.T) {
	_, release, err := Map(filepath.Join(t.TempDir(), "missing"), 0)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.NoError(t, release())
}
