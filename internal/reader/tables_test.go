package reader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/annoindex/internal/format"
	"github.com/joshuapare/annoindex/pkg/dotname"
	"github.com/joshuapare/annoindex/pkg/types"
)

func TestNameTree(t *testing.T) {
	tree := newNameTree(types.DefaultLimits())
	entries := []struct {
		depth int
		local string
		inner bool
		want  string
	}{
		{0, "java", false, "java"},
		{1, "util", false, "java.util"},
		{2, "Map", false, "java.util.Map"},
		{3, "Entry", true, "java.util.Map$Entry"},
		{2, "List", false, "java.util.List"},
		{1, "io", false, "java.io"},
		{0, "org", false, "org"},
		{1, "x", false, "org.x"},
	}
	got := make([]*dotname.Name, len(entries))
	for i, e := range entries {
		n, err := tree.add(e.depth, e.local, e.inner)
		require.NoError(t, err)
		require.Equal(t, e.want, n.String())
		got[i] = n
	}
	require.Same(t, got[2], got[3].Prefix())
	require.Same(t, got[1], got[4].Prefix())
	require.Same(t, got[0], got[5].Prefix())
	require.Nil(t, got[6].Prefix())
}

func TestNameTree_ClimbAboveRoot(t *testing.T) {
	tree := newNameTree(types.DefaultLimits())
	_, err := tree.add(0, "a", false)
	require.NoError(t, err)
	_, err = tree.add(3, "b", false)
	require.NoError(t, err)
	_, err = tree.add(0, "c", false)
	require.ErrorIs(t, err, format.ErrBadReference)
}

func TestNameTree_InnerAtRoot(t *testing.T) {
	tree := newNameTree(types.DefaultLimits())
	_, err := tree.add(0, "Outer", true)
	require.ErrorIs(t, err, dotname.ErrInvalidName)
}
