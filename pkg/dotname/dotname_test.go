package dotname

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain(t *testing.T, parts ...string) *Name {
	t.Helper()
	var cur *Name
	for _, p := range parts {
		inner := false
		if len(p) > 0 && p[0] == '$' {
			inner, p = true, p[1:]
		}
		next, err := NewComponent(cur, p, inner)
		require.NoError(t, err)
		cur = next
	}
	return cur
}

func TestNewSimple(t *testing.T) {
	n, err := NewSimple("toString")
	require.NoError(t, err)
	require.False(t, n.IsComponentized())
	require.Nil(t, n.Prefix())
	require.Equal(t, "toString", n.String())

	_, err = NewSimple("a.b")
	require.ErrorIs(t, err, ErrInvalidName)

	require.Panics(t, func() { MustSimple("x.y") })
}

func TestNewComponent_Invariants(t *testing.T) {
	simple := MustSimple("java")
	_, err := NewComponent(simple, "lang", false)
	require.ErrorIs(t, err, ErrInvalidName, "simple prefix")

	_, err = NewComponent(nil, "Inner", true)
	require.ErrorIs(t, err, ErrInvalidName, "inner without prefix")

	root, err := NewComponent(nil, "java", false)
	require.NoError(t, err)
	inner, err := NewComponent(root, "Entry", true)
	require.NoError(t, err)
	require.True(t, inner.IsInner())
	require.Same(t, root, inner.Prefix())
}

func TestString(t *testing.T) {
	tests := []struct {
		name *Name
		want string
	}{
		{chain(t, "a", "b", "C"), "a.b.C"},
		{chain(t, "java", "util", "Map", "$Entry"), "java.util.Map$Entry"},
		{chain(t, "Top"), "Top"},
		{MustSimple("lambda$0"), "lambda$0"},
		{Placeholder(), ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.name.String())
	}
	var nilName *Name
	assert.Equal(t, "", nilName.String())
}

func TestParse(t *testing.T) {
	n, err := Parse("java.util.Map$Entry")
	require.NoError(t, err)
	require.Equal(t, "java.util.Map$Entry", n.String())
	require.True(t, n.IsInner())
	require.Equal(t, "Entry", n.Local())
	require.Equal(t, "java.util.Map", n.Prefix().String())

	p, err := Parse("")
	require.NoError(t, err)
	require.True(t, p.IsPlaceholder())
}

func TestEqualAcrossConstructionPaths(t *testing.T) {
	shared := chain(t, "com", "example")
	viaShared, err := NewComponent(shared, "Foo", false)
	require.NoError(t, err)
	fresh := chain(t, "com", "example", "Foo")
	parsed, err := Parse("com.example.Foo")
	require.NoError(t, err)
	// A root segment that holds dots prints the same string.
	flat, err := NewComponent(nil, "com.example.Foo", false)
	require.NoError(t, err)

	for _, other := range []*Name{fresh, parsed, flat} {
		require.True(t, viaShared.Equal(other), "%s vs %s", viaShared, other)
		require.True(t, other.Equal(viaShared))
		require.Equal(t, viaShared.String(), other.String())
		require.Equal(t, viaShared.Hash(), other.Hash())
		require.Zero(t, Compare(viaShared, other))
		require.Zero(t, Compare(other, viaShared))
	}

	simple := MustSimple("Foo")
	root := chain(t, "Foo")
	require.True(t, simple.Equal(root))
	require.Equal(t, simple.Hash(), root.Hash())
	require.Zero(t, Compare(simple, root))
}

func TestNotEqual(t *testing.T) {
	require.False(t, chain(t, "a", "b", "C").Equal(chain(t, "a", "b", "$C")))
	require.False(t, chain(t, "a", "b").Equal(chain(t, "a", "b", "C")))
	require.False(t, chain(t, "a").Equal(nil))
	require.NotZero(t, Compare(chain(t, "a", "b", "C"), chain(t, "a", "b", "$C")))
}

func TestCompareOrdering(t *testing.T) {
	tests := []struct {
		a, b *Name
		want int
	}{
		{chain(t, "a", "b"), chain(t, "a", "c"), -1},
		{chain(t, "a", "c"), chain(t, "a", "b"), 1},
		{chain(t, "a", "b"), chain(t, "a", "b", "C"), -1},
		{chain(t, "a", "b", "C"), chain(t, "a", "b"), 1},
		{chain(t, "a", "b", "C"), chain(t, "a", "b", "$C"), -1},
		// Segment order, not byte order: "a.b" sorts before "a-c".
		{chain(t, "a", "b"), chain(t, "a-c"), -1},
		{MustSimple("zeta"), chain(t, "alpha", "beta"), 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Compare(tt.a, tt.b), "%s <=> %s", tt.a, tt.b)
		assert.Equal(t, -tt.want, tt.b.Compare(tt.a), "%s <=> %s", tt.b, tt.a)
	}
}

func TestCompareIsTotalOrder(t *testing.T) {
	inputs := []string{
		"a", "a.b", "a.b.C", "a.b$C", "a.c", "a-c", "b", "a.b.C$D", "a.b.C.D", "ab", "a$b",
	}
	var names []*Name
	for _, s := range inputs {
		n, err := Parse(s)
		require.NoError(t, err)
		names = append(names, n)
	}

	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 5; i++ {
		rnd.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
		sorted := slices.Clone(names)
		slices.SortFunc(sorted, Compare)
		for j := 1; j < len(sorted); j++ {
			require.Negative(t, Compare(sorted[j-1], sorted[j]), "%s !< %s", sorted[j-1], sorted[j])
		}
		for _, a := range names {
			for _, b := range names {
				for _, c := range names {
					if Compare(a, b) < 0 && Compare(b, c) < 0 {
						require.Negative(t, Compare(a, c), "%s < %s < %s", a, b, c)
					}
				}
			}
		}
	}
}

func TestPlaceholderIsShared(t *testing.T) {
	p := Placeholder()
	require.Same(t, p, Placeholder())
	assert.True(t, p.IsPlaceholder())

	parsed, err := Parse("")
	require.NoError(t, err)
	assert.Same(t, p, parsed)

	// An empty simple name built elsewhere is a distinct value.
	empty, err := NewSimple("")
	require.NoError(t, err)
	assert.False(t, empty.IsPlaceholder())
	assert.True(t, empty.Equal(p))
}
