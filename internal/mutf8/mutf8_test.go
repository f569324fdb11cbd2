package mutf8

import (
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"ascii", []byte("com.example.Foo"), "com.example.Foo"},
		{"empty", nil, ""},
		{"two byte", []byte("caf\xc3\xa9"), "café"},
		{"three byte", []byte("\xe2\x82\xac"), "€"},
		{"encoded null", []byte{'a', 0xC0, 0x80, 'b'}, "a\x00b"},
		// U+1F600 as the surrogate pair D83D DE00.
		{"surrogate pair", []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}, "\U0001F600"},
		{"lone high surrogate", []byte{0xED, 0xA0, 0xBD, 'x'}, string(utf8.RuneError) + "x"},
		{"lone low surrogate", []byte{0xED, 0xB8, 0x80}, string(utf8.RuneError)},
		{"invalid byte", []byte{'a', 0xFF, 'b'}, "a" + string(utf8.RuneError) + "b"},
		{"hangul in ED range", []byte("\xed\x95\x9c"), "한"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecoderStreaming(t *testing.T) {
	// Many pairs force the transformer through short src/dst boundaries.
	pair := string([]byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80})
	in := strings.Repeat("ab"+pair+"\xc0\x80", 2000)

	r := transform.NewReader(strings.NewReader(in), Decoder)
	var sb strings.Builder
	_, err := io.Copy(&sb, r)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("ab\U0001F600\x00", 2000), sb.String())
}
