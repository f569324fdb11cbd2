package reader

import (
	"bytes"
	"testing"

	"github.com/joshuapare/annoindex/internal/packed"
)

// newStreamAt returns a stream over data[off:].
func newStreamAt(t *testing.T, data []byte, off int) *packed.Stream {
	t.Helper()
	return packed.NewStream(bytes.NewReader(data[off:]))
}
