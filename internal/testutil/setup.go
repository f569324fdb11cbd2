package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteIndexFile writes data to name inside a fresh temporary directory and
// returns the path.
//
// Example:
//
//	path := testutil.WriteIndexFile(t, "app.idx", testutil.LegacySingleClass())
//	f, err := annoindex.Open(path)
func WriteIndexFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write index file: %v", err)
	}
	return path
}
