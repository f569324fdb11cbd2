package main

import (
	"bytes"
	"testing"

	"github.com/joshuapare/annoindex/internal/testutil"
)

// resetFlags restores every global flag to its default.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	yamlOut = false
	strict = false
	classesExtends = ""
	classesImplements = ""
}

// fixturePaths writes the standard test indexes and returns their paths.
func fixturePaths(t *testing.T) (legacy, current string) {
	t.Helper()
	legacy = testutil.WriteIndexFile(t, "members.idx", testutil.LegacyMembers())
	current = testutil.WriteIndexFile(t, "shared.idx", testutil.CurrentSharedField())
	return legacy, current
}

func run(t *testing.T, fn func(*bytes.Buffer) error) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := fn(&out)
	return out.String(), err
}
