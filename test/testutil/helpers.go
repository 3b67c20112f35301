// Package testutil carries helpers shared across test packages.
package testutil

import (
	"path/filepath"
	"runtime"
	"testing"
)

// TestDataPath resolves a file under test/testdata to an absolute
// path, so callers work no matter which package directory the test
// binary runs from.
func TestDataPath(t *testing.T, filename string) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot locate the testutil source file")
	}

	root := filepath.Join(filepath.Dir(thisFile), "..", "..")
	return filepath.Join(root, "test", "testdata", filename)
}
