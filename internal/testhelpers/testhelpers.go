// Package testhelpers provides small utilities shared by package tests.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile writes content to a file named name inside a fresh temporary
// directory and returns the file's path. The directory is cleaned up when the
// test finishes.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err, "Failed to write test file")

	return path
}
