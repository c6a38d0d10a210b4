package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the resume_insight binary for the
// end-to-end command tests. Tests that need it skip when the binary has
// not been built.
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_insight"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/resume_insight ./cmd/resume_insight'", binaryPath)
	}

	return binaryPath
}

// writeTempFile writes content to name under a fresh temp dir and returns
// the full path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}
