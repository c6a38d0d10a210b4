package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

// TestMain applies a developer .env when one exists, mirroring main, so the
// command tests see the same environment the CLI would.
func TestMain(m *testing.M) {
	_ = godotenv.Load()
	os.Exit(m.Run())
}
