package main

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunIngestRole_InvalidURL(t *testing.T) {
	err := runIngestRole(nil, []string{"not-a-url"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestRunIngestRole_MissingSource(t *testing.T) {
	err := runIngestRole(nil, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "either a posting URL or --file")
}

func TestRunIngestRole_MutuallyExclusiveSources(t *testing.T) {
	ingestRoleFile = "posting.txt"
	t.Cleanup(func() { ingestRoleFile = "" })

	err := runIngestRole(nil, []string{"https://example.com/jobs/1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestRunIngestRole_FromFile(t *testing.T) {
	path := writeTempFile(t, "posting.txt", "## Requirements\n- golang and postgres in production")

	ingestRoleFile = path
	t.Cleanup(func() { ingestRoleFile = "" })

	err := runIngestRole(nil, nil)
	require.NoError(t, err)
}

func TestRunIngestRole_SavesArtifacts(t *testing.T) {
	path := writeTempFile(t, "posting.txt", "## Requirements\n- golang and postgres in production")
	outDir := filepath.Join(t.TempDir(), "saved")

	ingestRoleFile = path
	ingestRoleOut = outDir
	t.Cleanup(func() {
		ingestRoleFile = ""
		ingestRoleOut = ""
	})

	err := runIngestRole(nil, nil)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outDir, "job_posting.cleaned.txt"))
	assert.FileExists(t, filepath.Join(outDir, "job_posting.meta.json"))
}

func TestRunIngestRole_FromMissingFile(t *testing.T) {
	ingestRoleFile = "/nonexistent/posting.txt"
	t.Cleanup(func() { ingestRoleFile = "" })

	err := runIngestRole(nil, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ingest job posting")
}

func TestIngestRoleCommand_MissingSource(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "ingest-role")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either a posting URL or --file")
}
