package ingestion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEnd_TextFile(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "input.txt")
	testContent := "# Senior Software Engineer\n\n## Requirements\n- Go experience\n- Distributed systems"
	err := os.WriteFile(testFile, []byte(testContent), 0644)
	require.NoError(t, err)

	cleanedText, metadata, err := IngestFromFile(testFile)
	require.NoError(t, err)

	assert.Contains(t, cleanedText, "Senior Software Engineer")
	assert.Contains(t, cleanedText, "Requirements")
	assert.NotNil(t, metadata)
	assert.NotEmpty(t, metadata.Timestamp)
	assert.NotEmpty(t, metadata.Hash)
}

func TestEndToEnd_URLToRequirements(t *testing.T) {
	htmlContent := `<!DOCTYPE html>
<html>
<body>
<nav>Nav</nav>
<main>
<h1>Senior Software Engineer</h1>
<article>
<h2>Requirements</h2>
<ul>
<li>Go experience</li>
<li>PostgreSQL and Redis</li>
<li>AWS deployments</li>
</ul>
</article>
</main>
<footer>Footer</footer>
</body>
</html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(htmlContent))
	}))
	defer server.Close()

	reqs, metadata, err := IngestRole(context.Background(), server.URL, false)
	require.NoError(t, err)

	assert.Contains(t, reqs.RequiredSkills, "Go")
	assert.Contains(t, reqs.RequiredSkills, "PostgreSQL")
	assert.Contains(t, reqs.RequiredSkills, "AWS")

	// The requirements serialize for the API and CLI.
	payload, err := json.Marshal(reqs)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "required_skills")

	require.NotNil(t, metadata)
	assert.Equal(t, server.URL, metadata.URL)
}
