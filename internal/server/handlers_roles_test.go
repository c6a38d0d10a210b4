package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insight/internal/ingestion"
	"github.com/jonathan/resume-insight/internal/types"
)

const postingHTML = `<html><body>
<nav>Careers</nav>
<main>
<h1>Backend Engineer</h1>
<p>We build services in Go, back them with PostgreSQL, and ship with Docker.</p>
</main>
<footer>Example Corp</footer>
</body></html>`

func TestHandleIngestRole_HarvestsSkills(t *testing.T) {
	s, _ := newTestServer(t)

	posting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, postingHTML)
	}))
	defer posting.Close()

	body := fmt.Sprintf(`{"url": %q}`, posting.URL+"/jobs/123")
	w := doRequest(t, s, http.MethodPost, "/api/v1/roles/ingest", body, "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Requirements types.JobRequirements `json:"requirements"`
		Metadata     ingestion.Metadata    `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, []string{"Go", "PostgreSQL", "Docker"}, resp.Requirements.RequiredSkills)
	assert.Equal(t, posting.URL+"/jobs/123", resp.Metadata.URL)
	assert.Equal(t, "unknown", resp.Metadata.Platform)
	assert.Len(t, resp.Metadata.Hash, 64)
}

func TestHandleIngestRole_BadURL(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"relative", "careers/backend"},
		{"no host", "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := fmt.Sprintf(`{"url": %q}`, tt.url)
			w := doRequest(t, s, http.MethodPost, "/api/v1/roles/ingest", body, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "absolute http(s) URL")
		})
	}
}

func TestHandleIngestRole_InvalidJSON(t *testing.T) {
	s, _ := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/api/v1/roles/ingest", "{not json", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestHandleIngestRole_UpstreamFailure(t *testing.T) {
	s, _ := newTestServer(t)

	posting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer posting.Close()

	body := fmt.Sprintf(`{"url": %q}`, posting.URL)
	w := doRequest(t, s, http.MethodPost, "/api/v1/roles/ingest", body, "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "upstream_error")
}
