package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/cv-scorer/internal/analyzer"
)

type stubAnalyzer struct {
	mu       sync.Mutex
	requests []analyzer.Request
}

func (s *stubAnalyzer) Analyze(_ context.Context, req analyzer.Request) *analyzer.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	return &analyzer.Report{Score: 71, Metadata: analyzer.Metadata{AnalysisID: "id-1", MatchType: "direct"}}
}

func newTestServer() (*Server, *stubAnalyzer) {
	stub := &stubAnalyzer{}
	return New(stub, Options{Version: "test"}, nil), stub
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v), string(body))
}

func multipartBody(t *testing.T, files map[string][2]string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for field, f := range files {
		part, err := w.CreateFormFile(field, f[0])
		require.NoError(t, err)
		_, err = part.Write([]byte(f[1]))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer()

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestAnalyzeJSON(t *testing.T) {
	s, stub := newTestServer()

	payload := `{"cvText":"Fire Safety Officer","industry":" fire safety ","role":"officer","generic":true,"jobDescription":"NEBOSH required"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var report analyzer.Report
	decode(t, resp, &report)
	assert.Equal(t, 71, report.Score)
	assert.Equal(t, "id-1", report.Metadata.AnalysisID)

	require.Len(t, stub.requests, 1)
	assert.Equal(t, analyzer.Request{
		CVText:         "Fire Safety Officer",
		Industry:       "fire safety",
		Role:           "officer",
		Generic:        true,
		JobDescription: "NEBOSH required",
	}, stub.requests[0])
}

func TestAnalyzeJSONValidation(t *testing.T) {
	s, stub := newTestServer()

	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"missing cv", `{"industry":"technology"}`, "CVText failed required"},
		{"industry too long", `{"cvText":"x","industry":"` + strings.Repeat("a", 101) + `"}`, "Industry failed max"},
		{"malformed", `{"cvText":`, "invalid request payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(tt.payload))
			req.Header.Set("Content-Type", "application/json")

			resp, err := s.App().Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body map[string]any
			decode(t, resp, &body)
			assert.Contains(t, body["error"], tt.want)
		})
	}
	assert.Empty(t, stub.requests)
}

func TestAnalyzeUpload(t *testing.T) {
	s, stub := newTestServer()

	body, contentType := multipartBody(t,
		map[string][2]string{
			"cv":  {"cv.txt", "Data analyst with SQL"},
			"job": {"job.html", "<html><body><p>SQL required</p></body></html>"},
		},
		map[string]string{"industry": "technology", "generic": "false"},
	)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, stub.requests, 1)
	got := stub.requests[0]
	assert.Equal(t, "Data analyst with SQL", got.CVText)
	assert.Equal(t, "SQL required", got.JobDescription)
	assert.Equal(t, "technology", got.Industry)
	assert.False(t, got.Generic)
}

func TestAnalyzeUploadErrors(t *testing.T) {
	s, _ := newTestServer()

	tests := []struct {
		name   string
		files  map[string][2]string
		fields map[string]string
		status int
	}{
		{"missing cv", nil, map[string]string{"industry": "technology"}, http.StatusBadRequest},
		{"unsupported format", map[string][2]string{"cv": {"cv.docx", "PK"}}, nil, http.StatusUnsupportedMediaType},
		{"empty cv", map[string][2]string{"cv": {"cv.txt", "  \n "}}, nil, http.StatusUnprocessableEntity},
		{"bad generic flag", map[string][2]string{"cv": {"cv.txt", "text"}}, map[string]string{"generic": "maybe"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartBody(t, tt.files, tt.fields)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/upload", body)
			req.Header.Set("Content-Type", contentType)

			resp, err := s.App().Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			_ = resp.Body.Close()
		})
	}
}
