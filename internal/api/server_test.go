package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgallion1/mdfmtr/internal/config"
	"github.com/dgallion1/mdfmtr/internal/pipeline"
	"github.com/dgallion1/mdfmtr/internal/stats"
)

func testConfig() config.Config {
	return config.Config{
		Port:           "8090",
		MaxLineLength:  80,
		WorkerCount:    2,
		MaxQueueSize:   10,
		MaxUploadBytes: 1 << 20,
		JobTTL:         time.Hour,
		StatsWindow:    time.Hour,
	}
}

func newTestServer(t *testing.T, cfg config.Config) *Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	latency := stats.NewLatency(cfg.StatsWindow)
	orch := pipeline.NewOrchestrator(cfg, latency, log)
	orch.Start(context.Background())
	t.Cleanup(orch.Stop)
	return NewServer(orch, latency, log, cfg)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, testConfig())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestFormat_FixesTextAndReports(t *testing.T) {
	srv := newTestServer(t, testConfig())
	body := `{"text": "#Title\n* item\n\n>> quoted\n", "title": "doc"}`
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/format", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		FixedText string              `json:"fixed_text"`
		Errors    map[string][]string `json:"errors"`
		Outline   struct {
			Title    string `json:"title"`
			Children []struct {
				Title string `json:"title"`
			} `json:"children"`
		} `json:"outline"`
	}
	decode(t, rec, &resp)

	if !strings.HasPrefix(resp.FixedText, "# Title\n") {
		t.Errorf("expected heading fixed, got %q", resp.FixedText)
	}
	if !strings.Contains(resp.FixedText, "- item") {
		t.Errorf("expected bullet unified, got %q", resp.FixedText)
	}
	if len(resp.Errors["3"]) == 0 {
		t.Errorf("expected double blockquote reported on line 3, got %v", resp.Errors)
	}
	if resp.Outline.Title != "doc" || len(resp.Outline.Children) != 1 || resp.Outline.Children[0].Title != "Title" {
		t.Errorf("unexpected outline %+v", resp.Outline)
	}
}

func TestFormat_PerRequestLineLength(t *testing.T) {
	srv := newTestServer(t, testConfig())
	body := `{"text": "short enough for eighty", "max_line_length": 5}`
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/format", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	decode(t, rec, &resp)
	if len(resp.Errors["0"]) != 1 {
		t.Errorf("expected one line-length finding, got %v", resp.Errors)
	}
}

func TestFormat_RejectsNonText(t *testing.T) {
	srv := newTestServer(t, testConfig())

	tests := []struct {
		name string
		body string
		want string
	}{
		{"number", `{"text": 42}`, "number"},
		{"null", `{"text": null}`, "null"},
		{"object", `{"text": {"a": 1}}`, "object"},
		{"array", `{"text": ["a"]}`, "array"},
		{"missing", `{}`, "text is required"},
		{"malformed", `{"text": `, "invalid JSON body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/format", strings.NewReader(tt.body)))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			var resp map[string]string
			decode(t, rec, &resp)
			if !strings.Contains(resp["error"], tt.want) {
				t.Errorf("expected error mentioning %q, got %q", tt.want, resp["error"])
			}
		})
	}
}

func TestAuth_RequiredWhenKeySet(t *testing.T) {
	cfg := testConfig()
	cfg.APIKey = "0123456789abcdef"
	srv := newTestServer(t, cfg)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong", "Bearer nope", http.StatusUnauthorized},
		{"valid", "Bearer 0123456789abcdef", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}

	// Health stays public.
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected public health check, got %d", rec.Code)
	}
}

func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		fw, err := mw.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		fw.Write([]byte(content))
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestBatchFormat_QueuesAndCompletes(t *testing.T) {
	srv := newTestServer(t, testConfig())
	body, ctype := multipartBody(t, map[string]string{
		"a.md":      "#A\ntext\n",
		"image.png": "not markdown",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/format/batch", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Jobs []map[string]any `json:"jobs"`
	}
	decode(t, rec, &resp)
	if len(resp.Jobs) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Jobs))
	}

	var jobID string
	for _, j := range resp.Jobs {
		switch j["filename"] {
		case "a.md":
			jobID, _ = j["job_id"].(string)
		case "image.png":
			if _, ok := j["error"]; !ok {
				t.Errorf("expected unsupported file to report an error, got %v", j)
			}
		}
	}
	if jobID == "" {
		t.Fatal("expected a job ID for a.md")
	}

	var snap pipeline.JobSnapshot
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		rec = httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs/"+jobID, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		decode(t, rec, &snap)
		if snap.Status == pipeline.StatusCompleted {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if snap.Status != pipeline.StatusCompleted {
		t.Fatalf("expected completed, got %q", snap.Status)
	}
	if snap.Output == nil || !strings.HasPrefix(snap.Output.FixedText, "# A\n") {
		t.Errorf("unexpected output %+v", snap.Output)
	}
}

func TestBatchFormat_RequiresFiles(t *testing.T) {
	srv := newTestServer(t, testConfig())
	body, ctype := multipartBody(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/format/batch", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestJobStatus_NotFound(t *testing.T) {
	srv := newTestServer(t, testConfig())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestStats_CountsFormatCalls(t *testing.T) {
	srv := newTestServer(t, testConfig())
	for range 3 {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/format", strings.NewReader(`{"text":"a\nb"}`)))
		if rec.Code != http.StatusOK {
			t.Fatalf("format: expected 200, got %d", rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	var resp struct {
		Format stats.Snapshot `json:"format"`
	}
	decode(t, rec, &resp)
	if resp.Format.Count != 3 {
		t.Errorf("expected 3 samples, got %d", resp.Format.Count)
	}
	if resp.Format.Lines != 6 {
		t.Errorf("expected 6 lines, got %d", resp.Format.Lines)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"notes.md", "notes.md"},
		{"../../etc/passwd.md", "passwd.md"},
		{`dir\evil.md`, "dir_evil.md"},
		{"", "unnamed"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
