// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// captureLog routes the default logger to a JSON buffer for one test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

// logRecords decodes every JSON line written to buf.
func logRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		out = append(out, rec)
	}
	return out
}

func TestRecovererPanicValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"string", "ticket table missing"},
		{"integer", 42},
		{"error", http.ErrBodyNotAllowed},
		{"struct pointer", strings.NewReader("reader")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureLog(t)
			handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.value)
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			if rr.Code != http.StatusInternalServerError {
				t.Errorf("status: got %d, want 500", rr.Code)
			}
			if !strings.Contains(rr.Body.String(), "Internal Server Error") {
				t.Errorf("body: got %q", rr.Body.String())
			}
		})
	}
}

func TestRecovererLogsRequest(t *testing.T) {
	buf := captureLog(t)
	handler := RequestID(Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("venue map unavailable")
	})))

	req := httptest.NewRequest(http.MethodPost, "/assets/site.css", nil)
	req.Header.Set(RequestIDHeader, "req-summer-2025")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var found map[string]any
	for _, rec := range logRecords(t, buf) {
		if rec["msg"] == "panic recovered" {
			found = rec
		}
	}
	if found == nil {
		t.Fatalf("no panic record in log: %s", buf.String())
	}

	want := map[string]string{
		"request_id": "req-summer-2025",
		"method":     http.MethodPost,
		"path":       "/assets/site.css",
		"error":      "venue map unavailable",
		"level":      "ERROR",
	}
	for key, v := range want {
		if got, _ := found[key].(string); got != v {
			t.Errorf("%s: got %q, want %q", key, got, v)
		}
	}
	if stack, _ := found["stack"].(string); !strings.Contains(stack, "goroutine") {
		t.Error("stack trace missing from panic record")
	}
}

func TestRecovererReraisesAbort(t *testing.T) {
	handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", rec)
		}
	}()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	t.Error("ServeHTTP should not return normally")
}

func TestRecovererPassThrough(t *testing.T) {
	buf := captureLog(t)
	handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}))

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodPost} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(method, "/", nil))

		if rr.Code != http.StatusOK {
			t.Errorf("%s status: got %d, want 200", method, rr.Code)
		}
		if got := rr.Header().Get("ETag"); got != `"abc"` {
			t.Errorf("%s ETag: got %q", method, got)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}
