package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	var cfg config
	cfg.port = 4000
	cfg.env = "testing"
	cfg.appName = "ci-pipeline-demo"
	cfg.shutdownTimeout = time.Second
	cfg.metrics.enabled = true
	cfg.cors.trustedOrigins = []string{"https://example.com"}

	return newApplication(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newLoggedApplication is newTestApplication with its log output captured.
func newLoggedApplication(t *testing.T) (*application, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	app := newTestApplication(t)
	app.logger = slog.New(slog.NewTextHandler(&buf, nil))

	return app, &buf
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	return rr
}
