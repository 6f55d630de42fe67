package server

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// captureLog redirects the standard logger into a buffer for the test
func captureLog(t *testing.T, noColor bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	flags, prevNoColor := log.Flags(), color.NoColor
	log.SetOutput(&buf)
	log.SetFlags(0)
	color.NoColor = noColor
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
		color.NoColor = prevNoColor
	})
	return &buf
}

func TestLogRequestColors(t *testing.T) {
	if os.Getenv("NO_COLOR") != "" {
		t.Skip("NO_COLOR set")
	}

	tests := []struct {
		status string
		code   string
	}{
		{"200", "\x1b[32m"},
		{"301", "\x1b[33m"},
		{"404", "\x1b[31m"},
		{"405", "\x1b[31m"},
		{"500", "\x1b[35m"},
	}

	for _, test := range tests {
		buf := captureLog(t, false)
		logRequest("GET", "/x", test.status)
		line := buf.String()
		if !strings.Contains(line, test.code) || !strings.Contains(line, "GET /x "+test.status) {
			t.Errorf("Status %s: expected color %q, got %q", test.status, test.code, line)
		}
	}
}

func TestRequestLogging(t *testing.T) {
	srv := newTestSite(t)
	srv.config.EnableLogging = true
	buf := captureLog(t, true)

	roundTrip(t, srv, "GET /index.html HTTP/1.1\r\n\r\n")
	roundTrip(t, srv, "HEAD /sub HTTP/1.1\r\n\r\n")
	roundTrip(t, srv, "POST /index.html HTTP/1.1\r\n\r\n")
	roundTrip(t, srv, "GET /dir.html HTTP/1.1\r\n\r\n")

	output := buf.String()
	expectedLines := []string{
		"GET /index.html 200\n",
		"HEAD /sub 301\n",
		"- - 405\n",
		"GET /dir.html 500\n",
	}
	for _, line := range expectedLines {
		if !strings.Contains(output, line) {
			t.Errorf("Log missing %q in %q", line, output)
		}
	}
	if !strings.Contains(output, "cannot open file at "+srv.Root()) {
		t.Errorf("Read failure should be logged with its path, got %q", output)
	}
}

func TestRequestLoggingDisabled(t *testing.T) {
	srv := newTestSite(t)
	buf := captureLog(t, true)

	roundTrip(t, srv, "GET /index.html HTTP/1.1\r\n\r\n")
	if buf.Len() != 0 {
		t.Errorf("Expected no request log, got %q", buf.String())
	}

	// failures are logged regardless
	roundTrip(t, srv, "GET /dir.html HTTP/1.1\r\n\r\n")
	if !strings.Contains(buf.String(), "cannot open file at") {
		t.Errorf("Expected failure log, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "GET /dir.html 500") {
		t.Errorf("Request line logged while disabled: %q", buf.String())
	}
}
