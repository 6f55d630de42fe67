package server

import (
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
)

// newTestSite lays out a root directory inside a temp dir and returns the
// server for it. A secret.html sits next to the root, outside of it.
func newTestSite(t *testing.T) *Server {
	t.Helper()
	base := t.TempDir()
	root := filepath.Join(base, "www")

	files := map[string]string{
		"index.html":     "hello",
		"style.css":      "body{}",
		"app.js":         "run()",
		"sub/index.html": "sub page",
		"empty/.keep":    "",
	}
	for name, content := range files {
		writeTestFile(t, filepath.Join(root, name), content)
	}
	if err := os.MkdirAll(filepath.Join(root, "dir.html"), 0o755); err != nil {
		t.Fatalf("Failed to create dir.html: %v", err)
	}
	writeTestFile(t, filepath.Join(base, "secret.html"), "top secret")

	cfg := DefaultConfig()
	cfg.Root = root
	cfg.EnableLogging = false
	srv, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	return srv
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// roundTrip sends request over an in-memory connection and returns everything
// the server wrote before closing it.
func roundTrip(t *testing.T, srv *Server, request string) string {
	t.Helper()
	client, conn := net.Pipe()
	defer client.Close()

	done := make(chan struct{})
	go func() {
		srv.RunConnection(conn)
		close(done)
	}()
	go client.Write([]byte(request))

	response, err := io.ReadAll(client)
	if err != nil {
		t.Fatalf("Failed to read response: %v", err)
	}
	<-done
	return string(response)
}
