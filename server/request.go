package server

import (
	"bytes"
)

// Request is the part of an incoming request the server acts on
type Request struct {
	Method string
	Path   string
}

var supportedMethods = [][]byte{[]byte("GET"), []byte("HEAD")}

// ParseRequest finds the first GET or HEAD line in buf and extracts its path.
// Anything else, malformed input included, is answered with 405.
func ParseRequest(buf []byte) (*Request, *HTTPError) {
	lines := bytes.Split(bytes.TrimSpace(buf), []byte("\r\n"))
	for _, line := range lines {
		method := matchMethod(line)
		if method == "" {
			continue
		}
		_, path, err := parseRequestLineFromBytes(bytes.TrimSpace(line))
		if err != nil {
			continue
		}
		return &Request{Method: method, Path: string(path)}, nil
	}
	return nil, MethodNotAllowed()
}

// matchMethod returns the supported method line starts with, or ""
func matchMethod(line []byte) string {
	for _, m := range supportedMethods {
		if bytes.HasPrefix(line, m) {
			return string(m)
		}
	}
	return ""
}

// parseRequestLineFromBytes extracts method and path from request line
func parseRequestLineFromBytes(line []byte) (method string, path []byte, err error) {
	parts := bytes.Split(line, []byte(" "))
	if len(parts) < 2 {
		return "", nil, errInvalidRequestLine
	}
	return string(parts[0]), parts[1], nil
}
