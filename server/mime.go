package server

import (
	"path/filepath"
	"strings"
)

// textSubtypes maps the recognized extensions to their text/* subtype.
// Only these suffixes are served as files directly; every other path is
// treated as a directory reference.
var textSubtypes = map[string]string{
	"html":       "html",
	"js":         "javascript",
	"javascript": "javascript",
	"css":        "css",
}

// hasRecognizedExtension reports whether p ends in one of the recognized extensions
func hasRecognizedExtension(p string) bool {
	for ext := range textSubtypes {
		if strings.HasSuffix(p, "."+ext) {
			return true
		}
	}
	return false
}

// getContentType determines the text/* type from a file path, defaulting to text/plain
func getContentType(filePath string) string {
	ext := strings.TrimPrefix(filepath.Ext(filePath), ".")
	if subtype, ok := textSubtypes[ext]; ok {
		return "text/" + subtype
	}
	return "text/plain"
}
