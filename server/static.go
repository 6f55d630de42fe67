package server

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Target is the outcome of resolving a URL path: a file to serve when Err
// is nil, otherwise a redirect or an error.
type Target struct {
	Path string
	Err  *HTTPError
}

// IsFile reports whether the target names a file to serve
func (t Target) IsFile() bool {
	return t.Err == nil
}

func fileTarget(path string) Target   { return Target{Path: path} }
func errorTarget(e *HTTPError) Target { return Target{Err: e} }

// Resolver maps URL paths onto files beneath a canonical root directory
type Resolver struct {
	root string
}

// NewResolver expects root to be absolute with symlinks already evaluated
func NewResolver(root string) *Resolver {
	return &Resolver{root: root}
}

// Resolve turns a raw URL path into a Target. A path ending in "/" names
// the directory's index.html, which is only checked for existence when it
// is read. A path without a recognized extension is redirected to its
// slashed form if that directory exists. Anything else must be an
// existing file under the root.
func (r *Resolver) Resolve(urlPath string) Target {
	switch {
	case strings.HasSuffix(urlPath, "/"):
		filePath := r.join(urlPath + "index.html")
		if !within(r.root, filePath) {
			return errorTarget(NotFound())
		}
		return fileTarget(filePath)

	case !hasRecognizedExtension(urlPath):
		if !r.isServableDir(r.join(urlPath)) {
			return errorTarget(NotFound())
		}
		return errorTarget(Redirect(urlPath + "/"))

	default:
		filePath := r.join(urlPath)
		if _, err := r.contained(filePath); err != nil {
			return errorTarget(NotFound())
		}
		return fileTarget(filePath)
	}
}

// join places the /-separated segments of urlPath under the root.
// filepath.Join cleans the result, so ".." segments may climb out of the
// root; callers must check containment afterwards.
func (r *Resolver) join(urlPath string) string {
	return filepath.Join(r.root, filepath.FromSlash(urlPath))
}

// isServableDir reports whether dirPath exists as a directory inside the root
func (r *Resolver) isServableDir(dirPath string) bool {
	canonical, err := r.contained(dirPath)
	if err != nil {
		return false
	}
	info, err := os.Stat(canonical)
	return err == nil && info.IsDir()
}

var errOutsideRoot = errors.New("path escapes root")

// contained evaluates symlinks in p and checks the result stays inside the root
func (r *Resolver) contained(p string) (string, error) {
	if !within(r.root, p) {
		return "", errOutsideRoot
	}
	canonical, err := filepath.EvalSymlinks(p)
	if err != nil {
		return "", err
	}
	if !within(r.root, canonical) {
		return "", errOutsideRoot
	}
	return canonical, nil
}

// within reports whether p is root itself or lies beneath it
func within(root, p string) bool {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// readFile reads a resolved file. A file that cannot be found, or that
// escapes the root once symlinks are evaluated, is reported as not found.
// Failing to read a file that was found is a server error.
func (r *Resolver) readFile(filePath string) ([]byte, *HTTPError) {
	canonical, err := r.contained(filePath)
	if err != nil {
		return nil, NotFound()
	}
	content, err := os.ReadFile(canonical)
	if err != nil {
		logFailure("cannot open file at %s: %v", filePath, err)
		return nil, ServerError("failed to read file")
	}
	return content, nil
}
