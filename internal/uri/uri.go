// Package uri builds data: and file: URIs for listed and extracted images.
package uri

import (
	"net/url"
	"path/filepath"
	"strings"
)

// DataURL wraps an already base64-encoded payload in a data: URL.
func DataURL(mimeType, b64 string) string {
	return "data:" + mimeType + ";base64," + b64
}

// FileURI converts an absolute filesystem path to a file:// URI.
// Uses the form file:///absolute/path with each segment escaped.
func FileURI(absPath string) string {
	slashed := filepath.ToSlash(absPath)

	// Windows drive paths ("C:/x") need a leading slash
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}

	// URI encode the path, but keep slashes as slashes
	parts := strings.Split(slashed, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}

	return "file://" + strings.Join(parts, "/")
}
