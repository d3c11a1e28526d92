// Package mimex resolves MIME types from file names.
package mimex

import (
	"mime"
	"path"
	"strings"
)

// wellKnown maps extensions the system MIME database may not know about
// (especially on macOS) to their canonical type.
var wellKnown = map[string]string{
	".go":   "text/x-go",
	".md":   "text/markdown",
	".yaml": "application/yaml",
	".yml":  "application/yaml",
	".toml": "application/toml",
	".log":  "text/plain",
}

// TypeByName returns the MIME type for a file name, without parameters such
// as "; charset=utf-8". Unknown extensions yield application/octet-stream.
func TypeByName(name string) string {
	ext := strings.ToLower(path.Ext(name))

	if ct, ok := wellKnown[ext]; ok {
		return ct
	}

	if ct := mime.TypeByExtension(ext); ct != "" {
		if i := strings.IndexByte(ct, ';'); i >= 0 {
			ct = strings.TrimSpace(ct[:i])
		}
		return ct
	}

	return "application/octet-stream"
}
