package common

import (
	"path"
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9 ._-]+`)

// SanitizeFilename reduces an untrusted filename to a safe basename: directory
// components and traversal sequences are stripped, leading dots removed, and
// anything outside a conservative character set replaced with underscores.
// An empty result falls back to "file".
func SanitizeFilename(name string) string {
	if strings.TrimSpace(name) == "" {
		return "file"
	}
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(path.Clean("/" + name))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ". ")
	name = strings.TrimSpace(name)
	if name == "" {
		name = "file"
	}
	return name
}
