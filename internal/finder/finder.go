package finder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Find resolves a template reference to a concrete file path. A reference
// that already names an existing file (absolute or relative to the working
// directory) is used directly; otherwise each search directory is consulted
// in order and the first match wins. The boolean reports whether any
// candidate exists.
func Find(template string, searchPaths []string) (string, bool) {
	if template == "" {
		return "", false
	}

	if isFile(template) {
		return template, true
	}

	for _, dir := range searchPaths {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, template)
		if isFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// Read loads the file at path and decodes it using the named IANA charset.
// An empty or utf-8 encoding returns the raw content. The file handle is
// held only for the duration of the read.
func Read(path, encoding string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("finder: read template %q: %w", path, err)
	}

	name := strings.ToLower(strings.TrimSpace(encoding))
	if name == "" || name == "utf-8" || name == "utf8" {
		return string(data), nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", fmt.Errorf("finder: unknown encoding %q: %w", encoding, err)
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("finder: decode template %q as %s: %w", path, name, err)
	}
	return string(decoded), nil
}

// Ext returns the lowercase file extension without the leading dot, or the
// empty string when the path has none.
func Ext(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
