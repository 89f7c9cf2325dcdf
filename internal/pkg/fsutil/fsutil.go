package fsutil

import (
	"errors"
	"path"
	"path/filepath"
	"strings"
)

var ErrPathEscape = errors.New("path escape")

// CleanRelPath turns a user path like "", ".", "/a/b", "a//b" into a clean,
// slash-separated relative path without a leading slash ("" means root).
func CleanRelPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "." || p == "/" {
		return ""
	}
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean("/" + p) // force absolute for stable cleaning
	p = strings.TrimPrefix(p, "/")
	if p == "." {
		return ""
	}
	return p
}

// JoinWithinRoot joins rel onto root and rejects results outside root.
func JoinWithinRoot(root string, rel string) (string, error) {
	if strings.Contains(rel, "\x00") {
		return "", errors.New("invalid path")
	}
	rel = CleanRelPath(rel)
	rootClean := filepath.Clean(root)
	if rel == "" {
		return rootClean, nil
	}
	abs := filepath.Clean(filepath.Join(rootClean, filepath.FromSlash(rel)))
	if abs != rootClean && !strings.HasPrefix(abs, rootClean+string(filepath.Separator)) {
		return "", ErrPathEscape
	}
	return abs, nil
}
