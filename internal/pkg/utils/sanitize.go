package utils

import (
	"strings"
	"unicode"

	"github.com/codewave/webhost/internal/pkg/apperr"
)

// SanitizeProjectName lower-cases raw and replaces every rune outside
// [a-z0-9-] with '-'. Runs of separators are kept as-is and nothing is
// trimmed, so the result has exactly as many runes as raw.
func SanitizeProjectName(raw string) (string, error) {
	if raw == "" {
		return "", apperr.InvalidInput("missing project")
	}
	var sb strings.Builder
	sb.Grow(len(raw))
	for _, r := range raw {
		r = unicode.ToLower(r)
		if isSlugRune(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String(), nil
}

// SanitizeFilename replaces every rune outside [A-Za-z0-9._-] with '_'.
func SanitizeFilename(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// IsSlug reports whether s is a non-empty string over [a-z0-9-].
func IsSlug(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isSlugRune(r) {
			return false
		}
	}
	return true
}

// IsSafeFilename reports whether name is already sanitized and is not a
// relative directory reference.
func IsSafeFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return SanitizeFilename(name) == name
}

func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
}
