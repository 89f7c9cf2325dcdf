package service

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/codewave/webhost/internal/pkg/apperr"
)

// allowedTypes maps each accepted extension to the content types a client
// may declare for it.
var allowedTypes = map[string][]string{
	"html":  {"text/html"},
	"css":   {"text/css"},
	"js":    {"text/javascript", "application/javascript", "application/x-javascript"},
	"txt":   {"text/plain"},
	"json":  {"application/json"},
	"png":   {"image/png"},
	"jpg":   {"image/jpeg", "image/jpg", "image/pjpeg"},
	"jpeg":  {"image/jpeg", "image/jpg", "image/pjpeg"},
	"gif":   {"image/gif"},
	"svg":   {"image/svg+xml"},
	"ico":   {"image/x-icon", "image/vnd.microsoft.icon"},
	"webp":  {"image/webp"},
	"woff":  {"font/woff", "application/font-woff", "application/x-font-woff"},
	"woff2": {"font/woff2", "application/font-woff2"},
	"ttf":   {"font/ttf", "font/sfnt", "application/x-font-ttf", "application/x-font-truetype"},
	"eot":   {"application/vnd.ms-fontobject"},
}

var allowedContentTypes = func() map[string]struct{} {
	m := make(map[string]struct{})
	for _, types := range allowedTypes {
		for _, t := range types {
			m[t] = struct{}{}
		}
	}
	return m
}()

// checkFileType requires both the extension and the declared content type
// to be in the allow-set. It returns the bare media type.
func checkFileType(filename, contentType string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if _, ok := allowedTypes[ext]; !ok {
		return "", apperr.UnsupportedType(fmt.Sprintf("file type not allowed: %s", filename))
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", apperr.UnsupportedType(fmt.Sprintf("content type not allowed for %s", filename))
	}
	if _, ok := allowedContentTypes[mediaType]; !ok {
		return "", apperr.UnsupportedType(fmt.Sprintf("content type not allowed for %s: %s", filename, mediaType))
	}
	return mediaType, nil
}
