package utils

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const defaultExtension = ".bin"

// preferredExtensions overrides the extension mimetype would pick for the
// media types the store accepts most often.
var preferredExtensions = map[string]string{
	"image/jpeg":       ".jpg",
	"image/png":        ".png",
	"image/gif":        ".gif",
	"image/webp":       ".webp",
	"image/avif":       ".avif",
	"image/heic":       ".heic",
	"image/svg+xml":    ".svg",
	"image/tiff":       ".tif",
	"video/mp4":        ".mp4",
	"video/webm":       ".webm",
	"video/quicktime":  ".mov",
	"video/x-matroska": ".mkv",
	"video/ogg":        ".ogv",
	"video/mpeg":       ".mpeg",
}

// BaseType strips parameters from a MIME type ("text/plain; charset=utf-8" is "text/plain").
func BaseType(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}

// MediaClass returns the top-level type of a MIME type ("image" for "image/png").
func MediaClass(mimeType string) string {
	base := BaseType(mimeType)
	if i := strings.Index(base, "/"); i > 0 {
		return base[:i]
	}

	return ""
}

// ExtensionFor returns the filename extension for stored content of mimeType,
// ".bin" when the type is unknown.
func ExtensionFor(mimeType string) string {
	base := BaseType(mimeType)
	if ext, ok := preferredExtensions[base]; ok {
		return ext
	}

	if m := mimetype.Lookup(base); m != nil && m.Extension() != "" {
		return m.Extension()
	}

	return defaultExtension
}
