package utils

import "strings"

// imageExtensions lists the upload formats the site accepts.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func cleanMime(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}

// IsAllowedImage reports whether mimeType is one of the accepted image formats.
func IsAllowedImage(mimeType string) bool {
	_, ok := imageExtensions[cleanMime(mimeType)]

	return ok
}

// ImageExtension returns the extension for an accepted image type, ".bin" otherwise.
func ImageExtension(mimeType string) string {
	if ext, ok := imageExtensions[cleanMime(mimeType)]; ok {
		return ext
	}

	return ".bin"
}
