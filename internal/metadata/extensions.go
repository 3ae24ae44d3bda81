package metadata

import (
	"path/filepath"
	"sort"
	"strings"
)

// supportedExtensions lists the image formats the fixer will touch,
// lowercased and without the leading dot.
var supportedExtensions = map[string]struct{}{
	"avif": {},
	"bmp":  {},
	"gif":  {},
	"heic": {},
	"heif": {},
	"jfi":  {},
	"jfif": {},
	"jif":  {},
	"jpe":  {},
	"jpeg": {},
	"jpg":  {},
	"png":  {},
	"raw":  {},
	"tif":  {},
	"tiff": {},
	"webp": {},
}

// IsSupportedImage reports whether the file's extension marks it as an
// image the fixer knows how to handle. Matching is case insensitive.
func IsSupportedImage(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return false
	}
	_, ok := supportedExtensions[ext]
	return ok
}

// SupportedExtensions returns the recognized extensions in sorted order.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(supportedExtensions))
	for ext := range supportedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
