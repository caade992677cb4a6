package constants

import "strings"

// Format is the coarse file classification used to pick an extraction pipeline.
type Format string

const (
	PDF     Format = "PDF"
	IMAGE   Format = "IMAGE"
	IGNORED Format = "IGNORED"
)

// ImageExtensions holds the raster formats we accept as screenshots.
var ImageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"bmp":  {},
	"gif":  {},
	"tiff": {},
	"webp": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat classifies a (possibly dotted, mixed-case) extension.
// Anything outside the allow-lists is IGNORED.
func MapExtToFormat(ext string) Format {
	e := NormalizeExt(ext)
	if e == "pdf" {
		return PDF
	}
	if _, ok := ImageExtensions[e]; ok {
		return IMAGE
	}
	return IGNORED
}
