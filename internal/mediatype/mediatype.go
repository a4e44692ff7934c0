// Package mediatype classifies file and archive entry names as images and
// maps their extensions to MIME types.
package mediatype

import (
	"strings"

	"github.com/h2non/filetype"
)

// Fallback is the MIME type for unmatched or absent extensions.
const Fallback = "application/octet-stream"

// mimeTypes maps each recognized lowercase extension to its MIME type.
// Membership in this map is the recognized extension set.
var mimeTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"avif": "image/avif",
	"bmp":  "image/bmp",
}

// Extensions returns the recognized extensions, lowercase and without dots.
func Extensions() []string {
	return []string{"jpg", "jpeg", "png", "gif", "webp", "avif", "bmp"}
}

// EntryExt returns the text after the last '.' in an archive entry name,
// or "" when the name has no '.'.
func EntryExt(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i == -1 {
		return ""
	}
	return name[i+1:]
}

// FileExt returns the extension of a filesystem base name. A name whose
// only dot is the leading one (".png") is a hidden file and has none.
func FileExt(base string) string {
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}
	return base[i+1:]
}

// IsRecognized reports whether ext, compared case-insensitively, is an
// image extension.
func IsRecognized(ext string) bool {
	if ext == "" {
		return false
	}
	_, ok := mimeTypes[strings.ToLower(ext)]
	return ok
}

// IsImageEntry reports whether an archive entry name has an image extension.
func IsImageEntry(name string) bool {
	return IsRecognized(EntryExt(name))
}

// IsImageFile reports whether a filesystem base name has an image extension.
func IsImageFile(base string) bool {
	return IsRecognized(FileExt(base))
}

// MIMEType returns the MIME type for ext, or Fallback.
func MIMEType(ext string) string {
	if mt, ok := mimeTypes[strings.ToLower(ext)]; ok {
		return mt
	}
	return Fallback
}

// MIMETypeForEntry infers an archive entry's MIME type from its name alone.
func MIMETypeForEntry(name string) string {
	return MIMEType(EntryExt(name))
}

// Sniff detects a MIME type from the leading bytes of data. It returns ""
// when the content is not recognized. The listers and the extractor never
// call it; it exists for diagnostics.
func Sniff(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}
