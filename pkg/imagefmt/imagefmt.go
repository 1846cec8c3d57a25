// Package imagefmt classifies image payloads by their magic bytes.
//
// Image generation APIs report a MIME type alongside inline image data, but
// the reported value is not always what the bytes actually are. This package
// inspects the leading bytes of a buffer and returns the real format, so
// callers can pick the correct MIME type and file extension.
package imagefmt

import "bytes"

// Format describes a detected image format.
type Format struct {
	// MIME is the media type, e.g. "image/png".
	MIME string

	// Ext is the file extension including the dot, e.g. ".png".
	Ext string
}

// Known formats. PNG doubles as the fallback for unrecognized data.
var (
	PNG  = Format{MIME: "image/png", Ext: ".png"}
	JPEG = Format{MIME: "image/jpeg", Ext: ".jpg"}
	WEBP = Format{MIME: "image/webp", Ext: ".webp"}
	GIF  = Format{MIME: "image/gif", Ext: ".gif"}
)

var (
	pngMagic   = []byte("\x89PNG\r\n\x1a\n")
	jpegMagic  = []byte{0xff, 0xd8}
	riffMagic  = []byte("RIFF")
	webpMagic  = []byte("WEBP")
	gif87Magic = []byte("GIF87a")
	gif89Magic = []byte("GIF89a")
)

// Detect classifies data by its magic bytes. Unrecognized data is reported
// as PNG; classification never fails.
func Detect(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return PNG
	case bytes.HasPrefix(data, jpegMagic):
		return JPEG
	case len(data) >= 12 && bytes.HasPrefix(data, riffMagic) && bytes.Equal(data[8:12], webpMagic):
		return WEBP
	case bytes.HasPrefix(data, gif87Magic) || bytes.HasPrefix(data, gif89Magic):
		return GIF
	}
	return PNG
}

// FromMIME returns the Format for a reported MIME type. Unknown types map
// to PNG, mirroring Detect's fallback.
func FromMIME(mime string) Format {
	switch mime {
	case JPEG.MIME:
		return JPEG
	case WEBP.MIME:
		return WEBP
	case GIF.MIME:
		return GIF
	}
	return PNG
}
