package assets

import "bytes"

// Format identifies a raster image payload by its magic bytes.
type Format int

const (
	Unknown Format = iota
	PNG
	JPEG
	WEBP
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case WEBP:
		return "WEBP"
	}
	return "unknown"
}

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	riffMagic = []byte("RIFF")
	webpTag   = []byte("WEBP")
)

// Sniff inspects the leading bytes of an image payload. It never decodes the
// full image; a positive result only means the container looks right.
func Sniff(b []byte) Format {
	switch {
	case bytes.HasPrefix(b, pngMagic):
		return PNG
	case bytes.HasPrefix(b, jpegMagic):
		return JPEG
	case len(b) >= 12 && bytes.HasPrefix(b, riffMagic) && bytes.Equal(b[8:12], webpTag):
		return WEBP
	}
	return Unknown
}
