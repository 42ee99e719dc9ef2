package assets

import (
	"bytes"
	"image/jpeg"
	"io"
	"net/http"
	"os"

	"golang.org/x/image/webp"
	"resty.dev/v3"

	"github.com/dksylla/ecoledoc/internal"
)

const (
	localLogoPNG = "logo.png"
	localLogoJPG = "logo.jpg"

	jpegQuality = 90
)

// Asset is the raw content of a resolved image plus its sniffed format.
type Asset struct {
	Bytes  []byte
	Format Format
}

// Resolver locates optional document images. Every probe is best-effort: a
// miss is logged and the resolver moves on, it never returns an error.
type Resolver struct {
	client   *resty.Client
	logoPath string
	logoURL  string
}

type Options struct {
	// LogoPath is an explicit filesystem override for the school logo.
	LogoPath string
	// LogoURL is the remote fallback probed after the local candidates.
	LogoURL string
}

func NewResolver(opts Options) *Resolver {
	// no retry and no timeout: a failed fetch means "render without the
	// image", and deadlines are owned by the caller's outer HTTP layer
	client := resty.New().SetRetryCount(0)

	return &Resolver{
		client:   client,
		logoPath: opts.LogoPath,
		logoURL:  opts.LogoURL,
	}
}

// Logo probes the configured override path, the conventional local files and
// finally the remote URL. First hit wins; all misses yield nil.
func (r *Resolver) Logo() *Asset {
	if r.logoPath != "" {
		if a := r.readFile(r.logoPath); a != nil {
			return a
		}
	}
	for _, name := range []string{localLogoPNG, localLogoJPG} {
		if a := r.readFile(name); a != nil {
			return a
		}
	}
	if r.logoURL != "" {
		if a := r.fetch(r.logoURL); a != nil {
			return a
		}
	}
	internal.Debug("no school logo resolved, document will render without it")
	return nil
}

// Photo fetches a subject photo from the URL carried by the payload. Single
// attempt; absence is normal.
func (r *Resolver) Photo(rawURL string) *Asset {
	if rawURL == "" {
		return nil
	}
	return r.fetch(rawURL)
}

func (r *Resolver) readFile(path string) *Asset {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return normalize(raw, path)
}

func (r *Resolver) fetch(rawURL string) *Asset {
	resp, err := r.client.R().Get(rawURL)
	if err != nil {
		internal.Warn("Failed to fetch image %s: %v", rawURL, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode() != http.StatusOK {
		internal.Warn("Image fetch %s returned status %d", rawURL, resp.StatusCode())
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		internal.Warn("Failed to read image body from %s: %v", rawURL, err)
		return nil
	}
	return normalize(raw, rawURL)
}

// normalize tags the payload with its sniffed format. WebP is converted to
// JPEG because the PDF engine cannot embed it directly.
func normalize(raw []byte, source string) *Asset {
	switch Sniff(raw) {
	case PNG:
		return &Asset{Bytes: raw, Format: PNG}
	case JPEG:
		return &Asset{Bytes: raw, Format: JPEG}
	case WEBP:
		img, err := webp.Decode(bytes.NewReader(raw))
		if err != nil {
			internal.Warn("Failed to decode webp image from %s: %v", source, err)
			return nil
		}
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			internal.Warn("Failed to re-encode webp image from %s: %v", source, err)
			return nil
		}
		return &Asset{Bytes: buf.Bytes(), Format: JPEG}
	}
	internal.Warn("Unsupported image format from %s", source)
	return nil
}
