package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func tinyJPEG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestPhotoFetch(t *testing.T) {
	body := tinyJPEG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	r := NewResolver(Options{})
	a := r.Photo(srv.URL)
	require.NotNil(t, a)
	require.Equal(t, JPEG, a.Format)
	require.Equal(t, body, a.Bytes)
}

func TestPhotoAbsenceIsTolerated(t *testing.T) {
	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer notFound.Close()

	r := NewResolver(Options{})
	require.Nil(t, r.Photo(notFound.URL), "non-success status must yield absence")
	require.Nil(t, r.Photo("http://127.0.0.1:1/photo.png"), "transport error must yield absence")
	require.Nil(t, r.Photo(""), "no URL means no photo")
}

func TestPhotoRejectsUnknownFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not an image</html>"))
	}))
	defer srv.Close()

	r := NewResolver(Options{})
	require.Nil(t, r.Photo(srv.URL))
}

func TestPhotoRejectsMalformedWebP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("RIFF\x00\x00\x00\x00WEBPgarbage"))
	}))
	defer srv.Close()

	r := NewResolver(Options{})
	require.Nil(t, r.Photo(srv.URL))
}

func TestLogoOverridePathWinsOverConventionalFiles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	override := filepath.Join(t.TempDir(), "custom-logo.png")
	require.NoError(t, os.WriteFile(override, tinyPNG(t), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.jpg"), tinyJPEG(t), 0644))

	r := NewResolver(Options{LogoPath: override})
	a := r.Logo()
	require.NotNil(t, a)
	require.Equal(t, PNG, a.Format)
}

func TestLogoFallsBackToConventionalFiles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.jpg"), tinyJPEG(t), 0644))

	// override points nowhere, png candidate missing, jpg candidate hits
	r := NewResolver(Options{LogoPath: filepath.Join(dir, "missing.png")})
	a := r.Logo()
	require.NotNil(t, a)
	require.Equal(t, JPEG, a.Format)
}

func TestLogoRemoteURLIsLastProbe(t *testing.T) {
	t.Chdir(t.TempDir())

	body := tinyPNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	r := NewResolver(Options{LogoURL: srv.URL})
	a := r.Logo()
	require.NotNil(t, a)
	require.Equal(t, PNG, a.Format)
}

func TestLogoAllProbesFail(t *testing.T) {
	t.Chdir(t.TempDir())

	r := NewResolver(Options{LogoPath: "nope.png", LogoURL: "http://127.0.0.1:1/logo.png"})
	require.Nil(t, r.Logo())
}
