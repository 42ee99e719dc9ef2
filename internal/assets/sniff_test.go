package assets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSniff(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want Format
	}{
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00}, PNG},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}, JPEG},
		{"webp", append([]byte("RIFF\x00\x00\x00\x00"), []byte("WEBPVP8 ")...), WEBP},
		{"riff but not webp", []byte("RIFF\x00\x00\x00\x00WAVEdata"), Unknown},
		{"garbage", []byte("not an image at all"), Unknown},
		{"truncated png magic", []byte{0x89, 'P', 'N'}, Unknown},
		{"empty", nil, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Sniff(tt.in))
		})
	}
}

func TestFormatString(t *testing.T) {
	require.Equal(t, "PNG", PNG.String())
	require.Equal(t, "JPEG", JPEG.String())
	require.Equal(t, "WEBP", WEBP.String())
	require.Equal(t, "unknown", Unknown.String())
}
