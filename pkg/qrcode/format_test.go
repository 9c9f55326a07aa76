package qrcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token  string
		want   qrcode.Format
		wantOK bool
	}{
		{"png", qrcode.FormatPNG, true},
		{"PNG", qrcode.FormatPNG, true},
		{".png", qrcode.FormatPNG, true},
		{"jpg", qrcode.FormatJPEG, true},
		{"jpeg", qrcode.FormatJPEG, true},
		{"bmp", qrcode.FormatBMP, true},
		{"svg", qrcode.FormatSVG, true},
		{"Svg", qrcode.FormatSVG, true},
		{"gif", qrcode.FormatGIF, true},
		{"tif", qrcode.FormatTIFF, true},
		{"tiff", qrcode.FormatTIFF, true},
		{"ico", qrcode.FormatICO, true},
		{"webp", qrcode.FormatWEBP, true},
		{"", qrcode.FormatPNG, false},
		{"pdf", qrcode.FormatPNG, false},
		{"svgz", qrcode.FormatPNG, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()
			got, ok := qrcode.ParseFormat(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     qrcode.Format
		wantOK   bool
	}{
		{"qr.png", qrcode.FormatPNG, true},
		{"QR.PNG", qrcode.FormatPNG, true},
		{"qr.jpg", qrcode.FormatJPEG, true},
		{"qr.JPEG", qrcode.FormatJPEG, true},
		{"qr.gif", qrcode.FormatGIF, true},
		{"qr.bmp", qrcode.FormatBMP, true},
		{"qr.ico", qrcode.FormatICO, true},
		{"qr.tif", qrcode.FormatTIFF, true},
		{"qr.tiff", qrcode.FormatTIFF, true},
		{"qr.webp", qrcode.FormatWEBP, true},
		{"qr.svg", qrcode.FormatSVG, true},
		{"archive.tar.svg", qrcode.FormatSVG, true},
		{"qr", qrcode.FormatPNG, false},
		{"qr.txt", qrcode.FormatPNG, false},
		{"png", qrcode.FormatPNG, false},
		{"", qrcode.FormatPNG, false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()
			got, ok := qrcode.FormatFromFilename(tt.filename)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		token    string
		filename string
		want     qrcode.Format
	}{
		{"token_wins_over_extension", "svg", "qr.png", qrcode.FormatSVG},
		{"extension_when_token_missing", "", "qr.jpg", qrcode.FormatJPEG},
		{"extension_when_token_unknown", "foo", "qr.bmp", qrcode.FormatBMP},
		{"png_when_nothing_matches", "", "qr", qrcode.FormatPNG},
		{"png_token_over_svg_extension", "png", "qr.svg", qrcode.FormatPNG},
		{"reserved_token_is_kept", "gif", "qr.png", qrcode.FormatGIF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, qrcode.ResolveFormat(tt.token, tt.filename))
		})
	}
}

func TestFormatMediaType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "image/png", qrcode.FormatPNG.MediaType())
	assert.Equal(t, "image/jpeg", qrcode.FormatJPEG.MediaType())
	assert.Equal(t, "image/bmp", qrcode.FormatBMP.MediaType())
	assert.Equal(t, "image/svg+xml", qrcode.FormatSVG.MediaType())
}

func TestFormatEncodable(t *testing.T) {
	t.Parallel()

	for _, f := range []qrcode.Format{qrcode.FormatPNG, qrcode.FormatJPEG, qrcode.FormatBMP, qrcode.FormatSVG} {
		assert.True(t, f.Encodable(), f.String())
	}
	for _, f := range []qrcode.Format{qrcode.FormatGIF, qrcode.FormatTIFF, qrcode.FormatICO, qrcode.FormatWEBP} {
		assert.False(t, f.Encodable(), f.String())
	}
}
