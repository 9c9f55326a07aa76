package qrcode

import (
	"path"
	"strings"
)

// Format is an output image format. The zero value is FormatPNG.
type Format uint8

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatBMP
	FormatSVG

	// Reserved formats are recognized in tokens and filenames but have no encoder.
	FormatGIF
	FormatTIFF
	FormatICO
	FormatWEBP
)

// String returns the canonical token of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	case FormatSVG:
		return "svg"
	case FormatGIF:
		return "gif"
	case FormatTIFF:
		return "tiff"
	case FormatICO:
		return "ico"
	case FormatWEBP:
		return "webp"
	default:
		return "unknown"
	}
}

// MediaType returns the canonical MIME type of the format.
func (f Format) MediaType() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatBMP:
		return "image/bmp"
	case FormatSVG:
		return "image/svg+xml"
	case FormatGIF:
		return "image/gif"
	case FormatTIFF:
		return "image/tiff"
	case FormatICO:
		return "image/x-icon"
	case FormatWEBP:
		return "image/webp"
	default:
		return "image/png"
	}
}

// Encodable reports whether the pipeline can produce bytes for the format.
func (f Format) Encodable() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatBMP, FormatSVG:
		return true
	default:
		return false
	}
}

// ParseFormat maps a format token such as "svg", "JPG" or ".tif" to a Format.
// The second result is false for empty or unrecognized tokens.
func ParseFormat(token string) (Format, bool) {
	token = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(token), "."))
	switch token {
	case "png":
		return FormatPNG, true
	case "jpg", "jpeg":
		return FormatJPEG, true
	case "bmp":
		return FormatBMP, true
	case "svg":
		return FormatSVG, true
	case "gif":
		return FormatGIF, true
	case "tif", "tiff":
		return FormatTIFF, true
	case "ico":
		return FormatICO, true
	case "webp":
		return FormatWEBP, true
	default:
		return FormatPNG, false
	}
}

// FormatFromFilename selects a format by the filename suffix, case-insensitively.
func FormatFromFilename(name string) (Format, bool) {
	ext := path.Ext(name)
	if ext == "" {
		return FormatPNG, false
	}
	return ParseFormat(ext)
}

// ResolveFormat applies the selection order: a recognized format token wins,
// then the filename suffix, then PNG.
func ResolveFormat(token, filename string) Format {
	if f, ok := ParseFormat(token); ok {
		return f
	}
	if f, ok := FormatFromFilename(filename); ok {
		return f
	}
	return FormatPNG
}
