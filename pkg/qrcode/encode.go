package qrcode

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"
)

// DefaultJPEGQuality matches image/jpeg's default.
const DefaultJPEGQuality = jpeg.DefaultQuality

// Body is an encoded image and its media type.
type Body struct {
	Data      []byte
	MediaType string
}

// EncodeOptions controls container encoding.
type EncodeOptions struct {
	// JPEGQuality in [1, 100]; out-of-range values select DefaultJPEGQuality.
	JPEGQuality int
}

// Encode serializes a pixel buffer into a raster container.
// Reserved formats return ErrUnsupportedFormat; codec errors wrap ErrEncodeFailure.
func Encode(buf PixelBuffer, format Format, opts EncodeOptions) (Body, error) {
	if buf.Gray == nil {
		return Body{}, fmt.Errorf("%w: empty pixel buffer", ErrEncodeFailure)
	}

	var (
		out bytes.Buffer
		err error
	)
	switch format {
	case FormatPNG:
		err = png.Encode(&out, buf.Gray)
	case FormatJPEG:
		quality := opts.JPEGQuality
		if quality < 1 || quality > 100 {
			quality = DefaultJPEGQuality
		}
		err = jpeg.Encode(&out, buf.Gray, &jpeg.Options{Quality: quality})
	case FormatBMP:
		err = bmp.Encode(&out, buf.Gray)
	case FormatSVG:
		return Body{}, fmt.Errorf("%w: %s is not a raster format", ErrEncodeFailure, format)
	default:
		return Body{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return Body{}, fmt.Errorf("%w: %s: %w", ErrEncodeFailure, format, err)
	}

	return Body{Data: out.Bytes(), MediaType: format.MediaType()}, nil
}
