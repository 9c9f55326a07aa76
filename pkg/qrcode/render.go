package qrcode

import (
	"image"
)

// DefaultQuietZone is the light border width in modules recommended by ISO/IEC 18004.
const DefaultQuietZone = 4

const (
	lightSample uint8 = 0xff
	darkSample  uint8 = 0x00
)

// Image is the result of Render. It is either a PixelBuffer or a VectorDocument.
type Image interface {
	// Side returns the width and height in pixels.
	Side() int
	sealed()
}

// PixelBuffer is a rendered 8-bit grayscale symbol.
type PixelBuffer struct {
	*image.Gray
}

// Side returns the width and height of the buffer in pixels.
func (p PixelBuffer) Side() int {
	if p.Gray == nil {
		return 0
	}
	return p.Rect.Dx()
}

func (PixelBuffer) sealed() {}

// VectorDocument is a rendered SVG symbol.
type VectorDocument struct {
	Markup []byte
	side   int
}

// Side returns the width and height of the viewport in pixels.
func (d VectorDocument) Side() int {
	return d.side
}

// Body returns the document as an encoded body.
func (d VectorDocument) Body() Body {
	return Body{Data: d.Markup, MediaType: FormatSVG.MediaType()}
}

func (VectorDocument) sealed() {}

// RenderOptions controls symbol layout.
type RenderOptions struct {
	// QuietZone is the light border width in modules. Negative values mean no border.
	QuietZone int
}

// Render lays out the matrix so that each side is at least size pixels, using
// whole-pixel square modules. SVG produces a VectorDocument, every other format
// a PixelBuffer.
func Render(m Matrix, size int, format Format, opts RenderOptions) Image {
	l := newLayout(m, size, opts.QuietZone)
	if format == FormatSVG {
		return renderSVG(m, l)
	}
	return renderRaster(m, l)
}

type layout struct {
	quiet int // border in modules
	unit  int // pixels per module
	side  int // pixels per side
}

func newLayout(m Matrix, size, quiet int) layout {
	quiet = max(quiet, 0)
	size = max(size, MinSize)
	modules := max(m.Size()+2*quiet, 1)
	unit := max((size+modules-1)/modules, 1)
	return layout{
		quiet: quiet,
		unit:  unit,
		side:  modules * unit,
	}
}

func renderRaster(m Matrix, l layout) PixelBuffer {
	img := image.NewGray(image.Rect(0, 0, l.side, l.side))
	for i := range img.Pix {
		img.Pix[i] = lightSample
	}

	n := m.Size()
	for y := range n {
		y0 := (y + l.quiet) * l.unit
		for x := range n {
			if !m.Dark(x, y) {
				continue
			}
			x0 := (x + l.quiet) * l.unit
			for py := y0; py < y0+l.unit; py++ {
				start := py*img.Stride + x0
				row := img.Pix[start : start+l.unit]
				for i := range row {
					row[i] = darkSample
				}
			}
		}
	}

	return PixelBuffer{Gray: img}
}
