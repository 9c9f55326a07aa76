package qrcode_test

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

func mustMatrix(t *testing.T, payload string) qrcode.Matrix {
	t.Helper()
	m, err := qrcode.NewMatrix(payload, qrcode.RecoveryMedium)
	require.NoError(t, err)
	return m
}

func TestRenderRaster(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, "hello")

	tests := []struct {
		name string
		size int
		side int
	}{
		// 21 modules + 2*4 quiet zone = 29 modules per side.
		{"default_size", 1024, 29 * 36},
		{"small", 50, 29 * 2},
		{"smaller_than_symbol", 1, 29},
		{"exact_multiple", 29 * 10, 29 * 10},
		{"max", 4096, 29 * 142},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			img := qrcode.Render(m, tt.size, qrcode.FormatPNG, qrcode.RenderOptions{QuietZone: 4})
			buf, ok := img.(qrcode.PixelBuffer)
			require.True(t, ok, "raster formats render pixel buffers")
			assert.Equal(t, tt.side, buf.Side())
			assert.Equal(t, tt.side, buf.Bounds().Dx())
			assert.Equal(t, tt.side, buf.Bounds().Dy())
			assert.GreaterOrEqual(t, buf.Side(), tt.size)
		})
	}
}

func TestRenderRasterLayout(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, "hello")
	buf := qrcode.Render(m, 29*3, qrcode.FormatPNG, qrcode.RenderOptions{QuietZone: 4}).(qrcode.PixelBuffer)
	const unit = 3

	// The quiet zone is light.
	for i := 0; i < 4*unit; i++ {
		assert.Equal(t, uint8(0xff), buf.GrayAt(i, i).Y)
		assert.Equal(t, uint8(0xff), buf.GrayAt(buf.Side()-1-i, i).Y)
	}

	// Every module maps to a unit-sized block with the module's color.
	for y := range m.Size() {
		for x := range m.Size() {
			want := uint8(0xff)
			if m.Dark(x, y) {
				want = 0
			}
			for dy := range unit {
				for dx := range unit {
					px := (x+4)*unit + dx
					py := (y+4)*unit + dy
					require.Equal(t, want, buf.GrayAt(px, py).Y, "module %d,%d", x, y)
				}
			}
		}
	}
}

func TestRenderRasterWithoutQuietZone(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, "hello")
	buf := qrcode.Render(m, 21, qrcode.FormatBMP, qrcode.RenderOptions{QuietZone: 0}).(qrcode.PixelBuffer)
	assert.Equal(t, 21, buf.Side())
	assert.Equal(t, uint8(0), buf.GrayAt(0, 0).Y)
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, "deterministic")
	a := qrcode.Render(m, 300, qrcode.FormatPNG, qrcode.RenderOptions{QuietZone: 4}).(qrcode.PixelBuffer)
	b := qrcode.Render(m, 300, qrcode.FormatPNG, qrcode.RenderOptions{QuietZone: 4}).(qrcode.PixelBuffer)
	assert.Equal(t, a.Pix, b.Pix)

	sa := qrcode.Render(m, 300, qrcode.FormatSVG, qrcode.RenderOptions{QuietZone: 4}).(qrcode.VectorDocument)
	sb := qrcode.Render(m, 300, qrcode.FormatSVG, qrcode.RenderOptions{QuietZone: 4}).(qrcode.VectorDocument)
	assert.Equal(t, sa.Markup, sb.Markup)
}

func TestRenderSVG(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, "hello")
	img := qrcode.Render(m, 1024, qrcode.FormatSVG, qrcode.RenderOptions{QuietZone: 4})
	doc, ok := img.(qrcode.VectorDocument)
	require.True(t, ok, "svg renders a vector document")
	assert.Equal(t, 29*36, doc.Side())

	t.Run("well_formed_xml", func(t *testing.T) {
		t.Parallel()
		dec := xml.NewDecoder(bytes.NewReader(doc.Markup))
		var root struct {
			XMLName xml.Name `xml:"svg"`
			Width   string   `xml:"width,attr"`
			Height  string   `xml:"height,attr"`
			ViewBox string   `xml:"viewBox,attr"`
			Path    struct {
				D string `xml:"d,attr"`
			} `xml:"path"`
		}
		require.NoError(t, dec.Decode(&root))
		assert.Equal(t, "1044", root.Width)
		assert.Equal(t, "1044", root.Height)
		assert.Equal(t, "0 0 1044 1044", root.ViewBox)
		assert.NotEmpty(t, root.Path.D)
	})

	t.Run("same_viewport_as_raster", func(t *testing.T) {
		t.Parallel()
		raster := qrcode.Render(m, 1024, qrcode.FormatPNG, qrcode.RenderOptions{QuietZone: 4})
		assert.Equal(t, raster.Side(), doc.Side())
	})

	t.Run("scans_after_rasterizing", func(t *testing.T) {
		t.Parallel()
		small := qrcode.Render(m, 200, qrcode.FormatSVG, qrcode.RenderOptions{QuietZone: 4}).(qrcode.VectorDocument)
		assert.Equal(t, "hello", requireScan(t, rasterizeSVG(t, small.Markup)))
	})

	t.Run("body_media_type", func(t *testing.T) {
		t.Parallel()
		body := doc.Body()
		assert.Equal(t, "image/svg+xml", body.MediaType)
		assert.Equal(t, doc.Markup, body.Data)
	})
}

func TestRenderedRasterScans(t *testing.T) {
	t.Parallel()

	for _, payload := range []string{"hello", "https://example.com/path?q=1", "12345678901234567890", "Hello, World! 123"} {
		t.Run(payload, func(t *testing.T) {
			t.Parallel()
			buf := qrcode.Render(mustMatrix(t, payload), 200, qrcode.FormatPNG, qrcode.RenderOptions{QuietZone: 4}).(qrcode.PixelBuffer)
			assert.Equal(t, payload, requireScan(t, buf))
		})
	}
}
