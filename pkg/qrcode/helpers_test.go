package qrcode_test

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"testing"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/stretchr/testify/require"
	_ "golang.org/x/image/bmp"
)

// scanSymbol decodes a QR symbol from img with a reference decoder.
func scanSymbol(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", err
	}
	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", err
	}
	return result.GetText(), nil
}

func requireScan(t *testing.T, img image.Image) string {
	t.Helper()
	text, err := scanSymbol(img)
	require.NoError(t, err)
	return text
}

// decodeImage decodes encoded container bytes and returns the image and format name.
func decodeImage(t *testing.T, data []byte) (image.Image, string) {
	t.Helper()
	img, name, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img, name
}

// rasterizeSVG draws SVG markup into an RGBA image at its viewBox size.
func rasterizeSVG(t *testing.T, markup []byte) image.Image {
	t.Helper()
	icon, err := oksvg.ReadIconStream(bytes.NewReader(markup))
	require.NoError(t, err)

	w, h := int(icon.ViewBox.W), int(icon.ViewBox.H)
	require.Positive(t, w)
	require.Positive(t, h)

	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img
}
