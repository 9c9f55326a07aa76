package qrgen

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

type indexData struct {
	AppName     string
	DefaultSize int
	MaxSize     int
}

// indexPage renders the form that builds QR endpoint URLs.
func indexPage(d indexData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		name := templ.EscapeString(d.AppName)
		def := strconv.Itoa(d.DefaultSize)
		maxSize := strconv.Itoa(d.MaxSize)

		parts := []string{
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, name, `</title>`,
			`<style>body{font-family:sans-serif;max-width:40rem;margin:2rem auto;padding:0 1rem}`,
			`label{display:block;margin:.75rem 0 .25rem}input,select{width:100%;padding:.4rem}`,
			`img{margin-top:1rem;max-width:100%;image-rendering:pixelated}</style></head><body>`,
			`<h1>`, name, `</h1>`,
			`<form id="qr" action="qr.png" method="get">`,
			`<label for="data">Data</label><input id="data" name="data" required autofocus>`,
			`<label for="size">Size (px)</label>`,
			`<input id="size" name="size" type="number" min="1" max="`, maxSize, `" placeholder="`, def, `">`,
			`<label for="format">Format</label><select id="format" name="format">`,
			`<option value="png">PNG</option><option value="jpeg">JPEG</option>`,
			`<option value="bmp">BMP</option><option value="svg">SVG</option></select>`,
			`<label><input type="checkbox" name="base64" value="on" style="width:auto"> Base64 data URI</label>`,
			`<p><button type="submit">Generate</button></p></form>`,
			`</body></html>`,
		}
		for _, p := range parts {
			if _, err := io.WriteString(w, p); err != nil {
				return err
			}
		}
		return nil
	})
}
