package qrcode

import (
	"strconv"
	"strings"
)

// renderSVG draws one path subpath per horizontal run of dark modules.
func renderSVG(m Matrix, l layout) VectorDocument {
	side := strconv.Itoa(l.side)

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" standalone="yes"?>`)
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="`)
	sb.WriteString(side)
	sb.WriteString(`" height="`)
	sb.WriteString(side)
	sb.WriteString(`" viewBox="0 0 `)
	sb.WriteString(side)
	sb.WriteByte(' ')
	sb.WriteString(side)
	sb.WriteString(`" shape-rendering="crispEdges">`)
	sb.WriteString(`<rect x="0" y="0" width="`)
	sb.WriteString(side)
	sb.WriteString(`" height="`)
	sb.WriteString(side)
	sb.WriteString(`" fill="#fff"/>`)
	sb.WriteString(`<path fill="#000" d="`)

	unit := strconv.Itoa(l.unit)
	n := m.Size()
	for y := range n {
		py := strconv.Itoa((y + l.quiet) * l.unit)
		for x := 0; x < n; {
			if !m.Dark(x, y) {
				x++
				continue
			}
			start := x
			for x < n && m.Dark(x, y) {
				x++
			}
			width := strconv.Itoa((x - start) * l.unit)
			sb.WriteByte('M')
			sb.WriteString(strconv.Itoa((start + l.quiet) * l.unit))
			sb.WriteByte(' ')
			sb.WriteString(py)
			sb.WriteByte('h')
			sb.WriteString(width)
			sb.WriteByte('v')
			sb.WriteString(unit)
			sb.WriteString("h-")
			sb.WriteString(width)
			sb.WriteByte('z')
		}
	}

	sb.WriteString(`"/></svg>`)

	return VectorDocument{
		Markup: []byte(sb.String()),
		side:   l.side,
	}
}
