// Package qrgen is the HTTP application that serves QR codes.
//
// Routes:
//
//	GET /              HTML form
//	GET /health/live   ALIVE
//	GET /health/ready  READY after rendering a probe symbol, 503 otherwise
//	GET /{filename}    QR image; query keys data, size, format, base64
//
// Pipeline errors map to 400 with a short plain-text message (Missing data,
// Invalid size, Invalid data, Unsupported format). Anything else is a 500
// whose cause is only logged.
package qrgen
