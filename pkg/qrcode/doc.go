// Package qrcode renders text payloads as QR code images in PNG, JPEG, BMP or SVG,
// optionally wrapped as base64 data URIs.
//
// The pipeline has five stages, each usable on its own:
//
//   - ParseRequest resolves a route filename and query values into a Request
//   - NewMatrix encodes the payload into a symbol (github.com/skip2/go-qrcode)
//   - Render lays the symbol out as a grayscale PixelBuffer or an SVG VectorDocument
//   - Encode serializes a PixelBuffer into PNG, JPEG or BMP
//   - Assemble builds the status, headers and body, optionally as a data URI
//
// Generator runs the stages with a fixed policy and is safe for concurrent use.
//
// # Usage
//
//	gen := qrcode.New()
//
//	req, err := qrcode.ParseRequest("code.svg", url.Values{"data": {"hello"}})
//	if err != nil {
//		return err
//	}
//
//	reply, err := gen.Reply(req)
//	if err != nil {
//		return err
//	}
//	// reply.Status == 200, reply.ContentType() == "image/svg+xml"
//
// # Parameters
//
// The data parameter is required. An empty or missing size selects DefaultSize;
// other sizes must be unsigned integers and are clamped to [MinSize, MaxSize].
// The rendered image is square and at least size pixels on each side, including
// a quiet zone of DefaultQuietZone modules.
//
// A recognized format parameter wins over the filename suffix; without either
// the output is PNG. Tokens are case-insensitive: png, jpg, jpeg, bmp, svg, and
// the reserved gif, tif, tiff, ico, webp. Reserved formats fail with
// ErrUnsupportedFormat unless WithFormatFallback enables PNG output for them.
//
// The base64 parameter is true for "on", "true" and an empty value, and false
// for anything else, including when it is absent.
//
// # Errors
//
// ErrMissingPayload, ErrInvalidSize, ErrInvalidPayload and ErrUnsupportedFormat
// are client errors. ErrEncodeFailure is a server fault. Raster and vector
// outputs report payloads that do not fit in a symbol the same way.
package qrcode
