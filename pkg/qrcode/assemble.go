package qrcode

import (
	"encoding/base64"
	"net/http"
)

// ContentTypeDataURI is the content type of base64 replies.
const ContentTypeDataURI = "text/plain"

// Reply is the status, headers and body for a successful render.
type Reply struct {
	Status int
	Header http.Header
	Body   []byte
}

// ContentType returns the Content-Type header of the reply.
func (r Reply) ContentType() string {
	return r.Header.Get("Content-Type")
}

// Assemble builds the reply for body. With wantBase64 the body is wrapped as a
// data URI and served as plain text, regardless of the image format.
func Assemble(body Body, wantBase64 bool) Reply {
	header := make(http.Header, 1)
	if wantBase64 {
		header.Set("Content-Type", ContentTypeDataURI)
		return Reply{
			Status: http.StatusOK,
			Header: header,
			Body:   []byte(DataURI(body)),
		}
	}

	header.Set("Content-Type", body.MediaType)
	return Reply{
		Status: http.StatusOK,
		Header: header,
		Body:   body.Data,
	}
}

// DataURI formats body as "data:<media type>;base64,<data>" using the standard
// alphabet without padding.
func DataURI(body Body) string {
	return "data:" + body.MediaType + ";base64," + base64.RawStdEncoding.EncodeToString(body.Data)
}
