package response

import (
	"net/http"

	"github.com/dmitrymomot/qrgen/core/handler"
)

const contentTypeText = "text/plain; charset=utf-8"

// Render runs resp against the context's writer. A failing resp that has not
// sent anything yet is answered with a bare 500.
func Render(ctx handler.Context, resp handler.Response) {
	if resp == nil {
		return
	}
	w := ctx.ResponseWriter()
	if err := resp(w, ctx.Request()); err != nil && !written(w) {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// String replies 200 with a plain text body.
func String(content string) handler.Response {
	return StringWithStatus(content, http.StatusOK)
}

// StringWithStatus replies with a plain text body. Status 0 means 200.
func StringWithStatus(content string, status int) handler.Response {
	return BytesWithStatus([]byte(content), contentTypeText, status)
}

// Bytes replies 200 with body and the given content type.
func Bytes(content []byte, contentType string) handler.Response {
	return BytesWithStatus(content, contentType, http.StatusOK)
}

// BytesWithStatus replies with body, content type and status. An empty content
// type leaves the header unset; status 0 means 200.
func BytesWithStatus(content []byte, contentType string, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if len(content) == 0 || r.Method == http.MethodHead {
			return nil
		}
		_, err := w.Write(content)
		return err
	}
}

// NoContent replies 204.
func NoContent() handler.Response {
	return Status(http.StatusNoContent)
}

// Status replies with an empty body. Code 0 means 200.
func Status(code int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if code == 0 {
			code = http.StatusOK
		}
		w.WriteHeader(code)
		return nil
	}
}

// written reports whether w tracks its state and has already sent the header.
func written(w http.ResponseWriter) bool {
	ww, ok := w.(interface{ Written() bool })
	return ok && ww.Written()
}
