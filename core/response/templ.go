package response

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/qrgen/core/handler"
)

// Templ renders component as a 200 HTML page.
func Templ(component templ.Component) handler.Response {
	return TemplWithStatus(component, http.StatusOK)
}

// TemplWithStatus renders component as an HTML page. Status 0 means 200.
// Components receive the request context.
func TemplWithStatus(component templ.Component, status int) handler.Response {
	if component == nil {
		return Error(fmt.Errorf("templ: nil component"))
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if r.Method == http.MethodHead {
			return nil
		}
		if err := component.Render(r.Context(), w); err != nil {
			return fmt.Errorf("templ component render error: %w", err)
		}
		return nil
	}
}
