package qrgen

import (
	"net/http"

	"github.com/dmitrymomot/qrgen/core/router"
)

// Context is the request context passed to every handler.
type Context struct {
	*router.Context
}

// Filename returns the route token of the QR endpoint.
func (c *Context) Filename() string {
	return c.Param("filename")
}

func newContext(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
	return &Context{Context: router.NewContext(w, r, params)}
}
