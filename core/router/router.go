package router

import (
	"net/http"

	"github.com/dmitrymomot/qrgen/core/handler"
)

// Router registers typed handlers on top of net/http.ServeMux patterns.
//
// Patterns use the ServeMux syntax without a method prefix: "/{filename}",
// "/files/{path...}" or "/{$}" for the root only. The bare "/" pattern is
// reserved for the router's not-found handling unless registered with Handle.
type Router[C handler.Context] interface {
	http.Handler
	Routes

	Get(pattern string, h handler.HandlerFunc[C])
	Head(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])

	// Handle registers h for every method.
	Handle(pattern string, h handler.HandlerFunc[C])
	// Method registers h for the given methods.
	Method(pattern string, h handler.HandlerFunc[C], methods ...string)

	// Use appends middleware. It panics once routes are registered.
	Use(middlewares ...handler.Middleware[C])
}

// Routes provides route introspection.
type Routes interface {
	Routes() []Route
}

// Route is a registered method and pattern. Method is empty for Handle routes.
type Route struct {
	Method  string
	Pattern string
}

// New creates a router. Without WithContextFactory the context type must be *Context.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux(opts...)
}
