package handler

import "net/http"

// Response writes a reply to w. A returned error is passed to the
// router's ErrorHandler, so a Response must not write anything before failing.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc produces the Response for a request context.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler turns a failed Response into an HTTP reply.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps a HandlerFunc.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]

// Chain wraps h with middlewares so that the first middleware runs outermost.
func Chain[C Context](h HandlerFunc[C], middlewares ...Middleware[C]) HandlerFunc[C] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] == nil {
			continue
		}
		h = middlewares[i](h)
	}
	return h
}
