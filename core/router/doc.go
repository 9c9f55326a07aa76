// Package router dispatches requests to typed handlers using net/http.ServeMux
// patterns.
//
//	r := router.New[*router.Context](
//		router.WithMiddleware(middleware.RequestID[*router.Context]()),
//		router.WithErrorHandler(response.ErrorHandler[*router.Context]),
//	)
//	r.Get("/{$}", index)
//	r.Get("/{filename}", render)
//
// Wildcards are available through Context.Param. A GET route also answers HEAD.
//
// Every failure goes through the error handler: errors returned by a
// Response, recovered panics (as PanicError), and unmatched requests. An
// unmatched path yields ErrNotFound; a path registered only for other methods
// yields ErrMethodNotAllowed with the Allow header set. Both errors implement
// StatusCode() int. Middleware runs for unmatched requests too, so request IDs
// and access logs cover 404 and 405 replies.
//
// Custom context types need WithContextFactory; New panics with
// ErrNoContextFactory otherwise.
package router
