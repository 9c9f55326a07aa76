// Package handler defines the request pipeline types shared by the router,
// middleware and application packages.
//
// A HandlerFunc never writes to the connection directly. It returns a
// Response, a deferred writer that the router executes after the middleware
// chain has run:
//
//	func hello(ctx handler.Context) handler.Response {
//		return response.String("hello " + ctx.Param("name"))
//	}
//
// If the Response returns an error, the router calls its ErrorHandler with the
// same context, which decides the status code and body.
//
// Middleware wraps a HandlerFunc and may inspect or replace the Response it
// returns. Chain composes them so that the first one listed runs first:
//
//	h := handler.Chain(hello, requestID, logging)
package handler
