// Package middleware provides generic handler.Middleware for request IDs and
// access logging.
//
//	r := router.New(
//		router.WithContextFactory(newContext),
//		router.WithMiddleware(
//			middleware.RequestID[*Context](),
//			middleware.LoggingWithLogger[*Context](log),
//		),
//	)
//
// RequestID stores the ID in the request context and sets X-Request-ID on the
// response before the handler runs, so error replies carry it too. Pass
// RequestIDExtractor to logger.WithContextExtractors to stamp every log line
// written with the request context.
//
// Logging writes one record per request after the response ran, at warn level
// for 4xx, error for 5xx and warn for slow requests.
package middleware
