// Package response builds handler.Response values and turns errors into replies.
//
// Constructors write the content type, status and body in one go:
//
//	return response.Bytes(png, "image/png")
//	return response.StringWithStatus("Invalid data", http.StatusBadRequest)
//	return response.Templ(views.Index())
//
// Handlers report failures by returning response.Error(err). The router passes
// err to ErrorHandler (or LoggingErrorHandler), which picks the status from
// an HTTPError, from a StatusCode() int method, or falls back to 500, and
// replies with the HTTPError message as text/plain. Causes attached with
// WithError are logged but never sent to the client.
package response
