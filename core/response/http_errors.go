package response

import "net/http"

// HTTPError is an error with the status and client-facing message to reply with.
// The cause, if any, is kept for logging and errors.Is but never rendered.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	cause   error
}

// NewHTTPError creates a 500 error with message.
func NewHTTPError(message string) HTTPError {
	return ErrInternalServerError.WithMessage(message)
}

func (e HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status.
func (e HTTPError) StatusCode() int {
	return e.Status
}

// Unwrap returns the cause.
func (e HTTPError) Unwrap() error {
	return e.cause
}

// WithMessage returns a copy with a different message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithError returns a copy caused by err.
func (e HTTPError) WithError(err error) HTTPError {
	e.cause = err
	return e
}

func newHTTPError(status int, code string) HTTPError {
	return HTTPError{Status: status, Code: code, Message: http.StatusText(status)}
}

var (
	ErrBadRequest          = newHTTPError(http.StatusBadRequest, "bad_request")
	ErrNotFound            = newHTTPError(http.StatusNotFound, "not_found")
	ErrMethodNotAllowed    = newHTTPError(http.StatusMethodNotAllowed, "method_not_allowed")
	ErrRequestURITooLong   = newHTTPError(http.StatusRequestURITooLong, "request_uri_too_long")
	ErrInternalServerError = newHTTPError(http.StatusInternalServerError, "internal_server_error")
	ErrServiceUnavailable  = newHTTPError(http.StatusServiceUnavailable, "service_unavailable")
)

var httpErrorsByStatus = map[int]HTTPError{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusRequestURITooLong:   ErrRequestURITooLong,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}
