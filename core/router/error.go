package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/qrgen/core/handler"
)

var (
	ErrNoContextFactory = errors.New("no context factory provided")
	ErrNilResponse      = errors.New("nil response")
	ErrInvalidMethod    = errors.New("invalid http method")
	ErrInvalidPattern   = errors.New("invalid route path pattern")

	ErrNotFound         error = statusError{status: http.StatusNotFound}
	ErrMethodNotAllowed error = statusError{status: http.StatusMethodNotAllowed}
)

// statusError is a routing failure with a fixed HTTP status.
type statusError struct {
	status int
}

func (e statusError) Error() string   { return "router: " + http.StatusText(e.status) }
func (e statusError) StatusCode() int { return e.status }

// statusCode is implemented by errors that carry an HTTP status.
type statusCode interface {
	StatusCode() int
}

// Written reports whether w is a router writer that already sent its header.
// Error handlers use it to avoid writing a second reply.
func Written(w http.ResponseWriter) bool {
	ww, ok := w.(*responseWriter)
	return ok && ww.Written()
}

func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()
	if Written(w) {
		return
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}
	http.Error(w, http.StatusText(status), status)
}

// PanicError is passed to the error handler when a handler panics.
type PanicError interface {
	error
	// Value returns the recovered value.
	Value() any
	// Stack returns the stack captured at recovery.
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string { return fmt.Sprintf("panic: %v", e.value) }
func (e *panicError) Value() any    { return e.value }
func (e *panicError) Stack() []byte { return e.stack }

func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
