package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/qrgen/core/handler"
	"github.com/dmitrymomot/qrgen/core/logger"
)

type statusCode interface {
	StatusCode() int
}

// AsHTTPError classifies err. HTTPError values pass through; errors with a
// StatusCode() method map to the catalogue entry for that status; anything
// else is a 500. The original error is kept as the cause.
func AsHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	base, ok := httpErrorsByStatus[status]
	if !ok {
		base = newHTTPError(status, "error")
		if http.StatusText(status) == "" {
			base = ErrInternalServerError
		}
	}
	return base.WithError(err)
}

// ErrorHandler replies with the error's message as plain text. Replies that
// already started are left alone.
func ErrorHandler[C handler.Context](ctx C, err error) {
	if written(ctx.ResponseWriter()) {
		return
	}
	httpErr := AsHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Message, httpErr.Status))
}

// LoggingErrorHandler is ErrorHandler that also logs server faults with
// their cause. Client errors are logged at debug level.
func LoggingErrorHandler[C handler.Context](log *slog.Logger) handler.ErrorHandler[C] {
	return func(ctx C, err error) {
		httpErr := AsHTTPError(err)
		level := slog.LevelDebug
		if httpErr.Status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.LogAttrs(ctx, level, "request failed",
			logger.StatusCode(httpErr.Status),
			logger.Error(err),
			logger.Method(ctx.Request().Method),
			logger.Path(ctx.Request().URL.Path),
		)
		ErrorHandler(ctx, httpErr)
	}
}
