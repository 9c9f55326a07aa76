package qrgen

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/qrgen/core/handler"
	"github.com/dmitrymomot/qrgen/core/logger"
	"github.com/dmitrymomot/qrgen/core/response"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

// Client-facing messages for pipeline errors.
const (
	msgMissingData       = "Missing data"
	msgInvalidSize       = "Invalid size"
	msgInvalidData       = "Invalid data"
	msgUnsupportedFormat = "Unsupported format"
)

func (a *App) index(ctx *Context) handler.Response {
	return response.Templ(indexPage(indexData{
		AppName:     a.config.AppName,
		DefaultSize: qrcode.DefaultSize,
		MaxSize:     qrcode.MaxSize,
	}))
}

func (a *App) renderQR(ctx *Context) handler.Response {
	req, err := qrcode.ParseRequest(ctx.Filename(), ctx.Request().URL.Query())
	if err != nil {
		return response.Error(httpError(err))
	}

	a.logger.InfoContext(ctx, "generating QR code",
		logger.Component("qrcode"),
		logger.Format(req.Format.String()),
		logger.Size(req.Size),
		logger.Count("payload_length", len(req.Payload)),
		slog.Bool("base64", req.Base64),
	)

	reply, err := a.generator.Reply(req)
	if err != nil {
		return response.Error(httpError(err))
	}

	return response.BytesWithStatus(reply.Body, reply.ContentType(), reply.Status)
}

// httpError maps pipeline errors to client replies. Anything unknown is a
// server fault whose details stay in the logs.
func httpError(err error) error {
	switch {
	case errors.Is(err, qrcode.ErrMissingPayload):
		return response.ErrBadRequest.WithMessage(msgMissingData).WithError(err)
	case errors.Is(err, qrcode.ErrInvalidSize):
		return response.ErrBadRequest.WithMessage(msgInvalidSize).WithError(err)
	case errors.Is(err, qrcode.ErrInvalidPayload):
		return response.ErrBadRequest.WithMessage(msgInvalidData).WithError(err)
	case errors.Is(err, qrcode.ErrUnsupportedFormat):
		return response.ErrBadRequest.WithMessage(msgUnsupportedFormat).WithError(err)
	default:
		return response.ErrInternalServerError.WithError(err)
	}
}

func (a *App) errorHandler() handler.ErrorHandler[*Context] {
	return response.LoggingErrorHandler[*Context](a.logger)
}

func isHealthPath(path string) bool {
	return strings.HasPrefix(path, "/health/")
}

