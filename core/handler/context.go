package handler

import (
	"context"
	"net/http"
)

// Context is the per-request value handed to every HandlerFunc.
// Value must return anything stored with SetValue.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}
