package health

import (
	"github.com/dmitrymomot/qrgen/core/handler"
	"github.com/dmitrymomot/qrgen/core/response"
)

// Liveness replies "ALIVE" without checking dependencies.
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}
