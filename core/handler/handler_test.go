package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/core/handler"
)

type testContext struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

func (c *testContext) Request() *http.Request              { return c.r }
func (c *testContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *testContext) Param(string) string                 { return "" }
func (c *testContext) SetValue(key, val any) {
	c.Context = context.WithValue(c.Context, key, val)
}

func TestChain(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Middleware[*testContext] {
		return func(next handler.HandlerFunc[*testContext]) handler.HandlerFunc[*testContext] {
			return func(ctx *testContext) handler.Response {
				order = append(order, name)
				return next(ctx)
			}
		}
	}

	h := handler.Chain(func(ctx *testContext) handler.Response {
		order = append(order, "handler")
		return func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}
	}, mark("first"), nil, mark("second"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := &testContext{Context: req.Context(), w: rec, r: req}

	require.NoError(t, h(ctx)(rec, req))
	assert.Equal(t, []string{"first", "second", "handler"}, order)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestChainWithoutMiddleware(t *testing.T) {
	t.Parallel()

	called := false
	h := handler.Chain(func(ctx *testContext) handler.Response {
		called = true
		return nil
	})
	h(&testContext{Context: context.Background()})
	assert.True(t, called)
}
