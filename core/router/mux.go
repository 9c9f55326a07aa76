package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/qrgen/core/handler"
	"github.com/dmitrymomot/qrgen/core/logger"
)

// catchAll is the ServeMux pattern that receives every unmatched request.
const catchAll = "/"

var knownMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodConnect: true,
	http.MethodOptions: true,
	http.MethodTrace:   true,
}

type mux[C handler.Context] struct {
	serve        *http.ServeMux
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, map[string]string) C
	logger       *slog.Logger

	routes   []Route
	methods  []string // registered methods, probed to build the Allow header
	catchAll bool     // "/" registered by the user
	once     sync.Once
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		serve:        http.NewServeMux(),
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		var zero C
		if _, ok := any(zero).(*Context); !ok {
			panic(ErrNoContextFactory)
		}
		m.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			return any(NewContext(w, r, params)).(C)
		}
	}

	return m
}

// ServeHTTP implements http.Handler.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.once.Do(func() {
		if !m.catchAll {
			m.serve.Handle(catchAll, m.wrap(catchAll, m.unmatched))
		}
	})
	m.serve.ServeHTTP(w, r)
}

func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodGet, pattern, h)
}

func (m *mux[C]) Head(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodHead, pattern, h)
}

func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPost, pattern, h)
}

func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPut, pattern, h)
}

func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodDelete, pattern, h)
}

func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	m.handle("", pattern, h)
}

func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	if len(methods) == 0 {
		panic(fmt.Errorf("%w: no methods provided", ErrInvalidMethod))
	}
	seen := make(map[string]bool, len(methods))
	for _, method := range methods {
		method = strings.ToUpper(method)
		if !knownMethods[method] {
			panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
		}
		if seen[method] {
			continue
		}
		seen[method] = true
		m.handle(method, pattern, h)
	}
}

func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if len(m.routes) > 0 {
		panic("router: all middlewares must be defined before routes")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

func (m *mux[C]) Routes() []Route {
	return slices.Clone(m.routes)
}

func (m *mux[C]) handle(method, pattern string, h handler.HandlerFunc[C]) {
	if pattern == "" || pattern[0] != '/' {
		panic(fmt.Errorf("%w: %q", ErrInvalidPattern, pattern))
	}
	if h == nil {
		panic(fmt.Errorf("%w: nil handler for %q", ErrInvalidPattern, pattern))
	}

	full := pattern
	if method != "" {
		full = method + " " + pattern
		m.addMethod(method)
		if method == http.MethodGet {
			m.addMethod(http.MethodHead)
		}
	} else if pattern == catchAll {
		m.catchAll = true
	}

	m.serve.Handle(full, m.wrap(pattern, h))
	m.routes = append(m.routes, Route{Method: method, Pattern: pattern})
}

func (m *mux[C]) addMethod(method string) {
	if !slices.Contains(m.methods, method) {
		m.methods = append(m.methods, method)
	}
}

// wrap adapts a typed handler to the ServeMux, extracting the pattern's wildcards.
func (m *mux[C]) wrap(pattern string, h handler.HandlerFunc[C]) http.Handler {
	names := wildcards(pattern)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var params map[string]string
		if len(names) > 0 {
			params = make(map[string]string, len(names))
			for _, name := range names {
				params[name] = r.PathValue(name)
			}
		}
		m.dispatch(w, r, params, h)
	})
}

func (m *mux[C]) dispatch(w http.ResponseWriter, r *http.Request, params map[string]string, h handler.HandlerFunc[C]) {
	ww := newResponseWriter(w)
	ctx := m.newContext(ww, r, params)

	defer func() {
		p := recover()
		if p == nil {
			return
		}
		perr := &panicError{value: p, stack: debug.Stack()}
		if ww.Written() {
			m.logger.ErrorContext(r.Context(), "panic after response written",
				logger.Error(perr),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.StatusCode(ww.Status()),
				slog.String("stack", string(perr.stack)),
			)
			return
		}
		m.errorHandler(ctx, perr)
	}()

	resp := handler.Chain(h, m.middlewares...)(ctx)
	if resp == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}
	if err := resp(ww, r); err != nil {
		m.errorHandler(ctx, err)
	}
}

// unmatched reports 405 with an Allow header when the path is served for
// other methods, 404 otherwise.
func (m *mux[C]) unmatched(ctx C) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if allowed := m.allowed(r); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
			return ErrMethodNotAllowed
		}
		return ErrNotFound
	}
}

func (m *mux[C]) allowed(r *http.Request) []string {
	var allowed []string
	for _, method := range m.methods {
		if method == r.Method {
			continue
		}
		probe := r.Clone(r.Context())
		probe.Method = method
		if _, pattern := m.serve.Handler(probe); pattern != "" && pattern != catchAll {
			allowed = append(allowed, method)
		}
	}
	slices.Sort(allowed)
	return allowed
}

// wildcards returns the wildcard names of a ServeMux pattern.
func wildcards(pattern string) []string {
	var names []string
	for {
		start := strings.IndexByte(pattern, '{')
		if start < 0 {
			return names
		}
		end := strings.IndexByte(pattern[start:], '}')
		if end < 0 {
			return names
		}
		name := strings.TrimSuffix(pattern[start+1:start+end], "...")
		if name != "$" && name != "" {
			names = append(names, name)
		}
		pattern = pattern[start+end+1:]
	}
}
