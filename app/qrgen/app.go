package qrgen

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/qrgen/core/handler"
	"github.com/dmitrymomot/qrgen/core/health"
	"github.com/dmitrymomot/qrgen/core/logger"
	"github.com/dmitrymomot/qrgen/core/router"
	"github.com/dmitrymomot/qrgen/core/server"
	"github.com/dmitrymomot/qrgen/middleware"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

// App wires the QR generator into an HTTP service.
type App struct {
	config    Config
	logger    *slog.Logger
	generator *qrcode.Generator
	router    router.Router[*Context]
	server    *server.Server
}

// AppOption configures NewApp.
type AppOption func(*App) error

// NewApp builds the application from cfg. Components not supplied through
// options are created from the configuration.
func NewApp(cfg Config, opts ...AppOption) (*App, error) {
	app := &App{
		config: cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.generator == nil {
		g, err := qrcode.NewFromConfig(app.config.QR)
		if err != nil {
			return nil, err
		}
		app.generator = g
	}

	if app.server == nil {
		s, err := server.NewFromConfig(app.config.Server,
			server.WithLogger(app.logger.With(logger.Component("server"))),
		)
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	app.router = app.routes()
	return app, nil
}

// WithLogger sets the application logger.
func WithLogger(log *slog.Logger) AppOption {
	return func(app *App) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = log
		return nil
	}
}

// WithGenerator replaces the generator built from Config.QR.
func WithGenerator(g *qrcode.Generator) AppOption {
	return func(app *App) error {
		if g == nil {
			return errors.New("generator cannot be nil")
		}
		app.generator = g
		return nil
	}
}

// WithServer replaces the server built from Config.Server.
func WithServer(s *server.Server) AppOption {
	return func(app *App) error {
		if s == nil {
			return errors.New("server cannot be nil")
		}
		app.server = s
		return nil
	}
}

// Handler returns the HTTP handler with all routes and middleware.
func (a *App) Handler() http.Handler {
	return a.router
}

// Run serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(a.server.Run(ctx, a.router))
	return eg.Wait()
}

func (a *App) routes() router.Router[*Context] {
	r := router.New(
		router.WithContextFactory(newContext),
		router.WithLogger[*Context](a.logger),
		router.WithErrorHandler(a.errorHandler()),
		router.WithMiddleware(
			middleware.RequestID[*Context](),
			middleware.LoggingWithConfig[*Context](middleware.LoggingConfig{
				Logger: a.logger,
				Skip: func(ctx handler.Context) bool {
					return isHealthPath(ctx.Request().URL.Path)
				},
			}),
		),
	)

	r.Get("/{$}", a.index)
	r.Get("/health/live", health.Liveness[*Context])
	r.Get("/health/ready", health.Readiness[*Context](a.logger,
		health.Check{Name: "qrcode", Fn: a.generator.Healthcheck},
	))
	r.Get("/{filename}", a.renderQR)

	return r
}
