package qrgen

import (
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/qrgen/core/logger"
	"github.com/dmitrymomot/qrgen/core/server"
	"github.com/dmitrymomot/qrgen/middleware"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

// Config is the application configuration, loaded from the environment.
type Config struct {
	Server server.Config
	QR     qrcode.Config

	AppName  string `env:"APP_NAME" envDefault:"qrgen"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		Server:   server.DefaultConfig(),
		QR:       qrcode.DefaultConfig(),
		AppName:  "qrgen",
		Env:      "development",
		LogLevel: "info",
	}
}

// IsProduction reports whether APP_ENV is "production" or "prod".
func (c Config) IsProduction() bool {
	switch strings.ToLower(c.Env) {
	case "production", "prod":
		return true
	}
	return false
}

// NewLogger builds the process logger: JSON in production, text otherwise,
// at LOG_LEVEL, with request IDs taken from request contexts.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	preset := logger.WithDevelopment(cfg.AppName)
	if cfg.IsProduction() {
		preset = logger.WithProduction(cfg.AppName)
	}
	return logger.New(
		preset,
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithOutput(w),
		logger.WithAttr(slog.String("env", cfg.Env)),
		logger.WithContextExtractors(middleware.RequestIDExtractor()),
	)
}
