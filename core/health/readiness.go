package health

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/qrgen/core/handler"
	"github.com/dmitrymomot/qrgen/core/logger"
	"github.com/dmitrymomot/qrgen/core/response"
)

// DefaultCheckTimeout bounds a readiness probe.
const DefaultCheckTimeout = 5 * time.Second

// Check is a named dependency probe.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// Readiness runs all checks concurrently under DefaultCheckTimeout and
// replies "READY", or 503 if any check fails.
func Readiness[C handler.Context](log *slog.Logger, checks ...Check) handler.HandlerFunc[C] {
	return ReadinessWithTimeout[C](log, DefaultCheckTimeout, checks...)
}

// ReadinessWithTimeout is Readiness with a custom probe timeout.
func ReadinessWithTimeout[C handler.Context](log *slog.Logger, timeout time.Duration, checks ...Check) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		probeCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		eg, egCtx := errgroup.WithContext(probeCtx)
		for _, c := range checks {
			eg.Go(func() error {
				if err := c.Fn(egCtx); err != nil {
					log.ErrorContext(ctx, "readiness check failed",
						logger.Component("health"),
						logger.Key("check", c.Name),
						logger.Error(err),
					)
					return err
				}
				return nil
			})
		}

		if err := eg.Wait(); err != nil {
			return response.Error(response.ErrServiceUnavailable.WithError(err))
		}
		return response.String("READY")
	}
}
