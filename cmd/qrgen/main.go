package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/qrgen/app/qrgen"
	"github.com/dmitrymomot/qrgen/core/config"
	"github.com/dmitrymomot/qrgen/core/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg qrgen.Config
	config.MustLoad(&cfg) // panic on error

	log := qrgen.NewLogger(cfg, os.Stdout)

	app, err := qrgen.NewApp(cfg, qrgen.WithLogger(log))
	if err != nil {
		log.Error("Failed to create application", logger.Component("app"), logger.Error(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error("Application stopped with error", logger.Component("app"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}
