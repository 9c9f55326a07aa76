// Package logger builds slog loggers and provides attribute helpers with
// consistent keys.
//
//	log := logger.New(
//		logger.WithProduction("qrgen"),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//		logger.WithContextExtractors(middleware.RequestIDExtractor()),
//	)
//	log.InfoContext(ctx, "generating QR code", logger.Format("png"), logger.Size(512))
//
// Development presets log text at debug level; production presets log JSON at
// info level. Both tag records with the service name.
//
// Context extractors run on every record logged through the *Context methods,
// which is how request IDs reach log lines without passing them around.
package logger
