// Package server runs an http.Handler with production timeouts and graceful
// shutdown.
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(srv.Run(ctx, router))
//	return eg.Wait()
//
// Run serves until the context is cancelled, then drains in-flight requests
// for at most the shutdown timeout. Config reads HOST, PORT and the SERVER_*
// variables; PORT=0 binds a free port, reported by Addr once running.
package server
