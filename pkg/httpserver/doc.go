// Package httpserver runs an http.Handler with configured timeouts and a
// graceful shutdown bound to a context.
//
// The listener is opened before Run reports readiness, so callers (and
// tests) can read the bound address through Addr once Ready is closed:
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//		httpserver.WithLogger(log),
//		httpserver.WithCleanup(sessions.Close),
//	)
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Cleanups registered with WithCleanup run after the server stopped
// accepting requests, in registration order; their errors are joined into
// the Shutdown error together with ErrShutdown.
package httpserver
