// Package requestid tags every HTTP request with a correlation id.
//
// Middleware reuses a well-formed X-Request-ID sent by the client, or
// generates a UUIDv4, stores it in the request context and echoes it in the
// response header. Attr turns the id into a slog attribute for access and
// error logs:
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		log.InfoContext(r.Context(), "hello", requestid.Attr(r.Context()))
//	})
package requestid
