package zoomapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/oszoom/pkg/binding"
	"github.com/dmitrymomot/oszoom/pkg/logger"
	"github.com/dmitrymomot/oszoom/pkg/requestid"
	"github.com/dmitrymomot/oszoom/pkg/style"
	"github.com/dmitrymomot/oszoom/pkg/zoom"
)

// API serves the zoom endpoints.
type API struct {
	cfg       zoom.Config
	styleOpts style.Options
	sessions  *Store
	log       *slog.Logger
}

// Option configures an API.
type Option func(*apiOptions)

type apiOptions struct {
	cfg         zoom.Config
	styleOpts   style.Options
	maxSessions int
	log         *slog.Logger
}

// WithConfig sets the config of sessions that name neither a preset nor a
// config of their own. Defaults to the desktopOnly preset.
func WithConfig(cfg zoom.Config) Option {
	return func(o *apiOptions) { o.cfg = cfg.Clone() }
}

// WithStyleOptions sets the stylesheet bases.
func WithStyleOptions(opts style.Options) Option {
	return func(o *apiOptions) { o.styleOpts = opts }
}

// WithMaxSessions bounds live sessions; n <= 0 is unbounded.
func WithMaxSessions(n int) Option {
	return func(o *apiOptions) { o.maxSessions = n }
}

// WithLogger sets the logger. Nil discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *apiOptions) { o.log = l }
}

// New returns an API.
func New(opts ...Option) *API {
	o := &apiOptions{
		cfg:         zoom.DesktopOnly(),
		styleOpts:   style.DefaultOptions(),
		maxSessions: 10000,
	}
	for _, opt := range opts {
		opt(o)
	}
	log := logger.OrDiscard(o.log).With(logger.Component("zoomapi"))
	return &API{
		cfg:       o.cfg,
		styleOpts: o.styleOpts,
		sessions:  NewStore(o.maxSessions, log),
		log:       log,
	}
}

// Sessions returns the session store.
func (a *API) Sessions() *Store { return a.sessions }

// Router builds the chi router with all routes mounted.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, middleware.Recoverer, accessLog(a.log))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, a.log, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, a.log, ErrMethodNotAllowed)
	})

	r.Get("/zoom.css", a.stylesheet)
	r.Get("/probe.js", a.probeScript)

	r.Route("/api", func(r chi.Router) {
		r.Post("/detect", a.detect)
		r.Get("/presets", a.listPresets)
		r.Get("/presets/{name}", a.getPreset)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", a.createSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", a.getSession)
				r.Delete("/", a.deleteSession)
				r.Post("/apply", a.applySession)
				r.Put("/zoom", a.zoomSession)
				r.Post("/reset", a.resetSession)
			})
		})
	})
	return r
}

func (a *API) bindingOptions() []binding.Option {
	return []binding.Option{
		binding.WithLogger(a.log),
		binding.WithStyleOptions(a.styleOpts),
	}
}
