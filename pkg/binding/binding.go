// Package binding is the lifecycle contract between a zoom.Manager and a
// rendering target. A target calls Init once its document is live, Update
// when the user picks a new level, and Dispose exactly once on teardown;
// OnChange callbacks re-render from the latest state snapshot.
package binding

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/oszoom/pkg/logger"
	"github.com/dmitrymomot/oszoom/pkg/osdetect"
	"github.com/dmitrymomot/oszoom/pkg/style"
	"github.com/dmitrymomot/oszoom/pkg/zoom"
)

// ErrDisposed is returned by operations on a disposed Controller.
var ErrDisposed = errors.New("binding: controller disposed")

// Binding is implemented once per rendering target.
type Binding interface {
	Init(ctx context.Context) (osdetect.Result, error)
	Apply(os osdetect.OS) error
	Update(os osdetect.OS, level float64) error
	Dispose()
}

// Controller binds one Manager to one Document. It serializes access, so a
// Controller may be shared across goroutines while the Manager stays
// lock-free.
type Controller struct {
	mu       sync.Mutex
	manager  *zoom.Manager
	injector *style.Injector
	log      *slog.Logger
	disposed bool
	once     sync.Once
	unsub    func()
	handlers []func(zoom.State)
}

var _ Binding = (*Controller)(nil)

// Option configures a Controller.
type Option func(*controllerConfig)

type controllerConfig struct {
	log       *slog.Logger
	styleOpts []style.InjectorOption
}

// WithLogger sets the logger of the controller, its manager and injector.
func WithLogger(l *slog.Logger) Option {
	return func(c *controllerConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// WithStyleOptions overrides stylesheet rendering options.
func WithStyleOptions(opts style.Options) Option {
	return func(c *controllerConfig) {
		c.styleOpts = append(c.styleOpts, style.WithOptions(opts))
	}
}

// New builds a Controller that reads probes from env and writes styles to doc.
func New(cfg zoom.Config, env osdetect.Environment, doc style.Document, opts ...Option) *Controller {
	cc := &controllerConfig{log: logger.Discard()}
	for _, opt := range opts {
		opt(cc)
	}

	injector := style.NewInjector(doc, append([]style.InjectorOption{style.WithLogger(cc.log)}, cc.styleOpts...)...)
	c := &Controller{
		injector: injector,
		log:      cc.log,
		manager: zoom.New(cfg,
			zoom.WithInjector(injector),
			zoom.WithEnvironment(env),
			zoom.WithLogger(cc.log),
		),
	}
	c.unsub = c.manager.Subscribe(c.dispatch)
	return c
}

// OnChange registers a re-render callback. Callbacks run with the
// controller locked and must not call back into it.
func (c *Controller) OnChange(fn func(zoom.State)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, fn)
}

// Init detects the OS and applies its level.
func (c *Controller) Init(ctx context.Context) (osdetect.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return osdetect.UnknownResult, ErrDisposed
	}
	return c.manager.Init(ctx), nil
}

// Apply re-applies the configured level of os.
func (c *Controller) Apply(os osdetect.OS) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return ErrDisposed
	}
	c.manager.Apply(os)
	return nil
}

// Update sets a new level for os. Out-of-range levels are ignored by the
// manager; callers that need feedback check zoom.ValidLevel first.
func (c *Controller) Update(os osdetect.OS, level float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return ErrDisposed
	}
	c.manager.SetZoom(os, level)
	return nil
}

// Reset returns the page to zoom 1.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return ErrDisposed
	}
	c.manager.Reset()
	return nil
}

// Dispose resets the zoom and removes the stylesheet. Only the first call
// has an effect. OnChange callbacks do not see the final reset.
func (c *Controller) Dispose() {
	c.once.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.unsub()
		c.manager.Destroy()
		c.disposed = true
		c.log.Debug("binding: disposed")
	})
}

// State returns the current state snapshot.
func (c *Controller) State() zoom.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.manager.State()
}

// Detected returns the Init result.
func (c *Controller) Detected() osdetect.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.manager.Detected()
}

// GetZoom returns the configured level of os.
func (c *Controller) GetZoom(os osdetect.OS) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.manager.GetZoom(os)
}

// OSInfo re-runs detection.
func (c *Controller) OSInfo(ctx context.Context) osdetect.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.manager.OSInfo(ctx)
}

// Config returns a copy of the manager config.
func (c *Controller) Config() zoom.Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.manager.Config()
}

// Disposed reports whether Dispose has run.
func (c *Controller) Disposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

// dispatch runs under c.mu; every manager call goes through a locked method.
func (c *Controller) dispatch(s zoom.State) {
	for _, fn := range c.handlers {
		fn(s)
	}
}
