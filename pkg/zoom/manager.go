package zoom

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/oszoom/pkg/logger"
	"github.com/dmitrymomot/oszoom/pkg/osdetect"
	"github.com/dmitrymomot/oszoom/pkg/statemachine"
)

// Manager is the zoom state machine of one page.
type Manager struct {
	cfg      Config
	state    State
	detected osdetect.Result
	injector StyleInjector
	env      osdetect.Environment
	log      *slog.Logger
	fsm      *statemachine.Machine[phase, trigger]
	subs     map[int]func(State)
	nextSub  int
}

// applyRequest is the transition payload of Apply.
type applyRequest struct {
	os  osdetect.OS
	cfg OSConfig
}

// New returns an inactive Manager that owns a deep copy of cfg.
func New(cfg Config, opts ...Option) *Manager {
	m := &Manager{
		cfg:      cfg.Clone(),
		state:    InitialState(),
		detected: osdetect.UnknownResult,
		injector: noopInjector{},
		log:      logger.Discard(),
		subs:     make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(m)
	}

	type (
		guard  = statemachine.Guard[phase, trigger]
		action = statemachine.Action[phase, trigger]
	)
	enabled := guard(func(_ context.Context, _ phase, _ trigger, data any) bool {
		req, ok := data.(applyRequest)
		return ok && req.cfg.Enabled
	})
	activate := action(func(_ context.Context, _, _ phase, _ trigger, data any) error {
		m.activate(data.(applyRequest))
		return nil
	})
	deactivate := action(func(context.Context, phase, phase, trigger, any) error {
		m.deactivate()
		return nil
	})

	m.fsm = statemachine.MustNew(phaseInactive,
		statemachine.WithTransition(phaseInactive, phaseActive, triggerActivate,
			statemachine.WithGuard(enabled), statemachine.WithAction(activate)),
		statemachine.WithTransition(phaseActive, phaseActive, triggerActivate,
			statemachine.WithGuard(enabled), statemachine.WithAction(activate)),
		statemachine.WithTransition(phaseActive, phaseInactive, triggerDeactivate,
			statemachine.WithAction(deactivate)),
		statemachine.WithTransition(phaseInactive, phaseInactive, triggerDeactivate,
			statemachine.WithAction(deactivate)),
	)
	return m
}

// Init detects the OS once and applies its level. It is a no-op returning
// the unknown result when EnableJavaScript is explicitly false.
func (m *Manager) Init(ctx context.Context) osdetect.Result {
	if !m.cfg.JavaScriptEnabled() {
		m.debug("zoom: detection disabled by config")
		return osdetect.UnknownResult
	}
	m.detected = osdetect.DetectContext(ctx, m.env)
	m.debug("zoom: detected operating system",
		logger.OS(m.detected.OS), slog.Bool("mobile", m.detected.IsMobile), logger.Browser(m.detected.Browser))
	m.Apply(m.detected.OS)
	return m.detected
}

// Detected returns the result recorded by Init.
func (m *Manager) Detected() osdetect.Result { return m.detected }

// OSInfo runs the classifier against the environment again.
func (m *Manager) OSInfo(ctx context.Context) osdetect.Result {
	return osdetect.DetectContext(ctx, m.env)
}

// Apply activates the configured level of os. A disabled os leaves the state
// untouched, whatever it was.
func (m *Manager) Apply(os osdetect.OS) {
	req := applyRequest{os: os, cfg: m.lookup(os)}
	err := m.fsm.Fire(context.Background(), triggerActivate, req)
	if statemachine.IsRejected(err) {
		m.debug("zoom: disabled for operating system", logger.OS(os))
		return
	}
	if err != nil {
		m.debug("zoom: apply failed", logger.OS(os), logger.Error(err))
	}
}

// SetZoom changes the configured level of os and re-applies it. Levels
// outside [MinZoom, MaxZoom] are rejected without any change.
func (m *Manager) SetZoom(os osdetect.OS, level float64) {
	if !ValidLevel(level) {
		m.warn("zoom: level out of range", logger.OS(os), logger.ZoomLevel(level),
			slog.Float64("min", MinZoom), slog.Float64("max", MaxZoom))
		return
	}
	entry := m.lookup(os)
	entry.ZoomLevel = level
	m.cfg.OS[os] = entry
	m.Apply(os)
}

// GetZoom returns the configured level of os, applied or not.
func (m *Manager) GetZoom(os osdetect.OS) float64 {
	return m.lookup(os).ZoomLevel
}

// Reset returns to zoom 1, inactive. The factor 1 is always pushed to the
// injector, whatever the CSS flag says.
func (m *Manager) Reset() {
	if err := m.fsm.Fire(context.Background(), triggerDeactivate, nil); err != nil {
		m.debug("zoom: reset failed", logger.Error(err))
	}
}

// Destroy resets and removes the stylesheet.
func (m *Manager) Destroy() {
	m.Reset()
	m.injector.Remove()
}

// State returns a copy of the current state.
func (m *Manager) State() State { return m.state }

// Config returns a deep copy of the current config.
func (m *Manager) Config() Config { return m.cfg.Clone() }

// Subscribe registers fn for state changes and returns a function that
// unregisters it.
func (m *Manager) Subscribe(fn func(State)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	return func() { delete(m.subs, id) }
}

// lookup falls back to an enabled level-1 entry for absent tags.
func (m *Manager) lookup(os osdetect.OS) OSConfig {
	if c, ok := m.cfg.OS[os]; ok {
		return c
	}
	return OSConfig{Enabled: true, ZoomLevel: DefaultZoom}
}

func (m *Manager) activate(req applyRequest) {
	m.state = State{CurrentZoom: req.cfg.ZoomLevel, AppliedOS: req.os, IsActive: true}
	if m.cfg.CSSEnabled() {
		m.injector.SetScaleFactor(req.cfg.ZoomLevel)
		m.injector.Inject()
	}
	m.debug("zoom: applied", logger.OS(req.os), logger.Factor(req.cfg.ZoomLevel))
	m.notify()
}

func (m *Manager) deactivate() {
	m.state.CurrentZoom = DefaultZoom
	m.state.IsActive = false
	m.injector.SetScaleFactor(DefaultZoom)
	m.debug("zoom: reset")
	m.notify()
}

func (m *Manager) notify() {
	st := m.state
	for _, fn := range m.subs {
		fn(st)
	}
}

func (m *Manager) debug(msg string, attrs ...any) {
	if m.cfg.Debug {
		m.log.Info(msg, attrs...)
	}
}

func (m *Manager) warn(msg string, attrs ...any) {
	if m.cfg.Debug {
		m.log.Warn(msg, attrs...)
	}
}
