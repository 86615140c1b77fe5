package zoom

import (
	"log/slog"

	"github.com/dmitrymomot/oszoom/pkg/osdetect"
)

// StyleInjector produces the visual effect of a scale factor.
type StyleInjector interface {
	SetScaleFactor(factor float64)
	Inject()
	Remove()
}

// Option configures a Manager.
type Option func(*Manager)

// WithInjector sets the style target. Without one the Manager only tracks state.
func WithInjector(i StyleInjector) Option {
	return func(m *Manager) {
		if i != nil {
			m.injector = i
		}
	}
}

// WithLogger sets the logger used when Config.Debug is on.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithEnvironment sets where Init and OSInfo read probes from.
func WithEnvironment(env osdetect.Environment) Option {
	return func(m *Manager) { m.env = env }
}

type noopInjector struct{}

func (noopInjector) SetScaleFactor(float64) {}
func (noopInjector) Inject()                {}
func (noopInjector) Remove()                {}
