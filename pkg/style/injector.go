package style

import (
	"log/slog"

	"github.com/dmitrymomot/oszoom/pkg/logger"
)

// Injector keeps the zoom stylesheet of one Document in sync with the
// current scale factor. Document errors are logged and swallowed: a failed
// write only means no visual effect.
type Injector struct {
	doc    Document
	opts   Options
	log    *slog.Logger
	factor float64
}

// InjectorOption configures an Injector.
type InjectorOption func(*Injector)

// WithLogger sets the logger for document errors.
func WithLogger(l *slog.Logger) InjectorOption {
	return func(i *Injector) {
		if l != nil {
			i.log = l
		}
	}
}

// WithOptions overrides the stylesheet options.
func WithOptions(opts Options) InjectorOption {
	return func(i *Injector) { i.opts = opts }
}

// NewInjector returns an Injector writing to doc with factor 1.
func NewInjector(doc Document, opts ...InjectorOption) *Injector {
	i := &Injector{
		doc:    doc,
		opts:   DefaultOptions(),
		log:    logger.Discard(),
		factor: 1,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Factor returns the last factor set.
func (i *Injector) Factor() float64 { return i.factor }

// SetScaleFactor records factor and writes it to the root custom property.
// The last write wins. Invalid factors are ignored.
func (i *Injector) SetScaleFactor(factor float64) {
	if !validFactor(factor) {
		i.log.Warn("style: ignoring invalid scale factor", logger.Factor(factor))
		return
	}
	i.factor = factor
	if err := i.doc.SetRootProperty(FactorProperty, FormatFactor(factor)); err != nil {
		i.log.Warn("style: set scale factor failed", logger.Error(err))
	}
}

// Inject appends the stylesheet unless an element with ElementID exists.
func (i *Injector) Inject() {
	exists, err := i.doc.HasElement(ElementID)
	if err != nil {
		i.log.Warn("style: lookup stylesheet failed", logger.Error(err))
		return
	}
	if exists {
		return
	}
	css, err := Render(i.factor, i.opts)
	if err != nil {
		i.log.Warn("style: render stylesheet failed", logger.Error(err))
		return
	}
	if err := i.doc.AppendStyle(ElementID, css); err != nil {
		i.log.Warn("style: inject stylesheet failed", logger.Error(err))
	}
}

// Remove deletes the stylesheet if present.
func (i *Injector) Remove() {
	exists, err := i.doc.HasElement(ElementID)
	if err != nil {
		i.log.Warn("style: lookup stylesheet failed", logger.Error(err))
		return
	}
	if !exists {
		return
	}
	if err := i.doc.RemoveElement(ElementID); err != nil {
		i.log.Warn("style: remove stylesheet failed", logger.Error(err))
	}
}
