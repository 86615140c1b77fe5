package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"github.com/dmitrymomot/oszoom/pkg/assets"
	"github.com/dmitrymomot/oszoom/pkg/logger"
	"github.com/dmitrymomot/oszoom/pkg/osdetect"
	"github.com/dmitrymomot/oszoom/pkg/style"
)

const navigateTimeout = 30 * time.Second

// Evaluator runs a JavaScript function in a page and returns its result as
// a string. *rod.Page satisfies it through RodEvaluator.
type Evaluator interface {
	EvalString(ctx context.Context, js string, args ...any) (string, error)
}

// RodEvaluator adapts a rod page.
type RodEvaluator struct {
	Page *rod.Page
}

// EvalString evaluates js with args and returns the string value.
func (r RodEvaluator) EvalString(ctx context.Context, js string, args ...any) (string, error) {
	res, err := r.Page.Context(ctx).Eval(js, args...)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}

// Page is one browser tab. It implements osdetect.Environment and
// style.Document.
type Page struct {
	eval Evaluator
	ctx  context.Context
	log  *slog.Logger
	page *rod.Page
	URL  string
}

var (
	_ osdetect.Environment = (*Page)(nil)
	_ style.Document       = (*Page)(nil)
)

// NewPage wraps an Evaluator. DOM operations use ctx since style.Document
// methods take none.
func NewPage(ctx context.Context, eval Evaluator, log *slog.Logger) *Page {
	return &Page{eval: eval, ctx: ctx, log: logger.OrDiscard(log)}
}

// Open creates a tab, navigates to pageURL and waits for the load event.
func (m *Manager) Open(ctx context.Context, pageURL string) (*Page, error) {
	b, err := m.Start(ctx)
	if err != nil {
		return nil, err
	}

	var page *rod.Page
	if m.cfg.Stealth {
		page, err = stealth.Page(b)
	} else {
		page, err = b.Page(proto.TargetCreateTarget{URL: ""})
	}
	if err != nil {
		return nil, fmt.Errorf("browser: create tab: %w", err)
	}

	navCtx, cancel := context.WithTimeout(ctx, navigateTimeout)
	defer cancel()

	if err := page.Context(navCtx).Navigate(pageURL); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("browser: navigate %s: %w", pageURL, err)
	}
	if err := page.Context(navCtx).WaitLoad(); err != nil {
		m.log.Warn("browser: wait load timeout", logger.URL(pageURL), logger.Error(err))
	}

	p := NewPage(ctx, RodEvaluator{Page: page}, m.log)
	p.page = page
	p.URL = pageURL
	return p, nil
}

// Probe evaluates the capability probe. ok is false when the page has no
// document or the evaluation fails.
func (p *Page) Probe(ctx context.Context) (osdetect.Probe, bool) {
	raw, err := p.eval.EvalString(ctx, assets.ProbeJSONExpression())
	if err != nil {
		p.log.Warn("browser: probe failed", logger.Error(err))
		return osdetect.Probe{}, false
	}
	if raw == "" {
		return osdetect.Probe{}, false
	}
	var probe osdetect.Probe
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		p.log.Warn("browser: decode probe", logger.Error(err))
		return osdetect.Probe{}, false
	}
	return probe, true
}

// HasElement reports whether an element with id exists.
func (p *Page) HasElement(id string) (bool, error) {
	v, err := p.eval.EvalString(p.ctx, `(id) => document.getElementById(id) ? "1" : ""`, id)
	if err != nil {
		return false, fmt.Errorf("browser: lookup #%s: %w", id, err)
	}
	return v == "1", nil
}

// AppendStyle appends <style id=id> to <head> unless it exists.
func (p *Page) AppendStyle(id, css string) error {
	_, err := p.eval.EvalString(p.ctx, `(id, css) => {
		if (document.getElementById(id)) return "";
		const el = document.createElement("style");
		el.id = id;
		el.textContent = css;
		(document.head || document.documentElement).appendChild(el);
		return "";
	}`, id, css)
	if err != nil {
		return fmt.Errorf("browser: append #%s: %w", id, err)
	}
	return nil
}

// RemoveElement removes the element with id if present.
func (p *Page) RemoveElement(id string) error {
	_, err := p.eval.EvalString(p.ctx, `(id) => {
		const el = document.getElementById(id);
		if (el) el.remove();
		return "";
	}`, id)
	if err != nil {
		return fmt.Errorf("browser: remove #%s: %w", id, err)
	}
	return nil
}

// SetRootProperty sets an inline property on <html>.
func (p *Page) SetRootProperty(name, value string) error {
	_, err := p.eval.EvalString(p.ctx, `(name, value) => {
		document.documentElement.style.setProperty(name, value);
		return "";
	}`, name, value)
	if err != nil {
		return fmt.Errorf("browser: set %s: %w", name, err)
	}
	return nil
}

// RootProperty reads an inline property of <html>.
func (p *Page) RootProperty(name string) (string, error) {
	return p.eval.EvalString(p.ctx, `(name) => document.documentElement.style.getPropertyValue(name)`, name)
}

// Close closes the tab opened by Manager.Open.
func (p *Page) Close() error {
	if p.page == nil {
		return nil
	}
	return p.page.Close()
}
