// Package browser drives a headless Chrome through go-rod so a Go process
// can classify a real page and apply the zoom stylesheet to it.
//
// Manager owns the Chrome process (local launch or remote connection).
// Page wraps one tab and implements both osdetect.Environment, by
// evaluating the capability probe in the page, and style.Document, by
// editing the page DOM.
package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"

	"github.com/dmitrymomot/oszoom/pkg/logger"
)

// Config configures the browser manager.
type Config struct {
	// RemoteURL is the DevTools WebSocket URL of an external Chrome.
	// Empty launches a local Chrome.
	RemoteURL string `env:"BROWSER_REMOTE_URL"`

	// Headless runs the local Chrome without a window.
	Headless bool `env:"BROWSER_HEADLESS" envDefault:"true"`

	// Stealth opens pages through go-rod/stealth.
	Stealth bool `env:"BROWSER_STEALTH" envDefault:"true"`

	// Bin is an explicit Chrome binary; empty lets the launcher find or
	// download one.
	Bin string `env:"BROWSER_BIN"`
}

// Manager manages the Chrome lifecycle.
type Manager struct {
	cfg     Config
	log     *slog.Logger
	mu      sync.Mutex
	browser *rod.Browser
	lnch    *launcher.Launcher
	closed  bool
}

// ErrClosed is returned after Close.
var ErrClosed = errors.New("browser: manager is closed")

// NewManager returns a Manager. Start launches or connects.
func NewManager(cfg Config, log *slog.Logger) *Manager {
	return &Manager{cfg: cfg, log: logger.OrDiscard(log)}
}

// Start launches Chrome (or connects to RemoteURL). Calling it again
// returns the running browser.
func (m *Manager) Start(ctx context.Context) (*rod.Browser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}
	if m.browser != nil {
		return m.browser, nil
	}

	wsURL := m.cfg.RemoteURL
	if wsURL != "" {
		m.log.Info("browser: connecting to remote", logger.URL(wsURL))
	} else {
		l := launcher.New().Context(ctx).Headless(m.cfg.Headless)
		if m.cfg.Bin != "" {
			l = l.Bin(m.cfg.Bin)
		}
		l = l.Set("disable-blink-features", "AutomationControlled")

		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("browser: launch: %w", err)
		}
		wsURL = u
		m.lnch = l
		m.log.Info("browser: launched local chrome", logger.URL(wsURL), slog.Bool("headless", m.cfg.Headless))
	}

	b := rod.New().Context(ctx).ControlURL(wsURL)
	if err := b.Connect(); err != nil {
		m.cleanup()
		return nil, fmt.Errorf("browser: connect: %w", err)
	}
	m.browser = b
	return b, nil
}

// Browser returns the running browser, or nil before Start.
func (m *Manager) Browser() *rod.Browser {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.browser
}

// Close shuts Chrome down. Safe to call more than once.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return m.cleanup()
}

func (m *Manager) cleanup() error {
	var err error
	if m.browser != nil {
		err = m.browser.Close()
		m.browser = nil
	}
	if m.lnch != nil {
		m.lnch.Cleanup()
		m.lnch = nil
	}
	return err
}
