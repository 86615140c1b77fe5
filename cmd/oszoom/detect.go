package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/oszoom/pkg/binding"
	"github.com/dmitrymomot/oszoom/pkg/browser"
	"github.com/dmitrymomot/oszoom/pkg/config"
	"github.com/dmitrymomot/oszoom/pkg/logger"
	"github.com/dmitrymomot/oszoom/pkg/osdetect"
	"github.com/dmitrymomot/oszoom/pkg/style"
	"github.com/dmitrymomot/oszoom/pkg/zoom"
)

type detectReport struct {
	URL    string          `json:"url"`
	Result osdetect.Result `json:"result"`
	State  zoom.State      `json:"state"`
	Factor string          `json:"factor,omitempty"`
}

func detect(ctx context.Context, app config.App, log *slog.Logger, args []string, stdout io.Writer) error {
	fs := newFlagSet("detect")
	keep := fs.Bool("keep", false, "leave the stylesheet in the page")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: detect needs exactly one url", errUsage)
	}
	pageURL := fs.Arg(0)

	cfg, err := config.ResolveZoom(app)
	if err != nil {
		return err
	}

	mgr := browser.NewManager(app.Browser, log)
	defer func() {
		if err := mgr.Close(); err != nil {
			log.Warn("browser close failed", logger.Error(err))
		}
	}()

	page, err := mgr.Open(ctx, pageURL)
	if err != nil {
		return err
	}
	defer page.Close()

	ctrl := binding.New(cfg, page, page, binding.WithLogger(log))
	if !*keep {
		defer ctrl.Dispose()
	}

	result, err := ctrl.Init(ctx)
	if err != nil {
		return err
	}

	factor, err := page.RootProperty(style.FactorProperty)
	if err != nil {
		log.Warn("read factor failed", logger.Error(err))
	}

	return printJSON(stdout, detectReport{
		URL:    pageURL,
		Result: result,
		State:  ctrl.State(),
		Factor: factor,
	})
}
