// Command oszoom classifies browser environments and serves OS-specific
// zoom stylesheets.
//
// Usage:
//
//	oszoom serve                 # HTTP API, settings from env / .env
//	oszoom detect <url>          # open url in Chrome, classify, apply zoom
//	oszoom css [-factor f] [os]  # print the stylesheet for a factor or an OS
//	oszoom presets               # list presets with their settings
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/oszoom/pkg/config"
	"github.com/dmitrymomot/oszoom/pkg/logger"
)

const service = "oszoom"

var errUsage = errors.New("usage: oszoom serve | detect <url> | css [-factor f] [os] | presets")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "oszoom:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	var app config.App
	if err := config.Load(&app); err != nil {
		return err
	}
	log := newLogger(app)

	switch args[0] {
	case "serve":
		return serve(ctx, app, log)
	case "detect":
		return detect(ctx, app, log, args[1:], stdout)
	case "css":
		return css(app, args[1:], stdout)
	case "presets":
		return presets(stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func newLogger(app config.App) *slog.Logger {
	l := logger.New(
		logger.WithEnvironment(app.Env, service),
		logger.WithOutput(os.Stderr),
		logger.WithLevel(logger.ParseLevel(app.LogLevel)),
	)
	logger.SetAsDefault(l)
	return l
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
