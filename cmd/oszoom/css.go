package main

import (
	"fmt"
	"io"

	"github.com/dmitrymomot/oszoom/pkg/config"
	"github.com/dmitrymomot/oszoom/pkg/osdetect"
	"github.com/dmitrymomot/oszoom/pkg/style"
	"github.com/dmitrymomot/oszoom/pkg/zoom"
)

// css prints the stylesheet for -factor, or for the configured level of
// the named OS.
func css(app config.App, args []string, stdout io.Writer) error {
	fs := newFlagSet("css")
	factor := fs.Float64("factor", 0, "explicit scale factor")
	varsOnly := fs.Bool("vars-only", false, "emit custom properties only, no html and heading rules")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	level := *factor
	switch {
	case level != 0:
		if !zoom.ValidLevel(level) {
			return fmt.Errorf("%w: %v", zoom.ErrZoomOutOfRange, level)
		}
	case fs.NArg() == 1:
		os := osdetect.ParseOS(fs.Arg(0))
		if os == osdetect.Unknown {
			return fmt.Errorf("%w: %q", zoom.ErrUnknownOS, fs.Arg(0))
		}
		cfg, err := config.ResolveZoom(app)
		if err != nil {
			return err
		}
		entry := cfg.OS[os]
		level = zoom.DefaultZoom
		if entry.Enabled {
			level = entry.ZoomLevel
		}
	default:
		return fmt.Errorf("%w: css needs -factor or an os", errUsage)
	}

	opts := style.DefaultOptions()
	opts.ApplyToDocument = !*varsOnly
	out, err := style.Render(level, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, out)
	return err
}
