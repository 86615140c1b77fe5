package main

import (
	"io"

	"github.com/dmitrymomot/oszoom/pkg/zoom"
)

func presets(stdout io.Writer) error {
	out := make(map[string]zoom.Config, len(zoom.PresetNames()))
	for _, name := range zoom.PresetNames() {
		cfg, err := zoom.Preset(name)
		if err != nil {
			return err
		}
		out[name] = cfg
	}
	return printJSON(stdout, out)
}
