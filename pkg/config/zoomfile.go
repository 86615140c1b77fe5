package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/oszoom/pkg/zoom"
)

// ParseZoom decodes a YAML zoom config, merges it over the defaults and
// validates it. Unknown fields are rejected.
func ParseZoom(data []byte) (zoom.Config, error) {
	var user zoom.Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&user); err != nil && !errors.Is(err, io.EOF) {
		return zoom.Config{}, errors.Join(ErrParseZoomFile, err)
	}
	if err := zoom.Validate(user); err != nil {
		return zoom.Config{}, errors.Join(ErrInvalidZoomConfig, err)
	}
	return zoom.MergeConfig(&user), nil
}

// LoadZoomFile reads and parses a YAML zoom config.
func LoadZoomFile(path string) (zoom.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return zoom.Config{}, errors.Join(ErrReadZoomFile, err)
	}
	cfg, err := ParseZoom(data)
	if err != nil {
		return zoom.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ResolveZoom picks the zoom config of the app: the file when set,
// otherwise the preset. App.Debug forces debug logging on.
func ResolveZoom(app App) (zoom.Config, error) {
	var (
		cfg zoom.Config
		err error
	)
	if app.ZoomFile != "" {
		cfg, err = LoadZoomFile(app.ZoomFile)
	} else {
		cfg, err = zoom.Preset(app.Preset)
	}
	if err != nil {
		return zoom.Config{}, err
	}
	if app.Debug {
		cfg.Debug = true
	}
	return cfg, nil
}
