package zoom

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/dmitrymomot/oszoom/pkg/osdetect"
)

// Zoom level bounds, inclusive.
const (
	MinZoom     = 0.5
	MaxZoom     = 2.0
	DefaultZoom = 1.0
)

// OSConfig is the zoom setting of one operating system. The type itself does
// not enforce the level bounds.
type OSConfig struct {
	Enabled   bool    `json:"enabled" yaml:"enabled"`
	ZoomLevel float64 `json:"zoomLevel" yaml:"zoomLevel"`
}

// Config is the full zoom configuration.
type Config struct {
	OS    map[osdetect.OS]OSConfig `json:"os" yaml:"os"`
	Debug bool                     `json:"debug" yaml:"debug"`
	// Nil means enabled; only an explicit false turns a flag off.
	EnableCSS        *bool `json:"enableCSS,omitempty" yaml:"enableCSS,omitempty"`
	EnableJavaScript *bool `json:"enableJavaScript,omitempty" yaml:"enableJavaScript,omitempty"`
}

// CSSEnabled reports whether EnableCSS is not explicitly false.
func (c Config) CSSEnabled() bool { return c.EnableCSS == nil || *c.EnableCSS }

// JavaScriptEnabled reports whether EnableJavaScript is not explicitly false.
func (c Config) JavaScriptEnabled() bool {
	return c.EnableJavaScript == nil || *c.EnableJavaScript
}

// Clone returns a deep copy.
func (c Config) Clone() Config {
	out := c
	out.OS = maps.Clone(c.OS)
	if out.OS == nil {
		out.OS = make(map[osdetect.OS]OSConfig)
	}
	if c.EnableCSS != nil {
		out.EnableCSS = Bool(*c.EnableCSS)
	}
	if c.EnableJavaScript != nil {
		out.EnableJavaScript = Bool(*c.EnableJavaScript)
	}
	return out
}

// Bool returns a pointer to b, for the optional flags.
func Bool(b bool) *bool { return &b }

// ValidLevel reports whether level is within [MinZoom, MaxZoom].
func ValidLevel(level float64) bool {
	return !math.IsNaN(level) && level >= MinZoom && level <= MaxZoom
}

// MergeConfig returns a config where every OS tag is present. Tags the user
// did not list default to {Enabled: false, ZoomLevel: 1}; listed entries are
// taken as given. Unset flags default to enabled.
func MergeConfig(user *Config) Config {
	out := Config{
		OS:               make(map[osdetect.OS]OSConfig, len(osdetect.AllOS())),
		EnableCSS:        Bool(true),
		EnableJavaScript: Bool(true),
	}
	for _, os := range osdetect.AllOS() {
		out.OS[os] = OSConfig{Enabled: false, ZoomLevel: DefaultZoom}
	}
	if user == nil {
		return out
	}

	maps.Copy(out.OS, user.OS)
	out.Debug = user.Debug
	if user.EnableCSS != nil {
		out.EnableCSS = Bool(*user.EnableCSS)
	}
	if user.EnableJavaScript != nil {
		out.EnableJavaScript = Bool(*user.EnableJavaScript)
	}
	return out
}

// Validate checks config keys and levels. A Manager accepts any config; this
// is for configs coming from files or requests.
func Validate(c Config) error {
	var errs []error
	keys := slices.Sorted(maps.Keys(c.OS))
	for _, os := range keys {
		if !os.Valid() {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownOS, os))
			continue
		}
		if level := c.OS[os].ZoomLevel; !ValidLevel(level) {
			errs = append(errs, fmt.Errorf("%w: %s=%v, want %v..%v", ErrZoomOutOfRange, os, level, MinZoom, MaxZoom))
		}
	}
	return errors.Join(errs...)
}
