package config

import (
	"github.com/dmitrymomot/oszoom/pkg/browser"
	"github.com/dmitrymomot/oszoom/pkg/httpserver"
)

// App holds the process settings of the oszoom command.
type App struct {
	Env      string `env:"OSZOOM_ENV" envDefault:"development"`
	LogLevel string `env:"OSZOOM_LOG_LEVEL" envDefault:"info"`

	// ZoomFile is a YAML zoom config. It takes precedence over Preset.
	ZoomFile string `env:"OSZOOM_CONFIG_FILE"`
	// Preset names a built-in zoom config, see zoom.PresetNames.
	Preset string `env:"OSZOOM_PRESET" envDefault:"desktopOnly"`
	// Debug turns on zoom decision logging regardless of the file.
	Debug bool `env:"OSZOOM_DEBUG"`

	// MaxSessions bounds the in-memory page sessions of the HTTP API.
	MaxSessions int `env:"OSZOOM_MAX_SESSIONS" envDefault:"10000"`

	HTTP    httpserver.Config
	Browser browser.Config
}
