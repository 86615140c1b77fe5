package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oszoom/pkg/config"
	"github.com/dmitrymomot/oszoom/pkg/osdetect"
	"github.com/dmitrymomot/oszoom/pkg/zoom"
)

type testConfig struct {
	Preset   string `env:"OSZOOM_TEST_PRESET" envDefault:"desktopOnly"`
	Sessions int    `env:"OSZOOM_TEST_SESSIONS" envDefault:"1"`
}

type requiredConfig struct {
	Value string `env:"OSZOOM_TEST_REQUIRED,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("OSZOOM_TEST_PRESET")
		os.Unsetenv("OSZOOM_TEST_SESSIONS")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "desktopOnly", cfg.Preset)
		assert.Equal(t, 1, cfg.Sessions)
	})

	t.Run("cached per type", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("OSZOOM_TEST_PRESET", "windowsOnly")

		var first testConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("OSZOOM_TEST_PRESET", "macosOnly")
		var second testConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "windowsOnly", second.Preset)

		config.ResetCache()
		var third testConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "macosOnly", third.Preset)
	})

	t.Run("env file", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("OSZOOM_TEST_PRESET", "")
		t.Setenv("OSZOOM_TEST_SESSIONS", "")
		require.NoError(t, config.LoadEnv("testdata/.env.test"))

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "mobileOnly", cfg.Preset)
		assert.Equal(t, 42, cfg.Sessions)
	})

	t.Run("missing env file", func(t *testing.T) {
		assert.ErrorIs(t, config.LoadEnv("testdata/nope.env"), config.ErrLoadEnvFile)
	})

	t.Run("required", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("OSZOOM_TEST_REQUIRED")
		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[testConfig](nil), config.ErrNilPointer)
		assert.Panics(t, func() { config.MustLoad[testConfig](nil) })
	})
}

func TestApp_Defaults(t *testing.T) {
	config.ResetCache()
	for _, key := range []string{"OSZOOM_ENV", "OSZOOM_PRESET", "OSZOOM_CONFIG_FILE", "HTTP_ADDR", "BROWSER_HEADLESS"} {
		os.Unsetenv(key)
	}

	var app config.App
	require.NoError(t, config.Load(&app))
	assert.Equal(t, "development", app.Env)
	assert.Equal(t, "desktopOnly", app.Preset)
	assert.Equal(t, ":8080", app.HTTP.Addr)
	assert.True(t, app.Browser.Headless)
	assert.Equal(t, 10000, app.MaxSessions)
}

func TestLoadZoomFile(t *testing.T) {
	t.Parallel()

	t.Run("merges over defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.LoadZoomFile("testdata/zoom.yaml")
		require.NoError(t, err)
		assert.True(t, cfg.Debug)
		assert.True(t, cfg.CSSEnabled())
		assert.Equal(t, zoom.OSConfig{Enabled: true, ZoomLevel: 0.8}, cfg.OS[osdetect.Windows])
		assert.Equal(t, zoom.OSConfig{Enabled: true, ZoomLevel: 0.5}, cfg.OS[osdetect.MacOS])
		assert.Equal(t, zoom.OSConfig{Enabled: false, ZoomLevel: 1}, cfg.OS[osdetect.Linux])
	})

	t.Run("out of range level", func(t *testing.T) {
		t.Parallel()
		_, err := config.LoadZoomFile("testdata/invalid_level.yaml")
		assert.ErrorIs(t, err, config.ErrInvalidZoomConfig)
		assert.ErrorIs(t, err, zoom.ErrZoomOutOfRange)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := config.LoadZoomFile(filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorIs(t, err, config.ErrReadZoomFile)
	})

	t.Run("unknown fields and os tags", func(t *testing.T) {
		t.Parallel()
		_, err := config.ParseZoom([]byte("zoom: 2\n"))
		assert.ErrorIs(t, err, config.ErrParseZoomFile)

		_, err = config.ParseZoom([]byte("os:\n  beos: {enabled: true, zoomLevel: 1}\n"))
		assert.ErrorIs(t, err, zoom.ErrUnknownOS)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.ParseZoom(nil)
		require.NoError(t, err)
		assert.Equal(t, zoom.MergeConfig(nil), cfg)
	})
}

func TestResolveZoom(t *testing.T) {
	t.Parallel()

	cfg, err := config.ResolveZoom(config.App{Preset: zoom.PresetMobileOnly, Debug: true})
	require.NoError(t, err)
	assert.True(t, cfg.OS[osdetect.IOS].Enabled)
	assert.True(t, cfg.Debug)

	cfg, err = config.ResolveZoom(config.App{Preset: zoom.PresetMobileOnly, ZoomFile: "testdata/zoom.yaml"})
	require.NoError(t, err)
	assert.True(t, cfg.OS[osdetect.Windows].Enabled)
	assert.False(t, cfg.OS[osdetect.IOS].Enabled)

	_, err = config.ResolveZoom(config.App{Preset: "nope"})
	assert.ErrorIs(t, err, zoom.ErrUnknownPreset)
}
