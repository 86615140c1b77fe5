package zoom_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oszoom/pkg/logger"
	"github.com/dmitrymomot/oszoom/pkg/osdetect"
	"github.com/dmitrymomot/oszoom/pkg/zoom"
)

// recordingInjector records calls in order.
type recordingInjector struct {
	factors []float64
	injects int
	removes int
}

func (r *recordingInjector) SetScaleFactor(f float64) { r.factors = append(r.factors, f) }
func (r *recordingInjector) Inject()                  { r.injects++ }
func (r *recordingInjector) Remove()                  { r.removes++ }

func windowsMacConfig() zoom.Config {
	return zoom.Config{OS: map[osdetect.OS]zoom.OSConfig{
		osdetect.Windows: {Enabled: true, ZoomLevel: 0.8},
		osdetect.MacOS:   {Enabled: true, ZoomLevel: 0.5},
	}}
}

func TestManager_InitialState(t *testing.T) {
	t.Parallel()

	m := zoom.New(zoom.Config{})
	assert.Equal(t, zoom.State{CurrentZoom: 1, AppliedOS: osdetect.Unknown, IsActive: false}, m.State())
}

func TestManager_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		os       osdetect.OS
		expected zoom.State
	}{
		{"windows", osdetect.Windows, zoom.State{CurrentZoom: 0.8, AppliedOS: osdetect.Windows, IsActive: true}},
		{"macos", osdetect.MacOS, zoom.State{CurrentZoom: 0.5, AppliedOS: osdetect.MacOS, IsActive: true}},
		{"linux absent from config uses enabled fallback", osdetect.Linux, zoom.State{CurrentZoom: 1, AppliedOS: osdetect.Linux, IsActive: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inj := &recordingInjector{}
			m := zoom.New(windowsMacConfig(), zoom.WithInjector(inj))
			m.Apply(tt.os)

			assert.Equal(t, tt.expected, m.State())
			assert.Equal(t, []float64{tt.expected.CurrentZoom}, inj.factors)
			assert.Equal(t, 1, inj.injects)
		})
	}
}

func TestManager_ApplyDisabled(t *testing.T) {
	t.Parallel()

	cfg := zoom.MergeConfig(&zoom.Config{OS: map[osdetect.OS]zoom.OSConfig{
		osdetect.Windows: {Enabled: true, ZoomLevel: 0.8},
	}})

	t.Run("inactive stays inactive", func(t *testing.T) {
		t.Parallel()
		inj := &recordingInjector{}
		m := zoom.New(cfg, zoom.WithInjector(inj))

		m.Apply(osdetect.Linux)

		assert.Equal(t, zoom.InitialState(), m.State())
		assert.Empty(t, inj.factors)
	})

	t.Run("active is not deactivated", func(t *testing.T) {
		t.Parallel()
		inj := &recordingInjector{}
		m := zoom.New(cfg, zoom.WithInjector(inj))

		m.Apply(osdetect.Windows)
		before := m.State()
		m.Apply(osdetect.MacOS)

		assert.Equal(t, before, m.State())
		assert.True(t, m.State().IsActive)
		assert.Equal(t, []float64{0.8}, inj.factors)
	})
}

func TestManager_CSSDisabled(t *testing.T) {
	t.Parallel()

	cfg := windowsMacConfig()
	cfg.EnableCSS = zoom.Bool(false)
	inj := &recordingInjector{}
	m := zoom.New(cfg, zoom.WithInjector(inj))

	m.Apply(osdetect.Windows)
	assert.True(t, m.State().IsActive)
	assert.Empty(t, inj.factors)
	assert.Zero(t, inj.injects)

	m.Reset()
	assert.Equal(t, []float64{1}, inj.factors, "reset always pushes factor 1")
}

func TestManager_SetZoom(t *testing.T) {
	t.Parallel()

	t.Run("out of range is rejected", func(t *testing.T) {
		t.Parallel()

		for _, level := range []float64{0.3, 2.5, 0.49, 2.01} {
			inj := &recordingInjector{}
			m := zoom.New(windowsMacConfig(), zoom.WithInjector(inj))
			m.Apply(osdetect.Windows)
			zoomBefore, stateBefore := m.GetZoom(osdetect.Windows), m.State()

			m.SetZoom(osdetect.Windows, level)

			assert.Equal(t, zoomBefore, m.GetZoom(osdetect.Windows), "level %v", level)
			assert.Equal(t, stateBefore, m.State(), "level %v", level)
			assert.Len(t, inj.factors, 1)
		}
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		t.Parallel()

		m := zoom.New(windowsMacConfig())
		m.SetZoom(osdetect.Windows, 0.5)
		assert.InDelta(t, 0.5, m.State().CurrentZoom, 1e-9)
		m.SetZoom(osdetect.Windows, 2.0)
		assert.InDelta(t, 2.0, m.State().CurrentZoom, 1e-9)
	})

	t.Run("valid level applies", func(t *testing.T) {
		t.Parallel()

		cfg := windowsMacConfig()
		cfg.OS[osdetect.Windows] = zoom.OSConfig{Enabled: true, ZoomLevel: 1.2}
		m := zoom.New(cfg)

		m.SetZoom(osdetect.Windows, 0.8)
		m.Apply(osdetect.Windows)

		assert.Equal(t, zoom.State{CurrentZoom: 0.8, AppliedOS: osdetect.Windows, IsActive: true}, m.State())
		assert.InDelta(t, 0.8, m.GetZoom(osdetect.Windows), 1e-9)
	})

	t.Run("disabled os stores level without applying", func(t *testing.T) {
		t.Parallel()

		m := zoom.New(zoom.MergeConfig(nil))
		m.SetZoom(osdetect.Linux, 1.5)

		assert.InDelta(t, 1.5, m.GetZoom(osdetect.Linux), 1e-9)
		assert.Equal(t, zoom.InitialState(), m.State())
	})

	t.Run("caller config is not mutated", func(t *testing.T) {
		t.Parallel()

		cfg := windowsMacConfig()
		m := zoom.New(cfg)
		m.SetZoom(osdetect.Windows, 1.1)

		assert.InDelta(t, 0.8, cfg.OS[osdetect.Windows].ZoomLevel, 1e-9)
		assert.InDelta(t, 1.1, m.Config().OS[osdetect.Windows].ZoomLevel, 1e-9)
	})
}

func TestManager_GetZoom(t *testing.T) {
	t.Parallel()

	m := zoom.New(windowsMacConfig())
	m.Apply(osdetect.Windows)

	assert.InDelta(t, 0.5, m.GetZoom(osdetect.MacOS), 1e-9, "configured, not applied")
	assert.InDelta(t, 1.0, m.GetZoom(osdetect.Android), 1e-9, "absent tag falls back to 1")
}

func TestManager_Reset(t *testing.T) {
	t.Parallel()

	for _, prepare := range []func(*zoom.Manager){
		func(*zoom.Manager) {},
		func(m *zoom.Manager) { m.Apply(osdetect.Windows) },
		func(m *zoom.Manager) { m.SetZoom(osdetect.MacOS, 1.7) },
		func(m *zoom.Manager) { m.Reset() },
	} {
		inj := &recordingInjector{}
		m := zoom.New(windowsMacConfig(), zoom.WithInjector(inj))
		prepare(m)

		m.Reset()

		st := m.State()
		assert.InDelta(t, 1.0, st.CurrentZoom, 1e-9)
		assert.False(t, st.IsActive)
		require.NotEmpty(t, inj.factors)
		assert.InDelta(t, 1.0, inj.factors[len(inj.factors)-1], 1e-9)
	}
}

func TestManager_StateIsACopy(t *testing.T) {
	t.Parallel()

	m := zoom.New(windowsMacConfig())
	m.Apply(osdetect.Windows)

	st := m.State()
	st.CurrentZoom = 1.9
	st.IsActive = false
	st.AppliedOS = osdetect.IOS

	assert.Equal(t, zoom.State{CurrentZoom: 0.8, AppliedOS: osdetect.Windows, IsActive: true}, m.State())

	cfg := m.Config()
	cfg.OS[osdetect.Windows] = zoom.OSConfig{Enabled: false, ZoomLevel: 2}
	assert.InDelta(t, 0.8, m.GetZoom(osdetect.Windows), 1e-9)
}

func TestManager_Init(t *testing.T) {
	t.Parallel()

	windowsProbe := osdetect.Probe{ScreenWidth: 1920, ScreenHeight: 1080, Chrome: true, Platform: "Win32"}
	macProbe := osdetect.Probe{ScreenWidth: 1512, ScreenHeight: 982, DevicePixelRatio: 2, Safari: true, WebKit: true, Platform: "MacIntel"}

	t.Run("end to end", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			probe    osdetect.Probe
			expected zoom.State
		}{
			{windowsProbe, zoom.State{CurrentZoom: 0.8, AppliedOS: osdetect.Windows, IsActive: true}},
			{macProbe, zoom.State{CurrentZoom: 0.5, AppliedOS: osdetect.MacOS, IsActive: true}},
			{osdetect.Probe{ScreenWidth: 1920, ScreenHeight: 1080, Platform: "Linux x86_64"}, zoom.State{CurrentZoom: 1, AppliedOS: osdetect.Linux, IsActive: true}},
		}
		for _, tt := range tests {
			m := zoom.New(windowsMacConfig(), zoom.WithEnvironment(osdetect.StaticEnvironment{Snapshot: tt.probe}))
			res := m.Init(context.Background())
			assert.Equal(t, tt.expected.AppliedOS, res.OS)
			assert.Equal(t, res, m.Detected())
			assert.Equal(t, tt.expected, m.State())
		}
	})

	t.Run("no document", func(t *testing.T) {
		t.Parallel()

		m := zoom.New(zoom.MergeConfig(&zoom.Config{OS: windowsMacConfig().OS}))
		res := m.Init(context.Background())
		assert.Equal(t, osdetect.UnknownResult, res)
		assert.Equal(t, zoom.InitialState(), m.State())
	})

	t.Run("javascript disabled skips detection", func(t *testing.T) {
		t.Parallel()

		cfg := windowsMacConfig()
		cfg.EnableJavaScript = zoom.Bool(false)
		m := zoom.New(cfg, zoom.WithEnvironment(osdetect.StaticEnvironment{Snapshot: windowsProbe}))
		assert.Equal(t, osdetect.UnknownResult, m.Init(context.Background()))
		assert.False(t, m.State().IsActive)
	})

	t.Run("os info re-reads the environment", func(t *testing.T) {
		t.Parallel()

		calls := 0
		env := osdetect.EnvironmentFunc(func(context.Context) (osdetect.Probe, bool) {
			calls++
			return macProbe, true
		})
		m := zoom.New(windowsMacConfig(), zoom.WithEnvironment(env))
		m.Init(context.Background())
		assert.Equal(t, osdetect.MacOS, m.OSInfo(context.Background()).OS)
		assert.Equal(t, 2, calls)
	})
}

func TestManager_Destroy(t *testing.T) {
	t.Parallel()

	inj := &recordingInjector{}
	m := zoom.New(windowsMacConfig(), zoom.WithInjector(inj))
	m.Apply(osdetect.MacOS)
	m.Destroy()

	assert.False(t, m.State().IsActive)
	assert.Equal(t, []float64{0.5, 1}, inj.factors)
	assert.Equal(t, 1, inj.removes)
}

func TestManager_Subscribe(t *testing.T) {
	t.Parallel()

	m := zoom.New(windowsMacConfig())
	var seen []zoom.State
	unsubscribe := m.Subscribe(func(s zoom.State) { seen = append(seen, s) })

	m.Apply(osdetect.Windows)
	m.Apply(osdetect.Linux)
	m.SetZoom(osdetect.Windows, 3) // rejected, no event
	unsubscribe()
	m.Reset()

	require.Len(t, seen, 2)
	assert.Equal(t, osdetect.Windows, seen[0].AppliedOS)
	assert.Equal(t, osdetect.Linux, seen[1].AppliedOS)
}

func TestManager_DebugLogging(t *testing.T) {
	t.Parallel()

	t.Run("silent without debug", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		m := zoom.New(zoom.MergeConfig(nil), zoom.WithLogger(logger.New(logger.WithOutput(buf))))
		m.SetZoom(osdetect.Windows, 9)
		m.Apply(osdetect.Windows)
		assert.Empty(t, buf.String())
	})

	t.Run("warns with debug", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		cfg := zoom.MergeConfig(&zoom.Config{Debug: true})
		m := zoom.New(cfg, zoom.WithLogger(logger.New(logger.WithOutput(buf))))
		m.SetZoom(osdetect.Windows, 9)
		m.Apply(osdetect.Windows)
		assert.Contains(t, buf.String(), "level out of range")
		assert.Contains(t, buf.String(), "disabled for operating system")
	})
}
