package binding_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oszoom/pkg/binding"
	"github.com/dmitrymomot/oszoom/pkg/osdetect"
	"github.com/dmitrymomot/oszoom/pkg/style"
	"github.com/dmitrymomot/oszoom/pkg/zoom"
)

var windowsProbe = osdetect.Probe{
	ScreenWidth: 1920, ScreenHeight: 1080, Chrome: true, Platform: "Win32",
}

func newController(t *testing.T) (*binding.Controller, *style.MemoryDocument) {
	t.Helper()
	doc := style.NewMemoryDocument()
	cfg := zoom.MergeConfig(&zoom.Config{OS: map[osdetect.OS]zoom.OSConfig{
		osdetect.Windows: {Enabled: true, ZoomLevel: 0.8},
	}})
	c := binding.New(cfg, osdetect.StaticEnvironment{Snapshot: windowsProbe}, doc)
	return c, doc
}

func TestController_Lifecycle(t *testing.T) {
	t.Parallel()

	c, doc := newController(t)

	var renders []zoom.State
	c.OnChange(func(s zoom.State) { renders = append(renders, s) })

	res, err := c.Init(context.Background())
	require.NoError(t, err)
	assert.Equal(t, osdetect.Windows, res.OS)
	assert.Equal(t, zoom.State{CurrentZoom: 0.8, AppliedOS: osdetect.Windows, IsActive: true}, c.State())

	factor, ok := doc.RootProperty(style.FactorProperty)
	require.True(t, ok)
	assert.Equal(t, "0.8", factor)
	assert.Equal(t, []string{style.ElementID}, doc.Styles())

	require.NoError(t, c.Update(osdetect.Windows, 1.25))
	factor, _ = doc.RootProperty(style.FactorProperty)
	assert.Equal(t, "1.25", factor)
	assert.Equal(t, []string{style.ElementID}, doc.Styles(), "stylesheet injected once")

	c.Dispose()
	c.Dispose()

	assert.True(t, c.Disposed())
	assert.Empty(t, doc.Styles())
	factor, _ = doc.RootProperty(style.FactorProperty)
	assert.Equal(t, "1", factor)
	assert.False(t, c.State().IsActive)

	require.Len(t, renders, 2, "dispose happens after unsubscribing re-render")
	assert.InDelta(t, 1.25, renders[1].CurrentZoom, 1e-9)

	assert.ErrorIs(t, c.Update(osdetect.Windows, 1), binding.ErrDisposed)
	assert.ErrorIs(t, c.Apply(osdetect.Windows), binding.ErrDisposed)
	assert.ErrorIs(t, c.Reset(), binding.ErrDisposed)
	_, err = c.Init(context.Background())
	assert.ErrorIs(t, err, binding.ErrDisposed)
}

func TestController_DisposeOncePerMount(t *testing.T) {
	t.Parallel()

	c, doc := newController(t)
	_, err := c.Init(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Dispose()
		}()
	}
	wg.Wait()

	assert.Empty(t, doc.Styles())
	assert.True(t, c.Disposed())
}

func TestController_Reset(t *testing.T) {
	t.Parallel()

	c, doc := newController(t)
	_, err := c.Init(context.Background())
	require.NoError(t, err)

	require.NoError(t, c.Reset())
	assert.False(t, c.State().IsActive)
	factor, _ := doc.RootProperty(style.FactorProperty)
	assert.Equal(t, "1", factor)
	assert.Equal(t, []string{style.ElementID}, doc.Styles(), "reset keeps the stylesheet")

	require.NoError(t, c.Apply(osdetect.Windows))
	assert.True(t, c.State().IsActive)
	assert.InDelta(t, 0.8, c.GetZoom(osdetect.Windows), 1e-9)
	assert.Equal(t, osdetect.Windows, c.OSInfo(context.Background()).OS)
	assert.Equal(t, osdetect.Windows, c.Detected().OS)
}
