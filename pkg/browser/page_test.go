package browser_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oszoom/pkg/assets"
	"github.com/dmitrymomot/oszoom/pkg/binding"
	"github.com/dmitrymomot/oszoom/pkg/browser"
	"github.com/dmitrymomot/oszoom/pkg/osdetect"
	"github.com/dmitrymomot/oszoom/pkg/style"
	"github.com/dmitrymomot/oszoom/pkg/zoom"
)

// fakeEvaluator answers the page scripts from an in-memory DOM.
type fakeEvaluator struct {
	dom   *style.MemoryDocument
	probe *osdetect.Probe
	err   error
	calls int
}

func (f *fakeEvaluator) EvalString(_ context.Context, js string, args ...any) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	arg := func(i int) string { return args[i].(string) }
	switch {
	case js == assets.ProbeJSONExpression():
		if f.probe == nil {
			return "", nil
		}
		b, err := json.Marshal(f.probe)
		return string(b), err
	case strings.Contains(js, "createElement"):
		return "", f.dom.AppendStyle(arg(0), arg(1))
	case strings.Contains(js, "el.remove()"):
		return "", f.dom.RemoveElement(arg(0))
	case strings.Contains(js, "setProperty"):
		return "", f.dom.SetRootProperty(arg(0), arg(1))
	case strings.Contains(js, "getPropertyValue"):
		v, _ := f.dom.RootProperty(arg(0))
		return v, nil
	case strings.Contains(js, "getElementById(id) ?"):
		ok, _ := f.dom.HasElement(arg(0))
		if ok {
			return "1", nil
		}
		return "", nil
	}
	return "", errors.New("unexpected script")
}

func TestPage_Probe(t *testing.T) {
	t.Parallel()

	t.Run("decodes snapshot", func(t *testing.T) {
		t.Parallel()
		want := osdetect.Probe{ScreenWidth: 1440, ScreenHeight: 900, DevicePixelRatio: 2, Safari: true, WebKit: true, Platform: "MacIntel"}
		page := browser.NewPage(context.Background(), &fakeEvaluator{dom: style.NewMemoryDocument(), probe: &want}, nil)

		got, ok := page.Probe(context.Background())
		require.True(t, ok)
		assert.Equal(t, want, got)
		assert.Equal(t, osdetect.MacOS, osdetect.Detect(page).OS)
	})

	t.Run("no document", func(t *testing.T) {
		t.Parallel()
		page := browser.NewPage(context.Background(), &fakeEvaluator{dom: style.NewMemoryDocument()}, nil)
		_, ok := page.Probe(context.Background())
		assert.False(t, ok)
		assert.Equal(t, osdetect.UnknownResult, osdetect.Detect(page))
	})

	t.Run("evaluation error degrades to unknown", func(t *testing.T) {
		t.Parallel()
		page := browser.NewPage(context.Background(), &fakeEvaluator{err: errors.New("target closed")}, nil)
		assert.Equal(t, osdetect.UnknownResult, osdetect.Detect(page))
	})
}

func TestPage_Document(t *testing.T) {
	t.Parallel()

	dom := style.NewMemoryDocument()
	page := browser.NewPage(context.Background(), &fakeEvaluator{dom: dom}, nil)

	ok, err := page.HasElement(style.ElementID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, page.AppendStyle(style.ElementID, ":root{}"))
	ok, err = page.HasElement(style.ElementID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, page.SetRootProperty(style.FactorProperty, "0.9"))
	v, err := page.RootProperty(style.FactorProperty)
	require.NoError(t, err)
	assert.Equal(t, "0.9", v)

	require.NoError(t, page.RemoveElement(style.ElementID))
	assert.Empty(t, dom.Styles())

	require.NoError(t, page.Close())
}

func TestPage_DocumentErrors(t *testing.T) {
	t.Parallel()

	page := browser.NewPage(context.Background(), &fakeEvaluator{err: errors.New("detached")}, nil)
	_, err := page.HasElement("x")
	assert.Error(t, err)
	assert.Error(t, page.AppendStyle("x", ""))
	assert.Error(t, page.RemoveElement("x"))
	assert.Error(t, page.SetRootProperty("x", "1"))
}

func TestPage_ControllerEndToEnd(t *testing.T) {
	t.Parallel()

	dom := style.NewMemoryDocument()
	probe := osdetect.Probe{ScreenWidth: 1920, ScreenHeight: 1080, Chrome: true, Platform: "Win32"}
	page := browser.NewPage(context.Background(), &fakeEvaluator{dom: dom, probe: &probe}, nil)

	c := binding.New(zoom.WindowsOnly(), page, page)
	res, err := c.Init(context.Background())
	require.NoError(t, err)
	assert.Equal(t, osdetect.Windows, res.OS)
	assert.Equal(t, zoom.State{CurrentZoom: 0.8, AppliedOS: osdetect.Windows, IsActive: true}, c.State())

	v, err := page.RootProperty(style.FactorProperty)
	require.NoError(t, err)
	assert.Equal(t, "0.8", v)
	assert.Equal(t, []string{style.ElementID}, dom.Styles())

	c.Dispose()
	assert.Empty(t, dom.Styles())
	v, _ = page.RootProperty(style.FactorProperty)
	assert.Equal(t, "1", v)
}

func TestManager_Closed(t *testing.T) {
	t.Parallel()

	m := browser.NewManager(browser.Config{}, nil)
	require.NoError(t, m.Close())
	_, err := m.Start(context.Background())
	assert.ErrorIs(t, err, browser.ErrClosed)
	_, err = m.Open(context.Background(), "about:blank")
	assert.ErrorIs(t, err, browser.ErrClosed)
	assert.Nil(t, m.Browser())
}
