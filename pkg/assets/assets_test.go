package assets_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/oszoom/pkg/assets"
	"github.com/dmitrymomot/oszoom/pkg/osdetect"
)

func TestProbeFunctionCoversProbeFields(t *testing.T) {
	t.Parallel()

	typ := reflect.TypeOf(osdetect.Probe{})
	for i := range typ.NumField() {
		name, _, _ := strings.Cut(typ.Field(i).Tag.Get("json"), ",")
		if name == "platformVersion" {
			continue // client hints are asynchronous, the probe leaves it empty
		}
		assert.Contains(t, assets.ProbeFunction, name+":", "probe.js misses %s", name)
	}
}

func TestClientScript(t *testing.T) {
	t.Parallel()

	assert.True(t, strings.HasPrefix(assets.ClientScript, "(function () {"))
	assert.Contains(t, assets.ClientScript, "const collectProbe = () =>")
	assert.Contains(t, assets.ClientScript, "/api/sessions")
	assert.Contains(t, assets.ClientScript, "os-zoom-styles")
	assert.Contains(t, assets.ProbeJSONExpression(), "JSON.stringify(p)")
}
