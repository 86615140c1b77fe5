// Package assets embeds the browser-side scripts: the capability probe and
// the page client that posts it to the HTTP API.
package assets

import (
	_ "embed"
	"strings"
)

// ProbeFunction is a JavaScript arrow function returning the probe snapshot
// as an object, or null without a live document. Field names match the JSON
// tags of osdetect.Probe.
//
//go:embed probe.js
var ProbeFunction string

//go:embed client.js
var clientBody string

// ClientScript is a self-contained script for <script src>. It reads
// data-endpoint and data-preset from its own tag.
var ClientScript = "(function () {\n  const collectProbe = " +
	strings.TrimSpace(ProbeFunction) + ";\n" + clientBody + "})();\n"

// ProbeJSONExpression evaluates to the probe as a JSON string, or "" when no
// document is available. For CDP Runtime.evaluate style callers.
func ProbeJSONExpression() string {
	return "() => { const p = (" + strings.TrimSpace(ProbeFunction) + ")(); return p === null ? \"\" : JSON.stringify(p); }"
}
