// Package osdetect classifies the operating system, mobile status and browser
// engine of a page visitor from a snapshot of browser capability probes.
//
// It never parses an identifying string. Instead the classifier looks at
// facts a live document exposes: touch support, screen and viewport geometry,
// device pixel ratio, standalone mode, vendor-prefixed CSS support queries,
// engine-specific globals and the raw navigator platform token.
//
// # Architecture
//
// The entry point is Detect, which asks an Environment for a Probe snapshot
// and runs the ordered heuristics over it:
//
//	┌─────────────┐  Probe   ┌───────────────┐
//	│ Environment │────────▶│  mobile.go    │── mobile? ──┐
//	└─────────────┘          └───────────────┘             │
//	                                                       ▼
//	                ┌───────────────┐          ┌───────────────────┐
//	                │  browser.go   │          │  os.go            │
//	                └───────────────┘          │  iOS → Android    │
//	                        │                  │  Windows → macOS  │
//	                        │                  │  → Linux → token  │
//	                        ▼                  └───────────────────┘
//	                 final Result ◀────────────────────┘
//
// Predicates are tested from the most specific family to the broadest one and
// each of them excludes the families confirmed before it, so a snapshot is
// never classified twice.
//
// # Usage
//
//	res := osdetect.Detect(env)
//	if res.OS == osdetect.MacOS && !res.IsMobile {
//	    // desktop Safari or Chrome on a Mac
//	}
//
// An Environment that cannot reach a live document (a nil Environment, or one
// whose Probe reports ok == false) yields the Unknown result immediately:
//
//	osdetect.Detect(nil) // Result{OS: osdetect.Unknown}
//
// # Fallbacks
//
// A mobile snapshot that matches neither iOS nor Android is reported as
// Android, and a desktop snapshot that matches nothing is reported as
// Windows. Both are the dominant family on their platform.
//
// Detection never fails. Version is best-effort and left empty when the
// environment does not expose a platform version.
package osdetect
