// Package zoom maps a detected operating system to a configured scale factor
// and keeps the zoom state of one page.
//
// A Manager owns a Config (per-OS enabled flag and zoom level plus global
// flags) and a State record. It moves between two phases:
//
//	inactive {CurrentZoom: 1, AppliedOS: unknown, IsActive: false}
//	   │ Apply(os) with os enabled          ▲ Reset()
//	   ▼                                    │
//	active   {CurrentZoom: level, AppliedOS: os, IsActive: true}
//
// The visual effect is delegated to a StyleInjector (see package style).
//
// # Usage
//
//	cfg := zoom.MergeConfig(&zoom.Config{
//	    OS: map[osdetect.OS]zoom.OSConfig{
//	        osdetect.Windows: {Enabled: true, ZoomLevel: 0.8},
//	    },
//	})
//	m := zoom.New(cfg, zoom.WithInjector(injector), zoom.WithEnvironment(env))
//	m.Init(ctx)          // detect once, apply the OS level
//	m.SetZoom(osdetect.Windows, 0.9)
//	st := m.State()      // copy, safe to keep
//	m.Destroy()          // reset + remove stylesheet
//
// # Fallbacks
//
// MergeConfig fills every OS tag that the caller did not list with
// {Enabled: false, ZoomLevel: 1}. A Manager looking up a tag that is absent
// from its config uses {Enabled: true, ZoomLevel: 1} instead. The two
// defaults differ on purpose and stay separate code paths.
//
// # Errors
//
// No Manager operation returns an error. Disabled systems and out-of-range
// levels are silent no-ops, logged when Config.Debug is set. A Manager is not
// safe for concurrent use; create one per page.
package zoom
