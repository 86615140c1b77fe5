// Package zoomapi exposes OS classification and zoom sessions over HTTP.
//
// Routes:
//
//	POST   /api/detect                  probe -> osdetect.Result
//	GET    /api/presets                 preset names
//	GET    /api/presets/{name}          merged preset config
//	POST   /api/sessions                {probe, preset?, config?} -> session
//	GET    /api/sessions/{id}
//	POST   /api/sessions/{id}/apply     {os}
//	PUT    /api/sessions/{id}/zoom      {os, level}
//	POST   /api/sessions/{id}/reset
//	DELETE /api/sessions/{id}
//	GET    /zoom.css?factor=            rendered stylesheet
//	GET    /probe.js                    page client script
//
// JSON responses use the envelope {"data": ...} or {"error": {"code",
// "message"}}. A session owns one binding.Controller rendering into an
// in-memory document; the page applies the returned stylesheet and factor.
// Sessions live in process memory only.
package zoomapi
