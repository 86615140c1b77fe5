package zoomapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/oszoom/pkg/assets"
	"github.com/dmitrymomot/oszoom/pkg/osdetect"
	"github.com/dmitrymomot/oszoom/pkg/style"
	"github.com/dmitrymomot/oszoom/pkg/zoom"
)

// CreateSessionRequest is the body of POST /api/sessions. Config takes
// precedence over Preset; with neither the API default applies. A missing
// probe yields the unknown result.
type CreateSessionRequest struct {
	Probe  *osdetect.Probe `json:"probe"`
	Preset string          `json:"preset,omitempty"`
	Config *zoom.Config    `json:"config,omitempty"`
}

// ApplyRequest is the body of POST /api/sessions/{id}/apply.
type ApplyRequest struct {
	OS string `json:"os"`
}

// ZoomRequest is the body of PUT /api/sessions/{id}/zoom.
type ZoomRequest struct {
	OS    string   `json:"os"`
	Level *float64 `json:"level"`
}

// PresetView is the JSON form of a preset.
type PresetView struct {
	Name   string      `json:"name"`
	Config zoom.Config `json:"config"`
}

func (a *API) detect(w http.ResponseWriter, r *http.Request) {
	var probe osdetect.Probe
	if err := decodeJSON(w, r, &probe); err != nil {
		respondError(w, r, a.log, err)
		return
	}
	respond(w, http.StatusOK, osdetect.DetectProbe(probe))
}

func (a *API) listPresets(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, zoom.PresetNames())
}

func (a *API) getPreset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	cfg, err := zoom.Preset(name)
	if err != nil {
		respondError(w, r, a.log, err)
		return
	}
	respond(w, http.StatusOK, PresetView{Name: name, Config: cfg})
}

func (a *API) stylesheet(w http.ResponseWriter, r *http.Request) {
	factor := zoom.DefaultZoom
	if raw := r.URL.Query().Get("factor"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(w, r, a.log, ErrBadRequest.WithMessage("factor must be a number"))
			return
		}
		if !zoom.ValidLevel(f) {
			respondError(w, r, a.log, fmt.Errorf("%w: %v", zoom.ErrZoomOutOfRange, f))
			return
		}
		factor = f
	}

	css, err := style.Render(factor, a.styleOpts)
	if err != nil {
		respondError(w, r, a.log, err)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(css))
}

func (a *API) probeScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	_, _ = w.Write([]byte(assets.ClientScript))
}

func (a *API) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, a.log, err)
		return
	}

	cfg, err := a.sessionConfig(req)
	if err != nil {
		respondError(w, r, a.log, err)
		return
	}

	var env osdetect.Environment = osdetect.NoEnvironment{}
	if req.Probe != nil {
		env = osdetect.StaticEnvironment{Snapshot: *req.Probe}
	}

	sess, err := a.sessions.Create(r.Context(), cfg, env, a.bindingOptions()...)
	if err != nil {
		respondError(w, r, a.log, err)
		return
	}
	respond(w, http.StatusCreated, sess.View())
}

func (a *API) sessionConfig(req CreateSessionRequest) (zoom.Config, error) {
	switch {
	case req.Config != nil:
		if err := zoom.Validate(*req.Config); err != nil {
			return zoom.Config{}, err
		}
		return zoom.MergeConfig(req.Config), nil
	case req.Preset != "":
		return zoom.Preset(req.Preset)
	default:
		return a.cfg.Clone(), nil
	}
}

func (a *API) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, a.log, ErrSessionNotFound)
		return nil, false
	}
	sess, err := a.sessions.Get(id)
	if err != nil {
		respondError(w, r, a.log, err)
		return nil, false
	}
	return sess, true
}

func (a *API) getSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, sess.View())
}

func (a *API) applySession(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	var req ApplyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, a.log, err)
		return
	}
	os, err := parseOS(req.OS)
	if err != nil {
		respondError(w, r, a.log, err)
		return
	}
	if err := sess.Controller().Apply(os); err != nil {
		respondError(w, r, a.log, err)
		return
	}
	respond(w, http.StatusOK, sess.View())
}

func (a *API) zoomSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	var req ZoomRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, a.log, err)
		return
	}
	if req.Level == nil {
		respondError(w, r, a.log, ErrBadRequest.WithMessage("level is required"))
		return
	}
	os, err := parseOS(req.OS)
	if err != nil {
		respondError(w, r, a.log, err)
		return
	}
	if !zoom.ValidLevel(*req.Level) {
		respondError(w, r, a.log, fmt.Errorf("%w: %v", zoom.ErrZoomOutOfRange, *req.Level))
		return
	}
	if err := sess.Controller().Update(os, *req.Level); err != nil {
		respondError(w, r, a.log, err)
		return
	}
	respond(w, http.StatusOK, sess.View())
}

func (a *API) resetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	if err := sess.Controller().Reset(); err != nil {
		respondError(w, r, a.log, err)
		return
	}
	respond(w, http.StatusOK, sess.View())
}

func (a *API) deleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, a.log, ErrSessionNotFound)
		return
	}
	if err := a.sessions.Delete(id); err != nil {
		respondError(w, r, a.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseOS accepts any spelling ParseOS understands plus the literal
// "unknown".
func parseOS(raw string) (osdetect.OS, error) {
	os := osdetect.ParseOS(raw)
	if os == osdetect.Unknown && strings.ToLower(strings.TrimSpace(raw)) != string(osdetect.Unknown) {
		return os, fmt.Errorf("%w: %q", zoom.ErrUnknownOS, raw)
	}
	return os, nil
}
