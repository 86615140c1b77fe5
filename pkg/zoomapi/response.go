package zoomapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/oszoom/pkg/logger"
	"github.com/dmitrymomot/oszoom/pkg/requestid"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respond(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Data: data})
}

func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	apiErr := toAPIError(err)
	level := slog.LevelWarn
	if apiErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	log.Log(r.Context(), level, "request failed",
		requestid.Attr(r.Context()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", apiErr.Status),
		logger.Error(err),
	)
	writeJSON(w, apiErr.Status, Envelope{Error: &ErrorDetail{Code: apiErr.Code, Message: apiErr.Error()}})
}

// decodeJSON reads a single JSON value with unknown fields rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return ErrBadRequest.WithMessage("invalid JSON body: " + err.Error())
	}
	return nil
}

const maxBodyBytes = 64 << 10
