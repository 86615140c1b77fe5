package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error returns an "error" attribute, or an empty one for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// Errors groups non-nil errors under "errors".
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.String(strconv.Itoa(i), err.Error()))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return Group("errors", as...)
}

// OS logs an operating system tag. Accepts any string-like tag.
func OS(os fmt.Stringer) slog.Attr { return slog.String("os", os.String()) }

// Factor logs a scale factor.
func Factor(f float64) slog.Attr { return slog.Float64("factor", f) }

// ZoomLevel logs a configured zoom level.
func ZoomLevel(l float64) slog.Attr { return slog.Float64("zoom_level", l) }

func SessionID(id any) slog.Attr { return slog.Any("session_id", id) }

func Browser(name string) slog.Attr { return slog.String("browser", name) }

func URL(u string) slog.Attr { return slog.String("url", u) }

func Component(name string) slog.Attr { return slog.String("component", name) }

func Duration(d time.Duration) slog.Attr { return slog.Duration("duration", d) }
