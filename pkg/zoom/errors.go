package zoom

import "errors"

var (
	// ErrZoomOutOfRange reports a configured level outside [MinZoom, MaxZoom].
	ErrZoomOutOfRange = errors.New("zoom: level out of range")

	// ErrUnknownOS reports a config key that is not a known OS tag.
	ErrUnknownOS = errors.New("zoom: unknown operating system")

	// ErrUnknownPreset is returned by Preset for unregistered names.
	ErrUnknownPreset = errors.New("zoom: unknown preset")
)
