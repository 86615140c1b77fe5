package style

import "errors"

var (
	// ErrInvalidFactor is returned for non-positive or non-finite factors.
	ErrInvalidFactor = errors.New("style: scale factor must be a positive finite number")

	// ErrRender is returned when the stylesheet template fails.
	ErrRender = errors.New("style: failed to render stylesheet")
)
