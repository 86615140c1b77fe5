package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrNilPointer is returned when Load gets a nil pointer.
	ErrNilPointer = errors.New("config: nil pointer provided to loader")

	// ErrLoadEnvFile is returned when an explicit .env file cannot be read.
	ErrLoadEnvFile = errors.New("config: failed to load env file")

	// ErrReadZoomFile is returned when a zoom config file cannot be read.
	ErrReadZoomFile = errors.New("config: failed to read zoom config file")

	// ErrParseZoomFile is returned for malformed YAML.
	ErrParseZoomFile = errors.New("config: failed to parse zoom config file")

	// ErrInvalidZoomConfig is returned when a zoom config fails validation.
	ErrInvalidZoomConfig = errors.New("config: invalid zoom config")
)
