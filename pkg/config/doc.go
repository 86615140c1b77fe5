// Package config loads application settings from the environment and zoom
// configurations from YAML files.
//
// Environment settings are parsed into tagged structs with caarlos0/env.
// A .env file in the working directory is loaded once, if present, before the
// first parse; LoadEnv loads other files explicitly. Each struct type is
// parsed once and cached:
//
//	var cfg config.App
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Zoom configurations are YAML documents shaped like zoom.Config:
//
//	debug: false
//	enableCSS: true
//	os:
//	  windows: {enabled: true, zoomLevel: 0.8}
//	  macos:   {enabled: true, zoomLevel: 0.9}
//
// LoadZoomFile merges the file over the defaults (every OS disabled) and
// validates levels and keys.
package config
