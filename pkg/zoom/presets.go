package zoom

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/oszoom/pkg/osdetect"
)

// Preset names.
const (
	PresetWindowsOnly  = "windowsOnly"
	PresetMacOSOnly    = "macosOnly"
	PresetDesktopOnly  = "desktopOnly"
	PresetAllPlatforms = "allPlatforms"
	PresetMobileOnly   = "mobileOnly"
)

var presets = map[string]func() Config{
	PresetWindowsOnly:  WindowsOnly,
	PresetMacOSOnly:    MacOSOnly,
	PresetDesktopOnly:  DesktopOnly,
	PresetAllPlatforms: AllPlatforms,
	PresetMobileOnly:   MobileOnly,
}

// WindowsOnly scales Windows down to compensate for its default 125% DPI.
func WindowsOnly() Config {
	return MergeConfig(&Config{OS: map[osdetect.OS]OSConfig{
		osdetect.Windows: {Enabled: true, ZoomLevel: 0.8},
	}})
}

func MacOSOnly() Config {
	return MergeConfig(&Config{OS: map[osdetect.OS]OSConfig{
		osdetect.MacOS: {Enabled: true, ZoomLevel: 0.9},
	}})
}

func DesktopOnly() Config {
	return MergeConfig(&Config{OS: map[osdetect.OS]OSConfig{
		osdetect.Windows: {Enabled: true, ZoomLevel: 0.8},
		osdetect.MacOS:   {Enabled: true, ZoomLevel: 0.9},
		osdetect.Linux:   {Enabled: true, ZoomLevel: 0.9},
	}})
}

func AllPlatforms() Config {
	return MergeConfig(&Config{OS: map[osdetect.OS]OSConfig{
		osdetect.Windows: {Enabled: true, ZoomLevel: 0.8},
		osdetect.MacOS:   {Enabled: true, ZoomLevel: 0.9},
		osdetect.Linux:   {Enabled: true, ZoomLevel: 0.9},
		osdetect.Android: {Enabled: true, ZoomLevel: 1.0},
		osdetect.IOS:     {Enabled: true, ZoomLevel: 1.0},
	}})
}

func MobileOnly() Config {
	return MergeConfig(&Config{OS: map[osdetect.OS]OSConfig{
		osdetect.Android: {Enabled: true, ZoomLevel: 0.9},
		osdetect.IOS:     {Enabled: true, ZoomLevel: 0.9},
	}})
}

// Preset returns a fresh copy of the named preset.
func Preset(name string) (Config, error) {
	build, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return build(), nil
}

// PresetNames lists preset names in sorted order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}
