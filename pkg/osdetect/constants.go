package osdetect

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OS is a coarse operating system family.
type OS string

// Operating system families
const (
	// Windows identifies Microsoft Windows
	Windows OS = "windows"

	// MacOS identifies Apple macOS
	MacOS OS = "macos"

	// Linux identifies desktop Linux distributions
	Linux OS = "linux"

	// Android identifies Google Android
	Android OS = "android"

	// IOS identifies Apple iOS and iPadOS
	IOS OS = "ios"

	// Unknown is the safe default when nothing can be determined
	Unknown OS = "unknown"
)

// Browser engine names reported in Result.Browser
const (
	BrowserChrome  = "Chrome"
	BrowserFirefox = "Firefox"
	BrowserSafari  = "Safari"
	BrowserEdge    = "Edge"
)

// AllOS returns every known OS tag, Unknown last.
func AllOS() []OS {
	return []OS{Windows, MacOS, Linux, Android, IOS, Unknown}
}

// Valid reports whether o is one of the known tags.
func (o OS) Valid() bool {
	switch o {
	case Windows, MacOS, Linux, Android, IOS, Unknown:
		return true
	}
	return false
}

// IsMobileFamily reports whether o is a mobile operating system.
func (o OS) IsMobileFamily() bool { return o == Android || o == IOS }

func (o OS) String() string { return string(o) }

// DisplayName returns a human-readable name, e.g. "macOS" or "Linux".
func (o OS) DisplayName() string {
	switch o {
	case MacOS:
		return "macOS"
	case IOS:
		return "iOS"
	case "", Unknown:
		return "Unknown OS"
	}
	return cases.Title(language.English).String(string(o))
}

// ParseOS converts a loose tag ("macOS", " Windows ", "iphone") into an OS.
// Unrecognised input maps to Unknown.
func ParseOS(s string) OS {
	switch o := OS(normalize(s)); o {
	case Windows, MacOS, Linux, Android, IOS:
		return o
	}
	switch normalize(s) {
	case "mac", "osx", "darwin":
		return MacOS
	case "win", "win32", "win64":
		return Windows
	case "iphone", "ipad", "ipod", "ipados":
		return IOS
	}
	return Unknown
}
