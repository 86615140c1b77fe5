package osdetect

// IsIOS matches an iPhone/iPad/iPod platform token, or a home-screen web app
// (standalone mode) on a touch device that answers the iOS-only
// -webkit-touch-callout / -webkit-overflow-scrolling queries.
func IsIOS(p Probe) bool {
	if iOSTokens.contains(platformToken(p)) {
		return true
	}
	return IsMobile(p) && p.Standalone && p.HasTouch() &&
		(p.WebkitTouchCallout || p.WebkitOverflowScrolling)
}

// IsAndroid matches an android platform token, or a mobile Chromium engine
// that is not iOS.
func IsAndroid(p Probe) bool {
	if IsIOS(p) {
		return false
	}
	if androidTokens.contains(platformToken(p)) {
		return true
	}
	return IsMobile(p) && p.HasTouch() && p.Chrome
}

// IsWindows matches a win/wow64/win64 platform token, or the legacy ActiveX
// global on a desktop-sized screen. Mobile snapshots never match.
func IsWindows(p Probe) bool {
	if IsMobile(p) {
		return false
	}
	if windowsTokens.contains(windowsToken(p)) {
		return true
	}
	return p.ActiveX && isDesktopScreen(p)
}

// IsMacOS matches a mac/darwin token, Safari with WebKit, or WebKit on a
// high pixel ratio display, excluding mobile and Windows.
func IsMacOS(p Probe) bool {
	if IsMobile(p) || IsWindows(p) {
		return false
	}
	if macOSTokens.contains(platformToken(p)) {
		return true
	}
	if p.Safari && p.WebKit {
		return true
	}
	return p.WebKit && isHighDPR(p)
}

// IsLinux matches a linux (not android) or x11 token, or a Gecko/Chromium
// engine once mobile, Windows and macOS are excluded.
func IsLinux(p Probe) bool {
	if IsMobile(p) || IsWindows(p) || IsMacOS(p) {
		return false
	}
	token := platformToken(p)
	if linuxTokens.contains(token) && !androidTokens.contains(token) {
		return true
	}
	return p.InstallTrigger || p.Chrome
}

// ParsePlatform maps a raw platform token to a desktop family by substring.
// It returns Unknown when no hint is present.
func ParsePlatform(platform string) OS {
	token := normalize(platform)
	switch {
	case macOSTokens.contains(token):
		return MacOS
	case windowsTokens.contains(token):
		return Windows
	case linuxTokens.contains(token):
		return Linux
	}
	return Unknown
}

func detectMobileOS(p Probe) OS {
	switch {
	case IsIOS(p):
		return IOS
	case IsAndroid(p):
		return Android
	}
	return Android
}

func detectDesktopOS(p Probe) OS {
	switch {
	case IsWindows(p):
		return Windows
	case IsMacOS(p):
		return MacOS
	case IsLinux(p):
		return Linux
	}
	if os := ParsePlatform(p.Platform); os != Unknown {
		return os
	}
	return Windows
}
