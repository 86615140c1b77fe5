package osdetect

// Mobile thresholds in CSS pixels
const (
	smallScreenMax   = 768
	smallViewportMax = 1024
	highDPR          = 2.0
	desktopScreenMin = 1024
)

// IsMobile requires a touch signal plus at least one corroborating signal:
// a small screen, a mobile-only API, or a high pixel ratio on a small
// viewport. Touch alone is not enough, desktop touchscreens exist.
func IsMobile(p Probe) bool {
	if !p.HasTouch() {
		return false
	}
	return isSmallScreen(p) || p.OrientationAPI || (isHighDPR(p) && isSmallViewport(p))
}

func isSmallScreen(p Probe) bool {
	short := min(p.ScreenWidth, p.ScreenHeight)
	return short > 0 && short <= smallScreenMax
}

func isSmallViewport(p Probe) bool {
	return p.ViewportWidth > 0 && p.ViewportWidth <= smallViewportMax
}

func isHighDPR(p Probe) bool { return p.DevicePixelRatio >= highDPR }

func isDesktopScreen(p Probe) bool { return p.ScreenWidth >= desktopScreenMin }
