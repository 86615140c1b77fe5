package osdetect

// ParseBrowser names the browser engine from its globals. Markers overlap in
// some engines, so the first match wins: Chrome, Firefox, Safari, Edge.
// It returns an empty string when no marker is present.
func ParseBrowser(p Probe) string {
	switch {
	case p.Chrome:
		return BrowserChrome
	case p.InstallTrigger:
		return BrowserFirefox
	case p.Safari:
		return BrowserSafari
	case p.StyleMedia:
		return BrowserEdge
	}
	return ""
}
