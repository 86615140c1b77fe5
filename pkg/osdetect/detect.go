package osdetect

import (
	"context"
	"strings"
)

// Result is the outcome of a detection.
type Result struct {
	OS       OS     `json:"os"`
	Version  string `json:"version,omitempty"`
	IsMobile bool   `json:"isMobile"`
	Browser  string `json:"browser,omitempty"`
}

// UnknownResult is returned when no live document is available.
var UnknownResult = Result{OS: Unknown}

// Detect classifies the environment using a background context.
func Detect(env Environment) Result {
	return DetectContext(context.Background(), env)
}

// DetectContext asks env for a probe snapshot and classifies it.
// A nil env, or one that reports no document, yields UnknownResult.
func DetectContext(ctx context.Context, env Environment) Result {
	if env == nil {
		return UnknownResult
	}
	p, ok := env.Probe(ctx)
	if !ok {
		return UnknownResult
	}
	return DetectProbe(p)
}

// DetectProbe classifies a snapshot directly.
func DetectProbe(p Probe) Result {
	mobile := IsMobile(p)

	var os OS
	switch {
	// Platform tokens for iPhone/iPad/iPod win on either path; iPadOS in
	// desktop mode still reports them.
	case iOSTokens.contains(platformToken(p)):
		os = IOS
	case mobile:
		os = detectMobileOS(p)
	default:
		os = detectDesktopOS(p)
	}

	return Result{
		OS:       os,
		Version:  strings.TrimSpace(p.PlatformVersion),
		IsMobile: mobile,
		Browser:  ParseBrowser(p),
	}
}
