package osdetect

import "strings"

// keywordSet holds substrings matched against a lower-cased platform token.
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Platform token keyword sets
var (
	iOSTokens     = newKeywordSet("iphone", "ipad", "ipod")
	androidTokens = newKeywordSet("android")
	windowsTokens = newKeywordSet("win", "wow64", "win64")
	macOSTokens   = newKeywordSet("mac", "darwin")
	linuxTokens   = newKeywordSet("linux", "x11")
)

// platformToken lower-cases the raw platform string.
func platformToken(p Probe) string { return normalize(p.Platform) }

// windowsToken strips "darwin" first, it would otherwise match "win".
func windowsToken(p Probe) string {
	return strings.ReplaceAll(platformToken(p), "darwin", "")
}
