package osdetect

import (
	"context"
	"strings"
)

// Probe is a read-only snapshot of the capability signals a live document
// exposes. It is gathered once per detection and never cached.
type Probe struct {
	// Touch capability
	TouchEvents    bool `json:"touchEvents"`    // "ontouchstart" in window
	MaxTouchPoints int  `json:"maxTouchPoints"` // navigator.maxTouchPoints

	// Geometry
	ScreenWidth      int     `json:"screenWidth"`
	ScreenHeight     int     `json:"screenHeight"`
	ViewportWidth    int     `json:"viewportWidth"`
	ViewportHeight   int     `json:"viewportHeight"`
	DevicePixelRatio float64 `json:"devicePixelRatio"`

	// Mobile-only markers
	Standalone     bool `json:"standalone"`     // navigator.standalone is defined
	OrientationAPI bool `json:"orientationApi"` // window.orientation is defined

	// Vendor-prefixed CSS.supports queries
	WebkitTouchCallout      bool `json:"webkitTouchCallout"`
	WebkitOverflowScrolling bool `json:"webkitOverflowScrolling"`
	WebKit                  bool `json:"webkit"` // -webkit-appearance

	// Engine globals
	Chrome         bool `json:"chrome"`         // window.chrome
	InstallTrigger bool `json:"installTrigger"` // window.InstallTrigger (Gecko)
	Safari         bool `json:"safari"`         // window.safari
	ActiveX        bool `json:"activeX"`        // window.ActiveXObject
	StyleMedia     bool `json:"styleMedia"`     // window.styleMedia

	// Platform is the raw navigator.platform token.
	Platform string `json:"platform"`
	// PlatformVersion comes from user-agent client hints when the browser
	// exposes them; usually empty.
	PlatformVersion string `json:"platformVersion,omitempty"`
}

// HasTouch reports touch event support or a nonzero touch point count.
func (p Probe) HasTouch() bool {
	return p.TouchEvents || p.MaxTouchPoints > 0
}

// Environment supplies probe snapshots. ok is false when no live
// document/navigator context is reachable.
type Environment interface {
	Probe(ctx context.Context) (p Probe, ok bool)
}

// EnvironmentFunc adapts a function to the Environment interface.
type EnvironmentFunc func(ctx context.Context) (Probe, bool)

// Probe calls f(ctx).
func (f EnvironmentFunc) Probe(ctx context.Context) (Probe, bool) { return f(ctx) }

// StaticEnvironment always returns the same snapshot. Useful in tests and
// for snapshots posted by a client.
type StaticEnvironment struct {
	Snapshot Probe
}

// Probe returns the stored snapshot.
func (e StaticEnvironment) Probe(context.Context) (Probe, bool) { return e.Snapshot, true }

// NoEnvironment models a runtime without a rendering context.
type NoEnvironment struct{}

// Probe always reports that no document is available.
func (NoEnvironment) Probe(context.Context) (Probe, bool) { return Probe{}, false }

func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
