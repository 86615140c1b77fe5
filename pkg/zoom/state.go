package zoom

import "github.com/dmitrymomot/oszoom/pkg/osdetect"

// State is the zoom state of one page. Values returned by a Manager are
// copies; changing them does not affect the Manager.
type State struct {
	CurrentZoom float64     `json:"currentZoom"`
	AppliedOS   osdetect.OS `json:"appliedOS"`
	IsActive    bool        `json:"isActive"`
}

// InitialState is the state of a new Manager.
func InitialState() State {
	return State{CurrentZoom: DefaultZoom, AppliedOS: osdetect.Unknown, IsActive: false}
}

type phase string

type trigger string

const (
	phaseInactive phase = "inactive"
	phaseActive   phase = "active"

	triggerActivate   trigger = "activate"
	triggerDeactivate trigger = "deactivate"
)
