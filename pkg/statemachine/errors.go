package statemachine

import (
	"errors"
	"fmt"
)

// ErrActionFailed wraps an error returned by a transition action.
var ErrActionFailed = errors.New("statemachine: action failed")

// ErrNoTransition means nothing is registered for the state/event pair.
type ErrNoTransition struct {
	State string
	Event string
}

func (e *ErrNoTransition) Error() string {
	return fmt.Sprintf("statemachine: no transition from state '%s' for event '%s'", e.State, e.Event)
}

// ErrRejected means every candidate transition was blocked by a guard.
type ErrRejected struct {
	State string
	Event string
}

func (e *ErrRejected) Error() string {
	return fmt.Sprintf("statemachine: transition from state '%s' for event '%s' was rejected by guards", e.State, e.Event)
}

// IsNoTransition reports whether err is an *ErrNoTransition.
func IsNoTransition(err error) bool {
	var e *ErrNoTransition
	return errors.As(err, &e)
}

// IsRejected reports whether err is an *ErrRejected.
func IsRejected(err error) bool {
	var e *ErrRejected
	return errors.As(err, &e)
}
