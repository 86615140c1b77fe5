// Package statemachine is a small typed finite-state machine.
//
// States and events are any comparable types, typically string-based enums.
// Transitions are looked up by (from, event); each may carry Guards, which
// must all pass, and Actions, which run in order before the state changes.
// The first transition whose guards pass wins, so registration order acts as
// priority.
//
// # Usage
//
//	type phase string
//	type trigger string
//
//	sm := statemachine.MustNew[phase, trigger]("inactive",
//	    statemachine.WithTransition[phase, trigger]("inactive", "active", "activate",
//	        statemachine.WithGuard(isEnabled),
//	        statemachine.WithAction(pushFactor),
//	    ),
//	)
//	err := sm.Fire(ctx, "activate", cfg)
//
// Fire returns *ErrNoTransition when nothing is registered for the current
// state and event, and *ErrRejected when every candidate was blocked by a
// guard. Machines are not safe for concurrent use; the owner serializes
// access.
package statemachine
