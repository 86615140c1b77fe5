package statemachine

import (
	"context"
	"fmt"
)

// Guard decides whether a transition may proceed.
type Guard[S, E comparable] func(ctx context.Context, from S, event E, data any) bool

// Action runs a side effect during a transition. An error aborts it.
type Action[S, E comparable] func(ctx context.Context, from, to S, event E, data any) error

// Transition is a state change triggered by an event.
type Transition[S, E comparable] struct {
	From    S
	To      S
	Event   E
	Guards  []Guard[S, E]
	Actions []Action[S, E]
}

type key[S, E comparable] struct {
	from  S
	event E
}

// Machine holds the current state and the transition table.
type Machine[S, E comparable] struct {
	initial     S
	current     S
	transitions map[key[S, E]][]Transition[S, E]
}

// New creates a machine in the initial state.
func New[S, E comparable](initial S, opts ...Option[S, E]) (*Machine[S, E], error) {
	m := &Machine[S, E]{
		initial:     initial,
		current:     initial,
		transitions: make(map[key[S, E]][]Transition[S, E]),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics on a misconfigured transition table.
func MustNew[S, E comparable](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("statemachine: %v", err))
	}
	return m
}

// Current returns the current state.
func (m *Machine[S, E]) Current() S { return m.current }

// Is reports whether the machine is in state s.
func (m *Machine[S, E]) Is(s S) bool { return m.current == s }

// Add registers a transition. Several transitions may share (from, event)
// to branch on guards.
func (m *Machine[S, E]) Add(t Transition[S, E]) {
	k := key[S, E]{from: t.From, event: t.Event}
	m.transitions[k] = append(m.transitions[k], t)
}

// Fire triggers event from the current state.
func (m *Machine[S, E]) Fire(ctx context.Context, event E, data any) error {
	candidates, ok := m.transitions[key[S, E]{from: m.current, event: event}]
	if !ok || len(candidates) == 0 {
		return &ErrNoTransition{State: fmt.Sprint(m.current), Event: fmt.Sprint(event)}
	}

	t, ok := m.pick(ctx, candidates, event, data)
	if !ok {
		return &ErrRejected{State: fmt.Sprint(m.current), Event: fmt.Sprint(event)}
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, m.current, t.To, event, data); err != nil {
			return fmt.Errorf("%w: %w", ErrActionFailed, err)
		}
	}

	m.current = t.To
	return nil
}

// CanFire reports whether Fire would find a transition whose guards pass.
func (m *Machine[S, E]) CanFire(ctx context.Context, event E, data any) bool {
	_, ok := m.pick(ctx, m.transitions[key[S, E]{from: m.current, event: event}], event, data)
	return ok
}

// Reset returns the machine to its initial state without running actions.
func (m *Machine[S, E]) Reset() { m.current = m.initial }

func (m *Machine[S, E]) pick(ctx context.Context, candidates []Transition[S, E], event E, data any) (Transition[S, E], bool) {
	for _, t := range candidates {
		passed := true
		for _, guard := range t.Guards {
			if guard != nil && !guard(ctx, m.current, event, data) {
				passed = false
				break
			}
		}
		if passed {
			return t, true
		}
	}
	return Transition[S, E]{}, false
}
