package simple

import "github.com/tailored-agentic-units/automaton/automaton"

// Action runs when a connection is taken. It may mutate data and receives
// the key that matched. A returned error fails the run unchanged.
type Action[K, D any] func(data D, key K) error

// Connection is a guarded transition: a matcher over keys, an optional action
// and the target state.
//
// A nil matcher accepts every key. A connection without a target stops the
// run with no next state once taken; its action still runs.
type Connection[K any, Id comparable, D any] struct {
	match  Matcher[K]
	action Action[K, D]
	target *automaton.Handle[Id, D]
}

// NewConnection creates a connection to target that runs action when match
// accepts a key.
func NewConnection[K any, Id comparable, D any](match Matcher[K], action Action[K, D], target automaton.Ref[Id, D]) Connection[K, Id, D] {
	return Connection[K, Id, D]{
		match:  match,
		action: action,
		target: handleOf(target),
	}
}

// NewConnectionNoAction creates a connection to target without an action.
func NewConnectionNoAction[K any, Id comparable, D any](match Matcher[K], target automaton.Ref[Id, D]) Connection[K, Id, D] {
	return NewConnection[K, Id, D](match, nil, target)
}

// Matches reports whether the connection accepts key.
func (c Connection[K, Id, D]) Matches(key K) bool {
	return c.match == nil || c.match(key)
}

// Target returns the handle of the target state, nil when there is none.
func (c Connection[K, Id, D]) Target() *automaton.Handle[Id, D] {
	return c.target
}

// HasAction reports whether taking the connection runs an action.
func (c Connection[K, Id, D]) HasAction() bool {
	return c.action != nil
}

func handleOf[Id comparable, D any](ref automaton.Ref[Id, D]) *automaton.Handle[Id, D] {
	if ref == nil {
		return nil
	}
	return ref.Handle()
}
