package automaton

import "fmt"

// Ref is anything that can hand out the shared handle of a state. *Handle
// implements it, as do concrete states that own their handle.
type Ref[Id comparable, D any] interface {
	Handle() *Handle[Id, D]
}

// Handle is a shared reference to a State.
//
// Any number of predecessors, outcomes and the driver may hold the same
// Handle; the state lives as long as one of them does. Mutable access is
// granted through Borrow or Mutate and at most one borrow may be active at a
// time. The driver refuses to transition a state that is still borrowed.
type Handle[Id comparable, D any] struct {
	state    State[Id, D]
	borrowed bool
}

// Share wraps state in a new Handle. Share returns nil for a nil state.
func Share[Id comparable, D any](state State[Id, D]) *Handle[Id, D] {
	if state == nil {
		return nil
	}
	return &Handle[Id, D]{state: state}
}

// Handle returns h, so a *Handle satisfies Ref.
func (h *Handle[Id, D]) Handle() *Handle[Id, D] {
	return h
}

// ID returns the identifier of the referenced state.
func (h *Handle[Id, D]) ID() Id {
	return h.state.ID()
}

// State returns the referenced state for read access.
func (h *Handle[Id, D]) State() State[Id, D] {
	return h.state
}

// Borrowed reports whether a mutable borrow is active.
func (h *Handle[Id, D]) Borrowed() bool {
	return h.borrowed
}

// Borrow takes the mutable borrow on the state. The returned release function
// ends the borrow; calling it more than once has no further effect.
// Borrow returns ErrAlreadyBorrowed while another borrow is active.
func (h *Handle[Id, D]) Borrow() (State[Id, D], func(), error) {
	if h.borrowed {
		return nil, nil, fmt.Errorf("state %v: %w", h.state.ID(), ErrAlreadyBorrowed)
	}

	h.borrowed = true
	released := false
	release := func() {
		if !released {
			released = true
			h.borrowed = false
		}
	}
	return h.state, release, nil
}

// Mutate borrows the state for the duration of fn.
//
// Example:
//
//	err := h.Mutate(func(s automaton.State[int, *Data]) error {
//	    s.(*Router).next = other
//	    return nil
//	})
func (h *Handle[Id, D]) Mutate(fn func(State[Id, D]) error) error {
	state, release, err := h.Borrow()
	if err != nil {
		return err
	}
	defer release()

	return fn(state)
}

// MutateAs borrows the state behind h as its concrete type S for the duration
// of fn. It returns an error wrapping ErrStateType when the state is not an S.
//
// Example:
//
//	err := automaton.MutateAs(h, func(r *Router) error {
//	    r.next = other
//	    return nil
//	})
func MutateAs[S State[Id, D], Id comparable, D any](h *Handle[Id, D], fn func(S) error) error {
	return h.Mutate(func(state State[Id, D]) error {
		concrete, ok := state.(S)
		if !ok {
			return fmt.Errorf("state %v is %T: %w", state.ID(), state, ErrStateType)
		}
		return fn(concrete)
	})
}
