package automaton

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInitialState is reported when the graph builder is missing or
	// returns no state.
	ErrNoInitialState = errors.New("automaton: no initial state")

	// ErrStateBorrowed is reported when the driver reaches a state whose
	// mutable borrow was never released.
	ErrStateBorrowed = errors.New("automaton: state is mutably borrowed")

	// ErrAlreadyBorrowed is returned by Handle.Borrow while another borrow
	// is active.
	ErrAlreadyBorrowed = errors.New("automaton: state already borrowed")

	// ErrStateType is returned by MutateAs when the state has another type.
	ErrStateType = errors.New("automaton: unexpected state type")
)

// ExecutionError captures the run context of a failed run:
//   - StateID: state whose transition failed
//   - RunID: run identifier
//   - Steps: transitions attempted, including the failing one
//   - Err: the error returned by the state, unchanged
type ExecutionError[Id comparable] struct {
	StateID Id
	RunID   string
	Steps   int
	Err     error
}

func (e *ExecutionError[Id]) Error() string {
	return fmt.Sprintf("automaton failed at state %v after %d steps: %v", e.StateID, e.Steps, e.Err)
}

// Unwrap enables error unwrapping for errors.Is and errors.As.
func (e *ExecutionError[Id]) Unwrap() error {
	return e.Err
}
