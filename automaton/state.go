package automaton

// State is a node of the automaton graph.
//
// Transition performs whatever side effect belongs to the state against the
// shared data and picks the next state. A non-nil error stops the run and is
// reported unchanged through Result.Err. D is usually a pointer type so that
// mutations are visible to the caller after the run.
type State[Id comparable, D any] interface {
	// ID returns the stable identifier of the state.
	ID() Id

	// Transition runs the state against data and returns the outcome.
	Transition(data D) (Outcome[Id, D], error)
}

// StateFunc wraps a function as a State.
//
// This is the lightest way to hand-write a state without declaring a type.
type StateFunc[Id comparable, D any] struct {
	id Id
	fn func(data D) (Outcome[Id, D], error)
}

// NewFuncState creates a State from an identifier and a transition function.
//
// Example:
//
//	done := automaton.NewFuncState(2, func(b *strings.Builder) (automaton.Outcome[int, *strings.Builder], error) {
//	    b.WriteString("done")
//	    return automaton.NotFound[int, *strings.Builder](), nil
//	})
func NewFuncState[Id comparable, D any](id Id, fn func(data D) (Outcome[Id, D], error)) *StateFunc[Id, D] {
	return &StateFunc[Id, D]{id: id, fn: fn}
}

func (s *StateFunc[Id, D]) ID() Id {
	return s.id
}

func (s *StateFunc[Id, D]) Transition(data D) (Outcome[Id, D], error) {
	return s.fn(data)
}
