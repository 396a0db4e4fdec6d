package simple

import "github.com/tailored-agentic-units/automaton/automaton"

// State is an automaton state driven by an ordered list of connections.
//
// Each State owns a single shared handle, so every predecessor that connects
// to it refers to the same state. Connections are registered while building
// the graph; registering while a run is in progress is not guarded.
type State[K any, Id comparable, D KeyProvider[K]] struct {
	id          Id
	connections []Connection[K, Id, D]
	handle      *automaton.Handle[Id, D]
}

// New creates a State with no connections.
//
// The type parameters are rarely inferable, so bind them once:
//
//	newState := simple.New[keys.Indexed[rune], int, *Data]
//	start := newState(0)
func New[K any, Id comparable, D KeyProvider[K]](id Id) *State[K, Id, D] {
	s := &State[K, Id, D]{id: id}
	s.handle = automaton.Share[Id, D](s)
	return s
}

func (s *State[K, Id, D]) ID() Id {
	return s.id
}

// Handle returns the shared handle of the state, so a *State satisfies
// automaton.Ref.
func (s *State[K, Id, D]) Handle() *automaton.Handle[Id, D] {
	if s == nil {
		return nil
	}
	return s.handle
}

// Register appends a connection. Connections are evaluated in registration
// order.
func (s *State[K, Id, D]) Register(connection Connection[K, Id, D]) {
	s.connections = append(s.connections, connection)
}

// Connect registers a connection to target; action may be nil.
func (s *State[K, Id, D]) Connect(match Matcher[K], action Action[K, D], target automaton.Ref[Id, D]) {
	s.Register(NewConnection(match, action, target))
}

// Connections returns the number of registered connections.
func (s *State[K, Id, D]) Connections() int {
	return len(s.connections)
}

// Transition pulls the next key from data and takes the first connection that
// accepts it:
//  1. No key available: End
//  2. First matching connection: run its action, then Continue to its target
//  3. No matching connection: NotFound
//
// Exhaustion is checked before any connection is considered, so an automaton
// over empty input always ends with end of input.
func (s *State[K, Id, D]) Transition(data D) (automaton.Outcome[Id, D], error) {
	key, ok := data.NextKey()
	if !ok {
		return automaton.End[Id, D](), nil
	}

	for _, c := range s.connections {
		if !c.Matches(key) {
			continue
		}

		if c.action != nil {
			if err := c.action(data, key); err != nil {
				return automaton.NotFound[Id, D](), err
			}
		}
		return automaton.Continue(c.target), nil
	}

	return automaton.NotFound[Id, D](), nil
}
