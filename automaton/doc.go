// Package automaton provides a generic engine for running finite-automaton
// style state machines over caller-owned mutable data.
//
// # Core Components
//
// State - Interface every automaton state satisfies: an identifier plus a
// single Transition operation
//
// Handle - Shared reference to a state, held by every predecessor and by the
// driver, with runtime-checked mutable borrowing
//
// Outcome - Result of one transition: Continue to a next state, NotFound, or End
//
// Automaton - Driver that walks the state graph until a terminal outcome
//
// Result - How a run ended: no next state, end of input, or a failure
//
// # Execution
//
// The driver asks the current state to transition with the shared data and
// applies the outcome:
//
//	Continue(next) -> current = next, repeat
//	NotFound       -> StatusNoNextState
//	End            -> StatusEndOfInput
//	error          -> StatusFailed, error returned unchanged by Result.Err
//
// The loop has no iteration bound. Halting is a property of the state graph,
// so a cycle without a terminating condition runs forever.
//
// # Example
//
//	bar := automaton.Share[uint8, *strings.Builder](appendState(2, "Bar", nil))
//	foo := automaton.Share[uint8, *strings.Builder](appendState(1, "Foo", bar))
//
//	a := automaton.New(func() *automaton.Handle[uint8, *strings.Builder] {
//	    return foo
//	})
//	var buf strings.Builder
//	result := a.Run(&buf) // buf == "FooBar", result.IsNoNextState()
//
// The graph builder runs lazily on the first Run. Reset discards the built
// graph and WithFreshGraph rebuilds it for every run.
//
// # Concurrency
//
// An Automaton and the states it reaches are single-threaded. Run is a plain
// blocking call and must not be re-entered with the same data from inside a
// transition. Sharing a state graph across goroutines requires external
// synchronization.
package automaton
