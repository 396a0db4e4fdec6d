package automaton

type outcomeKind uint8

const (
	outcomeNotFound outcomeKind = iota
	outcomeContinue
	outcomeEnd
)

// Outcome is the result of asking a state to transition.
//
// It is one of Continue (proceed to the carried state), NotFound (no viable
// transition from here) or End (the data source is exhausted). The zero value
// is NotFound.
type Outcome[Id comparable, D any] struct {
	kind outcomeKind
	next *Handle[Id, D]
}

// Continue returns an outcome that moves the automaton to next. A nil handle,
// or one without a state, yields NotFound.
func Continue[Id comparable, D any](next *Handle[Id, D]) Outcome[Id, D] {
	if next == nil || next.state == nil {
		return Outcome[Id, D]{kind: outcomeNotFound}
	}
	return Outcome[Id, D]{kind: outcomeContinue, next: next}
}

// NotFound returns an outcome reporting that no next state exists.
func NotFound[Id comparable, D any]() Outcome[Id, D] {
	return Outcome[Id, D]{kind: outcomeNotFound}
}

// End returns an outcome reporting that the input is exhausted.
func End[Id comparable, D any]() Outcome[Id, D] {
	return Outcome[Id, D]{kind: outcomeEnd}
}

func (o Outcome[Id, D]) IsContinue() bool {
	return o.kind == outcomeContinue
}

func (o Outcome[Id, D]) IsNotFound() bool {
	return o.kind == outcomeNotFound
}

func (o Outcome[Id, D]) IsEnd() bool {
	return o.kind == outcomeEnd
}

// Next returns the target of a Continue outcome and nil otherwise.
func (o Outcome[Id, D]) Next() *Handle[Id, D] {
	return o.next
}

// String returns the outcome kind.
func (o Outcome[Id, D]) String() string {
	switch o.kind {
	case outcomeContinue:
		return "continue"
	case outcomeEnd:
		return "end"
	default:
		return "not_found"
	}
}
